package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"taskbox/config"
	"taskbox/infras/openai"
	"taskbox/infras/otel"
	"taskbox/internal/domains/ai/model/dto"
	"taskbox/shared/constant"
	"taskbox/shared/failure"

	"github.com/rs/zerolog/log"
)

const breakdownSystemPrompt = "You are a planning assistant. Break the task the user gives you " +
	"into 3-5 short, actionable subtasks. Return them as a plain numbered list, one subtask per " +
	"line, with no extra commentary."

type AI interface {
	Ask(ctx context.Context, req dto.AskRequest) (dto.ChatResponse, error)
	Chat(ctx context.Context, req dto.ChatRequest) (dto.ChatResponse, error)
	ChatStream(ctx context.Context, req dto.ChatRequest, onDelta func(delta string) error) error
	Breakdown(ctx context.Context, req dto.BreakdownRequest) (dto.ChatResponse, error)
}

type serviceImpl struct {
	client openai.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client openai.Client, cfg *config.Config, otel otel.Otel) AI {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *serviceImpl) Ask(ctx context.Context, req dto.AskRequest) (res dto.ChatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Ask")
	defer scope.End()
	defer scope.TraceIfError(err)

	messages := []openai.Message{
		{Role: openai.RoleUser, Content: req.Prompt},
	}

	message, err := s.complete(ctx, messages)
	if err != nil {
		return res, err
	}

	res.Message = message

	return res, nil
}

func (s *serviceImpl) Chat(ctx context.Context, req dto.ChatRequest) (res dto.ChatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Chat")
	defer scope.End()
	defer scope.TraceIfError(err)

	message, err := s.complete(ctx, req.ToMessages())
	if err != nil {
		return res, err
	}

	res.Message = message

	return res, nil
}

func (s *serviceImpl) ChatStream(ctx context.Context, req dto.ChatRequest, onDelta func(delta string) error) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChatStream")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.client.Stream(ctx, req.ToMessages(), onDelta); err != nil {
		log.Error().Err(err).Msg("completion stream failed")

		return fmt.Errorf("completion stream failed: %w", err)
	}

	return nil
}

func (s *serviceImpl) Breakdown(ctx context.Context, req dto.BreakdownRequest) (res dto.ChatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Breakdown")
	defer scope.End()
	defer scope.TraceIfError(err)

	messages := []openai.Message{
		{Role: openai.RoleSystem, Content: breakdownSystemPrompt},
		{Role: openai.RoleUser, Content: req.Task},
	}

	message, err := s.complete(ctx, messages)
	if err != nil {
		return res, err
	}

	res.Message = message

	return res, nil
}

func (s *serviceImpl) complete(ctx context.Context, messages []openai.Message) (string, error) {
	message, err := s.client.Complete(ctx, messages)
	if err != nil {
		log.Error().Err(err).Msg("completion request failed")

		return "", failure.InternalError(err) // nolint:wrapcheck
	}

	return message, nil
}
