package openai

//go:generate go run go.uber.org/mock/mockgen -source=./openai.go -destination=./mocks/openai_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"

	"taskbox/config"
	"taskbox/infras/otel"
	"taskbox/shared/constant"

	"github.com/rs/zerolog/log"
	goOpenai "github.com/sashabaranov/go-openai"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var (
	ErrEmptyCompletion = errors.New("completion service returned no choices")
)

// Message is one turn of a conversation relayed to the completion service.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the hosted completion service. Complete performs a single
// synchronous round-trip; Stream forwards each partial token to onDelta as it
// arrives and returns once the upstream stream is drained.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
	Stream(ctx context.Context, messages []Message, onDelta func(delta string) error) error
}

type clientImpl struct {
	api   *goOpenai.Client
	model string
	otel  otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Client {
	apiConfig := goOpenai.DefaultConfig(cfg.AI.APIKey)
	if cfg.AI.BaseURL != "" {
		apiConfig.BaseURL = cfg.AI.BaseURL
	}

	log.Info().Str("model", cfg.AI.Model).Msg("Completion service client initialized")

	return &clientImpl{
		api:   goOpenai.NewClientWithConfig(apiConfig),
		model: cfg.AI.Model,
		otel:  otl,
	}
}

func (c *clientImpl) Complete(ctx context.Context, messages []Message) (res string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	resp, err := c.api.CreateChatCompletion(ctx, goOpenai.ChatCompletionRequest{
		Model:    c.model,
		Messages: toChatMessages(messages),
	})
	if err != nil {
		log.Error().Err(err).Msg("completion request failed")

		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *clientImpl) Stream(ctx context.Context, messages []Message, onDelta func(delta string) error) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Stream")
	defer scope.End()
	defer scope.TraceIfError(err)

	stream, err := c.api.CreateChatCompletionStream(ctx, goOpenai.ChatCompletionRequest{
		Model:    c.model,
		Messages: toChatMessages(messages),
		Stream:   true,
	})
	if err != nil {
		log.Error().Err(err).Msg("completion stream request failed")

		return fmt.Errorf("completion stream request failed: %w", err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			log.Error().Err(err).Msg("completion stream aborted")

			return fmt.Errorf("completion stream aborted: %w", err)
		}

		if len(resp.Choices) == 0 {
			continue
		}

		delta := resp.Choices[0].Delta.Content
		if delta == "" {
			continue
		}

		if err := onDelta(delta); err != nil {
			return fmt.Errorf("forwarding completion delta: %w", err)
		}
	}
}

func toChatMessages(messages []Message) []goOpenai.ChatCompletionMessage {
	chatMessages := make([]goOpenai.ChatCompletionMessage, len(messages))
	for i, message := range messages {
		chatMessages[i] = goOpenai.ChatCompletionMessage{
			Role:    message.Role,
			Content: message.Content,
		}
	}

	return chatMessages
}
