package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"taskbox/config"
	"taskbox/infras/kafka"
	"taskbox/infras/otel"
	"taskbox/internal/domains/todo/model"
	"taskbox/internal/domains/todo/model/dto"
	"taskbox/internal/domains/todo/repository"
	"taskbox/shared"
	"taskbox/shared/cache"
	"taskbox/shared/constant"
	gDto "taskbox/shared/dto"
	"taskbox/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTodo = "todo"

	eventActionCreated = "created"
	eventActionUpdated = "updated"
	eventActionDeleted = "deleted"
)

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest, userID int64) (dto.TodoResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, userID int64) (dto.GetTodosResponse, error)
	Get(ctx context.Context, id, userID int64) (dto.TodoResponse, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest, id, userID int64) (dto.TodoResponse, error)
	Delete(ctx context.Context, id, userID int64) error
}

type serviceImpl struct {
	repo  repository.Todo
	cfg   *config.Config
	otel  otel.Otel
	cache cache.RedisCache
	kafka kafka.Client
}

func New(repo repository.Todo, cfg *config.Config, otel otel.Otel, cache cache.RedisCache, kafka kafka.Client) Todo {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		otel:  otel,
		cache: cache,
		kafka: kafka,
	}
}

// ownedFilter scopes every lookup and mutation to the todo's owner, so one
// account can never see or touch another account's rows.
func ownedFilter(id, userID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}
}

func todoCacheKey(id, userID int64) string {
	return shared.BuildCacheKey(cacheGetTodo, strconv.FormatInt(userID, 10), strconv.FormatInt(id, 10))
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest, userID int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	todo := req.ToModel(userID)

	id, err := s.repo.InsertReturning(ctx, todo)
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	todo.ID = id
	res.FromModel(todo)

	s.publishEvent(ctx, eventActionCreated, userID, res)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, userID int64) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldUserID,
		Operator: gDto.FilterOperatorEq,
		Value:    userID,
		Table:    model.TableName,
	})

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count todos")

		return res, fmt.Errorf("failed to count todos: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, userID int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := todoCacheKey(id, userID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for todo")

		return res, nil
	}

	todo, err := s.repo.Get(ctx, ownedFilter(id, userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == 0 {
		return res, failure.NotFound("Todo not found") // nolint:wrapcheck
	}

	res.FromModel(todo)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save todo to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id, userID int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateTodoRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := ownedFilter(id, userID)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if current.ID == 0 {
		return res, failure.NotFound("Todo not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated todo")

		return res, fmt.Errorf("failed to get updated todo: %w", err)
	}

	res.FromModel(updated)

	s.invalidateCache(ctx, id, userID)
	s.publishEvent(ctx, eventActionUpdated, userID, res)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, userID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := ownedFilter(id, userID)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if todo exists")

		return fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if !exist {
		return failure.NotFound("Todo not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	s.invalidateCache(ctx, id, userID)
	s.publishEvent(ctx, eventActionDeleted, userID, dto.TodoResponse{ID: id})

	return nil
}

func (s *serviceImpl) invalidateCache(ctx context.Context, id, userID int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, todoCacheKey(id, userID)); err != nil {
			log.Error().Err(err).Msg("failed to invalidate todo cache")
		}
	}()
}

// publishEvent emits a mutation event for downstream consumers. Delivery is
// best effort and never blocks or fails the request.
func (s *serviceImpl) publishEvent(ctx context.Context, action string, userID int64, todo dto.TodoResponse) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := dto.TodoEvent{
		Action: action,
		UserID: userID,
		Todo:   todo,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   strconv.FormatInt(todo.ID, 10),
			Value: event,
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.TodoTopic, message); err != nil {
			log.Error().Err(err).Str("action", action).Msg("failed to publish todo event")
		}
	}()
}
