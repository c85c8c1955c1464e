//go:build wireinject
// +build wireinject

package di

import (
	"taskbox/config"
	"taskbox/infras/jwt"
	"taskbox/infras/kafka"
	"taskbox/infras/openai"
	"taskbox/infras/otel"
	"taskbox/infras/postgres"
	"taskbox/infras/redis"
	"taskbox/shared/cache"
	"taskbox/transport/http"
	"taskbox/transport/http/middleware"
	"taskbox/transport/http/router"

	aiService "taskbox/internal/domains/ai/service"
	authService "taskbox/internal/domains/auth/service"
	todoRepository "taskbox/internal/domains/todo/repository"
	todoService "taskbox/internal/domains/todo/service"
	userRepository "taskbox/internal/domains/user/repository"

	aiHandler "taskbox/internal/handlers/ai"
	authHandler "taskbox/internal/handlers/auth"
	healthHandler "taskbox/internal/handlers/health"
	todoHandler "taskbox/internal/handlers/todo"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	openai.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var aiDomain = wire.NewSet(
	aiService.New,
)

var domains = wire.NewSet(
	authDomain,
	todoDomain,
	aiDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	todoHandler.New,
	aiHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
