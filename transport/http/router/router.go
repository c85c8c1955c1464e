package router

import (
	"taskbox/internal/handlers/ai"
	"taskbox/internal/handlers/auth"
	"taskbox/internal/handlers/health"
	"taskbox/internal/handlers/todo"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth   auth.Handler
	Todo   todo.Handler
	AI     ai.Handler
	Health health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Todo.Router(router)
	r.DomainHandlers.AI.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
