package health

import (
	"net/http"

	"taskbox/infras/postgres"
	"taskbox/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Status struct {
	Status string `json:"status"`
}

type Handler struct {
	db    *postgres.Connection
	redis *goRedis.Client
}

func New(db *postgres.Connection, redis *goRedis.Client) Handler {
	return Handler{
		db:    db,
		redis: redis,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/health", handler.Health)
}

// Health reports whether the service and its backing stores are reachable.
// @Summary Health check
// @Description Ping the database and cache and report overall service health.
// @Tags Health
// @Produce json
// @Success 200 {object} health.Status "Service healthy"
// @Failure 503 {object} response.Message "Service unhealthy"
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := handler.db.Write.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("postgres ping failed")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.redis.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("redis ping failed")

		response.WithUnhealthy(w)

		return
	}

	response.WithJSON(w, http.StatusOK, Status{Status: "ok"})
}
