package ai

import (
	"net/http"

	"taskbox/infras/otel"
	"taskbox/internal/domains/ai/model/dto"
	"taskbox/internal/domains/ai/service"
	"taskbox/shared/constant"
	"taskbox/shared/validator"
	"taskbox/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.AI
	otel    otel.Otel
}

func New(service service.AI, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/ai", func(r chi.Router) {
		r.Post("/ask", handler.Ask)
		r.Post("/chat", handler.Chat)
		r.Post("/chat/stream", handler.ChatStream)
		r.Post("/breakdown", handler.Breakdown)
	})
}

// Ask relays a single prompt to the completion service.
// @Summary Ask a single question
// @Description Send one prompt and receive the full completion text.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "Ask Request"
// @Success 200 {object} dto.ChatResponse "Completion text"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /ai/ask [post]
func (handler *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Ask")
	defer scope.End()

	req := dto.AskRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Ask(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to relay prompt")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Chat relays a full conversation to the completion service.
// @Summary Continue a conversation
// @Description Send an ordered message list and receive the full completion text.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat Request"
// @Success 200 {object} dto.ChatResponse "Completion text"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /ai/chat [post]
func (handler *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Chat")
	defer scope.End()

	req := dto.ChatRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Chat(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to relay conversation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ChatStream relays a conversation and streams the completion back as
// server-sent events. Each delta arrives as a `data:` frame and the stream is
// closed with a terminal `data: [DONE]` frame.
// @Summary Stream a conversation
// @Description Send an ordered message list and receive the completion as server-sent events.
// @Tags AI
// @Accept json
// @Produce text/event-stream
// @Param request body dto.ChatRequest true "Chat Request"
// @Success 200 {string} string "Event stream of completion deltas"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /ai/chat/stream [post]
func (handler *Handler) ChatStream(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChatStream")
	defer scope.End()

	req := dto.ChatRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	flusher, err := response.StartEventStream(w)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("streaming unsupported")

		response.WithError(w, err)

		return
	}

	streaming := false
	err = handler.service.ChatStream(ctx, req, func(delta string) error {
		streaming = true

		return response.WithEvent(w, flusher, delta)
	})

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("completion stream failed")

		// Nothing has been flushed yet, so a JSON error is still possible.
		if !streaming {
			response.WithError(w, err)
		}

		return
	}

	if err := response.WithEvent(w, flusher, constant.StreamEventDone); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to terminate event stream")
	}
}

// Breakdown asks the completion service to split a task into subtasks.
// @Summary Break a task into subtasks
// @Description Send a task description and receive a short list of subtasks.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body dto.BreakdownRequest true "Breakdown Request"
// @Success 200 {object} dto.ChatResponse "Subtask list as text"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /ai/breakdown [post]
func (handler *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Breakdown")
	defer scope.End()

	req := dto.BreakdownRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Breakdown(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to break down task")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
