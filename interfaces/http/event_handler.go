package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youtube-companion/domain/dto"
	"youtube-companion/usecase"
)

type IEventHandler interface {
	List(ctx *gin.Context)
}

type EventHandler struct {
	eventUsecase usecase.IEventUsecase
}

func NewEventHandler(eventUsecase usecase.IEventUsecase) IEventHandler {
	return &EventHandler{eventUsecase: eventUsecase}
}

// List handles GET /api/events
func (h *EventHandler) List(ctx *gin.Context) {
	var q dto.EventLogQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		badRequest(ctx, "Invalid query parameters")
		return
	}
	events, err := h.eventUsecase.List(ctx.Request.Context(), q)
	if err != nil {
		respondError(ctx, "Error fetching event logs", err)
		return
	}
	respondOK(ctx, http.StatusOK, events)
}
