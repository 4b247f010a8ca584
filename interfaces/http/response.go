package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"youtube-companion/domain/dto"
	"youtube-companion/domain/model"
	"youtube-companion/infrastructure/logger"
)

func respondOK(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, dto.Response{Success: true, Data: data})
}

func respondMessage(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusOK, dto.Response{Success: true, Message: message})
}

// respondError maps domain errors to status codes. Client errors carry
// their own message; anything else answers 500 with fallback as the
// message and the cause in error.
func respondError(ctx *gin.Context, fallback string, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		ctx.JSON(http.StatusBadRequest, dto.Response{Message: err.Error()})
	case errors.Is(err, model.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.Response{Message: err.Error()})
	case errors.Is(err, model.ErrUnauthenticated):
		ctx.JSON(http.StatusUnauthorized, dto.Response{Message: err.Error(), Error: err.Error()})
	default:
		logger.WithContext(ctx.Request.Context()).WithField("error", err).Error(fallback)
		ctx.JSON(http.StatusInternalServerError, dto.Response{Message: fallback, Error: err.Error()})
	}
}

func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.Response{Message: message})
}

func noteIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("noteId"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(ctx, "Invalid note id")
		return 0, false
	}
	return id, true
}
