package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"youtube-companion/domain/dto"
)

// Health handles GET /health
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Success:   true,
		Status:    "OK",
		Message:   "YouTube Companion Dashboard API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}
