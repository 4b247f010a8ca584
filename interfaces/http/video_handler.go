package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youtube-companion/domain/dto"
	"youtube-companion/interfaces/middleware"
	"youtube-companion/usecase"
)

type IVideoHandler interface {
	GetVideo(ctx *gin.Context)
	UpdateVideo(ctx *gin.Context)
	GetComments(ctx *gin.Context)
	AddComment(ctx *gin.Context)
	AddReply(ctx *gin.Context)
	DeleteComment(ctx *gin.Context)
	DeleteReply(ctx *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

// GetVideo handles GET /api/videos/:videoId
func (h *VideoHandler) GetVideo(ctx *gin.Context) {
	video, err := h.videoUsecase.FetchVideo(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("videoId"))
	if err != nil {
		respondError(ctx, "Error fetching video details", err)
		return
	}
	respondOK(ctx, http.StatusOK, video)
}

// UpdateVideo handles PUT /api/videos/:videoId
func (h *VideoHandler) UpdateVideo(ctx *gin.Context) {
	var req dto.VideoUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	video, err := h.videoUsecase.UpdateVideo(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("videoId"), req)
	if err != nil {
		respondError(ctx, "Error updating video", err)
		return
	}
	respondOK(ctx, http.StatusOK, video)
}

// GetComments handles GET /api/videos/:videoId/comments
func (h *VideoHandler) GetComments(ctx *gin.Context) {
	var query dto.CommentListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "Invalid maxResults")
		return
	}
	comments, err := h.videoUsecase.FetchComments(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("videoId"), query.Limit())
	if err != nil {
		respondError(ctx, "Error fetching video comments", err)
		return
	}
	respondOK(ctx, http.StatusOK, comments)
}

// AddComment handles POST /api/videos/:videoId/comments
func (h *VideoHandler) AddComment(ctx *gin.Context) {
	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Comment text is required")
		return
	}
	comment, err := h.videoUsecase.AddComment(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("videoId"), req.Text)
	if err != nil {
		respondError(ctx, "Error adding comment", err)
		return
	}
	respondOK(ctx, http.StatusCreated, comment)
}

// AddReply handles POST /api/videos/comments/:commentId/replies
func (h *VideoHandler) AddReply(ctx *gin.Context) {
	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Reply text is required")
		return
	}
	reply, err := h.videoUsecase.AddReply(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("commentId"), req.Text)
	if err != nil {
		respondError(ctx, "Error adding reply", err)
		return
	}
	respondOK(ctx, http.StatusCreated, reply)
}

// DeleteComment handles DELETE /api/videos/comments/:commentId
func (h *VideoHandler) DeleteComment(ctx *gin.Context) {
	if err := h.videoUsecase.DeleteComment(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("commentId")); err != nil {
		respondError(ctx, "Error deleting comment", err)
		return
	}
	respondMessage(ctx, "Comment deleted successfully")
}

// DeleteReply handles DELETE /api/videos/comments/:commentId/reply
func (h *VideoHandler) DeleteReply(ctx *gin.Context) {
	if err := h.videoUsecase.DeleteReply(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("commentId")); err != nil {
		respondError(ctx, "Error deleting reply", err)
		return
	}
	respondMessage(ctx, "Reply deleted successfully")
}
