package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youtube-companion/domain/dto"
	"youtube-companion/usecase"
)

type INoteHandler interface {
	List(ctx *gin.Context)
	ListByCategory(ctx *gin.Context)
	ListByPriority(ctx *gin.Context)
	Get(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Toggle(ctx *gin.Context)
}

type NoteHandler struct {
	noteUsecase usecase.INoteUsecase
}

func NewNoteHandler(noteUsecase usecase.INoteUsecase) INoteHandler {
	return &NoteHandler{noteUsecase: noteUsecase}
}

// List handles GET /api/:videoId/notes
func (h *NoteHandler) List(ctx *gin.Context) {
	notes, err := h.noteUsecase.ListByVideo(ctx.Request.Context(), ctx.Param("videoId"))
	if err != nil {
		respondError(ctx, "Error fetching notes", err)
		return
	}
	respondOK(ctx, http.StatusOK, notes)
}

// ListByCategory handles GET /api/:videoId/notes/category?category=
func (h *NoteHandler) ListByCategory(ctx *gin.Context) {
	notes, err := h.noteUsecase.ListByCategory(ctx.Request.Context(), ctx.Param("videoId"), ctx.Query("category"))
	if err != nil {
		respondError(ctx, "Error fetching notes by category", err)
		return
	}
	respondOK(ctx, http.StatusOK, notes)
}

// ListByPriority handles GET /api/:videoId/notes/priority?priority=
func (h *NoteHandler) ListByPriority(ctx *gin.Context) {
	notes, err := h.noteUsecase.ListByPriority(ctx.Request.Context(), ctx.Param("videoId"), ctx.Query("priority"))
	if err != nil {
		respondError(ctx, "Error fetching notes by priority", err)
		return
	}
	respondOK(ctx, http.StatusOK, notes)
}

// Get handles GET /api/notes/:noteId
func (h *NoteHandler) Get(ctx *gin.Context) {
	id, ok := noteIDParam(ctx)
	if !ok {
		return
	}
	note, err := h.noteUsecase.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, "Error fetching note", err)
		return
	}
	respondOK(ctx, http.StatusOK, note)
}

// Create handles POST /api/:videoId/notes
func (h *NoteHandler) Create(ctx *gin.Context) {
	var req dto.NoteCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	note, err := h.noteUsecase.Create(ctx.Request.Context(), ctx.Param("videoId"), req)
	if err != nil {
		respondError(ctx, "Error creating note", err)
		return
	}
	respondOK(ctx, http.StatusCreated, note)
}

// Update handles PUT /api/notes/:noteId
func (h *NoteHandler) Update(ctx *gin.Context) {
	id, ok := noteIDParam(ctx)
	if !ok {
		return
	}
	var req dto.NoteUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	note, err := h.noteUsecase.Update(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, "Error updating note", err)
		return
	}
	respondOK(ctx, http.StatusOK, note)
}

// Delete handles DELETE /api/notes/:noteId
func (h *NoteHandler) Delete(ctx *gin.Context) {
	id, ok := noteIDParam(ctx)
	if !ok {
		return
	}
	if err := h.noteUsecase.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, "Error deleting note", err)
		return
	}
	respondMessage(ctx, "Note deleted successfully")
}

// Toggle handles PATCH /api/notes/:noteId/toggle
func (h *NoteHandler) Toggle(ctx *gin.Context) {
	id, ok := noteIDParam(ctx)
	if !ok {
		return
	}
	note, err := h.noteUsecase.ToggleCompleted(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, "Error toggling note completion", err)
		return
	}
	respondOK(ctx, http.StatusOK, note)
}
