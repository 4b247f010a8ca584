package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/go-querystring/query"

	"youtube-companion/interfaces/middleware"
	"youtube-companion/usecase"
)

type IAuthHandler interface {
	Login(ctx *gin.Context)
	Callback(ctx *gin.Context)
	Logout(ctx *gin.Context)
	UserInfo(ctx *gin.Context)
}

type AuthHandler struct {
	authUsecase usecase.IAuthUsecase
	frontendURL string
}

func NewAuthHandler(authUsecase usecase.IAuthUsecase, frontendURL string) IAuthHandler {
	return &AuthHandler{authUsecase: authUsecase, frontendURL: frontendURL}
}

type authResult struct {
	Auth  string `url:"auth"`
	Error string `url:"error,omitempty"`
}

// Login handles GET /auth/google
func (h *AuthHandler) Login(ctx *gin.Context) {
	authURL, err := h.authUsecase.AuthURL()
	if err != nil {
		respondError(ctx, "Could not start login", err)
		return
	}
	ctx.Redirect(http.StatusFound, authURL)
}

// Callback handles GET /auth/google/callback. Every outcome redirects back
// to the dashboard.
func (h *AuthHandler) Callback(ctx *gin.Context) {
	if denied := ctx.Query("error"); denied != "" {
		h.redirectFailed(ctx, denied)
		return
	}
	if _, err := h.authUsecase.Complete(ctx.Request.Context(), ctx.Query("state"), ctx.Query("code")); err != nil {
		h.redirectFailed(ctx, err.Error())
		return
	}
	ctx.Redirect(http.StatusFound, h.frontendURL)
}

func (h *AuthHandler) redirectFailed(ctx *gin.Context, reason string) {
	target := h.frontendURL
	if v, err := query.Values(authResult{Auth: "failed", Error: reason}); err == nil {
		target += "?" + v.Encode()
	}
	ctx.Redirect(http.StatusFound, target)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(ctx *gin.Context) {
	if err := h.authUsecase.Logout(ctx.Request.Context()); err != nil {
		respondError(ctx, "Logout failed", err)
		return
	}
	respondMessage(ctx, "Logged out successfully")
}

// UserInfo handles GET /api/userinfo. The profile is returned without the
// envelope.
func (h *AuthHandler) UserInfo(ctx *gin.Context) {
	info, err := h.authUsecase.UserInfo(ctx.Request.Context(), middleware.CurrentSession(ctx))
	if err != nil {
		respondError(ctx, "Failed to fetch user info", err)
		return
	}
	ctx.JSON(http.StatusOK, info)
}
