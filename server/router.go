package server

import (
	"time"

	"youtube-companion/domain/repository"
	httpHandler "youtube-companion/interfaces/http"
	"youtube-companion/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router mounts. EventStream may be nil.
type Handlers struct {
	Video       httpHandler.IVideoHandler
	Note        httpHandler.INoteHandler
	Auth        httpHandler.IAuthHandler
	Event       httpHandler.IEventHandler
	EventStream gin.HandlerFunc
}

func InitiateRouter(frontendURL string, tokenStore repository.ITokenStore, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequestContext())
	router.Use(middleware.Session(tokenStore))

	router.GET("/health", httpHandler.Health)

	router.GET("/auth/google", h.Auth.Login)
	router.GET("/auth/google/callback", h.Auth.Callback)
	router.POST("/auth/logout", h.Auth.Logout)

	api := router.Group("/api")
	api.GET("/userinfo", middleware.RequireSession(), h.Auth.UserInfo)

	videos := api.Group("/videos")
	{
		videos.GET("/:videoId", h.Video.GetVideo)
		videos.PUT("/:videoId", h.Video.UpdateVideo)
		videos.GET("/:videoId/comments", h.Video.GetComments)
		videos.POST("/:videoId/comments", h.Video.AddComment)
		videos.POST("/comments/:commentId/replies", h.Video.AddReply)
		videos.DELETE("/comments/:commentId", h.Video.DeleteComment)
		videos.DELETE("/comments/:commentId/reply", h.Video.DeleteReply)
	}

	api.GET("/:videoId/notes", h.Note.List)
	api.POST("/:videoId/notes", h.Note.Create)
	api.GET("/:videoId/notes/category", h.Note.ListByCategory)
	api.GET("/:videoId/notes/priority", h.Note.ListByPriority)
	api.GET("/notes/:noteId", h.Note.Get)
	api.PUT("/notes/:noteId", h.Note.Update)
	api.DELETE("/notes/:noteId", h.Note.Delete)
	api.PATCH("/notes/:noteId/toggle", h.Note.Toggle)

	api.GET("/events", h.Event.List)
	if h.EventStream != nil {
		api.GET("/events/stream", h.EventStream)
	}

	return router
}
