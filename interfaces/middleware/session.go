package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youtube-companion/domain/dto"
	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
)

const sessionKey = "session"

// Session resolves the stored credential once per request.
func Session(store repository.ITokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s := store.Load(); s != nil {
			c.Set(sessionKey, s)
		}
		c.Next()
	}
}

// CurrentSession returns nil when nobody is logged in.
func CurrentSession(c *gin.Context) *model.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*model.Session)
	return s
}

func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Response{
				Success: false,
				Message: "Not logged in",
				Error:   "Not logged in",
			})
			return
		}
		c.Next()
	}
}
