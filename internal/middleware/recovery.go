package middleware

import (
	"github.com/gin-gonic/gin"

	"notification-hub/pkg/log"
	"notification-hub/pkg/response"
)

// Recovery turns a handler panic into a 500 envelope and reports it to r.
func Recovery(l log.Logger, r response.Reporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				l.Errorf(c.Request.Context(), "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)
				response.PanicError(c, err, r)
			}
		}()
		c.Next()
	}
}
