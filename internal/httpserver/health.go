package httpserver

import (
	"github.com/gin-gonic/gin"

	"notification-hub/pkg/response"
)

const (
	serviceName    = "notification-hub"
	serviceVersion = "1.0.0"
)

// liveCheck answers without touching any channel.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": serviceVersion,
		"service": serviceName,
	})
}
