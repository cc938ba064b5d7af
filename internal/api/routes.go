package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.Use(requestID())
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/og", h.ogImage)
	}
}
