package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jqt_lookup_backend/datasource"
)

type HealthHandler struct {
	src datasource.Source
}

func NewHealthHandler(src datasource.Source) *HealthHandler {
	return &HealthHandler{src: src}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	// Check the table backend is reachable
	if err := h.src.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "Data source connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}
