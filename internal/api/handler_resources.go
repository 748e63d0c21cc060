package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListTechnicians handles GET /api/technicians.
func (h *Handler) ListTechnicians(c *gin.Context) {
	technicians, err := h.store.ListTechnicians(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve technicians"})
		return
	}
	c.JSON(http.StatusOK, technicians)
}

// ListParts handles GET /api/parts.
func (h *Handler) ListParts(c *gin.Context) {
	parts, err := h.store.ListParts(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve parts"})
		return
	}
	c.JSON(http.StatusOK, parts)
}
