package http

import "github.com/gin-gonic/gin"

// Register mounts the marketplace routes on the given group.
func (h *Handler) Register(r gin.IRouter, scanLimiter gin.HandlerFunc) {
	r.POST("/market/scan", scanLimiter, h.Scan)
	r.POST("/market/sales", h.ConfirmSale)
	r.GET("/market/locations", h.Locations)
}
