package http

import "github.com/gin-gonic/gin"

// Register mounts the hazard routes. Municipal routes get the API-key
// middleware on top of the usual auth.
func (h *Handler) Register(r gin.IRouter, reportLimiter, municipalOnly gin.HandlerFunc) {
	r.POST("/hazards", reportLimiter, h.Submit)
	r.GET("/hazards", h.ListOwn)
	r.POST("/hazards/transcribe", h.Transcribe)
	r.POST("/hazards/geocode", h.Geocode)

	m := r.Group("/municipal")
	m.Use(municipalOnly)
	m.GET("/hazards", h.ListOpen)
	m.PATCH("/hazards/:id", h.UpdateStatus)
}
