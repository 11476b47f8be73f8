package http

import "github.com/gin-gonic/gin"

// Register mounts the profile routes on the given group.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/session", h.Login)
	r.DELETE("/session", h.Logout)
	r.GET("/profile", h.GetProfile)
	r.PATCH("/profile", h.UpdateProfile)
	r.GET("/leaderboard", h.Leaderboard)
}
