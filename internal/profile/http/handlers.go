package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HoneyMedusa/recycle-me/internal/auth"
	"github.com/HoneyMedusa/recycle-me/internal/profile/domain"
	"github.com/HoneyMedusa/recycle-me/internal/profile/service"
)

type Handler struct {
	ledger *service.LedgerService
}

func NewHandler(ledger *service.LedgerService) *Handler {
	return &Handler{ledger: ledger}
}

// Login ensures a profile exists for the authenticated user and returns it.
// Creating is idempotent: an existing profile is returned untouched.
func (h *Handler) Login(c *gin.Context) {
	uid := auth.UserUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var body struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.ledger.EnsureProfile(c.Request.Context(), uid, body.Name, body.Email, body.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": p})
}

// GetProfile returns the current profile snapshot.
func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.ledger.Get(c.Request.Context(), auth.UserUID(c))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": p})
}

// UpdateProfile merges identity fields (name, email, phone, avatar).
func (h *Handler) UpdateProfile(c *gin.Context) {
	var upd domain.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.ledger.UpdateFields(c.Request.Context(), auth.UserUID(c), upd)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": p})
}

// Logout deletes the profile wholesale.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.ledger.Reset(c.Request.Context(), auth.UserUID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Leaderboard returns the top users by points.
func (h *Handler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := h.ledger.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaderboard"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
