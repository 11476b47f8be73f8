package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HoneyMedusa/recycle-me/internal/auth"
	"github.com/HoneyMedusa/recycle-me/internal/profile/domain"
	profileservice "github.com/HoneyMedusa/recycle-me/internal/profile/service"
	"github.com/HoneyMedusa/recycle-me/internal/rewards"
)

type Handler struct {
	ledger *profileservice.LedgerService
}

func NewHandler(ledger *profileservice.LedgerService) *Handler {
	return &Handler{ledger: ledger}
}

// Partners returns the reward partner catalog.
func (h *Handler) Partners(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"partners": rewards.Partners()})
}

// Redeem claims the offer tied to a badge. Locked badges are refused.
func (h *Handler) Redeem(c *gin.Context) {
	badgeID := c.Param("badge_id")

	partner, ok := rewards.PartnerByBadge(badgeID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no reward for this badge"})
		return
	}

	profile, err := h.ledger.Get(c.Request.Context(), auth.UserUID(c))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	if !profile.BadgeUnlocked(badgeID) {
		c.JSON(http.StatusConflict, gin.H{"error": "badge not unlocked"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"partner": partner, "message": "Show this screen in store to claim your " + partner.Offer})
}

// Register mounts the rewards routes on the given group.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/rewards/partners", h.Partners)
	r.POST("/rewards/redeem/:badge_id", h.Redeem)
}
