package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HoneyMedusa/recycle-me/internal/auth"
	"github.com/HoneyMedusa/recycle-me/internal/marketplace/service"
	"github.com/HoneyMedusa/recycle-me/internal/profile/domain"
)

type Handler struct {
	market *service.MarketService
}

func NewHandler(market *service.MarketService) *Handler {
	return &Handler{market: market}
}

// Scan classifies a waste image without committing anything.
func (h *Handler) Scan(c *gin.Context) {
	var body struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	analysis, err := h.market.Scan(c.Request.Context(), body.Image)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "classification failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

// ConfirmSale turns an accepted classification into a credited listing.
func (h *Handler) ConfirmSale(c *gin.Context) {
	uid := auth.UserUID(c)

	var body struct {
		MaterialType domain.WasteType `json:"material_type" binding:"required"`
		Weight       float64          `json:"weight"`
		Value        float64          `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, sale, err := h.market.ConfirmSale(c.Request.Context(), uid, body.Value, body.MaterialType, body.Weight)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotRecyclable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "material is not recyclable"})
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create listing"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile, "sale": sale})
}

// Locations lists nearby recycling centers.
func (h *Handler) Locations(c *gin.Context) {
	place := c.DefaultQuery("near", "Sandton")

	centers, err := h.market.Locations(c.Request.Context(), place)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "location search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"centers": centers})
}
