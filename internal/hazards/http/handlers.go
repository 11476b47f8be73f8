package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HoneyMedusa/recycle-me/internal/auth"
	"github.com/HoneyMedusa/recycle-me/internal/hazards/domain"
	"github.com/HoneyMedusa/recycle-me/internal/hazards/service"
	profiledomain "github.com/HoneyMedusa/recycle-me/internal/profile/domain"
)

type Handler struct {
	reports *service.ReportService
}

func NewHandler(reports *service.ReportService) *Handler {
	return &Handler{reports: reports}
}

// Submit files a hazard report from an image and optional voice transcript.
func (h *Handler) Submit(c *gin.Context) {
	uid := auth.UserUID(c)

	var body struct {
		Image      string `json:"image" binding:"required"`
		Transcript string `json:"transcript"`
		Location   string `json:"location"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report, profile, err := h.reports.Submit(c.Request.Context(), uid, body.Image, body.Transcript, body.Location)
	if err != nil {
		if errors.Is(err, profiledomain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "hazard analysis failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"report": report, "profile": profile})
}

// ListOwn returns the caller's submitted reports.
func (h *Handler) ListOwn(c *gin.Context) {
	reports, err := h.reports.ListOwn(c.Request.Context(), auth.UserUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reports"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// Transcribe converts an audio note to text.
func (h *Handler) Transcribe(c *gin.Context) {
	var body struct {
		Audio      string `json:"audio" binding:"required"`
		SampleRate int    `json:"sample_rate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	text, err := h.reports.Transcribe(c.Request.Context(), body.Audio, body.SampleRate)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "transcription failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// Geocode resolves coordinates to a display address. Always succeeds; the
// worst case is the raw coordinate string.
func (h *Handler) Geocode(c *gin.Context) {
	var body struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.reports.Geocode(c.Request.Context(), body.Lat, body.Lng))
}

// ListOpen returns the municipal work queue. API-key gated.
func (h *Handler) ListOpen(c *gin.Context) {
	reports, err := h.reports.ListOpen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load queue"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// UpdateStatus advances one ticket through the municipal stages. API-key gated.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report, err := h.reports.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report status"})
		case errors.Is(err, domain.ErrReportNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update report"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}
