package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HoneyMedusa/recycle-me/internal/ai"
	"github.com/HoneyMedusa/recycle-me/internal/auth"
	"github.com/HoneyMedusa/recycle-me/internal/profile/domain"
	profileservice "github.com/HoneyMedusa/recycle-me/internal/profile/service"
)

// Handler serves the arcade: AI-generated quizzes and score submission.
// Game mechanics (sorter +10/-5, quiz +50 per correct answer) run on the
// client; the server only credits the final score, clamped at zero.
type Handler struct {
	ai     *ai.Client
	ledger *profileservice.LedgerService
}

func NewHandler(aiClient *ai.Client, ledger *profileservice.LedgerService) *Handler {
	return &Handler{ai: aiClient, ledger: ledger}
}

// Quiz returns a fresh set of eco trivia questions.
func (h *Handler) Quiz(c *gin.Context) {
	questions, err := h.ai.GenerateQuiz(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load quiz"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// SubmitScore credits points earned in a completed game.
func (h *Handler) SubmitScore(c *gin.Context) {
	var body struct {
		Game  string `json:"game" binding:"required"`
		Score int    `json:"score"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.ledger.GamePoints(c.Request.Context(), auth.UserUID(c), body.Score)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to credit score"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Register mounts the games routes on the given group.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/games/quiz", h.Quiz)
	r.POST("/games/score", h.SubmitScore)
}
