package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/HoneyMedusa/recycle-me/config"
)

// Client wraps the Gemini API for every AI collaborator the app consumes:
// waste classification, hazard analysis, geocoding, transcription, location
// search and quiz generation. When no API key is configured, every call
// returns canned mock data instead so the app stays usable offline.
//
// Calls are single-attempt. Failures surface to the handler, which turns
// them into a user-facing error; there is no retry policy.
type Client struct {
	genai *genai.Client
	model string
}

// New creates the Gemini client. A missing API key is not an error: the
// client runs in mock mode.
func New(ctx context.Context, cfg *config.GeminiConfig) (*Client, error) {
	c := &Client{model: cfg.Model}
	if c.model == "" {
		c.model = "gemini-2.0-flash"
	}

	if cfg.APIKey == "" {
		return c, nil
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	c.genai = gc
	return c, nil
}

// MockMode reports whether the client answers from canned data.
func (c *Client) MockMode() bool {
	return c.genai == nil
}
