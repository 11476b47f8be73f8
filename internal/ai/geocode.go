package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Address is a best-effort reverse-geocoding result with optional source
// attribution from search grounding.
type Address struct {
	Address string `json:"address"`
	URL     string `json:"url,omitempty"`
	Title   string `json:"title,omitempty"`
}

// AddressFromCoords converts coordinates to a human-readable address using
// Gemini with search grounding. It never fails: any error degrades to the
// raw coordinate string.
func (c *Client) AddressFromCoords(ctx context.Context, lat, lng float64) Address {
	fallback := Address{Address: fmt.Sprintf("%.4f, %.4f", lat, lng)}
	if c.MockMode() {
		return fallback
	}

	prompt := fmt.Sprintf(`Identify the physical street address and city in South Africa for these GPS coordinates: Latitude %f, Longitude %f.
Return ONLY the address in the format 'Street Name, City'. Do not include coordinates or extra text.`, lat, lng)

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return fallback
	}

	addr := strings.TrimSpace(resp.Text())
	if addr == "" {
		return fallback
	}

	out := Address{Address: addr}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		if chunks := resp.Candidates[0].GroundingMetadata.GroundingChunks; len(chunks) > 0 && chunks[0].Web != nil {
			out.URL = chunks[0].Web.URI
			out.Title = chunks[0].Web.Title
		}
	}
	return out
}
