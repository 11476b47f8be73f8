package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/rand"

	"google.golang.org/genai"

	hazarddomain "github.com/HoneyMedusa/recycle-me/internal/hazards/domain"
	"github.com/HoneyMedusa/recycle-me/internal/utils"
)

// HazardAnalysis is the result of analyzing a hazard image.
type HazardAnalysis struct {
	Severity              hazarddomain.Severity `json:"severity"`
	Description           string                `json:"description"`
	ReferenceNumber       string                `json:"referenceNumber"`
	AcknowledgmentMessage string                `json:"acknowledgmentMessage"`
}

// AnalyzeHazardImage classifies an environmental hazard from a base64 JPEG
// and optional voice transcript.
func (c *Client) AnalyzeHazardImage(ctx context.Context, imageB64, transcript string) (*HazardAnalysis, error) {
	if c.MockMode() {
		return mockHazardAnalysis()
	}

	img, err := base64.StdEncoding.DecodeString(imageB64)
	if err != nil {
		return nil, fmt.Errorf("invalid image encoding: %w", err)
	}

	prompt := fmt.Sprintf("Identify this environmental hazard. Context: %q. Return JSON with severity, description, and referenceNumber.", transcript)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(img, "image/jpeg"),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"severity":              {Type: genai.TypeString, Enum: []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}},
				"description":           {Type: genai.TypeString},
				"referenceNumber":       {Type: genai.TypeString},
				"acknowledgmentMessage": {Type: genai.TypeString},
			},
			Required: []string{"severity", "description", "referenceNumber"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("hazard analysis failed: %w", err)
	}

	var out HazardAnalysis
	if err := json.Unmarshal([]byte(resp.Text()), &out); err != nil {
		return nil, fmt.Errorf("failed to parse hazard response: %w", err)
	}
	if !out.Severity.Valid() {
		out.Severity = hazarddomain.SeverityMedium
	}
	return &out, nil
}

func mockHazardAnalysis() (*HazardAnalysis, error) {
	severities := []hazarddomain.Severity{
		hazarddomain.SeverityLow,
		hazarddomain.SeverityMedium,
		hazarddomain.SeverityHigh,
		hazarddomain.SeverityCritical,
	}

	ref, err := utils.NewRefID("HAZ")
	if err != nil {
		return nil, err
	}

	return &HazardAnalysis{
		Severity:              severities[rand.Intn(len(severities))],
		Description:           "Environmental hazard detected and logged for municipal response.",
		ReferenceNumber:       ref,
		AcknowledgmentMessage: "Thank you for your report. Our environmental response team has been notified and will investigate this hazard within 24-48 hours.",
	}, nil
}
