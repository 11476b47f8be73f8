package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"google.golang.org/genai"

	profiledomain "github.com/HoneyMedusa/recycle-me/internal/profile/domain"
)

// WasteAnalysis is the classification result for a scanned image.
type WasteAnalysis struct {
	Type            profiledomain.WasteType `json:"type"`
	Confidence      float64                 `json:"confidence"`
	EstimatedWeight float64                 `json:"estimatedWeight"`
	EstimatedValue  float64                 `json:"estimatedValue"`
	ItemsDetected   []string                `json:"itemsDetected"`
	Summary         string                  `json:"summary"`
}

const classifyPrompt = `Analyze this image for recyclables. Determine if the image contains recyclable goods (PLASTIC, GLASS, METAL, PAPER, or ELECTRONIC).
Estimate weight (kg) and ZAR value (Cans R12/kg, PET R5/kg, Paper R2/kg).
Return ONLY valid JSON format.`

// AnalyzeWasteImage classifies a base64-encoded JPEG into a material
// category with estimated weight and value.
func (c *Client) AnalyzeWasteImage(ctx context.Context, imageB64 string) (*WasteAnalysis, error) {
	if c.MockMode() {
		return mockWasteAnalysis(), nil
	}

	img, err := base64.StdEncoding.DecodeString(imageB64)
	if err != nil {
		return nil, fmt.Errorf("invalid image encoding: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(img, "image/jpeg"),
			genai.NewPartFromText(classifyPrompt),
		}, genai.RoleUser),
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"type":            {Type: genai.TypeString, Enum: []string{"PLASTIC", "GLASS", "METAL", "PAPER", "ELECTRONIC", "NON_RECYCLABLE", "UNKNOWN"}},
				"confidence":      {Type: genai.TypeNumber},
				"estimatedWeight": {Type: genai.TypeNumber},
				"estimatedValue":  {Type: genai.TypeNumber},
				"itemsDetected":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"summary":         {Type: genai.TypeString},
			},
			Required: []string{"type", "estimatedWeight", "estimatedValue", "itemsDetected"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("waste classification failed: %w", err)
	}

	var out WasteAnalysis
	if err := json.Unmarshal([]byte(resp.Text()), &out); err != nil {
		return nil, fmt.Errorf("failed to parse classification response: %w", err)
	}
	if out.Type == "" {
		out.Type = profiledomain.WasteUnknown
	}
	return &out, nil
}

func mockWasteAnalysis() *WasteAnalysis {
	mockTypes := []profiledomain.WasteType{
		profiledomain.WastePlastic,
		profiledomain.WasteGlass,
		profiledomain.WasteMetal,
		profiledomain.WastePaper,
	}
	t := mockTypes[rand.Intn(len(mockTypes))]

	weight := rand.Float64()*5 + 0.5
	valuePerKg := 2.0
	switch t {
	case profiledomain.WasteMetal:
		valuePerKg = 12
	case profiledomain.WastePlastic:
		valuePerKg = 5
	}

	lower := strings.ToLower(string(t))
	return &WasteAnalysis{
		Type:            t,
		Confidence:      0.85 + rand.Float64()*0.15,
		EstimatedWeight: round2(weight),
		EstimatedValue:  round2(weight * valuePerKg),
		ItemsDetected:   []string{lower + " bottles", lower + " containers"},
		Summary:         "Detected " + lower + " recyclables",
	}
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
