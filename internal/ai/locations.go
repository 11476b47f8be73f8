package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// RecyclingCenter is a nearby drop-off location.
type RecyclingCenter struct {
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Distance    string      `json:"distance"`
	Phone       string      `json:"phone"`
	Type        []string    `json:"type"`
	Coordinates Coordinates `json:"coordinates"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FindRecyclingCenters lists drop-off locations near a place name.
func (c *Client) FindRecyclingCenters(ctx context.Context, location string) ([]RecyclingCenter, error) {
	if c.MockMode() {
		return mockRecyclingCenters(), nil
	}

	prompt := fmt.Sprintf("List 4 real recycling drop-off locations near %s, South Africa. Return JSON.", location)

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools:            []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":     {Type: genai.TypeString},
					"address":  {Type: genai.TypeString},
					"phone":    {Type: genai.TypeString},
					"type":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"distance": {Type: genai.TypeString},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("location search failed: %w", err)
	}

	var out []RecyclingCenter
	if err := json.Unmarshal([]byte(resp.Text()), &out); err != nil {
		return nil, fmt.Errorf("failed to parse locations response: %w", err)
	}
	return out, nil
}

func mockRecyclingCenters() []RecyclingCenter {
	return []RecyclingCenter{
		{Name: "GreenCycle Sandton", Address: "123 Rivonia Road, Sandton", Distance: "1.2km", Phone: "011 234 5678", Type: []string{"PLASTIC", "METAL"}, Coordinates: Coordinates{Lat: -26.1076, Lng: 28.0567}},
		{Name: "Eco Waste Solutions", Address: "45 Grayston Drive, Sandton", Distance: "2.4km", Phone: "011 345 6789", Type: []string{"GLASS", "PAPER"}, Coordinates: Coordinates{Lat: -26.1000, Lng: 28.0500}},
		{Name: "Recycle SA Hub", Address: "78 William Nicol Drive", Distance: "3.1km", Phone: "011 456 7890", Type: []string{"ELECTRONIC", "METAL"}, Coordinates: Coordinates{Lat: -26.0900, Lng: 28.0400}},
		{Name: "Green Earth Recyclers", Address: "12 Maude Street, Sandton", Distance: "4.5km", Phone: "011 567 8901", Type: []string{"PLASTIC", "PAPER", "GLASS"}, Coordinates: Coordinates{Lat: -26.0800, Lng: 28.0600}},
	}
}
