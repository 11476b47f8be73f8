package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// QuizQuestion is one multiple-choice trivia question.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
	Explanation string   `json:"explanation"`
}

const quizPrompt = "Generate 5 multiple choice questions about pollution, climate change, and recycling specific to South Africa. Include South African contexts like load shedding impacts on waste, local bird species affected by plastic, or SA waste management laws. Return as JSON array."

// GenerateQuiz returns a fixed-size set of eco trivia questions.
func (c *Client) GenerateQuiz(ctx context.Context) ([]QuizQuestion, error) {
	if c.MockMode() {
		return mockQuizQuestions(), nil
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(quizPrompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"question":    {Type: genai.TypeString},
					"options":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"answerIndex": {Type: genai.TypeNumber},
					"explanation": {Type: genai.TypeString},
				},
				Required: []string{"question", "options", "answerIndex", "explanation"},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var out []QuizQuestion
	if err := json.Unmarshal([]byte(resp.Text()), &out); err != nil {
		return nil, fmt.Errorf("failed to parse quiz response: %w", err)
	}
	return out, nil
}

func mockQuizQuestions() []QuizQuestion {
	return []QuizQuestion{
		{
			Question:    "What percentage of plastic waste in South Africa is recycled?",
			Options:     []string{"Less than 20%", "About 35%", "Over 50%", "Almost 75%"},
			AnswerIndex: 0,
			Explanation: "Only about 14% of plastic waste is recycled in South Africa. Most ends up in landfills or the environment.",
		},
		{
			Question:    "Which material takes the longest to decompose?",
			Options:     []string{"Paper bags", "Glass bottles", "Aluminum cans", "Plastic bottles"},
			AnswerIndex: 1,
			Explanation: "Glass can take up to 1 million years to decompose, making recycling essential!",
		},
		{
			Question:    "What is the main cause of ocean pollution in South Africa?",
			Options:     []string{"Oil spills", "Plastic waste", "Industrial chemicals", "Agricultural runoff"},
			AnswerIndex: 1,
			Explanation: "Plastic waste is the primary contributor to ocean pollution, with much coming from land-based sources.",
		},
		{
			Question:    "How much energy is saved by recycling aluminum compared to making new aluminum?",
			Options:     []string{"25%", "50%", "75%", "95%"},
			AnswerIndex: 3,
			Explanation: "Recycling aluminum saves about 95% of the energy needed to make new aluminum from raw materials!",
		},
		{
			Question:    "What is 'load shedding' in South Africa and how does it affect waste management?",
			Options:     []string{"A weight limit on garbage trucks", "Scheduled power outages affecting recycling facilities", "A method of waste sorting", "A type of composting"},
			AnswerIndex: 1,
			Explanation: "Load shedding refers to scheduled power cuts. It disrupts recycling operations and waste processing facilities.",
		},
	}
}
