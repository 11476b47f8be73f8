package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// TranscribeAudio transcribes a base64-encoded PCM recording. Returns an
// empty string when nothing intelligible was heard.
func (c *Client) TranscribeAudio(ctx context.Context, audioB64 string, sampleRate int) (string, error) {
	if c.MockMode() {
		return "Audio transcription not available without API key.", nil
	}

	audio, err := base64.StdEncoding.DecodeString(audioB64)
	if err != nil {
		return "", fmt.Errorf("invalid audio encoding: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(audio, fmt.Sprintf("audio/pcm;rate=%d", sampleRate)),
			genai.NewPartFromText("Transcribe this audio recording precisely. It is a description of an environmental hazard. Return only the spoken text."),
		}, genai.RoleUser),
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}
