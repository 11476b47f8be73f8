package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HoneyMedusa/recycle-me/config"
)

func mockClient(t *testing.T) *Client {
	c, err := New(context.Background(), &config.GeminiConfig{})
	require.NoError(t, err)
	require.True(t, c.MockMode())
	return c
}

func TestMockWasteAnalysis(t *testing.T) {
	c := mockClient(t)

	for i := 0; i < 20; i++ {
		a, err := c.AnalyzeWasteImage(context.Background(), "aGVsbG8=")
		require.NoError(t, err)

		assert.True(t, a.Type.Recyclable(), "mock classification must be sellable")
		assert.GreaterOrEqual(t, a.Confidence, 0.85)
		assert.Greater(t, a.EstimatedWeight, 0.0)
		assert.GreaterOrEqual(t, a.EstimatedValue, 0.0)
		assert.NotEmpty(t, a.ItemsDetected)
	}
}

func TestMockHazardAnalysis(t *testing.T) {
	c := mockClient(t)

	h, err := c.AnalyzeHazardImage(context.Background(), "aGVsbG8=", "oil spill near the river")
	require.NoError(t, err)

	assert.True(t, h.Severity.Valid())
	assert.True(t, strings.HasPrefix(h.ReferenceNumber, "HAZ-"))
	assert.NotEmpty(t, h.Description)
	assert.NotEmpty(t, h.AcknowledgmentMessage)
}

func TestGeocodeFallback(t *testing.T) {
	c := mockClient(t)

	addr := c.AddressFromCoords(context.Background(), -26.1076, 28.0567)
	assert.Equal(t, "-26.1076, 28.0567", addr.Address)
	assert.Empty(t, addr.URL)
}

func TestMockQuiz(t *testing.T) {
	c := mockClient(t)

	questions, err := c.GenerateQuiz(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 5)

	for _, q := range questions {
		assert.NotEmpty(t, q.Question)
		require.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.AnswerIndex, 0)
		assert.Less(t, q.AnswerIndex, len(q.Options))
		assert.NotEmpty(t, q.Explanation)
	}
}

func TestMockRecyclingCenters(t *testing.T) {
	c := mockClient(t)

	centers, err := c.FindRecyclingCenters(context.Background(), "Sandton")
	require.NoError(t, err)
	require.Len(t, centers, 4)
	assert.NotEmpty(t, centers[0].Name)
	assert.NotEmpty(t, centers[0].Type)
}
