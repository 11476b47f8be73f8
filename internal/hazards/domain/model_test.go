package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityValid(t *testing.T) {
	assert.True(t, SeverityLow.Valid())
	assert.True(t, SeverityCritical.Valid())
	assert.False(t, Severity("EXTREME").Valid())
	assert.False(t, Severity("").Valid())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusReported))
	assert.True(t, ValidStatus(StatusAcknowledged))
	assert.True(t, ValidStatus(StatusInProgress))
	assert.True(t, ValidStatus(StatusResolved))
	assert.False(t, ValidStatus("Closed"))
}
