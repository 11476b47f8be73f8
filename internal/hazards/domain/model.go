package domain

import "time"

// Severity is the hazard severity category assigned by the analysis service.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Valid reports whether the severity is one of the known categories.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Ticket statuses, advanced by the municipal review endpoints.
const (
	StatusReported     = "Reported"
	StatusAcknowledged = "Acknowledged"
	StatusInProgress   = "In Progress"
	StatusResolved     = "Resolved"
)

// Report is a hazard ticket queued for municipal review.
type Report struct {
	ID                    string    `json:"id"`
	UID                   string    `json:"uid"`
	ReferenceNumber       string    `json:"reference_number"`
	Severity              Severity  `json:"severity"`
	Description           string    `json:"description"`
	Location              string    `json:"location"`
	Status                string    `json:"status"`
	AcknowledgmentMessage string    `json:"acknowledgment_message,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ValidStatus reports whether a ticket status is one of the known stages.
func ValidStatus(status string) bool {
	return status == StatusReported ||
		status == StatusAcknowledged ||
		status == StatusInProgress ||
		status == StatusResolved
}
