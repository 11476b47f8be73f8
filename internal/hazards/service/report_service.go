package service

import (
	"context"
	"log"

	"github.com/HoneyMedusa/recycle-me/internal/ai"
	"github.com/HoneyMedusa/recycle-me/internal/hazards/domain"
	"github.com/HoneyMedusa/recycle-me/internal/hazards/repository"
	profiledomain "github.com/HoneyMedusa/recycle-me/internal/profile/domain"
	profileservice "github.com/HoneyMedusa/recycle-me/internal/profile/service"
	"github.com/HoneyMedusa/recycle-me/internal/utils"
)

// ReportService runs the hazard flow: AI analysis, ticket persistence and
// the ledger credit.
type ReportService struct {
	ai     *ai.Client
	repo   *repository.ReportRepository
	ledger *profileservice.LedgerService
}

// NewReportService creates a new ReportService
func NewReportService(aiClient *ai.Client, repo *repository.ReportRepository, ledger *profileservice.LedgerService) *ReportService {
	return &ReportService{
		ai:     aiClient,
		repo:   repo,
		ledger: ledger,
	}
}

// Submit analyzes the hazard image, queues a municipal ticket and credits
// the reporter. Analysis failure aborts the whole flow; nothing is credited.
func (s *ReportService) Submit(ctx context.Context, uid, imageB64, transcript, location string) (*domain.Report, *profiledomain.UserProfile, error) {
	analysis, err := s.ai.AnalyzeHazardImage(ctx, imageB64, transcript)
	if err != nil {
		return nil, nil, err
	}

	id, err := utils.NewRefID("HZT")
	if err != nil {
		return nil, nil, err
	}

	ref := analysis.ReferenceNumber
	if ref == "" {
		ref, err = utils.NewRefID("HAZ")
		if err != nil {
			return nil, nil, err
		}
	}

	report := &domain.Report{
		ID:                    id,
		UID:                   uid,
		ReferenceNumber:       ref,
		Severity:              analysis.Severity,
		Description:           analysis.Description,
		Location:              location,
		Status:                domain.StatusReported,
		AcknowledgmentMessage: analysis.AcknowledgmentMessage,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, nil, err
	}

	profile, err := s.ledger.HazardReport(ctx, uid)
	if err != nil {
		// Ticket is queued but the credit failed. Surface the error; the
		// municipal flow is unaffected.
		log.Printf("[error] operation=hazard_credit uid=%s error=%v", uid, err)
		return report, nil, err
	}

	return report, profile, nil
}

// ListOwn returns the user's submitted tickets.
func (s *ReportService) ListOwn(ctx context.Context, uid string) ([]domain.Report, error) {
	return s.repo.ListByUID(ctx, uid)
}

// ListOpen returns the municipal work queue.
func (s *ReportService) ListOpen(ctx context.Context) ([]domain.Report, error) {
	return s.repo.ListOpen(ctx)
}

// UpdateStatus advances one ticket (municipal only).
func (s *ReportService) UpdateStatus(ctx context.Context, id, status string) (*domain.Report, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}

// Transcribe converts a voice note into text for the report context.
func (s *ReportService) Transcribe(ctx context.Context, audioB64 string, sampleRate int) (string, error) {
	return s.ai.TranscribeAudio(ctx, audioB64, sampleRate)
}

// Geocode converts coordinates to a display address. Never fails.
func (s *ReportService) Geocode(ctx context.Context, lat, lng float64) ai.Address {
	return s.ai.AddressFromCoords(ctx, lat, lng)
}
