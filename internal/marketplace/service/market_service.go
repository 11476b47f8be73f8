package service

import (
	"context"
	"log"

	"github.com/HoneyMedusa/recycle-me/internal/ai"
	"github.com/HoneyMedusa/recycle-me/internal/marketplace/repository"
	"github.com/HoneyMedusa/recycle-me/internal/profile/domain"
	profileservice "github.com/HoneyMedusa/recycle-me/internal/profile/service"
)

// MarketService handles the scan-and-sell flow: classification, the
// recyclable gate, ledger credit and the verification archive.
type MarketService struct {
	ai      *ai.Client
	ledger  *profileservice.LedgerService
	archive *repository.ArchiveRepository
}

// NewMarketService creates a new MarketService
func NewMarketService(aiClient *ai.Client, ledger *profileservice.LedgerService, archive *repository.ArchiveRepository) *MarketService {
	return &MarketService{
		ai:      aiClient,
		ledger:  ledger,
		archive: archive,
	}
}

// Scan classifies a waste image. No state changes here: the result only
// becomes a sale once the user confirms it.
func (s *MarketService) Scan(ctx context.Context, imageB64 string) (*ai.WasteAnalysis, error) {
	return s.ai.AnalyzeWasteImage(ctx, imageB64)
}

// ConfirmSale credits an accepted listing. Non-recyclable classifications
// are rejected before the ledger is touched.
func (s *MarketService) ConfirmSale(ctx context.Context, uid string, value float64, material domain.WasteType, weightKg float64) (*domain.UserProfile, *domain.SaleTransaction, error) {
	if !material.Recyclable() {
		return nil, nil, domain.ErrNotRecyclable
	}

	profile, sale, err := s.ledger.RecycleSale(ctx, uid, value, material, weightKg)
	if err != nil {
		return nil, nil, err
	}

	// The archive feeds the verification sweep. The ledger credit has
	// already committed, so an archive failure is logged, not returned:
	// the sale then simply stays Pending until it is re-archived.
	if err := s.archive.Insert(ctx, &repository.ArchivedSale{
		ID:           sale.ID,
		UID:          uid,
		MaterialType: sale.MaterialType,
		Weight:       sale.Weight,
		Value:        sale.Value,
		Status:       sale.Status,
		CreatedAt:    sale.Timestamp,
	}); err != nil {
		log.Printf("[warn] operation=archive_sale sale_id=%s error=%v", sale.ID, err)
	}

	return profile, sale, nil
}

// Locations lists recycling drop-off centers near a place name.
func (s *MarketService) Locations(ctx context.Context, place string) ([]ai.RecyclingCenter, error) {
	return s.ai.FindRecyclingCenters(ctx, place)
}
