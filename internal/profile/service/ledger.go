package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/HoneyMedusa/recycle-me/internal/profile/domain"
	"github.com/HoneyMedusa/recycle-me/internal/profile/repository"
	"github.com/HoneyMedusa/recycle-me/internal/utils"
)

// LedgerService owns the user profile aggregate. Every mutation runs under a
// single mutex so read-modify-persist cycles never interleave, and every
// mutation ends with a synchronous write of the snapshot.
type LedgerService struct {
	mu   sync.Mutex
	repo *repository.ProfileRepository
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(repo *repository.ProfileRepository) *LedgerService {
	return &LedgerService{repo: repo}
}

// EnsureProfile returns the existing profile for the user, or creates a
// zeroed one with the full locked badge catalog on first login.
func (s *LedgerService) EnsureProfile(ctx context.Context, uid, name, email, phone string) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.Get(ctx, uid)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	p = domain.NewProfile(uid, name, email, phone)
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns the current profile snapshot.
func (s *LedgerService) Get(ctx context.Context, uid string) (*domain.UserProfile, error) {
	return s.repo.Get(ctx, uid)
}

// RecycleSale credits an accepted recycling listing and returns the updated
// profile along with the created transaction. The caller has already gated
// non-recyclable classifications.
func (s *LedgerService) RecycleSale(ctx context.Context, uid string, value float64, material domain.WasteType, weightKg float64) (*domain.UserProfile, *domain.SaleTransaction, error) {
	id, err := utils.NewRefID("TX")
	if err != nil {
		return nil, nil, err
	}
	sale := domain.SaleTransaction{
		ID:           id,
		Timestamp:    time.Now().UTC(),
		MaterialType: material,
		Weight:       weightKg,
		Value:        value,
	}

	p, err := s.mutate(ctx, uid, func(p *domain.UserProfile) {
		p.ApplyRecycleSale(sale)
	})
	if err != nil {
		return nil, nil, err
	}
	return p, &p.SalesHistory[0], nil
}

// HazardReport credits a submitted hazard report.
func (s *LedgerService) HazardReport(ctx context.Context, uid string) (*domain.UserProfile, error) {
	return s.mutate(ctx, uid, func(p *domain.UserProfile) {
		p.ApplyHazardReport()
	})
}

// GamePoints credits points earned in an arcade game.
func (s *LedgerService) GamePoints(ctx context.Context, uid string, points int) (*domain.UserProfile, error) {
	return s.mutate(ctx, uid, func(p *domain.UserProfile) {
		p.ApplyGamePoints(points)
	})
}

// UpdateFields merges identity fields into the profile.
func (s *LedgerService) UpdateFields(ctx context.Context, uid string, upd domain.ProfileUpdate) (*domain.UserProfile, error) {
	return s.mutate(ctx, uid, func(p *domain.UserProfile) {
		p.ApplyUpdate(upd)
	})
}

// MarkSaleVerified advances one sale from Pending Verification to Verified.
// Called by the verification sweep, never by user-facing flows.
func (s *LedgerService) MarkSaleVerified(ctx context.Context, uid, saleID string) (*domain.UserProfile, error) {
	return s.mutate(ctx, uid, func(p *domain.UserProfile) {
		for i := range p.SalesHistory {
			if p.SalesHistory[i].ID == saleID {
				p.SalesHistory[i].Status = domain.SaleVerified
				return
			}
		}
	})
}

// Reset deletes the profile wholesale (logout).
func (s *LedgerService) Reset(ctx context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Delete(ctx, uid)
}

// Leaderboard returns the top-n users by points.
func (s *LedgerService) Leaderboard(ctx context.Context, n int) ([]repository.LeaderboardEntry, error) {
	return s.repo.Leaderboard(ctx, n)
}

// mutate runs the load-mutate-persist cycle under the ledger mutex.
func (s *LedgerService) mutate(ctx context.Context, uid string, fn func(*domain.UserProfile)) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	fn(p)

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
