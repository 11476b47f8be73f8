package verifier

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/HoneyMedusa/recycle-me/internal/marketplace/repository"
	profileservice "github.com/HoneyMedusa/recycle-me/internal/profile/service"
)

// Scheduler runs the periodic sale-verification sweep: pending listings old
// enough are flipped to Verified in the archive and in the owner's profile
// snapshot. This is the "external verification process" the ledger itself
// never performs.
type Scheduler struct {
	archive *repository.ArchiveRepository
	ledger  *profileservice.LedgerService
	minAge  time.Duration
}

func NewScheduler(archive *repository.ArchiveRepository, ledger *profileservice.LedgerService, minAge time.Duration) *Scheduler {
	return &Scheduler{
		archive: archive,
		ledger:  ledger,
		minAge:  minAge,
	}
}

// Start initializes the cron task. spec uses the six-field form with seconds.
func (s *Scheduler) Start(spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(spec, func() {
		if err := s.Sweep(context.Background()); err != nil {
			log.Printf("[error] operation=verify_sweep error=%v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Verification sweep scheduled (%s, min age %s)", spec, s.minAge)
	c.Start()
	return c, nil
}

// Sweep verifies every pending sale older than the configured age.
func (s *Scheduler) Sweep(ctx context.Context) error {
	cutoff := time.Now().Add(-s.minAge)

	pending, err := s.archive.ListPendingOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	verified := 0
	for _, sale := range pending {
		if err := s.archive.MarkVerified(ctx, sale.ID); err != nil {
			log.Printf("[warn] operation=verify_sale sale_id=%s error=%v", sale.ID, err)
			continue
		}
		// Snapshot update is best effort: the profile may have been reset
		// since the sale was archived.
		if _, err := s.ledger.MarkSaleVerified(ctx, sale.UID, sale.ID); err != nil {
			log.Printf("[warn] operation=verify_snapshot sale_id=%s uid=%s error=%v", sale.ID, sale.UID, err)
		}
		verified++
	}

	if verified > 0 {
		log.Printf("Verification sweep completed: %d sale(s) verified", verified)
	}
	return nil
}
