package repository

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"

	"github.com/HoneyMedusa/recycle-me/internal/profile/domain"
)

// ArchivedSale is the verification-queue row for one listing. The archive is
// the authoritative input to the verification sweep; the profile snapshot
// keeps its own copy of the transaction for rendering.
type ArchivedSale struct {
	ID           string
	UID          string
	MaterialType domain.WasteType
	Weight       float64
	Value        float64
	Status       string
	CreatedAt    time.Time
}

// ArchiveRepository provides persistence operations for the sales archive.
type ArchiveRepository struct {
	db *sql.DB
}

// NewArchiveRepository creates a new sales archive repository
func NewArchiveRepository(db *sql.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

// Insert records a newly credited sale as pending verification.
func (r *ArchiveRepository) Insert(ctx context.Context, s *ArchivedSale) error {
	const q = `
INSERT INTO sales_archive (id, uid, material_type, weight_kg, value, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`
	_, err := r.db.ExecContext(ctx, q, s.ID, s.UID, string(s.MaterialType), s.Weight, s.Value, s.Status, s.CreatedAt)
	return err
}

// ListPendingOlderThan returns pending sales created before the cutoff.
func (r *ArchiveRepository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]ArchivedSale, error) {
	const q = `
SELECT id, uid, material_type, weight_kg, value, status, created_at
FROM sales_archive
WHERE status = $1 AND created_at < $2
ORDER BY created_at ASC;
`
	rows, err := r.db.QueryContext(ctx, q, domain.SalePending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ArchivedSale, 0, 16)
	for rows.Next() {
		var s ArchivedSale
		var material string
		if err := rows.Scan(&s.ID, &s.UID, &material, &s.Weight, &s.Value, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.MaterialType = domain.WasteType(material)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkVerified flips one archived sale to Verified.
func (r *ArchiveRepository) MarkVerified(ctx context.Context, id string) error {
	const q = `
UPDATE sales_archive
SET status = $1
WHERE id = $2;
`
	_, err := r.db.ExecContext(ctx, q, domain.SaleVerified, id)
	return err
}
