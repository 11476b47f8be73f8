package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/HoneyMedusa/recycle-me/internal/hazards/domain"
)

// ReportRepository persists hazard tickets in the municipal review queue.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a new ticket.
func (r *ReportRepository) Create(ctx context.Context, rep *domain.Report) error {
	if rep.UID == "" {
		return fmt.Errorf("uid required")
	}

	const q = `
insert into hazard_reports (id, uid, reference_number, severity, description, location, status, acknowledgment_message)
values ($1, $2, $3, $4, $5, $6, $7, $8)
returning created_at, updated_at;
`
	return r.db.QueryRow(ctx, q,
		rep.ID, rep.UID, rep.ReferenceNumber, string(rep.Severity),
		rep.Description, rep.Location, rep.Status, rep.AcknowledgmentMessage,
	).Scan(&rep.CreatedAt, &rep.UpdatedAt)
}

// ListByUID returns all tickets submitted by one user, newest first.
func (r *ReportRepository) ListByUID(ctx context.Context, uid string) ([]domain.Report, error) {
	const q = `
select id, uid, reference_number, severity, description, location, status, acknowledgment_message, created_at, updated_at
from hazard_reports
where uid = $1
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReports(rows)
}

// ListOpen returns every ticket that has not been resolved, oldest first
// (the municipal work queue).
func (r *ReportRepository) ListOpen(ctx context.Context) ([]domain.Report, error) {
	const q = `
select id, uid, reference_number, severity, description, location, status, acknowledgment_message, created_at, updated_at
from hazard_reports
where status <> $1
order by created_at asc;
`
	rows, err := r.db.Query(ctx, q, domain.StatusResolved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReports(rows)
}

// UpdateStatus advances a ticket through the municipal stages.
func (r *ReportRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Report, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	const q = `
update hazard_reports
set status = $2, updated_at = now()
where id = $1
returning id, uid, reference_number, severity, description, location, status, acknowledgment_message, created_at, updated_at;
`
	rep, err := scanReport(r.db.QueryRow(ctx, q, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}
	return rep, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*domain.Report, error) {
	var rep domain.Report
	var severity string
	err := row.Scan(
		&rep.ID, &rep.UID, &rep.ReferenceNumber, &severity, &rep.Description,
		&rep.Location, &rep.Status, &rep.AcknowledgmentMessage, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rep.Severity = domain.Severity(severity)
	return &rep, nil
}

func scanReports(rows pgx.Rows) ([]domain.Report, error) {
	out := make([]domain.Report, 0, 16)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
