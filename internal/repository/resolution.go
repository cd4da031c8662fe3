package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khareetaty/zone_alerting_system/internal/models"
)

// ResolutionRepository appends resolution attempt records and computes the
// rolling success rate used for the operational warning.
type ResolutionRepository struct {
	db *pgxpool.Pool
}

func NewResolutionRepository(db *pgxpool.Pool) *ResolutionRepository {
	return &ResolutionRepository{db: db}
}

// RecordAttempt appends one attempt. The log is append-only.
func (r *ResolutionRepository) RecordAttempt(ctx context.Context, attempt *models.ResolutionAttempt) error {
	query := `
		INSERT INTO resolution_attempts (incident_id, resolved, failure_reason)
		VALUES ($1, $2, $3) RETURNING id, attempted_at;
	`
	err := r.db.QueryRow(ctx, query,
		attempt.IncidentID,
		attempt.Resolved,
		nullableString(attempt.FailureReason),
	).Scan(&attempt.ID, &attempt.AttemptedAt)
	if err != nil {
		return fmt.Errorf("failed to record resolution attempt: %w", err)
	}
	return nil
}

// SuccessRate returns the fraction of resolved attempts over the trailing
// window along with the total attempt count. A window with no attempts
// reports a rate of 1.0 so an idle system never trips the floor.
func (r *ResolutionRepository) SuccessRate(ctx context.Context, window time.Duration) (float64, int, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE resolved),
			COUNT(*)
		FROM resolution_attempts
		WHERE attempted_at >= NOW() - $1::interval;
	`
	var resolved, total int
	err := r.db.QueryRow(ctx, query, window).Scan(&resolved, &total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 1.0, 0, nil
		}
		return 0, 0, fmt.Errorf("failed to compute resolution success rate: %w", err)
	}
	if total == 0 {
		return 1.0, 0, nil
	}
	return float64(resolved) / float64(total), total, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
