package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khareetaty/zone_alerting_system/internal/models"
)

// ErrForecastNotFound is returned when a zone has no active forecast.
var ErrForecastNotFound = errors.New("no active forecast for zone")

// ForecastRepository persists forecast output with the same
// supersede-not-delete layout as hotspots.
type ForecastRepository struct {
	db *pgxpool.Pool
}

func NewForecastRepository(db *pgxpool.Pool) *ForecastRepository {
	return &ForecastRepository{db: db}
}

// Replace supersedes the zone's prior forecast and inserts the new one, so
// at most one active forecast exists per zone per horizon.
func (r *ForecastRepository) Replace(ctx context.Context, fc *models.ForecastPoint) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin forecast replace transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE forecasts SET superseded = TRUE
		WHERE zone_id = $1 AND NOT superseded;
	`, fc.ZoneID)
	if err != nil {
		return fmt.Errorf("failed to supersede forecasts for zone %d: %w", fc.ZoneID, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO forecasts (id, zone_id, horizon_start, horizon_end, predicted_count, interval_width, bucket_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`,
		fc.ID,
		fc.ZoneID,
		fc.HorizonStart,
		fc.HorizonEnd,
		fc.PredictedCount,
		fc.IntervalWidth,
		fc.BucketCount,
		fc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert forecast: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit forecast replace: %w", err)
	}
	return nil
}

// GetActive returns the zone's current forecast.
func (r *ForecastRepository) GetActive(ctx context.Context, zoneID int64) (*models.ForecastPoint, error) {
	fc := &models.ForecastPoint{}
	query := `
		SELECT
			id,
			zone_id,
			horizon_start,
			horizon_end,
			predicted_count,
			interval_width,
			bucket_count,
			created_at,
			superseded
		FROM forecasts
		WHERE zone_id = $1 AND NOT superseded
		ORDER BY created_at DESC
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query, zoneID).Scan(
		&fc.ID,
		&fc.ZoneID,
		&fc.HorizonStart,
		&fc.HorizonEnd,
		&fc.PredictedCount,
		&fc.IntervalWidth,
		&fc.BucketCount,
		&fc.CreatedAt,
		&fc.Superseded,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrForecastNotFound
		}
		return nil, fmt.Errorf("failed to get active forecast for zone %d: %w", zoneID, err)
	}
	return fc, nil
}
