package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khareetaty/zone_alerting_system/internal/models"
)

// AlertRepository persists the append-only alert audit trail and per-channel
// dispatch outcomes.
type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{db: db}
}

// CreateAlert appends one alert, fired or suppressed.
func (r *AlertRepository) CreateAlert(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (id, zone_id, tier, hotspot_id, forecast_id, message, suppressed, suppressed_duplicate_of, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		alert.ID,
		alert.ZoneID,
		alert.Tier,
		alert.HotspotID,
		alert.ForecastID,
		alert.Message,
		alert.Suppressed,
		alert.SuppressedDuplicateOf,
		alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// RecordDispatch appends one channel delivery outcome for the alert.
func (r *AlertRepository) RecordDispatch(ctx context.Context, alertID uuid.UUID, dispatch models.ChannelDispatch) error {
	query := `
		INSERT INTO alert_dispatches (alert_id, channel, recipient, success, error, dispatched_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query,
		alertID,
		dispatch.Channel,
		dispatch.Recipient,
		dispatch.Success,
		nullableString(dispatch.Error),
		dispatch.DispatchedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record alert dispatch: %w", err)
	}
	return nil
}

// ListAlerts returns alerts newest first with pagination, optionally
// filtered by zone and tier. Dispatch outcomes are attached per alert.
func (r *AlertRepository) ListAlerts(ctx context.Context, zoneID *int64, tier *models.Tier, page, pageSize int) ([]models.Alert, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			zone_id,
			tier,
			hotspot_id,
			forecast_id,
			message,
			suppressed,
			suppressed_duplicate_of,
			created_at
		FROM alerts
		WHERE ($1::bigint IS NULL OR zone_id = $1)
		  AND ($2::text IS NULL OR tier = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.db.Query(ctx, query, zoneID, tier, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]models.Alert, 0)
	for rows.Next() {
		var a models.Alert
		err := rows.Scan(
			&a.ID,
			&a.ZoneID,
			&a.Tier,
			&a.HotspotID,
			&a.ForecastID,
			&a.Message,
			&a.Suppressed,
			&a.SuppressedDuplicateOf,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error alert list iteration: %w", err)
	}

	for i := range alerts {
		dispatches, err := r.listDispatches(ctx, alerts[i].ID)
		if err != nil {
			return nil, err
		}
		alerts[i].Dispatches = dispatches
	}
	return alerts, nil
}

func (r *AlertRepository) listDispatches(ctx context.Context, alertID uuid.UUID) ([]models.ChannelDispatch, error) {
	query := `
		SELECT channel, recipient, success, COALESCE(error, ''), dispatched_at
		FROM alert_dispatches
		WHERE alert_id = $1
		ORDER BY dispatched_at;
	`
	rows, err := r.db.Query(ctx, query, alertID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alert dispatches: %w", err)
	}
	defer rows.Close()

	var dispatches []models.ChannelDispatch
	for rows.Next() {
		var d models.ChannelDispatch
		if err := rows.Scan(&d.Channel, &d.Recipient, &d.Success, &d.Error, &d.DispatchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dispatch row: %w", err)
		}
		dispatches = append(dispatches, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error dispatch list iteration: %w", err)
	}
	return dispatches, nil
}
