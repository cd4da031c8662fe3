package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khareetaty/zone_alerting_system/internal/models"
)

// EscalationStateRepository holds the per-(zone, tier) cool-down state. The
// trigger path is a single conditional upsert, so two overlapping cycles can
// never both observe Quiet and both fire: the row-level compare-and-swap
// admits exactly one winner.
type EscalationStateRepository struct {
	db *pgxpool.Pool
}

func NewEscalationStateRepository(db *pgxpool.Pool) *EscalationStateRepository {
	return &EscalationStateRepository{db: db}
}

// TryTrigger attempts the Quiet -> Cooling transition. A pair with no row or
// an elapsed cool-down is Quiet. Returns false plus the live alert id when
// the pair is still Cooling; the id is nil when the cool-down was forced by
// a manual mute and has no backing alert.
func (r *EscalationStateRepository) TryTrigger(ctx context.Context, zoneID int64, tier models.Tier, alertID uuid.UUID, now, cooldownUntil time.Time) (bool, *uuid.UUID, error) {
	query := `
		INSERT INTO escalation_states (zone_id, tier, cooldown_until, alert_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (zone_id, tier) DO UPDATE
		SET cooldown_until = $3, alert_id = $4
		WHERE escalation_states.cooldown_until <= $5
		RETURNING alert_id;
	`
	var winner uuid.UUID
	err := r.db.QueryRow(ctx, query, zoneID, tier, cooldownUntil, alertID, now).Scan(&winner)
	if err == nil {
		return true, &winner, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, nil, fmt.Errorf("failed to trigger escalation state for zone %d tier %s: %w", zoneID, tier, err)
	}

	// Lost the CAS: the pair is Cooling. Read the live alert for the
	// suppressed-duplicate-of reference. alert_id is NULL for a mute.
	var liveAlertID *uuid.UUID
	err = r.db.QueryRow(ctx, `
		SELECT alert_id FROM escalation_states
		WHERE zone_id = $1 AND tier = $2;
	`, zoneID, tier).Scan(&liveAlertID)
	if err != nil {
		return false, nil, fmt.Errorf("failed to read live alert for zone %d tier %s: %w", zoneID, tier, err)
	}
	return false, liveAlertID, nil
}

// ReleaseTrigger reverts a won trigger whose alert row was never written,
// returning the pair to Quiet. The alert_id guard confines the release to
// the caller's own claim.
func (r *EscalationStateRepository) ReleaseTrigger(ctx context.Context, zoneID int64, tier models.Tier, alertID uuid.UUID) error {
	query := `
		UPDATE escalation_states
		SET cooldown_until = to_timestamp(0), alert_id = NULL
		WHERE zone_id = $1 AND tier = $2 AND alert_id = $3;
	`
	if _, err := r.db.Exec(ctx, query, zoneID, tier, alertID); err != nil {
		return fmt.Errorf("failed to release trigger for zone %d tier %s: %w", zoneID, tier, err)
	}
	return nil
}

// ForceCooldown unconditionally puts the pair into Cooling until the given
// time. Backs the manual mute control.
func (r *EscalationStateRepository) ForceCooldown(ctx context.Context, zoneID int64, tier models.Tier, alertID uuid.UUID, until time.Time) error {
	query := `
		INSERT INTO escalation_states (zone_id, tier, cooldown_until, alert_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (zone_id, tier) DO UPDATE
		SET cooldown_until = $3, alert_id = $4;
	`
	// A manual mute has no backing alert.
	var aid any
	if alertID != uuid.Nil {
		aid = alertID
	}
	if _, err := r.db.Exec(ctx, query, zoneID, tier, until, aid); err != nil {
		return fmt.Errorf("failed to force cooldown for zone %d tier %s: %w", zoneID, tier, err)
	}
	return nil
}
