package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khareetaty/zone_alerting_system/internal/models"
)

// HotspotRepository persists hotspot detection output. Prior hotspots for a
// zone are marked superseded rather than deleted, preserving history for
// audit.
type HotspotRepository struct {
	db *pgxpool.Pool
}

func NewHotspotRepository(db *pgxpool.Pool) *HotspotRepository {
	return &HotspotRepository{db: db}
}

// ReplaceForZone supersedes the zone's prior hotspots and inserts the new
// set in one transaction.
func (r *HotspotRepository) ReplaceForZone(ctx context.Context, zoneID int64, hotspots []models.Hotspot) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin hotspot replace transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE hotspots SET superseded = TRUE
		WHERE zone_id = $1 AND NOT superseded;
	`, zoneID)
	if err != nil {
		return fmt.Errorf("failed to supersede hotspots for zone %d: %w", zoneID, err)
	}

	for i := range hotspots {
		h := &hotspots[i]
		_, err = tx.Exec(ctx, `
			INSERT INTO hotspots (id, zone_id, centroid, incident_count, score, detected_at, predicted)
			VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7, $8);
		`,
			h.ID,
			h.ZoneID,
			h.CentroidLon,
			h.CentroidLat,
			h.IncidentCount,
			h.Score,
			h.DetectedAt,
			h.Predicted,
		)
		if err != nil {
			return fmt.Errorf("failed to insert hotspot: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit hotspot replace: %w", err)
	}
	return nil
}

// ListActive returns non-superseded hotspots, optionally filtered by zone.
func (r *HotspotRepository) ListActive(ctx context.Context, zoneID *int64) ([]models.Hotspot, error) {
	query := `
		SELECT
			id,
			zone_id,
			ST_Y(centroid::geometry) as centroid_lat,
			ST_X(centroid::geometry) as centroid_lon,
			incident_count,
			score,
			detected_at,
			predicted,
			superseded
		FROM hotspots
		WHERE NOT superseded
		  AND ($1::bigint IS NULL OR zone_id = $1)
		ORDER BY score DESC;
	`
	rows, err := r.db.Query(ctx, query, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active hotspots: %w", err)
	}
	defer rows.Close()

	hotspots := make([]models.Hotspot, 0)
	for rows.Next() {
		var h models.Hotspot
		err := rows.Scan(
			&h.ID,
			&h.ZoneID,
			&h.CentroidLat,
			&h.CentroidLon,
			&h.IncidentCount,
			&h.Score,
			&h.DetectedAt,
			&h.Predicted,
			&h.Superseded,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotspot row: %w", err)
		}
		hotspots = append(hotspots, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error hotspot list iteration: %w", err)
	}
	return hotspots, nil
}
