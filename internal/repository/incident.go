package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khareetaty/zone_alerting_system/internal/models"
)

// IncidentRepository is the incident store adapter: read access to raw
// incidents and a single mutation attaching resolved zone fields.
type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) *IncidentRepository {
	return &IncidentRepository{db: db}
}

const incidentColumns = `
	id,
	category,
	occurred_at,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	governorate_id,
	district_id,
	block_id,
	police_zone_ids,
	approximate,
	resolved_at
`

// FetchUnresolved returns incidents not yet carrying zone assignments,
// oldest first, bounded by limit.
func (r *IncidentRepository) FetchUnresolved(ctx context.Context, limit int) ([]models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE resolved_at IS NULL
		ORDER BY occurred_at
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unresolved incidents: %w", err)
	}
	defer rows.Close()

	return scanIncidents(rows)
}

// PersistZoneAssignment writes the denormalized zone ids onto the incident.
// This is the incident's only mutation by the pipeline.
func (r *IncidentRepository) PersistZoneAssignment(ctx context.Context, incidentID uuid.UUID, assignment *models.ZoneAssignment) error {
	query := `
		UPDATE incidents SET
			governorate_id = $1,
			district_id = $2,
			block_id = $3,
			police_zone_ids = $4,
			approximate = $5,
			resolved_at = NOW()
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		assignment.GovernorateID,
		assignment.DistrictID,
		assignment.BlockID,
		assignment.PoliceZoneIDs,
		assignment.Approximate,
		incidentID,
	)
	if err != nil {
		return fmt.Errorf("failed to persist zone assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for zone assignment", incidentID)
	}
	return nil
}

// FetchWindow returns the zone's resolved incidents since the given time.
// The zone column is selected by level.
func (r *IncidentRepository) FetchWindow(ctx context.Context, level models.ZoneLevel, zoneID int64, since time.Time) ([]models.Incident, error) {
	var zoneColumn string
	switch level {
	case models.LevelGovernorate:
		zoneColumn = "governorate_id"
	case models.LevelDistrict:
		zoneColumn = "district_id"
	case models.LevelBlock:
		zoneColumn = "block_id"
	default:
		return nil, fmt.Errorf("fetch window: unsupported zone level %q", level)
	}

	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE ` + zoneColumn + ` = $1
		  AND occurred_at >= $2
		  AND resolved_at IS NOT NULL
		ORDER BY occurred_at;
	`
	rows, err := r.db.Query(ctx, query, zoneID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch incident window for zone %d: %w", zoneID, err)
	}
	defer rows.Close()

	return scanIncidents(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanIncidents(rows pgxRows) ([]models.Incident, error) {
	incidents := make([]models.Incident, 0)
	for rows.Next() {
		var inc models.Incident
		err := rows.Scan(
			&inc.ID,
			&inc.Category,
			&inc.OccurredAt,
			&inc.Latitude,
			&inc.Longitude,
			&inc.GovernorateID,
			&inc.DistrictID,
			&inc.BlockID,
			&inc.PoliceZoneIDs,
			&inc.Approximate,
			&inc.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error incident list iteration: %w", err)
	}
	return incidents, nil
}
