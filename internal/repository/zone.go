package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khareetaty/zone_alerting_system/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	zoneCatalogCacheKey = "zone_catalog"
	zoneCatalogCacheTTL = time.Hour
)

// ZoneRepository reads the zone catalog. The catalog changes only via
// administrative refresh, so a full snapshot is cached in Redis.
type ZoneRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewZoneRepository(db *pgxpool.Pool, redisClient *redis.Client) *ZoneRepository {
	return &ZoneRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// LoadZones returns every zone of the catalog, cache first.
func (r *ZoneRepository) LoadZones(ctx context.Context) ([]models.Zone, error) {
	if zones, err := r.getCatalogFromCache(ctx); err == nil && zones != nil {
		return zones, nil
	}

	query := `
		SELECT
			id,
			level,
			parent_id,
			name_en,
			name_ar,
			ring,
			covers
		FROM zones
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load zones: %w", err)
	}
	defer rows.Close()

	zones := make([]models.Zone, 0)
	for rows.Next() {
		var z models.Zone
		var ringJSON []byte
		err := rows.Scan(
			&z.ID,
			&z.Level,
			&z.ParentID,
			&z.NameEn,
			&z.NameAr,
			&ringJSON,
			&z.Covers,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		if err := json.Unmarshal(ringJSON, &z.Ring); err != nil {
			return nil, fmt.Errorf("failed to decode ring for zone %d: %w", z.ID, err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error zone list iteration: %w", err)
	}

	r.setCatalogCache(ctx, zones)
	return zones, nil
}

// InvalidateCatalogCache drops the cached snapshot after an administrative
// catalog refresh.
func (r *ZoneRepository) InvalidateCatalogCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, zoneCatalogCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate zone catalog cache: %w", err)
	}
	return nil
}

func (r *ZoneRepository) getCatalogFromCache(ctx context.Context) ([]models.Zone, error) {
	val, err := r.redisClient.Get(ctx, zoneCatalogCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get zone catalog from cache: %w", err)
	}
	var zones []models.Zone
	if err := json.Unmarshal(val, &zones); err != nil {
		return nil, fmt.Errorf("failed to unmarshal zone catalog from cache: %w", err)
	}
	return zones, nil
}

func (r *ZoneRepository) setCatalogCache(ctx context.Context, zones []models.Zone) {
	val, err := json.Marshal(zones)
	if err != nil {
		return
	}
	// Best effort: a cache write failure must not fail the load.
	r.redisClient.Set(ctx, zoneCatalogCacheKey, val, zoneCatalogCacheTTL)
}
