package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/khareetaty/zone_alerting_system/internal/config"
	"github.com/khareetaty/zone_alerting_system/internal/escalation"
	"github.com/khareetaty/zone_alerting_system/internal/forecast"
	"github.com/khareetaty/zone_alerting_system/internal/geo"
	"github.com/khareetaty/zone_alerting_system/internal/hotspot"
	"github.com/khareetaty/zone_alerting_system/internal/metrics"
	"github.com/khareetaty/zone_alerting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrCycleInProgress is returned when another pipeline cycle holds the
// cycle lock.
var ErrCycleInProgress = errors.New("pipeline cycle already in progress")

// IncidentStore is the incident store adapter contract.
type IncidentStore interface {
	FetchUnresolved(ctx context.Context, limit int) ([]models.Incident, error)
	PersistZoneAssignment(ctx context.Context, incidentID uuid.UUID, assignment *models.ZoneAssignment) error
	FetchWindow(ctx context.Context, level models.ZoneLevel, zoneID int64, since time.Time) ([]models.Incident, error)
}

// ResolutionStore appends resolution attempts and reports the rolling
// success rate.
type ResolutionStore interface {
	RecordAttempt(ctx context.Context, attempt *models.ResolutionAttempt) error
	SuccessRate(ctx context.Context, window time.Duration) (float64, int, error)
}

// HotspotStore persists clustering output.
type HotspotStore interface {
	ReplaceForZone(ctx context.Context, zoneID int64, hotspots []models.Hotspot) error
	ListActive(ctx context.Context, zoneID *int64) ([]models.Hotspot, error)
}

// ForecastStore persists forecasting output.
type ForecastStore interface {
	Replace(ctx context.Context, fc *models.ForecastPoint) error
	GetActive(ctx context.Context, zoneID int64) (*models.ForecastPoint, error)
}

// AlertStore reads the alert audit trail for the API surface.
type AlertStore interface {
	ListAlerts(ctx context.Context, zoneID *int64, tier *models.Tier, page, pageSize int) ([]models.Alert, error)
}

// Escalator converts per-zone signals into alerts.
type Escalator interface {
	Evaluate(ctx context.Context, zone models.Zone, sig escalation.Signals) (*models.Alert, error)
	Mute(ctx context.Context, zoneID int64, tier models.Tier, until time.Time) error
}

// CycleLock serializes pipeline cycles across processes.
type CycleLock interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// CycleSummary reports what one pipeline cycle did.
type CycleSummary struct {
	StartedAt        time.Time     `json:"started_at"`
	Duration         time.Duration `json:"duration"`
	IncidentsFetched int           `json:"incidents_fetched"`
	Resolved         int           `json:"resolved"`
	ResolveFailed    int           `json:"resolve_failed"`
	SuccessRate      float64       `json:"success_rate"`
	ZonesProcessed   int           `json:"zones_processed"`
	Hotspots         int           `json:"hotspots"`
	Forecasts        int           `json:"forecasts"`
	ForecastsSkipped int           `json:"forecasts_skipped"`
	AlertsFired      int           `json:"alerts_fired"`
	AlertsSuppressed int           `json:"alerts_suppressed"`
}

// PipelineService is the zone intelligence pipeline entry point plus the
// read operations backing the API surface.
type PipelineService interface {
	RunCycle(ctx context.Context) (*CycleSummary, error)
	ListAlerts(ctx context.Context, zoneID *int64, tier *models.Tier, page, pageSize int) ([]models.Alert, error)
	ListHotspots(ctx context.Context, zoneID *int64) ([]models.Hotspot, error)
	GetForecast(ctx context.Context, zoneID int64) (*models.ForecastPoint, error)
	ListZones(level models.ZoneLevel) []models.Zone
	MuteZoneTier(ctx context.Context, zoneID int64, tier models.Tier) error
	ResolutionStats(ctx context.Context) (float64, int, error)
}

type pipelineService struct {
	catalog     *geo.Catalog
	resolver    *geo.Resolver
	detector    *hotspot.Detector
	forecaster  *forecast.Forecaster
	escalator   Escalator
	incidents   IncidentStore
	resolutions ResolutionStore
	hotspots    HotspotStore
	forecasts   ForecastStore
	alerts      AlertStore
	lock        CycleLock
	cfg         *config.Config
	logger      *logrus.Logger
	now         func() time.Time
}

// NewPipelineService wires the pipeline. The catalog is the read-only
// snapshot shared by all stages; nil is tolerated and makes every cycle fail
// fatally until a catalog is loaded.
func NewPipelineService(
	catalog *geo.Catalog,
	resolver *geo.Resolver,
	detector *hotspot.Detector,
	forecaster *forecast.Forecaster,
	escalator Escalator,
	incidents IncidentStore,
	resolutions ResolutionStore,
	hotspots HotspotStore,
	forecasts ForecastStore,
	alerts AlertStore,
	lock CycleLock,
	cfg *config.Config,
	logger *logrus.Logger,
) PipelineService {
	return &pipelineService{
		catalog:     catalog,
		resolver:    resolver,
		detector:    detector,
		forecaster:  forecaster,
		escalator:   escalator,
		incidents:   incidents,
		resolutions: resolutions,
		hotspots:    hotspots,
		forecasts:   forecasts,
		alerts:      alerts,
		lock:        lock,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// RunCycle executes resolve -> detect -> forecast -> escalate once. It is
// idempotent and safe to invoke concurrently: the cycle lock serializes full
// cycles and the escalation state CAS guards the cool-down invariant even if
// the lock is bypassed. Only a missing zone catalog aborts the cycle;
// per-record and per-zone failures are logged and skipped.
func (s *pipelineService) RunCycle(ctx context.Context) (*CycleSummary, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "pipeline",
		"method":  "RunCycle",
	})

	acquired, err := s.lock.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline: failed to acquire cycle lock: %w", err)
	}
	if !acquired {
		return nil, ErrCycleInProgress
	}
	defer func() {
		if err := s.lock.Release(ctx); err != nil {
			log.WithError(err).Warn("Failed to release cycle lock")
		}
	}()

	if s.catalog == nil || s.catalog.Size() == 0 {
		return nil, fmt.Errorf("pipeline: %w", geo.ErrCatalogUnavailable)
	}

	summary := &CycleSummary{StartedAt: s.now()}
	log.Info("Pipeline cycle started")

	if err := s.resolveStage(ctx, summary); err != nil {
		return nil, err
	}

	signals, err := s.zoneStage(ctx, summary)
	if err != nil {
		return nil, err
	}

	s.escalateStage(ctx, signals, summary)

	summary.Duration = s.now().Sub(summary.StartedAt)
	metrics.CycleDurationSeconds.Observe(summary.Duration.Seconds())
	log.WithFields(logrus.Fields{
		"duration":          summary.Duration.String(),
		"resolved":          summary.Resolved,
		"hotspots":          summary.Hotspots,
		"forecasts":         summary.Forecasts,
		"alerts_fired":      summary.AlertsFired,
		"alerts_suppressed": summary.AlertsSuppressed,
	}).Info("Pipeline cycle completed")
	return summary, nil
}

// resolveStage attaches zone assignments to unresolved incidents.
// Resolution is a pure function of the catalog plus one point, so the batch
// is resolved in parallel under the worker limit.
func (s *pipelineService) resolveStage(ctx context.Context, summary *CycleSummary) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "pipeline",
		"stage":   "resolve",
	})

	incidents, err := s.incidents.FetchUnresolved(ctx, s.cfg.ResolveBatchSize)
	if err != nil {
		return fmt.Errorf("pipeline: failed to fetch unresolved incidents: %w", err)
	}
	summary.IncidentsFetched = len(incidents)

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		sem      = make(chan struct{}, s.cfg.WorkerCount)
		fatalErr error
	)

	for i := range incidents {
		inc := incidents[i]
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			assignment, err := s.resolver.Resolve(inc.Latitude, inc.Longitude)
			attempt := &models.ResolutionAttempt{IncidentID: inc.ID, Resolved: err == nil}

			switch {
			case err == nil:
				if perr := s.incidents.PersistZoneAssignment(ctx, inc.ID, assignment); perr != nil {
					log.WithError(perr).WithField("incident_id", inc.ID).Error("Failed to persist zone assignment")
					attempt.Resolved = false
					attempt.FailureReason = models.FailurePersistFailed
				}
			case errors.Is(err, geo.ErrOutOfBounds):
				attempt.FailureReason = models.FailureOutOfBounds
			case errors.Is(err, geo.ErrNoEnclosingPolygon):
				attempt.FailureReason = models.FailureNoEnclosingPolygon
			case errors.Is(err, geo.ErrCatalogUnavailable):
				attempt.FailureReason = models.FailureCatalogUnavailable
				mu.Lock()
				fatalErr = err
				mu.Unlock()
			}

			if rerr := s.resolutions.RecordAttempt(ctx, attempt); rerr != nil {
				log.WithError(rerr).WithField("incident_id", inc.ID).Error("Failed to record resolution attempt")
			}

			outcome := "resolved"
			if !attempt.Resolved {
				outcome = attempt.FailureReason
			}
			metrics.ResolutionAttemptsTotal.WithLabelValues(outcome).Inc()

			mu.Lock()
			if attempt.Resolved {
				summary.Resolved++
			} else {
				summary.ResolveFailed++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if fatalErr != nil {
		return fmt.Errorf("pipeline: resolution batch aborted: %w", fatalErr)
	}

	rate, total, err := s.resolutions.SuccessRate(ctx, s.cfg.ResolutionWindow)
	if err != nil {
		log.WithError(err).Warn("Failed to compute resolution success rate")
		return nil
	}
	summary.SuccessRate = rate
	metrics.ResolutionSuccessRate.Set(rate)
	if total > 0 && rate < s.cfg.ResolutionSuccessFloor {
		// Operational warning only; the pipeline keeps running.
		log.WithFields(logrus.Fields{
			"success_rate": rate,
			"floor":        s.cfg.ResolutionSuccessFloor,
			"attempts":     total,
		}).Warn("Resolution success rate below configured floor")
	}
	return nil
}

// zoneSignals pairs a zone with its triggering inputs for the escalation
// stage.
type zoneSignals struct {
	zone models.Zone
	sig  escalation.Signals
}

// zoneStage runs detection and forecasting independently per zone across all
// administrative levels, in parallel worker tasks bounded by the configured
// concurrency limit. Zones share nothing mutable beyond the read-only
// catalog. A zone failure never aborts its siblings.
func (s *pipelineService) zoneStage(ctx context.Context, summary *CycleSummary) ([]zoneSignals, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "pipeline",
		"stage":   "zones",
	})

	now := s.now()
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		sem     = make(chan struct{}, s.cfg.WorkerCount)
		signals []zoneSignals
	)

	for _, level := range models.AdminLevels() {
		for _, zone := range s.catalog.ZonesAt(level) {
			zone := zone
			wg.Add(1)
			sem <- struct{}{}
			go func() {
				defer wg.Done()
				defer func() { <-sem }()

				result, ok := s.processZone(ctx, zone, now, log)
				mu.Lock()
				defer mu.Unlock()
				summary.ZonesProcessed++
				if !ok {
					return
				}
				summary.Hotspots += result.hotspotCount
				if result.sig.Forecast != nil {
					summary.Forecasts++
				} else if result.forecastSkipped {
					summary.ForecastsSkipped++
				}
				if result.sig.Hotspot != nil || result.sig.Forecast != nil {
					signals = append(signals, zoneSignals{zone: zone, sig: result.sig})
				}
			}()
		}
	}
	wg.Wait()
	return signals, nil
}

type zoneResult struct {
	sig             escalation.Signals
	hotspotCount    int
	forecastSkipped bool
}

// processZone runs the detector and forecaster for one zone. Failures are
// per-zone: logged, counted, never propagated.
func (s *pipelineService) processZone(ctx context.Context, zone models.Zone, now time.Time, log *logrus.Entry) (zoneResult, bool) {
	var result zoneResult
	zlog := log.WithField("zone_id", zone.ID)

	// Prior headline for the trend line, read before the new run supersedes
	// the last one.
	zoneID := zone.ID
	if prev, err := s.hotspots.ListActive(ctx, &zoneID); err == nil {
		for _, h := range prev {
			if h.Score > result.sig.PriorHeadline {
				result.sig.PriorHeadline = h.Score
			}
		}
	}

	window, err := s.incidents.FetchWindow(ctx, zone.Level, zone.ID, now.Add(-s.cfg.ClusterWindow))
	if err != nil {
		zlog.WithError(err).Error("Failed to fetch incident window, skipping zone")
		return result, false
	}

	detected := s.detector.Detect(zone, window, now)
	if err := s.hotspots.ReplaceForZone(ctx, zone.ID, detected); err != nil {
		zlog.WithError(err).Error("Failed to persist hotspots")
	} else {
		result.hotspotCount = len(detected)
		metrics.HotspotsDetectedTotal.Add(float64(len(detected)))
		for i := range detected {
			if result.sig.Hotspot == nil || detected[i].Score > result.sig.Hotspot.Score {
				result.sig.Hotspot = &detected[i]
			}
		}
	}

	history, err := s.incidents.FetchWindow(ctx, zone.Level, zone.ID, now.Add(-s.cfg.HistoryWindow))
	if err != nil {
		zlog.WithError(err).Error("Failed to fetch forecast history")
		return result, true
	}
	series := forecast.BucketHourly(history, now.Add(-s.cfg.HistoryWindow), now)
	fc, err := s.forecaster.Forecast(zone.ID, series, now, s.cfg.ForecastHorizon)
	if err != nil {
		if errors.Is(err, forecast.ErrInsufficientHistory) {
			result.forecastSkipped = true
			metrics.ForecastsSkippedTotal.Inc()
			zlog.Debug("Insufficient history, forecast skipped")
		} else {
			zlog.WithError(err).Error("Failed to forecast zone")
		}
		return result, true
	}
	if err := s.forecasts.Replace(ctx, fc); err != nil {
		zlog.WithError(err).Error("Failed to persist forecast")
		return result, true
	}
	result.sig.Forecast = fc
	return result, true
}

// escalateStage evaluates every zone that produced a signal. Escalation is
// sequential: the zone count with signals is small and the per-(zone, tier)
// CAS keeps it correct either way.
func (s *pipelineService) escalateStage(ctx context.Context, signals []zoneSignals, summary *CycleSummary) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "pipeline",
		"stage":   "escalate",
	})

	for _, zs := range signals {
		alert, err := s.escalator.Evaluate(ctx, zs.zone, zs.sig)
		if err != nil {
			log.WithError(err).WithField("zone_id", zs.zone.ID).Error("Escalation failed for zone")
			continue
		}
		if alert == nil {
			continue
		}
		if alert.Suppressed {
			summary.AlertsSuppressed++
			metrics.AlertsSuppressedTotal.WithLabelValues(string(alert.Tier)).Inc()
		} else {
			summary.AlertsFired++
			metrics.AlertsFiredTotal.WithLabelValues(string(alert.Tier)).Inc()
			for _, d := range alert.Dispatches {
				if !d.Success {
					metrics.DispatchFailuresTotal.WithLabelValues(d.Channel).Inc()
				}
			}
		}
	}
}

// ListAlerts returns the audit trail page.
func (s *pipelineService) ListAlerts(ctx context.Context, zoneID *int64, tier *models.Tier, page, pageSize int) ([]models.Alert, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	alerts, err := s.alerts.ListAlerts(ctx, zoneID, tier, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}

// ListHotspots returns active hotspots, optionally for one zone.
func (s *pipelineService) ListHotspots(ctx context.Context, zoneID *int64) ([]models.Hotspot, error) {
	hotspots, err := s.hotspots.ListActive(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list hotspots: %w", err)
	}
	return hotspots, nil
}

// GetForecast returns the zone's active forecast.
func (s *pipelineService) GetForecast(ctx context.Context, zoneID int64) (*models.ForecastPoint, error) {
	fc, err := s.forecasts.GetActive(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get forecast: %w", err)
	}
	return fc, nil
}

// ListZones returns catalog zones at a level.
func (s *pipelineService) ListZones(level models.ZoneLevel) []models.Zone {
	if s.catalog == nil {
		return nil
	}
	return s.catalog.ZonesAt(level)
}

// MuteZoneTier forces the pair into Cooling for one cool-down window.
func (s *pipelineService) MuteZoneTier(ctx context.Context, zoneID int64, tier models.Tier) error {
	if _, ok := s.catalog.Zone(zoneID); !ok {
		return fmt.Errorf("service: zone %d not in catalog", zoneID)
	}
	if err := s.escalator.Mute(ctx, zoneID, tier, s.now().Add(s.cfg.Cooldown)); err != nil {
		return fmt.Errorf("service: could not mute zone: %w", err)
	}
	return nil
}

// ResolutionStats returns the rolling success rate and attempt count.
func (s *pipelineService) ResolutionStats(ctx context.Context) (float64, int, error) {
	rate, total, err := s.resolutions.SuccessRate(ctx, s.cfg.ResolutionWindow)
	if err != nil {
		return 0, 0, fmt.Errorf("service: could not get resolution stats: %w", err)
	}
	return rate, total, nil
}
