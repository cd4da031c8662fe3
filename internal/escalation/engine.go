package escalation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/khareetaty/zone_alerting_system/internal/config"
	"github.com/khareetaty/zone_alerting_system/internal/models"
	"github.com/khareetaty/zone_alerting_system/internal/notify"
	"github.com/sirupsen/logrus"
)

// StateStore guards the per-(zone, tier) escalation state. TryTrigger must be
// atomic (row-level compare-and-swap): when two concurrent cycles race, only
// one may observe Quiet and win the trigger.
type StateStore interface {
	// TryTrigger transitions (zone, tier) to Cooling until cooldownUntil and
	// records alertID as the live alert. It returns false with the live
	// alert's id when the pair is already Cooling; the id is nil when the
	// cool-down was forced by a mute and has no backing alert.
	TryTrigger(ctx context.Context, zoneID int64, tier models.Tier, alertID uuid.UUID, now, cooldownUntil time.Time) (bool, *uuid.UUID, error)
	// ForceCooldown puts (zone, tier) into Cooling regardless of score. Used
	// by the manual mute control.
	ForceCooldown(ctx context.Context, zoneID int64, tier models.Tier, alertID uuid.UUID, until time.Time) error
	// ReleaseTrigger returns (zone, tier) to Quiet if it still holds the
	// given alert's claim. Called when the alert row could not be written.
	ReleaseTrigger(ctx context.Context, zoneID int64, tier models.Tier, alertID uuid.UUID) error
}

// AlertStore persists alerts and their per-channel delivery outcomes.
type AlertStore interface {
	CreateAlert(ctx context.Context, alert *models.Alert) error
	RecordDispatch(ctx context.Context, alertID uuid.UUID, dispatch models.ChannelDispatch) error
}

// Signals carries the triggering inputs for one zone in one run.
type Signals struct {
	// Hotspot is the strongest detected hotspot for the zone, nil if none.
	Hotspot *models.Hotspot
	// Forecast is the zone's active forecast, nil if none.
	Forecast *models.ForecastPoint
	// PriorHeadline is the equivalent headline number from the prior period,
	// used only for the trend direction in the message body.
	PriorHeadline float64
}

// Engine converts hotspot and forecast signals into tiered, deduplicated,
// audited alerts. Per (zone, tier) the state machine is
// Quiet -> Triggered -> Cooling -> Quiet; a trigger during Cooling is
// recorded as a suppressed alert referencing the live one instead of being
// re-dispatched.
type Engine struct {
	states    StateStore
	alerts    AlertStore
	notifiers map[string]notify.Notifier
	cfg       *config.Config
	logger    *logrus.Logger
	now       func() time.Time
}

// NewEngine builds the escalation engine. notifiers maps channel names (as
// used in the tier routing config) to implementations.
func NewEngine(states StateStore, alerts AlertStore, notifiers map[string]notify.Notifier, cfg *config.Config, logger *logrus.Logger) *Engine {
	return &Engine{
		states:    states,
		alerts:    alerts,
		notifiers: notifiers,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Evaluate decides whether the zone's signals cross a tier threshold and, if
// so, fires or suppresses exactly one alert. It returns nil when no
// threshold is crossed.
//
// When both a hotspot and a forecast trigger in the same run, the higher of
// the two tiers wins and the single alert references both signals.
func (e *Engine) Evaluate(ctx context.Context, zone models.Zone, sig Signals) (*models.Alert, error) {
	log := e.logger.WithFields(logrus.Fields{
		"service": "escalation",
		"method":  "Evaluate",
		"zone_id": zone.ID,
	})

	hotspotTier, hotspotScore := e.tierFor(hotspotHeadline(sig.Hotspot))
	forecastTier, forecastCount := e.tierFor(forecastHeadline(sig.Forecast))

	tier := hotspotTier
	headline := hotspotScore
	if forecastTier.Rank() > tier.Rank() {
		tier = forecastTier
		headline = forecastCount
	}
	if tier.Rank() < 0 {
		return nil, nil
	}

	now := e.now()
	alert := &models.Alert{
		ID:        uuid.New(),
		ZoneID:    zone.ID,
		Tier:      tier,
		Message:   buildMessage(zone, tier, headline, sig.PriorHeadline, now),
		CreatedAt: now,
	}
	if sig.Hotspot != nil && hotspotTier.Rank() >= 0 {
		id := sig.Hotspot.ID
		alert.HotspotID = &id
	}
	if sig.Forecast != nil && forecastTier.Rank() >= 0 {
		id := sig.Forecast.ID
		alert.ForecastID = &id
	}

	acquired, liveAlertID, err := e.states.TryTrigger(ctx, zone.ID, tier, alert.ID, now, now.Add(e.cfg.Cooldown))
	if err != nil {
		return nil, fmt.Errorf("escalation: failed to acquire trigger for zone %d tier %s: %w", zone.ID, tier, err)
	}

	if !acquired {
		// Inside the cool-down window: record, never re-dispatch. This is a
		// designed outcome, not an error. liveAlertID is nil when the
		// cool-down came from a manual mute.
		alert.Suppressed = true
		alert.SuppressedDuplicateOf = liveAlertID
		if err := e.alerts.CreateAlert(ctx, alert); err != nil {
			return nil, fmt.Errorf("escalation: failed to record suppressed alert: %w", err)
		}
		log.WithFields(logrus.Fields{"tier": tier, "duplicate_of": liveAlertID}).
			Info("Trigger during cool-down, alert suppressed")
		return alert, nil
	}

	if err := e.alerts.CreateAlert(ctx, alert); err != nil {
		// The state row already claims this alert id; return the pair to
		// Quiet so later suppressions never reference a row that was never
		// written.
		if relErr := e.states.ReleaseTrigger(ctx, zone.ID, tier, alert.ID); relErr != nil {
			log.WithError(relErr).WithField("tier", tier).Error("Failed to release trigger after alert write failure")
		}
		return nil, fmt.Errorf("escalation: failed to record alert: %w", err)
	}
	log.WithFields(logrus.Fields{"tier": tier, "alert_id": alert.ID}).Info("Alert triggered")

	e.dispatch(ctx, zone, alert)
	return alert, nil
}

// dispatch attempts every channel configured for the alert's tier. A failed
// channel is recorded and never blocks the remaining channels; the alert
// stays fired either way.
func (e *Engine) dispatch(ctx context.Context, zone models.Zone, alert *models.Alert) {
	log := e.logger.WithFields(logrus.Fields{
		"service":  "escalation",
		"method":   "dispatch",
		"alert_id": alert.ID,
	})

	msg := notify.Message{
		AlertID:    alert.ID,
		ZoneID:     zone.ID,
		ZoneNameEn: zone.NameEn,
		ZoneNameAr: zone.NameAr,
		Tier:       alert.Tier,
		Body:       alert.Message,
		CreatedAt:  alert.CreatedAt,
	}

	for _, route := range e.cfg.ChannelsByTier[alert.Tier] {
		dispatch := models.ChannelDispatch{
			Channel:      route.Channel,
			Recipient:    route.Recipient,
			DispatchedAt: e.now(),
		}

		notifier, ok := e.notifiers[route.Channel]
		if !ok {
			dispatch.Error = fmt.Sprintf("unknown channel %q", route.Channel)
			log.Warnf("Skipping unknown notification channel %q", route.Channel)
		} else if err := notifier.Send(ctx, route.Recipient, msg); err != nil {
			dispatch.Error = err.Error()
			log.WithError(err).WithField("channel", route.Channel).Error("Channel dispatch failed")
		} else {
			dispatch.Success = true
		}

		alert.Dispatches = append(alert.Dispatches, dispatch)
		if err := e.alerts.RecordDispatch(ctx, alert.ID, dispatch); err != nil {
			log.WithError(err).WithField("channel", route.Channel).Error("Failed to record dispatch outcome")
		}
	}
}

// Mute forces the (zone, tier) pair into Cooling until the given time,
// regardless of any score. It is the explicit manual override transition.
func (e *Engine) Mute(ctx context.Context, zoneID int64, tier models.Tier, until time.Time) error {
	if err := e.states.ForceCooldown(ctx, zoneID, tier, uuid.Nil, until); err != nil {
		return fmt.Errorf("escalation: failed to mute zone %d tier %s: %w", zoneID, tier, err)
	}
	e.logger.WithFields(logrus.Fields{
		"service": "escalation",
		"zone_id": zoneID,
		"tier":    tier,
		"until":   until,
	}).Info("Zone tier muted")
	return nil
}

// tierFor returns the highest tier whose threshold the value crosses, along
// with the value itself. Rank -1 means no threshold crossed.
func (e *Engine) tierFor(value float64) (models.Tier, float64) {
	var best models.Tier
	for _, tier := range models.Tiers() {
		if value >= e.cfg.TierThresholds[tier] {
			best = tier
		}
	}
	return best, value
}

func hotspotHeadline(h *models.Hotspot) float64 {
	if h == nil {
		return 0
	}
	return h.Score
}

func forecastHeadline(f *models.ForecastPoint) float64 {
	if f == nil {
		return 0
	}
	return f.PredictedCount
}
