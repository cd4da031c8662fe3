package models

import (
	"time"

	"github.com/google/uuid"
)

// Tier is an escalation severity level with its own threshold and routing.
type Tier string

const (
	TierLow      Tier = "low"
	TierMedium   Tier = "medium"
	TierHigh     Tier = "high"
	TierCritical Tier = "critical"
)

// Tiers returns all tiers in ascending severity order.
func Tiers() []Tier {
	return []Tier{TierLow, TierMedium, TierHigh, TierCritical}
}

// Rank returns the ascending severity rank of the tier, -1 for unknown.
func (t Tier) Rank() int {
	switch t {
	case TierLow:
		return 0
	case TierMedium:
		return 1
	case TierHigh:
		return 2
	case TierCritical:
		return 3
	}
	return -1
}

// ChannelDispatch is the delivery outcome for one notification channel of an
// alert. Recorded for every configured channel, failed or not.
type ChannelDispatch struct {
	Channel      string    `json:"channel"`
	Recipient    string    `json:"recipient"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
	DispatchedAt time.Time `json:"dispatched_at"`
}

// Alert is one escalation decision for a (zone, tier) pair. A suppressed
// alert has no dispatches; SuppressedDuplicateOf points at the live alert it
// was coalesced with, and is nil when the cool-down came from a manual mute
// with no backing alert. Alerts are append-only; only dispatch outcomes are
// written after creation.
type Alert struct {
	ID                    uuid.UUID         `json:"id"`
	ZoneID                int64             `json:"zone_id"`
	Tier                  Tier              `json:"tier"`
	HotspotID             *uuid.UUID        `json:"hotspot_id,omitempty"`
	ForecastID            *uuid.UUID        `json:"forecast_id,omitempty"`
	Message               string            `json:"message"`
	CreatedAt             time.Time         `json:"created_at"`
	Suppressed            bool              `json:"suppressed"`
	SuppressedDuplicateOf *uuid.UUID        `json:"suppressed_duplicate_of,omitempty"`
	Dispatches            []ChannelDispatch `json:"dispatches,omitempty"`
}
