package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/khareetaty/zone_alerting_system/internal/models"
)

// Message is the channel-agnostic payload of one alert notification.
type Message struct {
	AlertID    uuid.UUID   `json:"alert_id"`
	ZoneID     int64       `json:"zone_id"`
	ZoneNameEn string      `json:"zone_name_en"`
	ZoneNameAr string      `json:"zone_name_ar"`
	Tier       models.Tier `json:"tier"`
	Body       string      `json:"body"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Notifier accepts a recipient and a message and reports success or failure.
// The escalation engine is channel-agnostic; any number of implementations
// may be configured per tier.
type Notifier interface {
	Name() string
	Send(ctx context.Context, recipient string, msg Message) error
}
