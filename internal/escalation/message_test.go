package escalation

import (
	"testing"
	"time"

	"github.com/khareetaty/zone_alerting_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTrendDirection(t *testing.T) {
	cases := []struct {
		name           string
		current, prior float64
		want           string
	}{
		{"first activity", 6, 0, "new activity"},
		{"clear rise", 10, 6, "rising"},
		{"clear fall", 3, 6, "falling"},
		{"exactly equal", 6, 6, "steady"},
		{"inside the band up", 6.2, 6, "steady"},
		{"inside the band down", 5.8, 6, "steady"},
		{"both quiet", 0, 0, "steady"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, trendDirection(tc.current, tc.prior))
		})
	}
}

func TestBuildMessage(t *testing.T) {
	zone := models.Zone{ID: 10, NameEn: "Sharq", NameAr: "شرق"}
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	msg := buildMessage(zone, models.TierHigh, 12.5, 6.0, now)

	assert.Equal(t, "[high] Sharq (شرق): incident activity rising, headline 12.5 (prior period 6.0) as of 2026-08-30T12:00:00Z", msg)
}
