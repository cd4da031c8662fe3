package escalation

import (
	"fmt"
	"time"

	"github.com/khareetaty/zone_alerting_system/internal/models"
)

// trendDirection compares the current headline number against the prior
// period's. The 5% band avoids flapping between rising and falling on noise.
func trendDirection(current, prior float64) string {
	switch {
	case prior <= 0 && current > 0:
		return "new activity"
	case current > prior*1.05:
		return "rising"
	case current < prior*0.95:
		return "falling"
	default:
		return "steady"
	}
}

// buildMessage renders the human-readable alert body: zone name (both
// languages), trend versus the prior period, headline number, timestamp.
func buildMessage(zone models.Zone, tier models.Tier, headline, prior float64, now time.Time) string {
	return fmt.Sprintf("[%s] %s (%s): incident activity %s, headline %.1f (prior period %.1f) as of %s",
		tier,
		zone.NameEn,
		zone.NameAr,
		trendDirection(headline, prior),
		headline,
		prior,
		now.UTC().Format(time.RFC3339),
	)
}
