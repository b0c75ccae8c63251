package advisor

import (
	"github.com/LeonardoBeccarini/farm_advisor/internal/model/entities"
)

// AssessMarket suggests when to sell; 100 and 200 are both STABLE.
func AssessMarket(price float64) Advisory {
	a := Advisory{
		Kind:   entities.KindMarket,
		Inputs: map[string]float64{"market_price": price},
	}
	switch {
	case price < MarketLowBelow:
		a.Tier, a.Severity = entities.TierLow, entities.SeverityWarning
		a.Lines = []string{"Warning: Low market price. Consider waiting to sell."}
	case price >= MarketLowBelow && price <= MarketStableMax:
		a.Tier, a.Severity = entities.TierStable, entities.SeverityInfo
		a.Lines = []string{"Market price is stable. Good time to sell."}
	default:
		a.Tier, a.Severity = entities.TierHigh, entities.SeverityInfo
		a.Lines = []string{"High market price! It's a great time to sell!"}
	}
	return a
}
