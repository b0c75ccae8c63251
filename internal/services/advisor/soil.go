package advisor

import (
	"github.com/LeonardoBeccarini/farm_advisor/internal/model/entities"
)

// AssessSoil maps soil moisture (%) to exactly one tier.
// Both 20 and 50 fall in MODERATE.
func AssessSoil(moisture float64) Advisory {
	a := Advisory{
		Kind:   entities.KindSoil,
		Inputs: map[string]float64{"soil_moisture": moisture},
	}
	switch {
	case moisture < SoilLowBelow:
		a.Tier, a.Severity = entities.TierLow, entities.SeverityCritical
		a.Lines = []string{"Soil Moisture: LOW", "Recommendation: Urgent Irrigation Required!"}
	case moisture >= SoilLowBelow && moisture <= SoilModerateMax:
		a.Tier, a.Severity = entities.TierModerate, entities.SeverityInfo
		a.Lines = []string{"Soil Moisture: MODERATE", "Recommendation: Monitor and plan irrigation."}
	default:
		a.Tier, a.Severity = entities.TierOptimal, entities.SeverityInfo
		a.Lines = []string{"Soil Moisture: OPTIMAL", "Soil conditions are good for crop growth."}
	}
	return a
}
