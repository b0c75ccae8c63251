package advisor

import (
	"github.com/LeonardoBeccarini/farm_advisor/internal/model/entities"
)

func AssessFertilizer(level float64) Advisory {
	a := Advisory{
		Kind:   entities.KindFertilizer,
		Inputs: map[string]float64{"fertilizer": level},
	}
	switch {
	case level < FertilizerLowBelow:
		a.Tier, a.Severity = entities.TierLow, entities.SeverityWarning
		a.Lines = []string{"LOW Nutrient Level", "Recommendation: Apply complete fertilizer mix."}
	case level >= FertilizerLowBelow && level <= FertilizerModerateMax:
		a.Tier, a.Severity = entities.TierModerate, entities.SeverityInfo
		a.Lines = []string{"MODERATE Nutrient Level", "Recommendation: Targeted nutrient supplementation."}
	default:
		a.Tier, a.Severity = entities.TierOptimal, entities.SeverityInfo
		a.Lines = []string{"OPTIMAL Nutrient Level", "Current fertilization is sufficient."}
	}
	return a
}
