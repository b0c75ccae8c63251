package advisor

import (
	"github.com/LeonardoBeccarini/farm_advisor/internal/model/entities"
)

const (
	msgHighTemperature = "WARNING: High temperature risk for crops!"
	msgLowRainfall     = "ALERT: Low rainfall, consider irrigation!"
)

// AssessWeather returns zero, one or two warnings; the two checks are independent.
func AssessWeather(temperature, rainfall float64) []Advisory {
	inputs := map[string]float64{"temperature": temperature, "rainfall": rainfall}
	var out []Advisory
	if temperature > HighTemperatureAboveC {
		out = append(out, Advisory{
			Kind:     entities.KindWeather,
			Tier:     entities.TierHighTemperature,
			Severity: entities.SeverityWarning,
			Lines:    []string{msgHighTemperature},
			Inputs:   inputs,
		})
	}
	if rainfall < LowRainfallBelowMM {
		out = append(out, Advisory{
			Kind:     entities.KindWeather,
			Tier:     entities.TierLowRainfall,
			Severity: entities.SeverityWarning,
			Lines:    []string{msgLowRainfall},
			Inputs:   inputs,
		})
	}
	return out
}
