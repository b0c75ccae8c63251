package advisor

import (
	"fmt"

	"github.com/LeonardoBeccarini/farm_advisor/internal/model/entities"
)

type YieldPrediction struct {
	FarmSize     float64
	SoilQuality  float64
	WeatherScore float64
	Tons         float64 // unrounded
}

// PredictYield estimates tons as farmSize × soilQuality × weatherScore × YieldFactor.
func PredictYield(farmSize, soilQuality, weatherScore float64) YieldPrediction {
	return YieldPrediction{
		FarmSize:     farmSize,
		SoilQuality:  soilQuality,
		WeatherScore: weatherScore,
		Tons:         farmSize * soilQuality * weatherScore * YieldFactor,
	}
}

func (y YieldPrediction) Advisory() Advisory {
	return Advisory{
		Kind:     entities.KindYield,
		Tier:     entities.TierEstimate,
		Severity: entities.SeverityInfo,
		Lines:    []string{fmt.Sprintf("Estimated Crop Yield: %.2f tons", y.Tons)},
		Inputs: map[string]float64{
			"farm_size":     y.FarmSize,
			"soil_quality":  y.SoilQuality,
			"weather_score": y.WeatherScore,
			"yield_tons":    y.Tons,
		},
	}
}
