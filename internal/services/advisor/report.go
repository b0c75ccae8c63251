package advisor

import (
	"github.com/LeonardoBeccarini/farm_advisor/internal/model"
	"github.com/LeonardoBeccarini/farm_advisor/internal/model/entities"
)

// Report echoes every stored field; no computation.
func Report(farm model.FarmState) Advisory {
	return Advisory{
		Kind:     entities.KindReport,
		Tier:     entities.TierReport,
		Severity: entities.SeverityInfo,
		Lines: []string{
			"Farm Size: " + FormatNumber(farm.FarmSize) + " acres",
			"Crop Type: " + farm.CropType,
			"Soil Moisture: " + FormatNumber(farm.SoilMoisture) + "%",
			"Temperature: " + FormatNumber(farm.Temperature) + "°C",
			"Rainfall: " + FormatNumber(farm.Rainfall) + " mm",
			"Fertilizer Level: " + FormatNumber(farm.Fertilizer),
			"Current Market Price: " + FormatNumber(farm.MarketPrice) + " per ton",
		},
		Inputs: map[string]float64{
			"farm_size":     farm.FarmSize,
			"soil_moisture": farm.SoilMoisture,
			"temperature":   farm.Temperature,
			"rainfall":      farm.Rainfall,
			"fertilizer":    farm.Fertilizer,
			"market_price":  farm.MarketPrice,
		},
	}
}
