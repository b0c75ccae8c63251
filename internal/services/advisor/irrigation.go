package advisor

import (
	"fmt"

	"github.com/LeonardoBeccarini/farm_advisor/internal/model"
	"github.com/LeonardoBeccarini/farm_advisor/internal/model/entities"
)

type IrrigationPlan struct {
	CropWaterNeed float64 // liters/acre
	FarmSize      float64 // acres
	SoilMoisture  float64 // %
	TotalLiters   float64 // unrounded
	Tier          model.Tier
}

// PlanIrrigation totals the water need and flags soil moisture below 30% as critical.
func PlanIrrigation(cropWaterNeed, farmSize, soilMoisture float64) IrrigationPlan {
	p := IrrigationPlan{
		CropWaterNeed: cropWaterNeed,
		FarmSize:      farmSize,
		SoilMoisture:  soilMoisture,
		TotalLiters:   cropWaterNeed * farmSize,
		Tier:          entities.TierScheduled,
	}
	if soilMoisture < IrrigationCriticalBelow {
		p.Tier = entities.TierCritical
	}
	return p
}

func (p IrrigationPlan) Advisory() Advisory {
	a := Advisory{
		Kind: entities.KindIrrigation,
		Tier: p.Tier,
		Inputs: map[string]float64{
			"crop_water_need": p.CropWaterNeed,
			"farm_size":       p.FarmSize,
			"soil_moisture":   p.SoilMoisture,
			"total_liters":    p.TotalLiters,
		},
	}
	total := fmt.Sprintf("Total Water Needed: %.2f liters", p.TotalLiters)
	if p.Tier == entities.TierCritical {
		a.Severity = entities.SeverityCritical
		a.Lines = []string{total, "CRITICAL: Immediate irrigation required!"}
	} else {
		a.Severity = entities.SeverityInfo
		a.Lines = []string{total, "Irrigation can be scheduled optimally."}
	}
	return a
}
