package collector

import (
	"github.com/LeonardoBeccarini/farm_advisor/internal/model"
	"github.com/LeonardoBeccarini/farm_advisor/internal/model/entities"
)

// Input validation limits.
const (
	MinTemperature  = -50.0
	MaxTemperature  = 60.0
	MinSoilMoisture = 0.0
	MaxSoilMoisture = 100.0
	MinScore        = 0.0
	MaxScore        = 1.0
	MinFertilizer   = 0.0
	MaxFertilizer   = 100.0
)

// Field couples a farm input with its prompt texts and constraint.
type Field struct {
	Key        model.FieldKey
	Prompt     string // shown before the first attempt
	Retry      string // shown after every rejected attempt
	Constraint Constraint
}

var (
	FarmSize = Field{
		Key:        entities.FieldFarmSize,
		Prompt:     "Enter Farm Size (acres) [Number > 0]: ",
		Retry:      "Invalid input. Please enter a positive number for farm size: ",
		Constraint: Above(0),
	}
	CropType = Field{
		Key:        entities.FieldCropType,
		Prompt:     "Enter Crop Type (e.g., Wheat, Corn): ",
		Constraint: FreeText(),
	}
	Temperature = Field{
		Key:        entities.FieldTemperature,
		Prompt:     "Enter Current Temperature (°C) [Number]: ",
		Retry:      "Invalid input. Please enter a valid temperature (°C): ",
		Constraint: InRange(MinTemperature, MaxTemperature),
	}
	Rainfall = Field{
		Key:        entities.FieldRainfall,
		Prompt:     "Enter Rainfall Amount (mm) [Number >= 0]: ",
		Retry:      "Invalid input. Please enter a valid rainfall amount (mm): ",
		Constraint: AtLeast(0),
	}
	SoilMoisture = Field{
		Key:        entities.FieldSoilMoisture,
		Prompt:     "Enter Soil Moisture Level (%) [0 - 100]: ",
		Retry:      "Invalid input. Please enter a valid soil moisture level (0-100): ",
		Constraint: InRange(MinSoilMoisture, MaxSoilMoisture),
	}
	SoilQuality = Field{
		Key:        entities.FieldSoilQuality,
		Prompt:     "Enter Soil Quality (0-1) [Decimal]: ",
		Retry:      "Invalid input. Please enter a valid soil quality value (0-1): ",
		Constraint: InRange(MinScore, MaxScore),
	}
	WeatherScore = Field{
		Key:        entities.FieldWeatherScore,
		Prompt:     "Enter Weather Suitability Score (0-1) [Decimal]: ",
		Retry:      "Invalid input. Please enter a valid weather score (0-1): ",
		Constraint: InRange(MinScore, MaxScore),
	}
	Fertilizer = Field{
		Key:        entities.FieldFertilizer,
		Prompt:     "Enter Current Fertilizer Level [0 - 100]: ",
		Retry:      "Invalid input. Please enter a valid fertilizer level (0-100): ",
		Constraint: InRange(MinFertilizer, MaxFertilizer),
	}
	CropWaterNeed = Field{
		Key:        entities.FieldCropWaterNeed,
		Prompt:     "Enter Crop's Water Requirement (liters/acre) [Number > 0]: ",
		Retry:      "Invalid input. Please enter a positive number for crop water requirement: ",
		Constraint: Above(0),
	}
	MarketPrice = Field{
		Key:        entities.FieldMarketPrice,
		Prompt:     "Enter Current Market Price (per ton) [Number > 0]: ",
		Retry:      "Invalid input. Please enter a positive market price: ",
		Constraint: Above(0),
	}
)
