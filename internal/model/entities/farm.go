package entities

// FarmState is the single record of farm readings for one run.
// Every field starts at its zero value and is only overwritten with
// a value that already passed input validation.
type FarmState struct {
	FarmSize      float64 `json:"farm_size"`       // acres, > 0
	CropType      string  `json:"crop_type"`       // e.g. "Corn", "Wheat"; may be empty
	SoilMoisture  float64 `json:"soil_moisture"`   // %, [0..100]
	Temperature   float64 `json:"temperature"`     // °C, [-50..60]
	Rainfall      float64 `json:"rainfall"`        // mm, >= 0
	Fertilizer    float64 `json:"fertilizer"`      // level, [0..100]
	CropWaterNeed float64 `json:"crop_water_need"` // liters/acre, > 0
	MarketPrice   float64 `json:"market_price"`    // per ton, > 0
}

// FieldKey names one input the operator can be asked for.
type FieldKey string

const (
	FieldFarmSize      FieldKey = "farm_size"
	FieldCropType      FieldKey = "crop_type"
	FieldSoilMoisture  FieldKey = "soil_moisture"
	FieldTemperature   FieldKey = "temperature"
	FieldRainfall      FieldKey = "rainfall"
	FieldFertilizer    FieldKey = "fertilizer"
	FieldCropWaterNeed FieldKey = "crop_water_need"
	FieldMarketPrice   FieldKey = "market_price"

	// ephemeral, read for the yield prediction only
	FieldSoilQuality  FieldKey = "soil_quality"
	FieldWeatherScore FieldKey = "weather_score"
)

// SetNumber stores an accepted numeric reading into the matching field.
// It reports false for text and ephemeral keys, which are never stored.
func (f *FarmState) SetNumber(key FieldKey, v float64) bool {
	switch key {
	case FieldFarmSize:
		f.FarmSize = v
	case FieldSoilMoisture:
		f.SoilMoisture = v
	case FieldTemperature:
		f.Temperature = v
	case FieldRainfall:
		f.Rainfall = v
	case FieldFertilizer:
		f.Fertilizer = v
	case FieldCropWaterNeed:
		f.CropWaterNeed = v
	case FieldMarketPrice:
		f.MarketPrice = v
	default:
		return false
	}
	return true
}
