package advisor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeonardoBeccarini/farm_advisor/internal/model"
	"github.com/LeonardoBeccarini/farm_advisor/internal/model/entities"
)

func tiers(as []Advisory) []model.Tier {
	out := make([]model.Tier, 0, len(as))
	for _, a := range as {
		out = append(out, a.Tier)
	}
	return out
}

func TestAssessWeather(t *testing.T) {
	tests := []struct {
		name        string
		temperature float64
		rainfall    float64
		want        []model.Tier
	}{
		{"both fire", 36, 5, []model.Tier{entities.TierHighTemperature, entities.TierLowRainfall}},
		{"neither on the boundaries", 35, 10, []model.Tier{}},
		{"heat only", 35.01, 10, []model.Tier{entities.TierHighTemperature}},
		{"dry only", -50, 9.99, []model.Tier{entities.TierLowRainfall}},
		{"zero rain", 20, 0, []model.Tier{entities.TierLowRainfall}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessWeather(tt.temperature, tt.rainfall)
			assert.Equal(t, tt.want, tiers(got))
			for _, a := range got {
				assert.Equal(t, entities.KindWeather, a.Kind)
				assert.Equal(t, entities.SeverityWarning, a.Severity)
			}
		})
	}

	both := AssessWeather(36, 5)
	require.Len(t, both, 2)
	assert.Equal(t, []string{"WARNING: High temperature risk for crops!"}, both[0].Lines)
	assert.Equal(t, []string{"ALERT: Low rainfall, consider irrigation!"}, both[1].Lines)
}

func TestAssessSoil(t *testing.T) {
	tests := []struct {
		moisture float64
		want     model.Tier
	}{
		{0, entities.TierLow},
		{19.9, entities.TierLow},
		{20, entities.TierModerate},
		{35, entities.TierModerate},
		{50, entities.TierModerate},
		{50.1, entities.TierOptimal},
		{100, entities.TierOptimal},
	}
	for _, tt := range tests {
		got := AssessSoil(tt.moisture)
		assert.Equal(t, tt.want, got.Tier, "moisture=%v", tt.moisture)
		assert.Len(t, got.Lines, 2)
	}

	assert.Equal(t, []string{"Soil Moisture: LOW", "Recommendation: Urgent Irrigation Required!"}, AssessSoil(5).Lines)
	assert.Equal(t, entities.SeverityCritical, AssessSoil(5).Severity)
	assert.Equal(t, []string{"Soil Moisture: MODERATE", "Recommendation: Monitor and plan irrigation."}, AssessSoil(20).Lines)
	assert.Equal(t, []string{"Soil Moisture: OPTIMAL", "Soil conditions are good for crop growth."}, AssessSoil(80).Lines)
}

func TestAssessFertilizer(t *testing.T) {
	tests := []struct {
		level float64
		want  model.Tier
		first string
	}{
		{10, entities.TierLow, "LOW Nutrient Level"},
		{19.999, entities.TierLow, "LOW Nutrient Level"},
		{20, entities.TierModerate, "MODERATE Nutrient Level"},
		{50, entities.TierModerate, "MODERATE Nutrient Level"},
		{50.0001, entities.TierOptimal, "OPTIMAL Nutrient Level"},
	}
	for _, tt := range tests {
		got := AssessFertilizer(tt.level)
		assert.Equal(t, tt.want, got.Tier, "level=%v", tt.level)
		assert.Equal(t, tt.first, got.Lines[0])
	}
	assert.Equal(t, "Recommendation: Apply complete fertilizer mix.", AssessFertilizer(0).Lines[1])
	assert.Equal(t, "Recommendation: Targeted nutrient supplementation.", AssessFertilizer(30).Lines[1])
	assert.Equal(t, "Current fertilization is sufficient.", AssessFertilizer(90).Lines[1])
}

func TestAssessMarket(t *testing.T) {
	tests := []struct {
		price float64
		want  model.Tier
		line  string
	}{
		{99.99, entities.TierLow, "Warning: Low market price. Consider waiting to sell."},
		{100, entities.TierStable, "Market price is stable. Good time to sell."},
		{150, entities.TierStable, "Market price is stable. Good time to sell."},
		{200, entities.TierStable, "Market price is stable. Good time to sell."},
		{200.01, entities.TierHigh, "High market price! It's a great time to sell!"},
	}
	for _, tt := range tests {
		got := AssessMarket(tt.price)
		assert.Equal(t, tt.want, got.Tier, "price=%v", tt.price)
		assert.Equal(t, []string{tt.line}, got.Lines)
	}
}

func TestPredictYield(t *testing.T) {
	y := PredictYield(10, 0.8, 0.9)
	assert.InDelta(t, 18.0, y.Tons, 1e-9)

	a := y.Advisory()
	assert.Equal(t, []string{"Estimated Crop Yield: 18.00 tons"}, a.Lines)
	assert.Equal(t, entities.TierEstimate, a.Tier)

	assert.Equal(t, 0.0, PredictYield(10, 0, 1).Tons)
	// no rounding before display
	size, q, w := 1.0, 0.333, 1.0
	assert.Equal(t, size*q*w*2.5, PredictYield(size, q, w).Tons)
	assert.Equal(t, "Estimated Crop Yield: 0.83 tons", PredictYield(1, 0.333, 1).Advisory().Lines[0])
}

func TestPlanIrrigation(t *testing.T) {
	p := PlanIrrigation(500, 4, 29)
	assert.Equal(t, 2000.0, p.TotalLiters)
	assert.Equal(t, entities.TierCritical, p.Tier)
	assert.Equal(t, []string{
		"Total Water Needed: 2000.00 liters",
		"CRITICAL: Immediate irrigation required!",
	}, p.Advisory().Lines)
	assert.Equal(t, entities.SeverityCritical, p.Advisory().Severity)

	p = PlanIrrigation(500, 4, 30)
	assert.Equal(t, entities.TierScheduled, p.Tier)
	assert.Equal(t, []string{
		"Total Water Needed: 2000.00 liters",
		"Irrigation can be scheduled optimally.",
	}, p.Advisory().Lines)

	// farm details never entered: the total is zero, not an error
	assert.Equal(t, "Total Water Needed: 0.00 liters", PlanIrrigation(500, 0, 0).Advisory().Lines[0])
}

func TestReport(t *testing.T) {
	farm := model.FarmState{
		FarmSize:     5,
		CropType:     "Corn",
		SoilMoisture: 25,
		Temperature:  20,
		Rainfall:     3,
		Fertilizer:   10,
		MarketPrice:  150,
	}
	a := Report(farm)
	assert.Equal(t, []string{
		"Farm Size: 5 acres",
		"Crop Type: Corn",
		"Soil Moisture: 25%",
		"Temperature: 20°C",
		"Rainfall: 3 mm",
		"Fertilizer Level: 10",
		"Current Market Price: 150 per ton",
	}, a.Lines)
	assert.Equal(t, a, Report(farm), "report is a pure echo")
}

func TestReportOfEmptyFarm(t *testing.T) {
	a := Report(model.FarmState{})
	assert.Equal(t, "Farm Size: 0 acres", a.Lines[0])
	assert.Equal(t, "Crop Type: ", a.Lines[1])
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "5", FormatNumber(5))
	assert.Equal(t, "12.5", FormatNumber(12.5))
	assert.Equal(t, "-49.75", FormatNumber(-49.75))
	assert.Equal(t, "0.1", FormatNumber(0.1))
	assert.Equal(t, "1234567", FormatNumber(1234567))
}

// Accepted inputs near the float64 limit overflow; the result is printed as is.
func TestOverflowRendersInfinity(t *testing.T) {
	y := PredictYield(1e308, 1, 1)
	assert.True(t, math.IsInf(y.Tons, 1))
	assert.Equal(t, "Estimated Crop Yield: +Inf tons", y.Advisory().Lines[0])

	p := PlanIrrigation(1e308, 10, 50)
	assert.True(t, math.IsInf(p.TotalLiters, 1))
	assert.Equal(t, "Total Water Needed: +Inf liters", p.Advisory().Lines[0])
}
