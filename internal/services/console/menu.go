package console

import (
	"context"

	"github.com/LeonardoBeccarini/farm_advisor/internal/services/advisor"
	"github.com/LeonardoBeccarini/farm_advisor/internal/services/collector"
)

const menuText = "\n===== AGRICULTURAL MONITORING SYSTEM =====\n" +
	"1. Input Farm Details\n" +
	"2. Analyze Weather Conditions\n" +
	"3. Check Soil Health\n" +
	"4. Predict Crop Yield\n" +
	"5. Recommend Irrigation\n" +
	"6. Provide Fertilizer Guidance\n" +
	"7. Analyze Market Prices\n" +
	"8. Generate Farm Report\n" +
	"9. Exit System\n"

const menuPrompt = "Enter your choice: "

type operation func(ctx context.Context, a *App) error

// operations maps menu choices; a nil entry exits.
var operations = map[int]operation{
	1: inputFarmDetails,
	2: analyzeWeather,
	3: checkSoilHealth,
	4: predictYield,
	5: recommendIrrigation,
	6: fertilizerGuidance,
	7: analyzeMarket,
	8: farmReport,
	9: nil,
}

func inputFarmDetails(ctx context.Context, a *App) error {
	a.print("\n----- FARM DETAILS INPUT -----\n")
	if _, err := a.col.Into(ctx, &a.farm, collector.FarmSize); err != nil {
		return err
	}
	crop, err := a.col.Text(ctx, collector.CropType)
	if err != nil {
		return err
	}
	a.farm.CropType = crop
	a.print("Farm details recorded successfully!\n")
	return nil
}

func analyzeWeather(ctx context.Context, a *App) error {
	a.print("\n----- WEATHER ANALYSIS -----\n")
	if _, err := a.col.Into(ctx, &a.farm, collector.Temperature); err != nil {
		return err
	}
	if _, err := a.col.Into(ctx, &a.farm, collector.Rainfall); err != nil {
		return err
	}
	a.print("\nWeather Analysis Report:\n")
	a.printf("Temperature: %s°C\n", advisor.FormatNumber(a.farm.Temperature))
	a.printf("Rainfall: %s mm\n", advisor.FormatNumber(a.farm.Rainfall))
	for _, adv := range advisor.AssessWeather(a.farm.Temperature, a.farm.Rainfall) {
		a.emit(adv)
	}
	return nil
}

func checkSoilHealth(ctx context.Context, a *App) error {
	a.print("\n----- SOIL HEALTH CHECK -----\n")
	if _, err := a.col.Into(ctx, &a.farm, collector.SoilMoisture); err != nil {
		return err
	}
	a.print("\nSoil Health Assessment:\n")
	a.emit(advisor.AssessSoil(a.farm.SoilMoisture))
	return nil
}

// predictYield asks for two scores that are used once and never stored.
func predictYield(ctx context.Context, a *App) error {
	a.print("\n----- CROP YIELD PREDICTION -----\n")
	quality, err := a.col.Number(ctx, collector.SoilQuality)
	if err != nil {
		return err
	}
	score, err := a.col.Number(ctx, collector.WeatherScore)
	if err != nil {
		return err
	}
	a.print("\nYield Prediction:\n")
	a.emit(advisor.PredictYield(a.farm.FarmSize, quality, score).Advisory())
	return nil
}

// recommendIrrigation uses the stored farm size and soil moisture as they are.
func recommendIrrigation(ctx context.Context, a *App) error {
	a.print("\n----- IRRIGATION RECOMMENDATION -----\n")
	if _, err := a.col.Into(ctx, &a.farm, collector.CropWaterNeed); err != nil {
		return err
	}
	a.print("\nIrrigation Plan:\n")
	a.emit(advisor.PlanIrrigation(a.farm.CropWaterNeed, a.farm.FarmSize, a.farm.SoilMoisture).Advisory())
	return nil
}

func fertilizerGuidance(ctx context.Context, a *App) error {
	a.print("\n----- FERTILIZER GUIDANCE -----\n")
	if _, err := a.col.Into(ctx, &a.farm, collector.Fertilizer); err != nil {
		return err
	}
	a.print("\nFertilizer Recommendation:\n")
	a.emit(advisor.AssessFertilizer(a.farm.Fertilizer))
	return nil
}

func analyzeMarket(ctx context.Context, a *App) error {
	a.print("\n----- MARKET PRICE ANALYSIS -----\n")
	if _, err := a.col.Into(ctx, &a.farm, collector.MarketPrice); err != nil {
		return err
	}
	a.print("\nMarket Price Analysis:\n")
	a.emit(advisor.AssessMarket(a.farm.MarketPrice))
	return nil
}

func farmReport(_ context.Context, a *App) error {
	a.print("\n===== COMPREHENSIVE FARM REPORT =====\n")
	a.emit(advisor.Report(a.farm))
	return nil
}
