package advisor

// Classifier thresholds. Brackets are evaluated top to bottom:
// "below" limits are exclusive, "max" limits of a middle bracket are inclusive.
const (
	HighTemperatureAboveC = 35.0
	LowRainfallBelowMM    = 10.0

	SoilLowBelow    = 20.0
	SoilModerateMax = 50.0

	YieldFactor = 2.5 // tons per acre at perfect soil and weather

	IrrigationCriticalBelow = 30.0 // soil moisture %

	FertilizerLowBelow    = 20.0
	FertilizerModerateMax = 50.0

	MarketLowBelow  = 100.0
	MarketStableMax = 200.0
)
