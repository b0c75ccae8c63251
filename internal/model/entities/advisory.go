package entities

// Kind identifies which classifier produced an advisory.
type Kind string

const (
	KindWeather    Kind = "weather"
	KindSoil       Kind = "soil"
	KindYield      Kind = "yield"
	KindIrrigation Kind = "irrigation"
	KindFertilizer Kind = "fertilizer"
	KindMarket     Kind = "market"
	KindReport     Kind = "report"
)

// Tier is the named band a classifier assigns to a reading.
type Tier string

const (
	TierLow             Tier = "LOW"
	TierModerate        Tier = "MODERATE"
	TierOptimal         Tier = "OPTIMAL"
	TierCritical        Tier = "CRITICAL"
	TierScheduled       Tier = "SCHEDULED"
	TierStable          Tier = "STABLE"
	TierHigh            Tier = "HIGH"
	TierHighTemperature Tier = "HIGH_TEMPERATURE"
	TierLowRainfall     Tier = "LOW_RAINFALL"
	TierEstimate        Tier = "ESTIMATE"
	TierReport          Tier = "REPORT"
)

// Severity is the coarse category attached to every advisory.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)
