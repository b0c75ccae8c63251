package messages

import "time"

// AdvisoryEvent is published on the advisory bus for every advisory shown to the operator.
type AdvisoryEvent struct {
	RunID     string             `json:"run_id"`
	Kind      string             `json:"kind"`     // weather | soil | yield | irrigation | fertilizer | market | report
	Tier      string             `json:"tier"`     // LOW | MODERATE | OPTIMAL | CRITICAL | ...
	Severity  string             `json:"severity"` // info | warning | critical
	Message   []string           `json:"message"`
	Inputs    map[string]float64 `json:"inputs,omitempty"`
	CropType  string             `json:"crop_type,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}
