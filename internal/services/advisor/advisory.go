// Package advisor holds the threshold classifiers that turn validated farm
// readings into advisories. Every function here is pure.
package advisor

import (
	"strconv"

	"github.com/LeonardoBeccarini/farm_advisor/internal/model"
)

// Advisory is one classifier result: a tier, its coarse severity and the
// human-readable lines shown to the operator.
type Advisory struct {
	Kind     model.Kind
	Tier     model.Tier
	Severity model.Severity
	Lines    []string
	Inputs   map[string]float64 // readings the classifier used
}

// FormatNumber renders a stored reading with the shortest exact decimal form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
