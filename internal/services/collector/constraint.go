package collector

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bound says how a constraint edge is applied.
type Bound int

const (
	Unbounded Bound = iota
	Inclusive
	Exclusive
)

// Constraint is the validation rule of one input field.
type Constraint struct {
	Text     bool // free text, no parsing
	Min, Max float64
	MinBound Bound
	MaxBound Bound
}

// InRange accepts lo <= x <= hi.
func InRange(lo, hi float64) Constraint {
	return Constraint{Min: lo, Max: hi, MinBound: Inclusive, MaxBound: Inclusive}
}

// AtLeast accepts x >= lo.
func AtLeast(lo float64) Constraint {
	return Constraint{Min: lo, MinBound: Inclusive}
}

// Above accepts x > lo.
func Above(lo float64) Constraint {
	return Constraint{Min: lo, MinBound: Exclusive}
}

// FreeText accepts any line, including an empty one.
func FreeText() Constraint {
	return Constraint{Text: true}
}

// Allows reports whether x satisfies the numeric constraint. NaN never does.
func (c Constraint) Allows(x float64) bool {
	if math.IsNaN(x) {
		return false
	}
	switch c.MinBound {
	case Inclusive:
		if x < c.Min {
			return false
		}
	case Exclusive:
		if x <= c.Min {
			return false
		}
	}
	switch c.MaxBound {
	case Inclusive:
		if x > c.Max {
			return false
		}
	case Exclusive:
		if x >= c.Max {
			return false
		}
	}
	return true
}

// Parse turns a raw line into a conforming number.
func (c Constraint) Parse(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, ErrNotANumber
	}
	if !c.Allows(x) {
		return 0, ErrOutOfRange
	}
	return x, nil
}

func (c Constraint) String() string {
	if c.Text {
		return "text"
	}
	lo := ""
	switch c.MinBound {
	case Inclusive:
		lo = fmt.Sprintf("[%g", c.Min)
	case Exclusive:
		lo = fmt.Sprintf("(%g", c.Min)
	default:
		lo = "(-inf"
	}
	hi := ""
	switch c.MaxBound {
	case Inclusive:
		hi = fmt.Sprintf("%g]", c.Max)
	case Exclusive:
		hi = fmt.Sprintf("%g)", c.Max)
	default:
		hi = "+inf)"
	}
	return lo + ", " + hi
}
