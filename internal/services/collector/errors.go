package collector

import (
	"errors"
	"fmt"

	"github.com/LeonardoBeccarini/farm_advisor/internal/model"
)

var (
	// ErrInvalidInput matches every rejected operator input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotANumber: the line does not parse as a finite real.
	ErrNotANumber = errors.New("not a number")
	// ErrOutOfRange: the number parses but violates the field constraint.
	ErrOutOfRange = errors.New("out of range")
	// ErrAlreadyAccepted is returned when feeding a session that already holds a value.
	ErrAlreadyAccepted = errors.New("value already accepted")
	// ErrInputClosed ends the session: end of input or an operator interrupt.
	ErrInputClosed = errors.New("input closed")
)

// InvalidInputError describes one rejected line.
type InvalidInputError struct {
	Field  model.FieldKey
	Input  string
	Reason error // ErrNotANumber or ErrOutOfRange
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %q rejected: %v", e.Field, e.Input, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return e.Reason }

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// reasonLabel is the short form used in metrics.
func reasonLabel(err error) string {
	switch {
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrNotANumber):
		return "not_a_number"
	default:
		return "other"
	}
}
