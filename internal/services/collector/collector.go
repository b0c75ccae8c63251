package collector

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/LeonardoBeccarini/farm_advisor/internal/model"
)

// Recorder receives the outcome of every offered line. *metrics.Metrics satisfies it.
type Recorder interface {
	InputAccepted(field string)
	InputRejected(field, reason string)
}

type nopRecorder struct{}

func (nopRecorder) InputAccepted(string)         {}
func (nopRecorder) InputRejected(string, string) {}

// Collector asks the operator for field values until they conform.
// There is no retry limit: it only returns on a conforming value or when the source closes.
type Collector struct {
	src    LineSource
	rec    Recorder
	logger *zap.Logger
}

func New(src LineSource, rec Recorder, logger *zap.Logger) *Collector {
	if rec == nil {
		rec = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{src: src, rec: rec, logger: logger}
}

// Number collects one numeric field.
func (c *Collector) Number(ctx context.Context, f Field) (float64, error) {
	s, err := c.run(ctx, f)
	if err != nil {
		return 0, err
	}
	return s.Number(), nil
}

// Text collects one free-text field as a full line.
func (c *Collector) Text(ctx context.Context, f Field) (string, error) {
	s, err := c.run(ctx, f)
	if err != nil {
		return "", err
	}
	return s.Text(), nil
}

// Into collects a numeric field and stores it into farm. Nothing is written unless accepted.
func (c *Collector) Into(ctx context.Context, farm *model.FarmState, f Field) (float64, error) {
	x, err := c.Number(ctx, f)
	if err != nil {
		return 0, err
	}
	farm.SetNumber(f.Key, x)
	return x, nil
}

func (c *Collector) run(ctx context.Context, f Field) (*Session, error) {
	s := NewSession(f)
	for s.State() == StateAwaiting {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := c.src.ReadLine(s.Prompt())
		if err != nil {
			return nil, err
		}
		if err := s.Feed(line); err != nil {
			var inv *InvalidInputError
			if errors.As(err, &inv) {
				c.rec.InputRejected(string(f.Key), reasonLabel(inv.Reason))
				c.logger.Debug("collector: rejected",
					zap.String("field", string(f.Key)),
					zap.String("input", inv.Input),
					zap.String("constraint", f.Constraint.String()),
					zap.Int("rejects", s.Rejects()),
					zap.Error(inv.Reason))
				continue
			}
			return nil, err
		}
	}
	c.rec.InputAccepted(string(f.Key))
	c.logger.Debug("collector: accepted", zap.String("field", string(f.Key)), zap.Int("rejects", s.Rejects()))
	return s, nil
}
