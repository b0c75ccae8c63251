// Package console runs the operator menu: it collects farm readings, calls the
// classifiers and prints their advisories.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/LeonardoBeccarini/farm_advisor/internal/model"
	"github.com/LeonardoBeccarini/farm_advisor/internal/services/advisor"
	"github.com/LeonardoBeccarini/farm_advisor/internal/services/collector"
)

// Sink receives every advisory shown to the operator.
type Sink interface {
	PublishAdvisory(ev model.AdvisoryEvent) error
}

// Recorder counts menu activity. *metrics.Metrics satisfies it together with collector.Recorder.
type Recorder interface {
	collector.Recorder
	AdvisoryRendered(kind, tier string)
	MenuChoice(choice string)
}

type nopSink struct{}

func (nopSink) PublishAdvisory(model.AdvisoryEvent) error { return nil }

type nopRecorder struct{}

func (nopRecorder) InputAccepted(string)            {}
func (nopRecorder) InputRejected(string, string)    {}
func (nopRecorder) AdvisoryRendered(string, string) {}
func (nopRecorder) MenuChoice(string)               {}

type Options struct {
	Sink     Sink
	Recorder Recorder
	Logger   *zap.Logger
	RunID    string           // generated when empty
	Now      func() time.Time // event timestamps, defaults to time.Now
}

// App owns the farm state of one run.
type App struct {
	farm   model.FarmState
	src    collector.LineSource
	col    *collector.Collector
	out    io.Writer
	sink   Sink
	rec    Recorder
	logger *zap.Logger
	runID  string
	now    func() time.Time
}

func New(src collector.LineSource, out io.Writer, opts Options) *App {
	a := &App{
		src:    src,
		out:    out,
		sink:   opts.Sink,
		rec:    opts.Recorder,
		logger: opts.Logger,
		runID:  opts.RunID,
		now:    opts.Now,
	}
	if a.sink == nil {
		a.sink = nopSink{}
	}
	if a.rec == nil {
		a.rec = nopRecorder{}
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	if a.runID == "" {
		a.runID = uuid.NewString()
	}
	if a.now == nil {
		a.now = time.Now
	}
	a.col = collector.New(src, a.rec, a.logger.Named("collector"))
	return a
}

// Farm returns a copy of the current state.
func (a *App) Farm() model.FarmState { return a.farm }

func (a *App) RunID() string { return a.runID }

// Run shows the menu until the operator exits. It returns nil on exit and
// collector.ErrInputClosed when input ends first.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("console: started", zap.String("run_id", a.runID))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.print(menuText)
		line, err := a.src.ReadLine(menuPrompt)
		if err != nil {
			return err
		}
		choice, _ := strconv.Atoi(strings.TrimSpace(line))
		op, ok := operations[choice]
		if !ok {
			a.rec.MenuChoice("invalid")
			a.logger.Debug("console: invalid choice", zap.String("input", line))
			a.print("Invalid choice. Please try again.\n")
		} else {
			a.rec.MenuChoice(strconv.Itoa(choice))
			if op == nil {
				a.print("Exiting Agricultural Monitoring System.\n")
				a.logger.Info("console: exit requested", zap.String("run_id", a.runID))
				return nil
			}
			if err := op(ctx, a); err != nil {
				return err
			}
		}
		a.print("\nPress Enter to continue...\n")
		if _, err := a.src.ReadLine(""); err != nil {
			return err
		}
	}
}

// Exited reports whether err from Run is a normal end of session.
func Exited(err error) bool {
	return err == nil || errors.Is(err, collector.ErrInputClosed)
}

func (a *App) print(s string) {
	if _, err := io.WriteString(a.out, s); err != nil {
		a.logger.Warn("console: write failed", zap.Error(err))
	}
}

func (a *App) printf(format string, args ...any) {
	a.print(fmt.Sprintf(format, args...))
}

// emit prints the advisory lines and forwards the advisory to the sink.
// Sink failures are logged and never reach the operator.
func (a *App) emit(adv advisor.Advisory) {
	for _, l := range adv.Lines {
		a.print(l + "\n")
	}
	a.rec.AdvisoryRendered(string(adv.Kind), string(adv.Tier))
	ev := model.AdvisoryEvent{
		RunID:     a.runID,
		Kind:      string(adv.Kind),
		Tier:      string(adv.Tier),
		Severity:  string(adv.Severity),
		Message:   adv.Lines,
		Inputs:    adv.Inputs,
		CropType:  a.farm.CropType,
		Timestamp: a.now().UTC(),
	}
	if err := a.sink.PublishAdvisory(ev); err != nil {
		a.logger.Warn("console: advisory not forwarded",
			zap.String("kind", ev.Kind), zap.String("tier", ev.Tier), zap.Error(err))
	}
}
