package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LeonardoBeccarini/farm_advisor/internal/services/collector"
	"github.com/LeonardoBeccarini/farm_advisor/internal/services/console"
	"github.com/LeonardoBeccarini/farm_advisor/pkg/dedup"
	"github.com/LeonardoBeccarini/farm_advisor/pkg/logging"
	"github.com/LeonardoBeccarini/farm_advisor/pkg/metrics"
	"github.com/LeonardoBeccarini/farm_advisor/pkg/rabbitmq"
)

const (
	exitOK    = 0
	exitError = 1
)

func execute(args []string, in io.Reader, out, errOut io.Writer) int {
	root := newRootCmd(in, out, errOut)
	root.SetArgs(args)
	if err := root.ExecuteContext(context.Background()); err != nil {
		return exitError
	}
	return exitOK
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	cfg := loadConfig()
	var logger *zap.Logger

	root := &cobra.Command{
		Use:          "farm-advisor",
		Short:        "Interactive farm monitoring and advisory console",
		Long:         "farm-advisor collects farm readings from an operator and prints\nthreshold-based advice on weather, soil, yield, irrigation, fertilizer and market prices.",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			l, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConsole(cmd.Context(), cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(`{{printf "farm-advisor version %s\n" .Version}}`)

	f := root.Flags()
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error); logs go to stderr")
	f.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve prometheus metrics on this address, e.g. :9090")
	f.StringVar(&cfg.MQTTHost, "mqtt-host", cfg.MQTTHost, "publish advisories to this MQTT broker")
	f.IntVar(&cfg.MQTTPort, "mqtt-port", cfg.MQTTPort, "MQTT broker port")
	f.StringVar(&cfg.MQTTUser, "mqtt-user", cfg.MQTTUser, "MQTT user")
	f.StringVar(&cfg.MQTTPassword, "mqtt-password", cfg.MQTTPassword, "MQTT password")
	f.StringVar(&cfg.MQTTTopic, "mqtt-topic", cfg.MQTTTopic, "advisory topic template, {kind} is replaced")
	f.IntVar(&cfg.BreakerFails, "mqtt-breaker-fails", cfg.BreakerFails, "consecutive publish failures before the breaker opens")
	f.DurationVar(&cfg.BreakerOpen, "mqtt-breaker-open", cfg.BreakerOpen, "how long the breaker stays open")
	f.DurationVar(&cfg.DedupTTL, "dedup-ttl", cfg.DedupTTL, "identical advisories inside this window are published once")

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of farm-advisor",
		Args:  cobra.NoArgs,
		// the root pre-run validates console flags this command does not use
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "farm-advisor version %s\n", version)
		},
	}
}

// runConsole wires the optional outer surfaces around one console session.
func runConsole(ctx context.Context, cfg Config, logger *zap.Logger, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runID := uuid.NewString()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	var sink console.Sink
	bus, err := newBus(ctx, cfg, runID, m, logging.Named(logger, "bus"))
	if err != nil {
		logger.Warn("bus: disabled, broker unreachable", zap.Error(err))
	}
	if bus != nil {
		sink = bus
		defer bus.Close()
	}

	if cfg.MetricsAddr != "" {
		srv := metrics.NewServer(cfg.MetricsAddr, reg, logging.Named(logger, "metrics")).
			WithHealth(busHealth(cfg, bus))
		done, err := srv.Start(ctx)
		if err != nil {
			return err
		}
		defer func() {
			cancel()
			<-done
		}()
	}

	src, closeSrc, err := newLineSource(in, out)
	if err != nil {
		return err
	}
	defer closeSrc()

	app := console.New(src, out, console.Options{
		Sink:     sink,
		Recorder: m,
		Logger:   logging.Named(logger, "console"),
		RunID:    runID,
	})
	err = app.Run(ctx)
	if console.Exited(err) {
		if err != nil {
			logger.Info("console: input closed, exiting", zap.String("run_id", runID))
		}
		return nil
	}
	return err
}

// newBus connects to the broker when one is configured; (nil, nil) means the bus is off.
func newBus(ctx context.Context, cfg Config, runID string, m *metrics.Metrics, logger *zap.Logger) (*rabbitmq.AdvisoryPublisher, error) {
	if cfg.MQTTHost == "" {
		return nil, nil
	}
	client, err := rabbitmq.NewRabbitMQConn(ctx, &rabbitmq.RabbitMQConfig{
		Host:     cfg.MQTTHost,
		Port:     cfg.MQTTPort,
		User:     cfg.MQTTUser,
		Password: cfg.MQTTPassword,
		ClientID: "farm-advisor-" + runID,
	}, logger)
	if err != nil {
		return nil, err
	}
	pub := rabbitmq.NewPublisher(client, rabbitmq.BreakerSettings{
		Failures:    cfg.BreakerFails,
		OpenTimeout: cfg.BreakerOpen,
	}, logger)
	return rabbitmq.NewAdvisoryPublisher(pub, cfg.MQTTTopic, dedup.New(cfg.DedupTTL, 0), m, logger), nil
}

// busHealth reports the console itself as always up; only the bus can degrade it.
func busHealth(cfg Config, bus *rabbitmq.AdvisoryPublisher) metrics.HealthFunc {
	return func() metrics.Health {
		switch {
		case cfg.MQTTHost == "":
			return metrics.Health{Status: "ok", Checks: map[string]string{"bus": "disabled"}}
		case bus == nil:
			return metrics.Health{Status: "degraded", Checks: map[string]string{"bus": "unreachable"}}
		}
		st := bus.Status()
		if st == rabbitmq.StatusConnected {
			return metrics.Health{Status: "ok", Checks: map[string]string{"bus": st}}
		}
		return metrics.Health{Status: "degraded", Checks: map[string]string{"bus": st}}
	}
}

// newLineSource uses line editing on a terminal and plain line reads otherwise.
func newLineSource(in io.Reader, out io.Writer) (collector.LineSource, func(), error) {
	if f, ok := in.(*os.File); ok && collector.IsTerminal(f.Fd()) {
		rl, err := collector.NewReadlineSource()
		if err != nil {
			return nil, nil, err
		}
		return rl, func() { _ = rl.Close() }, nil
	}
	return collector.NewScannerSource(in, out), func() {}, nil
}
