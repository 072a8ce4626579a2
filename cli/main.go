package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/solidrace/solidrace"
	"github.com/solidrace/solidrace/core/car"
	"github.com/solidrace/solidrace/core/config"
	"github.com/solidrace/solidrace/core/metrics"
	"github.com/solidrace/solidrace/pkg/logging"
)

func main() {
	cmd := "run"
	args := os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	var logLevel, logFormat string
	addLogFlags := func(fs *flag.FlagSet) {
		fs.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
		fs.StringVar(&logFormat, "log-format", "console", "Log format (console, json)")
	}

	switch cmd {
	case "run":
		runCmd := flag.NewFlagSet("run", flag.ExitOnError)
		configFile := runCmd.String("config", "", "Path to a scenario YAML file. The built-in two-race scenario is used when empty.")
		timeScale := runCmd.Float64("time-scale", 1, "Override the scenario's time scale (0 runs instantly).")
		metricsAddr := runCmd.String("metrics-addr", "", "Serve Prometheus metrics on this address while running.")
		addLogFlags(runCmd)
		// ExitOnError: Parse exits on bad flags.
		_ = runCmd.Parse(args)
		logging.InitLogger(logLevel, logFormat, nil)

		opts := runOptions{configFile: *configFile, metricsAddr: *metricsAddr}
		runCmd.Visit(func(f *flag.Flag) {
			if f.Name == "time-scale" {
				opts.timeScale = timeScale
			}
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err := runScenario(ctx, os.Stdout, opts)
		stop()
		if err != nil {
			logging.GetLogger().Error("Simulation failed", "error", err)
			os.Exit(1)
		}

	case "validate":
		validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
		configFile := validateCmd.String("config", "", "Path to the scenario YAML file.")
		addLogFlags(validateCmd)
		_ = validateCmd.Parse(args)
		logging.InitLogger(logLevel, logFormat, nil)

		runValidate(*configFile)

	default:
		logging.GetLogger().Error("expected 'run' or 'validate' subcommands", "command", cmd)
		os.Exit(1)
	}
}

func loadScenario(configFile string) (*config.Scenario, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	return config.LoadFile(configFile)
}

func runValidate(configFile string) {
	logger := logging.GetLogger()
	if configFile == "" {
		logger.Error("validate requires -config")
		os.Exit(1)
	}

	cfg, err := config.LoadFile(configFile)
	if err != nil {
		logger.Error("Scenario is invalid", "file", configFile, "error", err)
		os.Exit(1)
	}
	logger.Info("Scenario is valid", "file", configFile, "cars", len(cfg.Cars), "races", len(cfg.Races))
}

// runOptions are the run subcommand's flags. A nil timeScale keeps the
// scenario's own value.
type runOptions struct {
	configFile  string
	timeScale   *float64
	metricsAddr string
}

func runScenario(ctx context.Context, out io.Writer, opts runOptions) error {
	logger := logging.GetLogger()

	if opts.timeScale != nil && *opts.timeScale < 0 {
		return fmt.Errorf("-time-scale must not be negative, got %v", *opts.timeScale)
	}

	cfg, err := loadScenario(opts.configFile)
	if err != nil {
		return err
	}
	if opts.timeScale != nil {
		scale := *opts.timeScale
		cfg.TimeScale = &scale
	}

	var m *metrics.Metrics
	metricsAddr := opts.metricsAddr
	if metricsAddr != "" {
		m = metrics.New(nil)
	}

	sim, err := solidrace.NewSimulator(cfg, solidrace.WithOutput(out), solidrace.WithLogger(logger), solidrace.WithMetrics(m))
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	var states []car.State
	g.Go(func() error {
		defer close(done)
		var err error
		states, err = sim.Run(ctx)
		return err
	})

	if m != nil {
		srv := &http.Server{Addr: metricsAddr, Handler: metricsMux(m), ReadHeaderTimeout: 5 * time.Second}
		g.Go(func() error {
			logger.Info("Serving metrics", "address", metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			select {
			case <-done:
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	printSummary(out, states)
	return nil
}

func metricsMux(m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return mux
}

func printSummary(out io.Writer, states []car.State) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', tabwriter.Debug)
	fmt.Fprintln(w, "CAR\tSPEED\tFUEL\tTIRES")
	fmt.Fprintln(w, "---\t-----\t----\t-----")
	for _, s := range states {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\n", s.ID, s.Speed, s.FuelLevel, s.TireCondition)
	}
	w.Flush()
}
