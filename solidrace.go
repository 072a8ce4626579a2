// Package solidrace runs scripted race scenarios: cars driven through a fixed
// schedule of accelerate, turn, pit stop and brake steps, with the track
// layout and weather adjusting speed along the way.
package solidrace

import (
	"context"
	"io"
	"os"

	"github.com/solidrace/solidrace/core/car"
	"github.com/solidrace/solidrace/core/config"
	"github.com/solidrace/solidrace/core/metrics"
	"github.com/solidrace/solidrace/core/scenario"
	"github.com/solidrace/solidrace/core/scheduler"
	"github.com/solidrace/solidrace/core/telemetry"
	"github.com/solidrace/solidrace/interfaces"
	"github.com/solidrace/solidrace/pkg/logging"
)

// Simulator runs one scenario.
type Simulator struct {
	scenario *scenario.Scenario
}

type settings struct {
	output  io.Writer
	extra   []telemetry.Reporter
	logger  logging.Logger
	metrics *metrics.Metrics
	clock   scheduler.Clock
}

type Option func(*settings)

// WithOutput sets where status lines are written. Defaults to stdout.
func WithOutput(w io.Writer) Option { return func(s *settings) { s.output = w } }

// WithReporter adds a sink that receives every status line alongside the
// output writer.
func WithReporter(r telemetry.Reporter) Option {
	return func(s *settings) {
		if r != nil {
			s.extra = append(s.extra, r)
		}
	}
}

func WithLogger(l logging.Logger) Option { return func(s *settings) { s.logger = l } }

func WithMetrics(m *metrics.Metrics) Option { return func(s *settings) { s.metrics = m } }

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c scheduler.Clock) Option { return func(s *settings) { s.clock = c } }

// NewSimulator creates a simulator for cfg. A nil cfg runs the default
// two-race scenario.
func NewSimulator(cfg *config.Scenario, opts ...Option) (interfaces.Simulator, error) {
	st := settings{output: os.Stdout}
	for _, opt := range opts {
		opt(&st)
	}
	if st.logger == nil {
		st.logger = logging.GetLogger()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	reporter := telemetry.Tee(append([]telemetry.Reporter{telemetry.NewConsoleReporter(st.output)}, st.extra...))
	sc, err := scenario.Build(cfg,
		scenario.WithReporter(reporter),
		scenario.WithLogger(st.logger),
		scenario.WithMetrics(st.metrics),
		scenario.WithClock(st.clock),
	)
	if err != nil {
		return nil, err
	}
	return &Simulator{scenario: sc}, nil
}

// Run starts every race and blocks until the schedule is exhausted.
func (s *Simulator) Run(ctx context.Context) ([]car.State, error) {
	return s.scenario.Run(ctx)
}
