// Package scenario builds cars and races from a validated config and runs
// them together on one scheduler.
package scenario

import (
	"context"
	"fmt"

	"github.com/solidrace/solidrace/core/car"
	"github.com/solidrace/solidrace/core/config"
	"github.com/solidrace/solidrace/core/driver"
	"github.com/solidrace/solidrace/core/metrics"
	"github.com/solidrace/solidrace/core/pitstop"
	"github.com/solidrace/solidrace/core/race"
	"github.com/solidrace/solidrace/core/scheduler"
	"github.com/solidrace/solidrace/core/telemetry"
	"github.com/solidrace/solidrace/core/track"
	"github.com/solidrace/solidrace/core/weather"
	"github.com/solidrace/solidrace/pkg/logging"
)

// Scenario is a set of races ready to start.
type Scenario struct {
	cars      []*car.Car
	races     []*race.Race
	scheduler *scheduler.Scheduler
	logger    logging.Logger
	started   bool
}

type options struct {
	reporter telemetry.Reporter
	logger   logging.Logger
	metrics  *metrics.Metrics
	clock    scheduler.Clock
}

type Option func(*options)

func WithReporter(r telemetry.Reporter) Option { return func(o *options) { o.reporter = r } }
func WithLogger(l logging.Logger) Option       { return func(o *options) { o.logger = l } }
func WithMetrics(m *metrics.Metrics) Option    { return func(o *options) { o.metrics = m } }

// WithClock overrides the real clock derived from the config's time scale.
func WithClock(c scheduler.Clock) Option { return func(o *options) { o.clock = c } }

// Build creates the cars and races described by cfg.
func Build(cfg *config.Scenario, opts ...Option) (*Scenario, error) {
	if cfg == nil {
		return nil, fmt.Errorf("scenario config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{reporter: telemetry.Discard}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.GetLogger()
	}
	if o.clock == nil {
		o.clock = scheduler.RealClock{Scale: cfg.Scale()}
	}

	sc := &Scenario{
		scheduler: scheduler.New(
			scheduler.WithClock(o.clock),
			scheduler.WithRateLimit(cfg.MaxEventsPerSecond, 1),
			scheduler.WithLogger(o.logger),
		),
		logger: o.logger,
	}

	byID := make(map[string]*car.Car, len(cfg.Cars))
	for _, cc := range cfg.Cars {
		c, err := buildCar(cc, o.reporter)
		if err != nil {
			return nil, err
		}
		byID[cc.ID] = c
		sc.cars = append(sc.cars, c)
	}

	for _, id := range cfg.SharedCars() {
		o.logger.Warn("car is shared by several races; their steps will mutate it in schedule order", "car", id)
	}

	for i, rc := range cfg.Races {
		r, err := buildRace(rc, byID[rc.Car], o)
		if err != nil {
			return nil, fmt.Errorf("race %d: %w", i, err)
		}
		sc.races = append(sc.races, r)
	}
	return sc, nil
}

func buildCar(cc config.Car, reporter telemetry.Reporter) (*car.Car, error) {
	aero, err := car.ParseAerodynamics(cc.Aerodynamics)
	if err != nil {
		return nil, err
	}
	tires, err := car.ParseTires(cc.Tires)
	if err != nil {
		return nil, err
	}

	opts := []car.Option{
		car.WithSpeed(cc.Speed),
		car.WithAerodynamics(aero),
		car.WithTires(tires),
		car.WithReporter(reporter),
	}
	if cc.FuelLevel != nil {
		opts = append(opts, car.WithFuel(*cc.FuelLevel))
	}
	if cc.TireCondition != nil {
		opts = append(opts, car.WithTireCondition(*cc.TireCondition))
	}
	return car.New(cc.ID, opts...), nil
}

func buildRace(rc config.Race, c *car.Car, o options) (*race.Race, error) {
	d, err := driver.ForKind(rc.Driver)
	if err != nil {
		return nil, err
	}
	layout, err := track.Parse(rc.Track)
	if err != nil {
		return nil, err
	}
	cond, err := weather.ParseCondition(rc.Weather)
	if err != nil {
		return nil, err
	}

	return race.FromCapabilities(c, d, layout, weather.New(cond), pitstop.New(),
		race.WithName(rc.Name),
		race.WithLogger(o.logger),
		race.WithMetrics(o.metrics),
	)
}

// Races returns the races in config order.
func (s *Scenario) Races() []*race.Race {
	return s.races
}

// Run starts every race in config order and drives the scheduler until all
// steps have fired or ctx is done. It returns each car's final state in
// config order. A scenario can only be run once.
func (s *Scenario) Run(ctx context.Context) ([]car.State, error) {
	if s.started {
		return nil, fmt.Errorf("scenario already run")
	}
	s.started = true

	for _, r := range s.races {
		r.Start(s.scheduler)
	}
	s.logger.Info("all races started", "races", len(s.races), "events", s.scheduler.Pending())

	err := s.scheduler.Run(ctx)

	states := make([]car.State, 0, len(s.cars))
	for _, c := range s.cars {
		states = append(states, c.Snapshot())
	}
	if err != nil {
		return states, fmt.Errorf("simulation interrupted: %w", err)
	}
	return states, nil
}
