// Package race wires a car, a driver, a track, the weather and a pit stop
// into the fixed five-step race schedule.
package race

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/solidrace/solidrace/core/car"
	"github.com/solidrace/solidrace/core/driver"
	"github.com/solidrace/solidrace/core/metrics"
	"github.com/solidrace/solidrace/core/pitstop"
	"github.com/solidrace/solidrace/core/scheduler"
	"github.com/solidrace/solidrace/core/track"
	"github.com/solidrace/solidrace/core/weather"
	"github.com/solidrace/solidrace/pkg/logging"
)

const (
	StepAccelerate = "accelerate"
	StepTurn       = "turn"
	StepPitStop    = "pit-stop"
	StepFinish     = "finish"
)

// Step is one scheduled action, Offset after the race starts.
type Step struct {
	Offset time.Duration
	Name   string
	Run    func()
}

// Race holds references to components built elsewhere. It does not own the
// car: two races given the same car will both mutate it.
type Race struct {
	ID   uuid.UUID
	Name string

	car     *car.Car
	driver  driver.Driver
	track   track.Layout
	weather weather.Weather
	pitStop pitstop.PitStop

	logger  logging.Logger
	metrics *metrics.Metrics
}

type Option func(*Race)

func WithName(name string) Option {
	return func(r *Race) { r.Name = name }
}

func WithLogger(l logging.Logger) Option {
	return func(r *Race) {
		if l != nil {
			r.logger = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Race) { r.metrics = m }
}

// New creates a race. The driver must satisfy the full Driver contract.
func New(c *car.Car, d driver.Driver, t track.Layout, w weather.Weather, p pitstop.PitStop, opts ...Option) *Race {
	r := &Race{
		ID:      uuid.New(),
		car:     c,
		driver:  d,
		track:   t,
		weather: w,
		pitStop: p,
		logger:  logging.GetLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Name == "" {
		r.Name = r.ID.String()
	}
	r.logger = r.logger.With("race_id", r.ID.String(), "race", r.Name, "car", c.ID)
	return r
}

// FromCapabilities is New for a driver whose type is only known at runtime.
// It fails when d lacks any capability a race needs.
func FromCapabilities(c *car.Car, d any, t track.Layout, w weather.Weather, p pitstop.PitStop, opts ...Option) (*Race, error) {
	full, err := driver.AsDriver(d)
	if err != nil {
		return nil, fmt.Errorf("cannot enter race: %w", err)
	}
	return New(c, full, t, w, p, opts...), nil
}

// Car returns the car this race drives.
func (r *Race) Car() *car.Car {
	return r.car
}

// Plan returns the race's fixed schedule.
func (r *Race) Plan() []Step {
	accelerate := func() {
		r.driver.Accelerate(r.car)
		r.track.ApplyLayoutEffects(r.car)
		r.weather.AffectCarPerformance(r.car)
	}

	return []Step{
		{Offset: 1 * time.Second, Name: StepAccelerate, Run: accelerate},
		{Offset: 2 * time.Second, Name: StepTurn, Run: func() { r.driver.HandleTurn(r.car) }},
		{Offset: 3 * time.Second, Name: StepPitStop, Run: func() { r.pitStop.PerformPitStop(r.car) }},
		{Offset: 4 * time.Second, Name: StepAccelerate, Run: accelerate},
		{Offset: 5 * time.Second, Name: StepFinish, Run: func() {
			r.driver.Brake(r.car)
			r.car.Reportf("Race finished!")
		}},
	}
}

// ApplyStrategies runs the car's aerodynamic and tire strategies once. A
// car without a strategy is not an error.
func (r *Race) ApplyStrategies() {
	if r.car.Aerodynamics != nil {
		r.car.Aerodynamics.ApplyAerodynamics(r.car)
	} else {
		r.logger.Debug("no aerodynamic configuration, skipping")
	}
	if r.car.Tires != nil {
		r.car.Tires.ApplyTires(r.car)
	} else {
		r.logger.Debug("no tire choice, skipping")
	}
}

// Start applies the car's strategies and queues the plan on s relative to
// the scheduler's current time. Nothing runs until s.Run is called.
func (r *Race) Start(s *scheduler.Scheduler) {
	r.logger.Info("race started")
	r.metrics.IncrementRacesStarted()
	r.ApplyStrategies()

	for _, step := range r.Plan() {
		s.After(step.Offset, step.Name, func() {
			step.Run()
			state := r.car.Snapshot()
			r.metrics.ObserveStep(step.Name, state)
			r.logger.Debug("step complete", "step", step.Name,
				"speed", state.Speed, "fuel", state.FuelLevel, "tires", state.TireCondition)
			if step.Name == StepFinish {
				r.metrics.IncrementRacesFinished()
				r.logger.Info("race finished", "speed", state.Speed, "fuel", state.FuelLevel)
			}
		})
	}
}
