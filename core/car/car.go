// Package car holds the mutable car state every race step acts on.
//
// A Car is owned by the scheduler loop that runs its race. Nothing in this
// package locks: callers must not mutate one Car from several goroutines.
package car

import (
	"fmt"

	"github.com/solidrace/solidrace/core/telemetry"
)

const (
	// FullTank is the fuel level after a pit stop.
	FullTank = 100.0
	// FreshTires is the tire condition after a pit stop.
	FreshTires = 100.0

	accelerationStep = 10.0
	brakingStep      = 10.0
	fuelPerBurst     = 1.0
	tireWearPerTurn  = 5.0
)

// State is a point-in-time copy of a car's numeric fields.
type State struct {
	ID            string
	Speed         float64
	FuelLevel     float64
	TireCondition float64
}

// Car is a race car. Its numbers are not bounded and may go negative.
type Car struct {
	ID            string
	Speed         float64
	FuelLevel     float64
	TireCondition float64

	Aerodynamics AerodynamicConfig
	Tires        TireChoice

	reporter telemetry.Reporter
}

// Option configures a Car at construction.
type Option func(*Car)

func WithSpeed(v float64) Option         { return func(c *Car) { c.Speed = v } }
func WithFuel(v float64) Option          { return func(c *Car) { c.FuelLevel = v } }
func WithTireCondition(v float64) Option { return func(c *Car) { c.TireCondition = v } }

// WithAerodynamics attaches an aerodynamic strategy. nil means none.
func WithAerodynamics(a AerodynamicConfig) Option {
	return func(c *Car) { c.Aerodynamics = a }
}

// WithTires attaches a tire strategy. nil means none.
func WithTires(t TireChoice) Option {
	return func(c *Car) { c.Tires = t }
}

// WithReporter sets where the car's status lines go.
func WithReporter(r telemetry.Reporter) Option {
	return func(c *Car) {
		if r != nil {
			c.reporter = r
		}
	}
}

// New creates a stationary car with a full tank and fresh tires.
func New(id string, opts ...Option) *Car {
	c := &Car{
		ID:            id,
		FuelLevel:     FullTank,
		TireCondition: FreshTires,
		reporter:      telemetry.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Accelerate adds 10 to speed and burns one unit of fuel.
func (c *Car) Accelerate() {
	c.Speed += accelerationStep
	c.FuelLevel -= fuelPerBurst
	c.Reportf("Car is accelerating. Speed: %.1f, Fuel Level: %.1f", c.Speed, c.FuelLevel)
}

// Brake takes 10 off speed.
func (c *Car) Brake() {
	c.Speed -= brakingStep
	c.Reportf("Car is braking. Speed: %.1f", c.Speed)
}

// HandleTurn wears the tires by 5.
func (c *Car) HandleTurn() {
	c.TireCondition -= tireWearPerTurn
	c.Reportf("Car is handling a turn. Tire Condition: %.1f", c.TireCondition)
}

// Reportf emits a status line on behalf of the car.
func (c *Car) Reportf(format string, args ...interface{}) {
	if c.reporter == nil {
		return
	}
	c.reporter.Report(fmt.Sprintf(format, args...))
}

// Snapshot returns the car's current numbers.
func (c *Car) Snapshot() State {
	return State{
		ID:            c.ID,
		Speed:         c.Speed,
		FuelLevel:     c.FuelLevel,
		TireCondition: c.TireCondition,
	}
}
