package pitstop

import "github.com/solidrace/solidrace/core/car"

// PitStop refuels the car and fits fresh tires.
type PitStop struct{}

func New() PitStop { return PitStop{} }

// PerformPitStop resets fuel and tires to full whatever their prior values.
func (PitStop) PerformPitStop(c *car.Car) {
	c.FuelLevel = car.FullTank
	c.TireCondition = car.FreshTires
	c.Reportf("Pit stop completed. Fuel Level: %.1f, Tire Condition: %.1f", c.FuelLevel, c.TireCondition)
}
