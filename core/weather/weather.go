// Package weather models the conditions a race runs under.
package weather

import (
	"errors"
	"fmt"

	"github.com/solidrace/solidrace/core/car"
)

var ErrUnknownCondition = errors.New("unknown weather condition")

type Condition int

const (
	Sunny Condition = iota
	Rainy
	Cloudy
)

func (c Condition) String() string {
	switch c {
	case Sunny:
		return "sunny"
	case Rainy:
		return "rainy"
	case Cloudy:
		return "cloudy"
	default:
		return fmt.Sprintf("Condition(%d)", int(c))
	}
}

// ParseCondition maps a config name to a Condition.
func ParseCondition(name string) (Condition, error) {
	switch name {
	case "sunny":
		return Sunny, nil
	case "rainy":
		return Rainy, nil
	case "cloudy":
		return Cloudy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCondition, name)
	}
}

type Weather struct {
	Condition Condition
}

func New(c Condition) Weather {
	return Weather{Condition: c}
}

// AffectCarPerformance adjusts the car's speed for the current condition.
func (w Weather) AffectCarPerformance(c *car.Car) {
	switch w.Condition {
	case Sunny:
		c.Speed += 5
		c.Reportf("Sunny weather: Car speed increased by 5. Speed: %.1f", c.Speed)
	case Rainy:
		c.Speed -= 10
		c.Reportf("Rainy weather: Car speed decreased by 10. Speed: %.1f", c.Speed)
	case Cloudy:
		c.Reportf("Cloudy weather: No effect on car speed. Speed: %.1f", c.Speed)
	}
}
