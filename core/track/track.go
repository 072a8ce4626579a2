// Package track provides the track layouts a race can run on.
package track

import (
	"errors"
	"fmt"

	"github.com/solidrace/solidrace/core/car"
)

var ErrUnknownLayout = errors.New("unknown track layout")

// Layout changes the car as it runs a section of the track.
type Layout interface {
	ApplyLayoutEffects(c *car.Car)
}

// Oval has long straights: +10 speed.
type Oval struct{}

func (Oval) ApplyLayoutEffects(c *car.Car) {
	c.Speed += 10
	c.Reportf("Oval track: Car speed increased by 10. Speed: %.1f", c.Speed)
}

// Circuit is twisty: -5 speed.
type Circuit struct{}

func (Circuit) ApplyLayoutEffects(c *car.Car) {
	c.Speed -= 5
	c.Reportf("Circuit track: Car speed decreased by 5. Speed: %.1f", c.Speed)
}

// Parse maps a config name to a Layout.
func Parse(name string) (Layout, error) {
	switch name {
	case "oval":
		return Oval{}, nil
	case "circuit":
		return Circuit{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}
