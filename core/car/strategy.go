package car

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy is returned for an unrecognised strategy name.
var ErrUnknownStrategy = errors.New("unknown strategy")

// AerodynamicConfig is a swappable aero setup applied once before a race.
type AerodynamicConfig interface {
	ApplyAerodynamics(c *Car)
}

// TireChoice is a swappable tire compound applied once before a race.
type TireChoice interface {
	ApplyTires(c *Car)
}

type HighDownforce struct{}

func (HighDownforce) ApplyAerodynamics(c *Car) {
	c.Reportf("Applying high downforce aerodynamic configuration.")
}

type LowDrag struct{}

func (LowDrag) ApplyAerodynamics(c *Car) {
	c.Reportf("Applying low drag aerodynamic configuration.")
}

type SoftTires struct{}

func (SoftTires) ApplyTires(c *Car) {
	c.Reportf("Using soft tires for better grip.")
}

type HardTires struct{}

func (HardTires) ApplyTires(c *Car) {
	c.Reportf("Using hard tires for durability.")
}

type WetTires struct{}

func (WetTires) ApplyTires(c *Car) {
	c.Reportf("Using wet tires for rainy conditions.")
}

// ParseAerodynamics maps a config name to a strategy. "" yields nil.
func ParseAerodynamics(name string) (AerodynamicConfig, error) {
	switch name {
	case "":
		return nil, nil
	case "high_downforce":
		return HighDownforce{}, nil
	case "low_drag":
		return LowDrag{}, nil
	default:
		return nil, fmt.Errorf("%w: aerodynamics %q", ErrUnknownStrategy, name)
	}
}

// ParseTires maps a config name to a strategy. "" yields nil.
func ParseTires(name string) (TireChoice, error) {
	switch name {
	case "":
		return nil, nil
	case "soft":
		return SoftTires{}, nil
	case "hard":
		return HardTires{}, nil
	case "wet":
		return WetTires{}, nil
	default:
		return nil, fmt.Errorf("%w: tires %q", ErrUnknownStrategy, name)
	}
}
