// Package driver defines what a driver can do to a car.
//
// Each capability is its own single-method interface so a driver only
// implements the moves it can make. A race needs all three.
package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/solidrace/solidrace/core/car"
)

// ErrMissingCapability is returned when a value does not satisfy Driver.
var ErrMissingCapability = errors.New("driver is missing a required capability")

// ErrUnknownKind is returned by ForKind for an unrecognised name.
var ErrUnknownKind = errors.New("unknown driver kind")

type Acceleration interface {
	Accelerate(c *car.Car)
}

type Braking interface {
	Brake(c *car.Car)
}

type Cornering interface {
	HandleTurn(c *car.Car)
}

// Driver is the full set of capabilities a race requires.
type Driver interface {
	Acceleration
	Braking
	Cornering
}

var (
	_ Driver       = Professional{}
	_ Driver       = Amateur{}
	_ Acceleration = Reckless{}
	_ Braking      = Reckless{}
)

// Reckless floors it and stamps on the brakes but cannot take a corner.
type Reckless struct{}

func (Reckless) Accelerate(c *car.Car) { c.Accelerate() }
func (Reckless) Brake(c *car.Car)      { c.Brake() }

type Professional struct{}

func (Professional) Accelerate(c *car.Car) { c.Accelerate() }
func (Professional) Brake(c *car.Car)      { c.Brake() }
func (Professional) HandleTurn(c *car.Car) { c.HandleTurn() }

type Amateur struct{}

func (Amateur) Accelerate(c *car.Car) { c.Accelerate() }
func (Amateur) Brake(c *car.Car)      { c.Brake() }
func (Amateur) HandleTurn(c *car.Car) { c.HandleTurn() }

// ForKind returns the capability set registered under name. The result is
// not guaranteed to be a Driver; pass it through AsDriver.
func ForKind(name string) (any, error) {
	switch name {
	case "professional":
		return Professional{}, nil
	case "amateur":
		return Amateur{}, nil
	case "reckless":
		return Reckless{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// AsDriver checks v against the full Driver contract and names whatever
// capabilities are absent.
func AsDriver(v any) (Driver, error) {
	if d, ok := v.(Driver); ok {
		return d, nil
	}

	var missing []string
	if _, ok := v.(Acceleration); !ok {
		missing = append(missing, "acceleration")
	}
	if _, ok := v.(Braking); !ok {
		missing = append(missing, "braking")
	}
	if _, ok := v.(Cornering); !ok {
		missing = append(missing, "cornering")
	}
	return nil, fmt.Errorf("%w: %T lacks %s", ErrMissingCapability, v, strings.Join(missing, ", "))
}
