package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/solidrace/solidrace/core/car"
	"github.com/solidrace/solidrace/core/driver"
	"github.com/solidrace/solidrace/core/track"
	"github.com/solidrace/solidrace/core/weather"
)

// ErrInvalidScenario wraps every validation failure.
var ErrInvalidScenario = errors.New("invalid scenario")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidScenario, fmt.Sprintf(format, args...))
}

func (s *Scenario) Validate() error {
	if s.TimeScale != nil && *s.TimeScale < 0 {
		return invalid("time_scale must not be negative, got %v", *s.TimeScale)
	}
	if s.MaxEventsPerSecond < 0 {
		return invalid("max_events_per_second must not be negative, got %v", s.MaxEventsPerSecond)
	}
	if len(s.Races) == 0 {
		return invalid("no races found in scenario")
	}

	seen := make(map[string]bool, len(s.Cars))
	for i, c := range s.Cars {
		if c.ID == "" {
			return invalid("car %d is missing an id", i)
		}
		if seen[c.ID] {
			return invalid("car '%s' is defined more than once", c.ID)
		}
		seen[c.ID] = true

		if _, err := car.ParseAerodynamics(c.Aerodynamics); err != nil {
			return invalid("car '%s': %v", c.ID, err)
		}
		if _, err := car.ParseTires(c.Tires); err != nil {
			return invalid("car '%s': %v", c.ID, err)
		}
	}

	for i, r := range s.Races {
		label := r.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		if !seen[r.Car] {
			return invalid("race '%s' references unknown car '%s'", label, r.Car)
		}

		kind, err := driver.ForKind(r.Driver)
		if err != nil {
			return invalid("race '%s': %v", label, err)
		}
		if _, err := driver.AsDriver(kind); err != nil {
			return invalid("race '%s': %v", label, err)
		}
		if _, err := track.Parse(r.Track); err != nil {
			return invalid("race '%s': %v", label, err)
		}
		if _, err := weather.ParseCondition(r.Weather); err != nil {
			return invalid("race '%s': %v", label, err)
		}
	}

	if shared := s.SharedCars(); len(shared) > 0 && !s.AllowSharedCars {
		return invalid("cars used by more than one race: %s (set allow_shared_cars to permit this)", strings.Join(shared, ", "))
	}
	return nil
}
