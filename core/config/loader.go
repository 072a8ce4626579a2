package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and validates a scenario from a YAML file.
func LoadFile(filePath string) (*Scenario, error) {
	buf, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file '%s': %w", filePath, err)
	}
	return Parse(buf)
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	s.applyDefaults()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) applyDefaults() {
	for i := range s.Cars {
		if s.Cars[i].FuelLevel == nil {
			s.Cars[i].FuelLevel = float(100)
		}
		if s.Cars[i].TireCondition == nil {
			s.Cars[i].TireCondition = float(100)
		}
	}
}
