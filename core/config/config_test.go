package config_test

import (
	"testing"

	"github.com/solidrace/solidrace/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Valid(t *testing.T) {
	s, err := config.LoadFile("testdata/valid_scenario.yaml")
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.Scale())
	assert.Equal(t, 20.0, s.MaxEventsPerSecond)
	require.Len(t, s.Cars, 2)
	require.Len(t, s.Races, 2)

	first, ok := s.CarByID("car-1")
	require.True(t, ok)
	assert.Equal(t, 100.0, *first.FuelLevel, "fuel defaults to a full tank")
	assert.Equal(t, 100.0, *first.TireCondition)

	second, ok := s.CarByID("car-2")
	require.True(t, ok)
	assert.Equal(t, 15.0, second.Speed)
	assert.Equal(t, 40.0, *second.FuelLevel)
	assert.Equal(t, "wet", second.Tires)

	assert.Equal(t, "club-race", s.Races[1].Name)
	assert.Empty(t, s.SharedCars())

	_, ok = s.CarByID("car-9")
	assert.False(t, ok)
}

func TestLoadFile_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		expError string
	}{
		{"Reckless driver", "testdata/invalid_reckless.yaml", "lacks cornering"},
		{"Malformed YAML", "testdata/invalid_yaml.yaml", "failed to parse scenario"},
		{"File not found", "testdata/non_existent_file.yaml", "failed to read scenario file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadFile(tc.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expError)
		})
	}
}

func TestParse_ValidationErrors(t *testing.T) {
	const races = `
races:
  - {name: r, car: car-1, driver: professional, track: oval, weather: sunny}
`
	testCases := []struct {
		name     string
		yaml     string
		expError string
	}{
		{"No races", "cars: [{id: car-1}]", "no races found"},
		{"Negative time scale", "time_scale: -1\ncars: [{id: car-1}]" + races, "time_scale must not be negative"},
		{"Negative rate", "max_events_per_second: -2\ncars: [{id: car-1}]" + races, "max_events_per_second must not be negative"},
		{"Car without id", "cars: [{speed: 3}]" + races, "car 0 is missing an id"},
		{"Duplicate car", "cars: [{id: car-1}, {id: car-1}]" + races, "defined more than once"},
		{"Unknown aero", "cars: [{id: car-1, aerodynamics: wing}]" + races, "unknown strategy"},
		{"Unknown tires", "cars: [{id: car-1, tires: slick}]" + races, "unknown strategy"},
		{"Unknown car", "cars: [{id: car-2}]" + races, "references unknown car 'car-1'"},
		{"Unknown driver", "cars: [{id: car-1}]\nraces: [{car: car-1, driver: robot, track: oval, weather: sunny}]", "unknown driver kind"},
		{"Unknown track", "cars: [{id: car-1}]\nraces: [{car: car-1, driver: amateur, track: ring, weather: sunny}]", "unknown track layout"},
		{"Unknown weather", "cars: [{id: car-1}]\nraces: [{car: car-1, driver: amateur, track: oval, weather: foggy}]", "unknown weather condition"},
		{
			"Shared car",
			"cars: [{id: car-1}]\nraces: [{car: car-1, driver: amateur, track: oval, weather: sunny}, {car: car-1, driver: professional, track: circuit, weather: rainy}]",
			"cars used by more than one race: car-1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, config.ErrInvalidScenario)
			assert.Contains(t, err.Error(), tc.expError)
		})
	}
}

func TestParse_SharedCarsAllowed(t *testing.T) {
	s, err := config.Parse([]byte(`
allow_shared_cars: true
cars: [{id: car-1}]
races:
  - {car: car-1, driver: professional, track: oval, weather: sunny}
  - {car: car-1, driver: amateur, track: circuit, weather: rainy}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"car-1"}, s.SharedCars())
	assert.Equal(t, 1.0, s.Scale())
}

func TestDefault(t *testing.T) {
	s := config.Default()

	require.NoError(t, s.Validate())
	require.Len(t, s.Races, 2)
	assert.Equal(t, "professional", s.Races[0].Driver)
	assert.Equal(t, "oval", s.Races[0].Track)
	assert.Equal(t, "sunny", s.Races[0].Weather)
	assert.Empty(t, s.SharedCars(), "each default race gets its own car")
}
