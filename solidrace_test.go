package solidrace_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/solidrace/solidrace"
	"github.com/solidrace/solidrace/core/car"
	"github.com/solidrace/solidrace/core/config"
	"github.com/solidrace/solidrace/core/telemetry"
	"github.com/solidrace/solidrace/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulator_DefaultScenario(t *testing.T) {
	var out bytes.Buffer
	sim, err := solidrace.NewSimulator(nil,
		solidrace.WithOutput(&out),
		solidrace.WithLogger(testutils.NewTestLogger()),
		solidrace.WithClock(&testutils.FakeClock{}))
	require.NoError(t, err)

	states, err := sim.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, car.State{ID: "car-1", Speed: 40, FuelLevel: 99, TireCondition: 100}, states[0])

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Contains(t, lines, "Car is accelerating. Speed: 10.0, Fuel Level: 99.0")
	assert.Contains(t, lines, "Oval track: Car speed increased by 10. Speed: 20.0")
	assert.Contains(t, lines, "Sunny weather: Car speed increased by 5. Speed: 25.0")
	assert.Equal(t, 2, strings.Count(out.String(), "Race finished!"))
}

func TestSimulator_InstantTimeScale(t *testing.T) {
	cfg := config.Default()
	zero := 0.0
	cfg.TimeScale = &zero

	sim, err := solidrace.NewSimulator(cfg, solidrace.WithOutput(&bytes.Buffer{}), solidrace.WithLogger(testutils.NewTestLogger()))
	require.NoError(t, err)

	states, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -20.0, states[1].Speed)
}

func TestSimulator_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Races = nil

	_, err := solidrace.NewSimulator(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidScenario)
}

func TestSimulator_ExtraReporterSeesEveryLine(t *testing.T) {
	var out bytes.Buffer
	rec := &telemetry.Recorder{}
	sim, err := solidrace.NewSimulator(nil,
		solidrace.WithOutput(&out),
		solidrace.WithReporter(rec),
		solidrace.WithLogger(testutils.NewTestLogger()),
		solidrace.WithClock(&testutils.FakeClock{}))
	require.NoError(t, err)

	_, err = sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, strings.Split(strings.TrimSpace(out.String()), "\n"), rec.Lines())
}
