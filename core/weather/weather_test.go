package weather_test

import (
	"testing"

	"github.com/solidrace/solidrace/core/car"
	"github.com/solidrace/solidrace/core/telemetry"
	"github.com/solidrace/solidrace/core/weather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffectCarPerformance(t *testing.T) {
	tests := []struct {
		condition weather.Condition
		prior     float64
		want      float64
		line      string
	}{
		{weather.Sunny, 20, 25, "Sunny weather: Car speed increased by 5. Speed: 25.0"},
		{weather.Rainy, 20, 10, "Rainy weather: Car speed decreased by 10. Speed: 10.0"},
		{weather.Rainy, 0, -10, "Rainy weather: Car speed decreased by 10. Speed: -10.0"},
		{weather.Cloudy, 20, 20, "Cloudy weather: No effect on car speed. Speed: 20.0"},
	}

	for _, tt := range tests {
		t.Run(tt.condition.String(), func(t *testing.T) {
			rec := &telemetry.Recorder{}
			c := car.New("car-1", car.WithSpeed(tt.prior), car.WithReporter(rec))

			weather.New(tt.condition).AffectCarPerformance(c)

			assert.Equal(t, tt.want, c.Speed)
			assert.Equal(t, []string{tt.line}, rec.Lines())
		})
	}
}

func TestParseCondition(t *testing.T) {
	for _, want := range []weather.Condition{weather.Sunny, weather.Rainy, weather.Cloudy} {
		got, err := weather.ParseCondition(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := weather.ParseCondition("snowy")
	assert.ErrorIs(t, err, weather.ErrUnknownCondition)
	assert.Equal(t, "Condition(7)", weather.Condition(7).String())
}
