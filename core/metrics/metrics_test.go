package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/solidrace/solidrace/core/car"
	"github.com/solidrace/solidrace/core/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveStep(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.IncrementRacesStarted()
	m.ObserveStep("accelerate", car.State{ID: "car-1", Speed: 25, FuelLevel: 99, TireCondition: 100})
	m.ObserveStep("accelerate", car.State{ID: "car-1", Speed: 50, FuelLevel: 99, TireCondition: 100})
	m.ObserveStep("turn", car.State{ID: "car-1", Speed: 50, FuelLevel: 99, TireCondition: 95})
	m.IncrementRacesFinished()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RacesStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RacesFinished))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsDispatched.WithLabelValues("accelerate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsDispatched.WithLabelValues("turn")))
	assert.Equal(t, 50.0, testutil.ToFloat64(m.CarSpeed.WithLabelValues("car-1")))
	assert.Equal(t, 95.0, testutil.ToFloat64(m.CarTireCondition.WithLabelValues("car-1")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.IncrementRacesStarted()
		m.ObserveStep("finish", car.State{ID: "car-1"})
		m.IncrementRacesFinished()
	})
}

func TestHandler(t *testing.T) {
	m := metrics.New(nil)
	m.IncrementRacesStarted()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "solidrace_races_started_total 1")
}
