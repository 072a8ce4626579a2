package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/solidrace/solidrace/core/car"
)

// Metrics holds the simulator's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	EventsDispatched *prometheus.CounterVec
	RacesStarted     prometheus.Counter
	RacesFinished    prometheus.Counter
	CarSpeed         *prometheus.GaugeVec
	CarFuelLevel     *prometheus.GaugeVec
	CarTireCondition *prometheus.GaugeVec
}

// New creates the collectors and registers them on reg. A nil reg gets a
// fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		EventsDispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "solidrace_events_dispatched_total",
			Help: "Total number of race steps dispatched, by step name",
		}, []string{"event"}),
		RacesStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "solidrace_races_started_total",
			Help: "Total number of races started",
		}),
		RacesFinished: factory.NewCounter(prometheus.CounterOpts{
			Name: "solidrace_races_finished_total",
			Help: "Total number of races that ran their final step",
		}),
		CarSpeed: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "solidrace_car_speed",
			Help: "Current speed of each car",
		}, []string{"car"}),
		CarFuelLevel: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "solidrace_car_fuel_level",
			Help: "Current fuel level of each car",
		}, []string{"car"}),
		CarTireCondition: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "solidrace_car_tire_condition",
			Help: "Current tire condition of each car",
		}, []string{"car"}),
	}
}

func (m *Metrics) IncrementRacesStarted() {
	if m == nil {
		return
	}
	m.RacesStarted.Inc()
}

func (m *Metrics) IncrementRacesFinished() {
	if m == nil {
		return
	}
	m.RacesFinished.Inc()
}

// ObserveStep counts a dispatched step and records the car's numbers after it.
func (m *Metrics) ObserveStep(step string, s car.State) {
	if m == nil {
		return
	}
	m.EventsDispatched.WithLabelValues(step).Inc()
	m.ObserveCar(s)
}

func (m *Metrics) ObserveCar(s car.State) {
	if m == nil {
		return
	}
	m.CarSpeed.WithLabelValues(s.ID).Set(s.Speed)
	m.CarFuelLevel.WithLabelValues(s.ID).Set(s.FuelLevel)
	m.CarTireCondition.WithLabelValues(s.ID).Set(s.TireCondition)
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
