package config

// Scenario is the top-level description of a simulation run.
type Scenario struct {
	// TimeScale multiplies real waiting between steps. nil means 1.
	TimeScale          *float64 `yaml:"time_scale,omitempty"`
	MaxEventsPerSecond float64  `yaml:"max_events_per_second,omitempty"`
	AllowSharedCars    bool     `yaml:"allow_shared_cars,omitempty"`
	Cars               []Car    `yaml:"cars"`
	Races              []Race   `yaml:"races"`
}

// Car describes a car's starting numbers and strategies.
type Car struct {
	ID            string   `yaml:"id"`
	Speed         float64  `yaml:"speed,omitempty"`
	FuelLevel     *float64 `yaml:"fuel_level,omitempty"`
	TireCondition *float64 `yaml:"tire_condition,omitempty"`
	Aerodynamics  string   `yaml:"aerodynamics,omitempty"` // "high_downforce", "low_drag" or ""
	Tires         string   `yaml:"tires,omitempty"`        // "soft", "hard", "wet" or ""
}

// Race binds a car to a driver, a track and the weather.
type Race struct {
	Name    string `yaml:"name,omitempty"`
	Car     string `yaml:"car"`
	Driver  string `yaml:"driver"`  // "professional", "amateur" or "reckless"
	Track   string `yaml:"track"`   // "oval" or "circuit"
	Weather string `yaml:"weather"` // "sunny", "rainy" or "cloudy"
}

// Scale returns the effective time scale.
func (s *Scenario) Scale() float64 {
	if s.TimeScale == nil {
		return 1
	}
	return *s.TimeScale
}

// CarByID returns the car with the given id.
func (s *Scenario) CarByID(id string) (Car, bool) {
	for _, c := range s.Cars {
		if c.ID == id {
			return c, true
		}
	}
	return Car{}, false
}

// SharedCars returns the ids of cars referenced by more than one race, in
// first-use order.
func (s *Scenario) SharedCars() []string {
	uses := make(map[string]int, len(s.Races))
	var shared []string
	for _, r := range s.Races {
		uses[r.Car]++
		if uses[r.Car] == 2 {
			shared = append(shared, r.Car)
		}
	}
	return shared
}

func float(v float64) *float64 { return &v }
