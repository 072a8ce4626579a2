package config

// Default is the built-in scenario: two races started back to back, each
// with its own car.
func Default() *Scenario {
	return &Scenario{
		TimeScale: float(1),
		Cars: []Car{
			{ID: "car-1", FuelLevel: float(100), TireCondition: float(100), Aerodynamics: "high_downforce", Tires: "soft"},
			{ID: "car-2", FuelLevel: float(100), TireCondition: float(100), Aerodynamics: "high_downforce", Tires: "soft"},
		},
		Races: []Race{
			{Name: "race-1", Car: "car-1", Driver: "professional", Track: "oval", Weather: "sunny"},
			{Name: "race-2", Car: "car-2", Driver: "amateur", Track: "circuit", Weather: "rainy"},
		},
	}
}
