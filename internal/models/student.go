package models

// Student is one row of the student roster.
// City is free text and is not guaranteed to match any CityCoordinate.Name.
type Student struct {
	Province   Province `json:"province"`
	City       string   `json:"city"`
	Name       string   `json:"name"`
	University string   `json:"university"`
	Major      string   `json:"major"`
}
