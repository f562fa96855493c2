package models

// CityCoordinate is one row of the city coordinate table.
type CityCoordinate struct {
	Name     string  `json:"name"`     // Name is the city name, e.g. "北京市".
	Province string  `json:"province"` // Province is the short province name, e.g. "北京".
	Lng      float64 `json:"lng"`      // Lng is the longitude in degrees.
	Lat      float64 `json:"lat"`      // Lat is the latitude in degrees.
}

// Coordinates returns the point of the city.
func (c CityCoordinate) Coordinates() Coordinates {
	return Coordinates{Longitude: c.Lng, Latitude: c.Lat}
}
