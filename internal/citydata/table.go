// Package citydata exposes the static city coordinate table and its lookups.
//
// The table is built once at package initialization and never modified,
// so every function here is safe for concurrent use.
package citydata

import "github.com/UnknownOlympus/campusmap/internal/models"

// Table is an immutable, indexed list of city records.
type Table struct {
	records    []models.CityCoordinate
	byName     map[string]int   // position of the first record with a given name
	byProvince map[string][]int // positions of all records of a province, in table order
	provinces  []string         // distinct provinces in first-appearance order
}

// NewTable indexes records. The slice is kept by reference and must not be modified afterwards.
func NewTable(records []models.CityCoordinate) *Table {
	tbl := &Table{
		records:    records,
		byName:     make(map[string]int, len(records)),
		byProvince: make(map[string][]int),
	}

	for idx, rec := range records {
		if _, exists := tbl.byName[rec.Name]; !exists {
			tbl.byName[rec.Name] = idx
		}
		if _, exists := tbl.byProvince[rec.Province]; !exists {
			tbl.provinces = append(tbl.provinces, rec.Province)
		}
		tbl.byProvince[rec.Province] = append(tbl.byProvince[rec.Province], idx)
	}

	return tbl
}

// All returns the full record sequence in table order.
func (t *Table) All() []models.CityCoordinate {
	return t.records
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.records)
}

// GetCityCoordinate returns the first record whose name equals cityName exactly.
// The boolean is false if there is no such record.
func (t *Table) GetCityCoordinate(cityName string) (models.CityCoordinate, bool) {
	idx, ok := t.byName[cityName]
	if !ok {
		return models.CityCoordinate{}, false
	}
	return t.records[idx], true
}

// GetCitiesByProvince returns every record of provinceName in table order.
// The result is empty, never nil, when the province has no cities.
func (t *Table) GetCitiesByProvince(provinceName string) []models.CityCoordinate {
	positions := t.byProvince[provinceName]
	cities := make([]models.CityCoordinate, 0, len(positions))
	for _, idx := range positions {
		cities = append(cities, t.records[idx])
	}
	return cities
}

// Provinces returns the distinct provinces of the table in first-appearance order.
func (t *Table) Provinces() []string {
	out := make([]string, len(t.provinces))
	copy(out, t.provinces)
	return out
}

var defaultTable = NewTable(cityCoordinates)

// Default returns the built-in city coordinate table.
func Default() *Table {
	return defaultTable
}

// All returns the built-in city records.
func All() []models.CityCoordinate {
	return defaultTable.All()
}

// GetCityCoordinate looks cityName up in the built-in table.
func GetCityCoordinate(cityName string) (models.CityCoordinate, bool) {
	return defaultTable.GetCityCoordinate(cityName)
}

// GetCitiesByProvince lists the built-in cities of provinceName.
func GetCitiesByProvince(provinceName string) []models.CityCoordinate {
	return defaultTable.GetCitiesByProvince(provinceName)
}

// Provinces lists the provinces that have at least one built-in city.
func Provinces() []string {
	return defaultTable.Provinces()
}
