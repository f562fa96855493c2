package models

// PlacementSource tells where the coordinates of a placement came from.
type PlacementSource string

const (
	// SourceTable means the student's city was found in the city coordinate table.
	SourceTable PlacementSource = "table"
	// SourceProvider means the coordinates were resolved by a geocoding provider.
	SourceProvider PlacementSource = "provider"
	// SourceMissing means no coordinates are known for the student's city.
	SourceMissing PlacementSource = "missing"
)

// Placement is a student joined with the coordinates of their city.
// Coordinates is nil when Source is SourceMissing.
type Placement struct {
	Student     Student         `json:"student"`
	Coordinates *Coordinates    `json:"coordinates,omitempty"`
	Source      PlacementSource `json:"source"`
}
