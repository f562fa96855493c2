// Package roster exposes the static student roster and its JSON ingestion format.
package roster

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/UnknownOlympus/campusmap/internal/models"
)

func init() {
	if err := Validate(students); err != nil {
		panic(fmt.Sprintf("invalid built-in roster: %v", err))
	}
}

// Students returns the built-in roster in its original order.
// The slice is shared and must not be modified.
func Students() []models.Student {
	return students
}

// Validate checks that every student carries an enumerated province.
// The returned error wraps models.ErrUnknownProvince and names the first offending record.
func Validate(list []models.Student) error {
	for idx, student := range list {
		if !student.Province.Valid() {
			return fmt.Errorf("student #%d (%s): %w: %q", idx, student.Name, models.ErrUnknownProvince, student.Province)
		}
	}
	return nil
}

// Decode reads a JSON array of students from r.
// A single unknown province fails the whole decode.
func Decode(r io.Reader) ([]models.Student, error) {
	var list []models.Student
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}
	if err := Validate(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Encode writes list to w as a JSON array.
func Encode(w io.Writer, list []models.Student) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	return nil
}

// Load reads a roster file written by Encode.
func Load(path string) ([]models.Student, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}
