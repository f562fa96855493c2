package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/campusmap/internal/models"
	"github.com/jackc/pgx/v5"
)

const schemaQuery = `
	CREATE TABLE IF NOT EXISTS cities (
		position INTEGER PRIMARY KEY,
		name     TEXT NOT NULL,
		province TEXT NOT NULL,
		lng      DOUBLE PRECISION NOT NULL,
		lat      DOUBLE PRECISION NOT NULL
	);
	CREATE TABLE IF NOT EXISTS students (
		position   INTEGER PRIMARY KEY,
		province   TEXT NOT NULL,
		city       TEXT NOT NULL,
		name       TEXT NOT NULL,
		university TEXT NOT NULL,
		major      TEXT NOT NULL
	);
`

const (
	deleteCitiesQuery = `DELETE FROM cities;`
	insertCityQuery   = `
		INSERT INTO cities (position, name, province, lng, lat)
		VALUES ($1, $2, $3, $4, $5);
	`
	deleteStudentsQuery = `DELETE FROM students;`
	insertStudentQuery  = `
		INSERT INTO students (position, province, city, name, university, major)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
)

// fetchPlacementsQuery joins every student with the first city of the same name,
// mirroring the first-match lookup of the in-memory table.
const fetchPlacementsQuery = `
	SELECT s.province, s.city, s.name, s.university, s.major, c.lng, c.lat
	FROM students s
	LEFT JOIN LATERAL (
		SELECT lng, lat
		FROM cities
		WHERE cities.name = s.city
		ORDER BY position ASC
		LIMIT 1
	) c ON true
	ORDER BY s.position ASC;
`

// EnsureSchema creates the cities and students tables if they do not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaQuery); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SaveCities replaces the contents of the cities table with cities, keeping their order.
func (r *Repository) SaveCities(ctx context.Context, cities []models.CityCoordinate) error {
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteCitiesQuery); err != nil {
			return fmt.Errorf("failed to clear cities: %w", err)
		}

		for pos, city := range cities {
			if _, err := tx.Exec(ctx, insertCityQuery, pos, city.Name, city.Province, city.Lng, city.Lat); err != nil {
				return fmt.Errorf("failed to insert city %s: %w", city.Name, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.log.DebugContext(ctx, "Cities exported", "count", len(cities))

	return nil
}

// SaveStudents replaces the contents of the students table with students, keeping their order.
func (r *Repository) SaveStudents(ctx context.Context, students []models.Student) error {
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteStudentsQuery); err != nil {
			return fmt.Errorf("failed to clear students: %w", err)
		}

		for pos, s := range students {
			_, err := tx.Exec(ctx, insertStudentQuery,
				pos, string(s.Province), s.City, s.Name, s.University, s.Major)
			if err != nil {
				return fmt.Errorf("failed to insert student %s: %w", s.Name, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.log.DebugContext(ctx, "Students exported", "count", len(students))

	return nil
}

// FetchPlacements reads the exported roster back, joined with the exported city table.
// Students whose city has no row come back with models.SourceMissing.
// A stored province outside the enumeration fails the read.
func (r *Repository) FetchPlacements(ctx context.Context) ([]models.Placement, error) {
	rows, err := r.db.Query(ctx, fetchPlacementsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query placements: %w", err)
	}
	defer rows.Close()

	var placements []models.Placement
	for rows.Next() {
		var (
			province string
			student  models.Student
			lng, lat *float64
		)
		if errScan := rows.Scan(
			&province, &student.City, &student.Name, &student.University, &student.Major, &lng, &lat,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan placement: %w", errScan)
		}

		if student.Province, err = models.ParseProvince(province); err != nil {
			return nil, fmt.Errorf("failed to read student %s: %w", student.Name, err)
		}

		placement := models.Placement{Student: student, Source: models.SourceMissing}
		if lng != nil && lat != nil {
			placement.Coordinates = &models.Coordinates{Longitude: *lng, Latitude: *lat}
			placement.Source = models.SourceTable
		}
		placements = append(placements, placement)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return placements, nil
}

// inTx runs fn inside a transaction, rolling back if fn fails.
func (r *Repository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.log.ErrorContext(ctx, "Failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
