package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/UnknownOlympus/campusmap/internal/geocoding"
	"github.com/UnknownOlympus/campusmap/internal/metrics"
	"github.com/UnknownOlympus/campusmap/internal/models"
	"github.com/patrickmn/go-cache"
)

// ErrNoCoordinates is reported when a provider returns neither coordinates nor an error.
var ErrNoCoordinates = errors.New("provider returned no coordinates")

// CityLookup is the read API of the city coordinate table. *citydata.Table implements it.
type CityLookup interface {
	GetCityCoordinate(cityName string) (models.CityCoordinate, bool)
	GetCitiesByProvince(provinceName string) []models.CityCoordinate
}

// PlacementService joins students with the city coordinate table by exact city name.
// Cities missing from the table are resolved through an optional geocoding provider;
// without one they are reported as models.SourceMissing.
type PlacementService struct {
	log          *slog.Logger       // Logger for logging service activities
	lookup       CityLookup         // City coordinate table
	provider     geocoding.Provider // Optional provider for cities missing from the table, may be nil
	providerName string             // Name of the provider for metrics labeling
	metrics      *metrics.Metrics   // Metrics for tracking service performance
	numWorkers   int                // Number of concurrent provider workers
	cache        *cache.Cache       // Provider results keyed by address, nil when caching is disabled
}

// NewPlacementService creates a new instance of PlacementService.
// A nil provider disables resolution of cities missing from the table.
// Provider results are cached for cacheTTL; a cacheTTL of zero or less disables the cache.
func NewPlacementService(
	log *slog.Logger,
	lookup CityLookup,
	provider geocoding.Provider,
	providerName string,
	metrics *metrics.Metrics,
	numWorkers int,
	cacheTTL time.Duration,
) *PlacementService {
	if numWorkers < 1 {
		numWorkers = 1
	}

	var results *cache.Cache
	if cacheTTL > 0 {
		// No janitor goroutine; expired entries are dropped at the start of each Place call.
		results = cache.New(cacheTTL, 0)
	}

	return &PlacementService{
		log:          log,
		lookup:       lookup,
		provider:     provider,
		providerName: providerName,
		metrics:      metrics,
		numWorkers:   numWorkers,
		cache:        results,
	}
}

// Place returns one placement per student, in input order.
func (ps *PlacementService) Place(ctx context.Context, students []models.Student) []models.Placement {
	placements := make([]models.Placement, len(students))
	var unresolved []int

	for idx, student := range students {
		placements[idx] = models.Placement{Student: student, Source: models.SourceMissing}

		city, ok := ps.lookup.GetCityCoordinate(student.City)
		if !ok {
			ps.metrics.CityLookups.WithLabelValues("miss").Inc()
			unresolved = append(unresolved, idx)
			continue
		}

		ps.metrics.CityLookups.WithLabelValues("hit").Inc()
		coords := city.Coordinates()
		placements[idx].Coordinates = &coords
		placements[idx].Source = models.SourceTable
	}

	if len(unresolved) > 0 && ps.provider != nil {
		if ps.cache != nil {
			ps.cache.DeleteExpired()
		}
		ps.resolve(ctx, placements, unresolved)
	}

	for _, placement := range placements {
		ps.metrics.Placements.WithLabelValues(string(placement.Source)).Inc()
		if placement.Source == models.SourceMissing {
			ps.log.WarnContext(ctx, "No coordinates for student city",
				"student", placement.Student.Name,
				"province", placement.Student.Province,
				"city", placement.Student.City)
		}
	}

	return placements
}

// resolve starts a worker pool that geocodes the placements at the given positions.
// Each position is written by exactly one worker.
func (ps *PlacementService) resolve(ctx context.Context, placements []models.Placement, positions []int) {
	ps.log.InfoContext(ctx, "Resolving cities missing from the table",
		"jobs", len(positions),
		"num_workers", ps.numWorkers)

	jobs := make(chan int, len(positions))
	var wgr sync.WaitGroup

	for i := 1; i <= ps.numWorkers; i++ {
		wgr.Add(1)
		go ps.worker(ctx, i, &wgr, jobs, placements)
	}

	for _, pos := range positions {
		jobs <- pos
	}
	close(jobs)

	wgr.Wait()
}

func (ps *PlacementService) worker(
	ctx context.Context,
	idx int,
	wg *sync.WaitGroup,
	jobs <-chan int,
	placements []models.Placement,
) {
	defer wg.Done()
	for pos := range jobs {
		ps.metrics.ActiveWorkers.Inc()

		student := placements[pos].Student
		address := Address(student)

		if ps.cache != nil {
			if coords, found := ps.cache.Get(address); found {
				cached, _ := coords.(models.Coordinates)
				placements[pos].Coordinates = &cached
				placements[pos].Source = models.SourceProvider
				ps.metrics.ActiveWorkers.Dec()
				continue
			}
		}

		ps.log.DebugContext(ctx, "Geocoding student city", "worker", idx, "address", address)

		startTime := time.Now()
		coords, err := ps.provider.Geocode(ctx, address)
		ps.metrics.RequestSeconds.WithLabelValues(ps.providerName).Observe(time.Since(startTime).Seconds())

		if err == nil && coords == nil {
			err = ErrNoCoordinates
		}
		if err != nil {
			ps.log.ErrorContext(ctx, "Failed to geocode", "worker", idx, "address", address, "error", err)
			ps.metrics.ProviderErrors.Inc()
			ps.metrics.ActiveWorkers.Dec()
			continue
		}

		if ps.cache != nil {
			ps.cache.Set(address, *coords, cache.DefaultExpiration)
		}
		placements[pos].Coordinates = coords
		placements[pos].Source = models.SourceProvider

		ps.metrics.ActiveWorkers.Dec()
	}
}

// Address builds the provider query for a student's city: "<province> <city>".
func Address(student models.Student) string {
	if student.City == "" {
		return string(student.Province)
	}
	return string(student.Province) + " " + student.City
}

// Missing returns the students whose placement has no coordinates, in order.
func Missing(placements []models.Placement) []models.Student {
	var out []models.Student
	for _, p := range placements {
		if p.Source == models.SourceMissing {
			out = append(out, p.Student)
		}
	}
	return out
}

// UncoveredProvinces lists the enumerated provinces that have no city in the table,
// in enumeration order.
func (ps *PlacementService) UncoveredProvinces() []models.Province {
	var out []models.Province
	for _, p := range models.Provinces() {
		if len(ps.lookup.GetCitiesByProvince(string(p))) == 0 {
			out = append(out, p)
		}
	}
	return out
}

// ProvincesWithoutCities lists the provinces that occur in students but have no city
// in the table, in order of first occurrence.
func (ps *PlacementService) ProvincesWithoutCities(students []models.Student) []models.Province {
	seen := make(map[models.Province]bool)
	var out []models.Province
	for _, student := range students {
		if seen[student.Province] {
			continue
		}
		seen[student.Province] = true
		if len(ps.lookup.GetCitiesByProvince(string(student.Province))) == 0 {
			out = append(out, student.Province)
		}
	}
	return out
}
