package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnknownOlympus/campusmap/internal/citydata"
	"github.com/UnknownOlympus/campusmap/internal/config"
	"github.com/UnknownOlympus/campusmap/internal/geocoding"
	"github.com/UnknownOlympus/campusmap/internal/httpapi"
	"github.com/UnknownOlympus/campusmap/internal/metrics"
	"github.com/UnknownOlympus/campusmap/internal/models"
	"github.com/UnknownOlympus/campusmap/internal/repository"
	"github.com/UnknownOlympus/campusmap/internal/roster"
	"github.com/UnknownOlympus/campusmap/internal/service"
	"github.com/UnknownOlympus/campusmap/internal/styling"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// HTTP server timeouts. Placement requests get a deadline below writeTimeout.
const (
	readTimeout     = 5 * time.Second
	writeTimeout    = 10 * time.Second
	shutdownTimeout = 5 * time.Second
	placeTimeout    = writeTimeout - 2*time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	students := roster.Students()
	if cfg.RosterFile != "" {
		loaded, err := roster.Load(cfg.RosterFile)
		if err != nil {
			log.Fatalf("Failed to load roster: %v", err)
		}
		students = loaded
		logger.InfoContext(ctx, "Roster loaded from file", "path", cfg.RosterFile, "students", len(students))
	}

	styles, err := styling.Load(cfg.StylingConfig)
	if err != nil {
		log.Fatalf("Failed to load styling presets: %v", err)
	}
	logger.InfoContext(ctx, "Styling presets loaded", "presets", styles.Names())

	geoProvider, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:      geocoding.ProviderType(cfg.ProviderType),
		APIKey:    cfg.APIKey,
		RateLimit: cfg.RateLimit,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("Failed to create geocoding provider: %v", err)
	}
	logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.ProviderType)

	placer := service.NewPlacementService(
		logger,
		citydata.Default(),
		geoProvider,
		cfg.ProviderType,
		appMetrics,
		cfg.Workers,
		cfg.CacheTTL,
	)

	if uncovered := placer.ProvincesWithoutCities(students); len(uncovered) > 0 {
		logger.WarnContext(ctx, "Roster references provinces without table cities", "provinces", uncovered)
	}

	deps := httpapi.Dependencies{
		Log:          logger,
		Cities:       citydata.Default(),
		Students:     students,
		Placer:       placer,
		PlaceTimeout: placeTimeout,
		Styling:      styles,
		Registry:     reg,
	}

	group, gctx := errgroup.WithContext(ctx)

	if cfg.ExportEnabled() {
		dtb, errDB := repository.NewDatabase(
			ctx, cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
		)
		if errDB != nil {
			log.Fatalf("Failed to connect to DB: %v", errDB)
		}
		defer dtb.Close()

		deps.DB = dtb
		repo := repository.NewRepository(dtb, logger)
		deps.Export = repo
		group.Go(func() error {
			return exportTables(gctx, logger, repo, students)
		})
	}

	group.Go(func() error {
		warmPlacements(gctx, logger, placer, students)
		return nil
	})

	group.Go(func() error {
		return serve(gctx, logger, httpapi.NewRouter(deps), cfg.Port)
	})

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	if err = group.Wait(); err != nil {
		logger.ErrorContext(ctx, "Application stopped with error", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// exportTables writes both tables to PostgreSQL.
func exportTables(ctx context.Context, log *slog.Logger, repo repository.Interface, students []models.Student) error {
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := repo.SaveCities(ctx, citydata.All()); err != nil {
		return err
	}
	if err := repo.SaveStudents(ctx, students); err != nil {
		return err
	}

	log.InfoContext(ctx, "Tables exported to database",
		"cities", len(citydata.All()),
		"students", len(students))

	return nil
}

// warmPlacements resolves the roster once at startup so provider results are cached
// before the first request.
func warmPlacements(ctx context.Context, log *slog.Logger, placer httpapi.Placer, students []models.Student) {
	missing := service.Missing(placer.Place(ctx, students))
	log.InfoContext(ctx, "Placements resolved",
		"students", len(students),
		"missing", len(missing))
}

// serve runs the HTTP server until ctx is canceled, then shuts it down.
func serve(ctx context.Context, log *slog.Logger, handler http.Handler, port int) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "Starting http server", "port", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.InfoContext(ctx, "Shutdown signal received. Stopping http server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}

	return nil
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelError,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
