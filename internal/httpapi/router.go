// Package httpapi serves the read API of the city table and the student roster over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/campusmap/internal/citydata"
	"github.com/UnknownOlympus/campusmap/internal/models"
	"github.com/UnknownOlympus/campusmap/internal/service"
	"github.com/UnknownOlympus/campusmap/internal/styling"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultPlaceTimeout bounds provider resolution for a single request when Dependencies.PlaceTimeout is unset.
const DefaultPlaceTimeout = 8 * time.Second

// Placer joins students with coordinates. *service.PlacementService implements it.
type Placer interface {
	Place(ctx context.Context, students []models.Student) []models.Placement
	UncoveredProvinces() []models.Province
}

// Exporter reads placements back from the database export. repository.Interface implements it.
type Exporter interface {
	FetchPlacements(ctx context.Context) ([]models.Placement, error)
}

// Pinger reports database health. *pgxpool.Pool implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies groups everything the router serves. DB and Export are nil when the export is disabled.
type Dependencies struct {
	Log          *slog.Logger
	Cities       *citydata.Table
	Students     []models.Student
	Placer       Placer
	PlaceTimeout time.Duration // Upper bound for provider resolution per request, below the server write timeout.
	Styling      *styling.Config
	DB           Pinger
	Export       Exporter
	Registry     *prometheus.Registry
}

type handler struct {
	Dependencies
}

// NewRouter returns the HTTP handler for every read endpoint plus /healthz and /metrics.
func NewRouter(deps Dependencies) http.Handler {
	h := &handler{Dependencies: deps}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /cities", h.listCities)
	mux.HandleFunc("GET /cities/{name}", h.getCity)
	mux.HandleFunc("GET /provinces", h.listProvinces)
	mux.HandleFunc("GET /provinces/uncovered", h.uncoveredProvinces)
	mux.HandleFunc("GET /provinces/{province}/cities", h.citiesByProvince)
	mux.HandleFunc("GET /students", h.listStudents)
	mux.HandleFunc("GET /placements", h.listPlacements)
	mux.HandleFunc("GET /placements/missing", h.missingPlacements)
	mux.HandleFunc("GET /stats/provinces", h.provinceStats)
	mux.HandleFunc("GET /stats/universities", h.universityStats)
	mux.HandleFunc("GET /export/placements", h.exportedPlacements)
	mux.HandleFunc("GET /styling/presets", h.stylingPresets)
	mux.HandleFunc("GET /healthz", h.healthz)
	mux.Handle("GET /metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	return mux
}

func (h *handler) listCities(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(r.Context(), w, http.StatusOK, h.Cities.All())
}

func (h *handler) getCity(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	city, ok := h.Cities.GetCityCoordinate(name)
	if !ok {
		h.writeJSON(r.Context(), w, http.StatusNotFound, errorBody{Error: "city not found: " + name})
		return
	}
	h.writeJSON(r.Context(), w, http.StatusOK, city)
}

func (h *handler) listProvinces(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(r.Context(), w, http.StatusOK, h.Cities.Provinces())
}

func (h *handler) uncoveredProvinces(w http.ResponseWriter, r *http.Request) {
	provinces := h.Placer.UncoveredProvinces()
	if provinces == nil {
		provinces = []models.Province{}
	}
	h.writeJSON(r.Context(), w, http.StatusOK, provinces)
}

func (h *handler) citiesByProvince(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(r.Context(), w, http.StatusOK, h.Cities.GetCitiesByProvince(r.PathValue("province")))
}

func (h *handler) listStudents(w http.ResponseWriter, r *http.Request) {
	students := h.Students
	if students == nil {
		students = []models.Student{}
	}
	h.writeJSON(r.Context(), w, http.StatusOK, students)
}

func (h *handler) listPlacements(w http.ResponseWriter, r *http.Request) {
	placements := h.place(r.Context())
	if placements == nil {
		placements = []models.Placement{}
	}
	h.writeJSON(r.Context(), w, http.StatusOK, placements)
}

func (h *handler) missingPlacements(w http.ResponseWriter, r *http.Request) {
	missing := service.Missing(h.place(r.Context()))
	if missing == nil {
		missing = []models.Student{}
	}
	h.writeJSON(r.Context(), w, http.StatusOK, missing)
}

// place resolves the roster with a deadline so slow providers cannot outlive the write timeout.
// Cities still unresolved when it expires are reported as missing.
func (h *handler) place(ctx context.Context) []models.Placement {
	timeout := h.PlaceTimeout
	if timeout <= 0 {
		timeout = DefaultPlaceTimeout
	}
	placeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return h.Placer.Place(placeCtx, h.Students)
}

func (h *handler) provinceStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(r.Context(), w, http.StatusOK, service.CountByProvince(h.Students))
}

func (h *handler) universityStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(r.Context(), w, http.StatusOK, service.CountByUniversity(h.Students))
}

func (h *handler) exportedPlacements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.Export == nil {
		h.writeJSON(ctx, w, http.StatusServiceUnavailable, errorBody{Error: "database export is disabled"})
		return
	}

	placements, err := h.Export.FetchPlacements(ctx)
	if err != nil {
		h.Log.ErrorContext(ctx, "Failed to fetch exported placements", "error", err)
		h.writeJSON(ctx, w, http.StatusInternalServerError, errorBody{Error: "failed to fetch exported placements"})
		return
	}
	if placements == nil {
		placements = []models.Placement{}
	}
	h.writeJSON(ctx, w, http.StatusOK, placements)
}

func (h *handler) stylingPresets(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(r.Context(), w, http.StatusOK, h.Styling)
}

func (h *handler) healthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Log.DebugContext(ctx, "Performing health checks...")

	status, body := http.StatusOK, "OK"
	if h.DB != nil {
		if err := h.DB.Ping(ctx); err != nil {
			status, body = http.StatusServiceUnavailable, "DB ping failed"
		}
	}

	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		h.Log.ErrorContext(ctx, "failed to write reply", "error", err)
	}

	h.Log.DebugContext(ctx, "Health checks completed", "status", status)
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *handler) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Log.ErrorContext(ctx, "failed to write reply", "error", err)
	}
}
