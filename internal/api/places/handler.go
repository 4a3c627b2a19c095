package places

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/youra031220/Seoulmatebeta/app/observability/metrics"
	"github.com/youra031220/Seoulmatebeta/internal/api"
	"github.com/youra031220/Seoulmatebeta/internal/types"
)

type Handler struct {
	placeService Service
	logger       *slog.Logger
}

func NewHandler(placeService Service, logger *slog.Logger) *Handler {
	return &Handler{
		placeService: placeService,
		logger:       logger,
	}
}

// SearchPlaces runs a raw local search query. Empty queries return an empty
// item list rather than an error.
func (h *Handler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlaceHandler").Start(r.Context(), "SearchPlaces", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/places/search"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SearchPlaces"))

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{"items": []types.PlaceDetailedInfo{}})
		return
	}

	m := metrics.Get()
	start := time.Now()
	items, err := h.placeService.SearchPlaces(ctx, query)
	m.PlaceSearchDurationSeconds.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		m.PlaceSearchErrorsTotal.Add(ctx, 1)
		l.ErrorContext(ctx, "Place search failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to search places")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{"items": items})
}

// Geocode resolves a free-text address into candidate coordinates.
func (h *Handler) Geocode(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlaceHandler").Start(r.Context(), "Geocode", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/places/geocode"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Geocode"))

	addr := strings.TrimSpace(r.URL.Query().Get("addr"))
	if addr == "" {
		api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{"addresses": []GeocodeAddress{}})
		return
	}

	addresses, err := h.placeService.Geocode(ctx, addr)
	if err != nil {
		l.ErrorContext(ctx, "Geocode failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to geocode the address")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{"addresses": addresses})
}

// ReverseGeocode resolves coordinates into the provider's address payload.
func (h *Handler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlaceHandler").Start(r.Context(), "ReverseGeocode", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/places/reverse-geocode"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ReverseGeocode"))

	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		l.ErrorContext(ctx, "Invalid coordinates")
		api.ErrorResponse(w, r, http.StatusBadRequest, "lat and lon are required numeric parameters")
		return
	}

	payload, err := h.placeService.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		l.ErrorContext(ctx, "Reverse geocode failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to reverse geocode the coordinates")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
