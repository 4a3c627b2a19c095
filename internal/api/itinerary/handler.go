package itinerary

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/youra031220/Seoulmatebeta/app/observability/metrics"
	"github.com/youra031220/Seoulmatebeta/internal/api"
	"github.com/youra031220/Seoulmatebeta/internal/types"
)

type Handler struct {
	itineraryService Service
	logger           *slog.Logger
}

func NewHandler(itineraryService Service, logger *slog.Logger) *Handler {
	return &Handler{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// SearchWithPreference returns the ranked candidate pool for a preference
// message around a base area.
func (h *Handler) SearchWithPreference(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "SearchWithPreference", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itinerary/search"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SearchWithPreference"))
	l.DebugContext(ctx, "Search with preference handler invoked")

	var req types.SearchWithPreferenceRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.BaseArea == "" || req.Message == "" {
		l.ErrorContext(ctx, "Missing required fields")
		api.ErrorResponse(w, r, http.StatusBadRequest, "baseArea and message are required")
		return
	}

	resp, err := h.itineraryService.SearchWithPreference(ctx, req)
	if err != nil {
		l.ErrorContext(ctx, "Preference search failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to search places for the preference")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// PlanItinerary runs the full planning pipeline.
func (h *Handler) PlanItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "PlanItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itinerary/plan"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "PlanItinerary"))
	l.DebugContext(ctx, "Plan itinerary handler invoked")

	var req types.PlanItineraryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.Message == "" {
		l.ErrorContext(ctx, "Missing preference message")
		api.ErrorResponse(w, r, http.StatusBadRequest, "message is required")
		return
	}
	if req.Start.IsZero() || req.End.IsZero() {
		l.ErrorContext(ctx, "Missing start or end coordinates")
		api.ErrorResponse(w, r, http.StatusBadRequest, "start and end coordinates are required")
		return
	}

	m := metrics.Get()
	start := time.Now()
	resp, err := h.itineraryService.PlanItinerary(ctx, req)
	m.PlanRequestsTotal.Add(ctx, 1)
	m.PlanDurationSeconds.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		l.ErrorContext(ctx, "Planning failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to plan the itinerary")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}
