package preferences

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
	preferenceService Service
	logger            *slog.Logger
}

func NewHandler(preferenceService Service, logger *slog.Logger) *Handler {
	return &Handler{
		preferenceService: preferenceService,
		logger:            logger,
	}
}

// AnalyzePreference returns the structured preference for a free-text
// travel message.
func (h *Handler) AnalyzePreference(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PreferenceHandler").Start(r.Context(), "AnalyzePreference", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/preferences/analyze"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "AnalyzePreference"))
	l.DebugContext(ctx, "Analyze preference handler invoked")

	var req types.AnalyzePreferenceRequest
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

	start := time.Now()
	pref, err := h.preferenceService.AnalyzePreference(ctx, req.Message, req.Context)
	metrics.Get().AIRequestDurationSeconds.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		l.ErrorContext(ctx, "Preference analysis failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to analyze the travel preference")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{"prefs": pref})
}

// TravelWish returns the conversational trip summary for a travel message.
func (h *Handler) TravelWish(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PreferenceHandler").Start(r.Context(), "TravelWish", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/preferences/wish"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "TravelWish"))
	l.DebugContext(ctx, "Travel wish handler invoked")

	var req types.AnalyzePreferenceRequest
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

	start := time.Now()
	reply, err := h.preferenceService.TravelWish(ctx, req.Message, req.Context)
	metrics.Get().AIRequestDurationSeconds.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		l.ErrorContext(ctx, "Travel wish generation failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate the travel summary")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, types.TravelWishResponse{Reply: reply})
}
