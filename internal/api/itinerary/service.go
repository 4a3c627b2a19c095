// Package itinerary orchestrates the full planning flow: preference
// extraction, weight derivation, place search, scoring, selection,
// sequencing, and the final timetable.
package itinerary

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/youra031220/Seoulmatebeta/internal/api/places"
	"github.com/youra031220/Seoulmatebeta/internal/api/preferences"
	"github.com/youra031220/Seoulmatebeta/internal/planner/route"
	"github.com/youra031220/Seoulmatebeta/internal/planner/schedule"
	"github.com/youra031220/Seoulmatebeta/internal/planner/scoring"
	"github.com/youra031220/Seoulmatebeta/internal/planner/selection"
	"github.com/youra031220/Seoulmatebeta/internal/planner/weights"
	"github.com/youra031220/Seoulmatebeta/internal/types"
)

// Plan defaults applied when the request leaves a field unset.
const (
	defaultDayStartMinutes = 10 * 60
	defaultDayEndMinutes   = 21 * 60
	defaultNumPlaces       = 5
	defaultMaxLegMinutes   = 40

	defaultStartName = "출발지"
	defaultEndName   = "도착지"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for itinerary planning.
type Service interface {
	// SearchWithPreference runs the pipeline up to scoring and returns the
	// ranked candidate pool.
	SearchWithPreference(ctx context.Context, req types.SearchWithPreferenceRequest) (*types.SearchWithPreferenceResponse, error)
	// PlanItinerary runs the complete pipeline and returns the ordered
	// route plus its timetable.
	PlanItinerary(ctx context.Context, req types.PlanItineraryRequest) (*types.PlanItineraryResponse, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger    *slog.Logger
	prefs     preferences.Service
	places    places.Service
	scorer    *scoring.Scorer
	sequencer *route.Sequencer
}

// NewService creates a new itinerary service instance.
func NewService(prefs preferences.Service, placeSvc places.Service, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		prefs:     prefs,
		places:    placeSvc,
		scorer:    scoring.NewScorer(nil),
		sequencer: route.NewSequencer(nil),
	}
}

// searchAndScore runs preference extraction, weight derivation, search, and
// scoring. Both public operations share this front half.
func (s *ServiceImpl) searchAndScore(ctx context.Context, message string, uiContext map[string]any,
	baseArea string, origin types.GeoPoint, mandatory []types.MandatoryStop) (*types.SearchWithPreferenceResponse, error) {

	l := s.logger.With(slog.String("method", "searchAndScore"))

	pref, err := s.prefs.AnalyzePreference(ctx, message, uiContext)
	if err != nil {
		return nil, fmt.Errorf("analyzing preference: %w", err)
	}

	profile := weights.DeriveWeights(*pref)
	valid, warnings := weights.ValidateWeights(profile)
	if !valid {
		l.WarnContext(ctx, "Weight validation reported issues", slog.Any("warnings", warnings))
	}

	pois, city, err := s.places.SearchWithPreference(ctx, *pref, baseArea)
	if err != nil {
		return nil, fmt.Errorf("searching places: %w", err)
	}

	var anchor *types.PlaceDetailedInfo
	for _, m := range mandatory {
		if pt := m.Point(); !pt.IsZero() {
			anchor = &types.PlaceDetailedInfo{
				Name:      m.Name,
				Latitude:  m.Latitude,
				Longitude: m.Longitude,
				Category:  m.Category,
			}
			break
		}
	}

	scored := s.scorer.ScorePOIs(pois, *pref, profile, origin, anchor)
	bias := places.DetectSearchBias(pois, mandatory, pref.Themes)

	return &types.SearchWithPreferenceResponse{
		Preference:     *pref,
		Weights:        profile,
		WeightWarnings: warnings,
		City:           city,
		POIs:           scored,
		Bias:           bias,
	}, nil
}

func (s *ServiceImpl) SearchWithPreference(ctx context.Context, req types.SearchWithPreferenceRequest) (*types.SearchWithPreferenceResponse, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "SearchWithPreference", trace.WithAttributes(
		attribute.String("base_area", req.BaseArea),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "SearchWithPreference"))
	l.DebugContext(ctx, "Preference search invoked", slog.String("base_area", req.BaseArea))

	resp, err := s.searchAndScore(ctx, req.Message, req.Context, req.BaseArea, req.Start, nil)
	if err != nil {
		l.ErrorContext(ctx, "Preference search failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Preference search failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int("results", len(resp.POIs)))
	span.SetStatus(codes.Ok, "Preference search completed")
	return resp, nil
}

// dayWindow resolves the request's day window, letting "HH:MM" fields win
// over the minute fields and falling back to the defaults.
func dayWindow(req types.PlanItineraryRequest) (int, int) {
	startMin := req.DayStartMinutes
	endMin := req.DayEndMinutes
	if req.StartTime != "" {
		startMin = schedule.ToMinutes(req.StartTime)
	}
	if req.EndTime != "" {
		endMin = schedule.ToMinutes(req.EndTime)
	}
	if startMin <= 0 {
		startMin = defaultDayStartMinutes
	}
	if endMin <= 0 || endMin <= startMin {
		endMin = defaultDayEndMinutes
	}
	return startMin, endMin
}

func (s *ServiceImpl) PlanItinerary(ctx context.Context, req types.PlanItineraryRequest) (*types.PlanItineraryResponse, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "PlanItinerary", trace.WithAttributes(
		attribute.String("base_area", req.BaseArea),
		attribute.Int("mandatory_stops", len(req.MandatoryStops)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "PlanItinerary"))
	l.DebugContext(ctx, "Plan itinerary invoked", slog.String("base_area", req.BaseArea))

	if req.Start.IsZero() || req.End.IsZero() {
		err := fmt.Errorf("start and end coordinates are required")
		span.RecordError(err)
		span.SetStatus(codes.Error, "Missing endpoints")
		return nil, err
	}

	searched, err := s.searchAndScore(ctx, req.Message, req.Context, req.BaseArea, req.Start, req.MandatoryStops)
	if err != nil {
		l.ErrorContext(ctx, "Plan pipeline failed during search", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Plan pipeline failed during search")
		return nil, err
	}

	numPlaces := req.NumPlaces
	if numPlaces <= 0 {
		numPlaces = defaultNumPlaces
	}
	maxLeg := req.MaxLegMinutes
	if maxLeg <= 0 {
		maxLeg = defaultMaxLegMinutes
	}
	startMin, endMin := dayWindow(req)

	candidates := make([]types.PlaceDetailedInfo, 0, len(searched.POIs))
	for _, p := range searched.POIs {
		candidates = append(candidates, p.PlaceDetailedInfo)
	}

	selected := selection.SelectPOIs(numPlaces, req.Meals,
		searched.Preference.DietPreferences, searched.Preference.Themes,
		candidates, req.MandatoryStops)

	plannedRoute, err := s.sequencer.OptimizeRoute(selected, req.Start, req.End,
		startMin, endMin, maxLeg, req.MandatoryStops, searched.Weights)
	if err != nil {
		l.ErrorContext(ctx, "Route sequencing failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Route sequencing failed")
		return nil, fmt.Errorf("sequencing route: %w", err)
	}
	for _, warning := range plannedRoute.Warnings {
		l.WarnContext(ctx, "Route warning", slog.String("warning", warning))
	}

	startName := req.StartName
	if startName == "" {
		startName = defaultStartName
	}
	endName := req.EndName
	if endName == "" {
		endName = defaultEndName
	}
	rows := schedule.Generate(plannedRoute, startMin, endMin, startName, endName)

	l.InfoContext(ctx, "Itinerary planned",
		slog.Int("candidates", len(candidates)),
		slog.Int("selected", len(selected)),
		slog.Int("route_stops", len(plannedRoute.Nodes)),
		slog.Int("warnings", len(plannedRoute.Warnings)))
	span.SetAttributes(
		attribute.Int("selected", len(selected)),
		attribute.Int("route_stops", len(plannedRoute.Nodes)),
	)
	span.SetStatus(codes.Ok, "Itinerary planned")

	return &types.PlanItineraryResponse{
		Preference:     searched.Preference,
		Weights:        searched.Weights,
		WeightWarnings: searched.WeightWarnings,
		City:           searched.City,
		RankedPOIs:     searched.POIs,
		Selected:       selected,
		Route:          plannedRoute,
		Schedule:       rows,
		Bias:           searched.Bias,
	}, nil
}
