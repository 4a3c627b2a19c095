package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/youra031220/Seoulmatebeta/internal/types"
)

const (
	searchCacheTTL     = 10 * time.Minute
	searchCacheCleanup = 15 * time.Minute

	// Concurrent provider calls per plan.
	maxConcurrentSearches = 4
)

// SearchClient is the slice of the Naver client this service needs.
type SearchClient interface {
	LocalSearch(ctx context.Context, query string, display int) ([]types.PlaceDetailedInfo, error)
	Geocode(ctx context.Context, address string) ([]GeocodeAddress, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (json.RawMessage, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for place search.
type Service interface {
	// SearchPlaces runs one raw local search query.
	SearchPlaces(ctx context.Context, query string) ([]types.PlaceDetailedInfo, error)
	// SearchWithPreference fans the preference's query set out to the
	// provider and returns the deduplicated candidate pool.
	SearchWithPreference(ctx context.Context, pref types.Preference, baseArea string) ([]types.PlaceDetailedInfo, string, error)
	// Geocode resolves a free-text address into candidate coordinates.
	Geocode(ctx context.Context, address string) ([]GeocodeAddress, error)
	// ReverseGeocode resolves coordinates into the provider's address payload.
	ReverseGeocode(ctx context.Context, lat, lon float64) (json.RawMessage, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger *slog.Logger
	client SearchClient
	cache  *cache.Cache
}

// NewService creates a new place search service instance.
func NewService(client SearchClient, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		client: client,
		cache:  cache.New(searchCacheTTL, searchCacheCleanup),
	}
}

// cachedLocalSearch serves repeated queries from memory; identical queries
// inside one plan or across nearby plans skip the provider round trip.
func (s *ServiceImpl) cachedLocalSearch(ctx context.Context, query string, display int) ([]types.PlaceDetailedInfo, error) {
	key := fmt.Sprintf("local:%s:%d", query, display)
	if hit, found := s.cache.Get(key); found {
		if places, ok := hit.([]types.PlaceDetailedInfo); ok {
			return places, nil
		}
	}

	places, err := s.client.LocalSearch(ctx, query, display)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, places, cache.DefaultExpiration)
	return places, nil
}

func (s *ServiceImpl) SearchPlaces(ctx context.Context, query string) ([]types.PlaceDetailedInfo, error) {
	ctx, span := otel.Tracer("PlaceService").Start(ctx, "SearchPlaces", trace.WithAttributes(
		attribute.String("query", query),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "SearchPlaces"), slog.String("query", query))
	l.DebugContext(ctx, "Running local search")

	places, err := s.cachedLocalSearch(ctx, query, defaultDisplay)
	if err != nil {
		l.ErrorContext(ctx, "Local search failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Local search failed")
		return nil, fmt.Errorf("error searching places: %w", err)
	}

	span.SetAttributes(attribute.Int("results", len(places)))
	span.SetStatus(codes.Ok, "Local search completed")
	return places, nil
}

func dedupKey(p types.PlaceDetailedInfo) string {
	return p.Telephone + "_" + p.Name
}

func dedupePlaces(places []types.PlaceDetailedInfo) []types.PlaceDetailedInfo {
	seen := make(map[string]bool, len(places))
	out := make([]types.PlaceDetailedInfo, 0, len(places))
	for _, p := range places {
		key := dedupKey(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

func countFood(places []types.PlaceDetailedInfo) int {
	n := 0
	for _, p := range places {
		if p.CategoryType == types.CategoryRestaurant || p.CategoryType == types.CategoryCafe {
			n++
		}
	}
	return n
}

func (s *ServiceImpl) SearchWithPreference(ctx context.Context, pref types.Preference, baseArea string) ([]types.PlaceDetailedInfo, string, error) {
	ctx, span := otel.Tracer("PlaceService").Start(ctx, "SearchWithPreference", trace.WithAttributes(
		attribute.String("base_area", baseArea),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "SearchWithPreference"), slog.String("base_area", baseArea))

	queries := BuildSearchQueries(pref, baseArea)
	l.DebugContext(ctx, "Built search queries",
		slog.String("city", queries.City),
		slog.Int("poi_queries", len(queries.POIQueries)),
		slog.Int("food_queries", len(queries.FoodQueries)))
	span.SetAttributes(
		attribute.String("city", queries.City),
		attribute.StringSlice("poi_queries", queries.POIQueries),
		attribute.StringSlice("food_queries", queries.FoodQueries),
	)

	all := append(append([]string{}, queries.POIQueries...), queries.FoodQueries...)
	results := make([][]types.PlaceDetailedInfo, len(all))

	// Fan the queries out; one flaky query degrades the pool instead of
	// failing the whole search.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSearches)
	var mu sync.Mutex
	var failed int
	for i, q := range all {
		g.Go(func() error {
			items, err := s.cachedLocalSearch(gctx, q, defaultDisplay)
			if err != nil {
				l.WarnContext(gctx, "Local search query failed", slog.String("query", q), slog.Any("error", err))
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Search fan-out canceled")
		return nil, "", fmt.Errorf("error searching with preference: %w", err)
	}
	if failed == len(all) {
		err := fmt.Errorf("all %d search queries failed", failed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "All search queries failed")
		return nil, "", err
	}

	var pool []types.PlaceDetailedInfo
	var foodPool []types.PlaceDetailedInfo
	for i, items := range results {
		pool = append(pool, items...)
		if i >= len(queries.POIQueries) {
			foodPool = append(foodPool, items...)
		}
	}

	// A plan without a single eatable place breaks meal slots downstream,
	// so fall back to a value-focused food query.
	if countFood(foodPool) == 0 {
		fallback := buildCityQuery(queries.City, "가성비 맛집")
		l.InfoContext(ctx, "No food results, running fallback query", slog.String("query", fallback))
		if items, err := s.cachedLocalSearch(ctx, fallback, defaultDisplay); err == nil {
			pool = append(pool, items...)
		} else {
			l.WarnContext(ctx, "Fallback food query failed", slog.Any("error", err))
		}
	}

	pois := dedupePlaces(pool)

	l.InfoContext(ctx, "Preference search completed",
		slog.Int("raw_results", len(pool)),
		slog.Int("unique_results", len(pois)),
		slog.Int("failed_queries", failed))
	span.SetAttributes(attribute.Int("results", len(pois)))
	span.SetStatus(codes.Ok, "Preference search completed")
	return pois, queries.City, nil
}

func (s *ServiceImpl) Geocode(ctx context.Context, address string) ([]GeocodeAddress, error) {
	ctx, span := otel.Tracer("PlaceService").Start(ctx, "Geocode")
	defer span.End()

	addresses, err := s.client.Geocode(ctx, address)
	if err != nil {
		s.logger.ErrorContext(ctx, "Geocode failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Geocode failed")
		return nil, fmt.Errorf("error geocoding address: %w", err)
	}

	span.SetStatus(codes.Ok, "Geocode completed")
	return addresses, nil
}

func (s *ServiceImpl) ReverseGeocode(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	ctx, span := otel.Tracer("PlaceService").Start(ctx, "ReverseGeocode")
	defer span.End()

	payload, err := s.client.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		s.logger.ErrorContext(ctx, "Reverse geocode failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Reverse geocode failed")
		return nil, fmt.Errorf("error reverse geocoding: %w", err)
	}

	span.SetStatus(codes.Ok, "Reverse geocode completed")
	return payload, nil
}
