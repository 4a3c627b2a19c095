package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/youra031220/Seoulmatebeta/internal/api/itinerary"
	"github.com/youra031220/Seoulmatebeta/internal/api/places"
	"github.com/youra031220/Seoulmatebeta/internal/api/preferences"
)

// Config contains dependencies needed for the router setup
type Config struct {
	PlaceHandler      *places.Handler
	PreferenceHandler *preferences.Handler
	ItineraryHandler  *itinerary.Handler

	AllowedOrigins []string
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/places", func(r chi.Router) {
			r.Get("/search", cfg.PlaceHandler.SearchPlaces)
			r.Get("/geocode", cfg.PlaceHandler.Geocode)
			r.Get("/reverse-geocode", cfg.PlaceHandler.ReverseGeocode)
		})

		r.Route("/preferences", func(r chi.Router) {
			r.Post("/analyze", cfg.PreferenceHandler.AnalyzePreference)
			r.Post("/wish", cfg.PreferenceHandler.TravelWish)
		})

		r.Route("/itinerary", func(r chi.Router) {
			r.Post("/search", cfg.ItineraryHandler.SearchWithPreference)
			r.Post("/plan", cfg.ItineraryHandler.PlanItinerary)
		})
	})

	return r
}
