package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/youra031220/Seoulmatebeta/internal/types"
)

// AIClient is the slice of the generative client this service needs.
type AIClient interface {
	GenerateResponse(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for preference extraction.
type Service interface {
	// AnalyzePreference turns a free-text travel wish plus the selected UI
	// options into a structured preference.
	AnalyzePreference(ctx context.Context, message string, uiContext map[string]any) (*types.Preference, error)
	// TravelWish produces the conversational trip summary in the user's
	// own language.
	TravelWish(ctx context.Context, message string, uiContext map[string]any) (string, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger *slog.Logger
	ai     AIClient
}

// NewService creates a new preference service instance.
func NewService(ai AIClient, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		ai:     ai,
	}
}

func marshalContext(uiContext map[string]any) string {
	if len(uiContext) == 0 {
		return "{}"
	}
	b, err := json.MarshalIndent(uiContext, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

func (s *ServiceImpl) AnalyzePreference(ctx context.Context, message string, uiContext map[string]any) (*types.Preference, error) {
	ctx, span := otel.Tracer("PreferenceService").Start(ctx, "AnalyzePreference", trace.WithAttributes(
		attribute.Int("message.length", len(message)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "AnalyzePreference"))
	l.DebugContext(ctx, "Analyzing travel preference", slog.Int("message_length", len(message)))

	prompt := analyzePreferencePrompt(message, marshalContext(uiContext))
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	txt, err := s.ai.GenerateResponse(ctx, prompt, config)
	if err != nil {
		l.ErrorContext(ctx, "Failed to generate preference analysis", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate preference analysis")
		return nil, fmt.Errorf("error analyzing travel preference: %w", err)
	}

	var pref types.Preference
	if err := json.Unmarshal([]byte(cleanJSONResponse(txt)), &pref); err != nil {
		l.ErrorContext(ctx, "Failed to parse preference JSON", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to parse preference JSON")
		return nil, fmt.Errorf("error parsing preference JSON: %w", err)
	}

	span.SetAttributes(
		attribute.StringSlice("preference.themes", pref.Themes),
		attribute.String("preference.budget", pref.NormalizedBudgetLevel()),
		attribute.String("preference.pace", pref.NormalizedPace()),
	)
	l.InfoContext(ctx, "Travel preference analyzed",
		slog.Int("themes", len(pref.Themes)),
		slog.String("city", pref.City))
	span.SetStatus(codes.Ok, "Travel preference analyzed")
	return &pref, nil
}

func (s *ServiceImpl) TravelWish(ctx context.Context, message string, uiContext map[string]any) (string, error) {
	ctx, span := otel.Tracer("PreferenceService").Start(ctx, "TravelWish", trace.WithAttributes(
		attribute.Int("message.length", len(message)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "TravelWish"))
	l.DebugContext(ctx, "Generating travel wish reply")

	prompt := travelWishPrompt(message, marshalContext(uiContext))

	reply, err := s.ai.GenerateResponse(ctx, prompt, nil)
	if err != nil {
		l.ErrorContext(ctx, "Failed to generate travel wish reply", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate travel wish reply")
		return "", fmt.Errorf("error generating travel wish reply: %w", err)
	}

	span.SetAttributes(attribute.Int("reply.length", len(reply)))
	span.SetStatus(codes.Ok, "Travel wish reply generated")
	return reply, nil
}
