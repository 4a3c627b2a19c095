// Package places talks to the Naver search and map APIs and shapes the
// results into place candidates for planning.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/youra031220/Seoulmatebeta/internal/types"
)

const (
	localSearchURL    = "https://openapi.naver.com/v1/search/local.json"
	geocodeURL        = "https://maps.apigw.ntruss.com/map-geocode/v2/geocode"
	reverseGeocodeURL = "https://maps.apigw.ntruss.com/map-reversegeocode/v2/gc"

	defaultDisplay = 10

	// Naver local search returns WGS84 coordinates scaled by 1e7.
	coordinateScale = 1e7
)

// Client calls the Naver open APIs. The search credentials and the map
// credentials are separate key pairs.
type Client struct {
	httpClient *http.Client

	searchClientID     string
	searchClientSecret string
	mapKeyID           string
	mapKey             string

	// Overridable in tests.
	localSearchURL    string
	geocodeURL        string
	reverseGeocodeURL string
}

// ClientConfig carries the Naver API credentials.
type ClientConfig struct {
	SearchClientID     string
	SearchClientSecret string
	MapKeyID           string
	MapKey             string
}

// NewClient creates a Naver API client.
func NewClient(cfg ClientConfig) *Client {
	return &Client{
		httpClient:         &http.Client{Timeout: 10 * time.Second},
		searchClientID:     cfg.SearchClientID,
		searchClientSecret: cfg.SearchClientSecret,
		mapKeyID:           cfg.MapKeyID,
		mapKey:             cfg.MapKey,
		localSearchURL:     localSearchURL,
		geocodeURL:         geocodeURL,
		reverseGeocodeURL:  reverseGeocodeURL,
	}
}

type localSearchItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Telephone   string `json:"telephone"`
	Address     string `json:"address"`
	RoadAddress string `json:"roadAddress"`
	MapX        string `json:"mapx"`
	MapY        string `json:"mapy"`
}

type localSearchResponse struct {
	Items []localSearchItem `json:"items"`
}

var markupTags = regexp.MustCompile(`</?b>`)

func stripMarkup(s string) string {
	return strings.TrimSpace(markupTags.ReplaceAllString(s, ""))
}

func parseCoordinate(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v / coordinateScale
}

func (c *Client) toPlace(item localSearchItem) types.PlaceDetailedInfo {
	p := types.PlaceDetailedInfo{
		ID:          uuid.New(),
		Name:        stripMarkup(item.Title),
		Latitude:    parseCoordinate(item.MapY),
		Longitude:   parseCoordinate(item.MapX),
		Category:    item.Category,
		Description: stripMarkup(item.Description),
		Telephone:   item.Telephone,
	}
	p.Address = item.RoadAddress
	if p.Address == "" {
		p.Address = item.Address
	}
	p.CategoryType = ClassifyPlace(p)
	return p
}

// LocalSearch runs one local search query and returns the shaped candidates.
func (c *Client) LocalSearch(ctx context.Context, query string, display int) ([]types.PlaceDetailedInfo, error) {
	ctx, span := otel.Tracer("NaverClient").Start(ctx, "LocalSearch")
	defer span.End()
	span.SetAttributes(attribute.String("query", query))

	if display <= 0 {
		display = defaultDisplay
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("display", strconv.Itoa(display))
	params.Set("start", "1")
	params.Set("sort", "random")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.localSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to build request")
		return nil, fmt.Errorf("building local search request: %w", err)
	}
	req.Header.Set("X-Naver-Client-Id", c.searchClientID)
	req.Header.Set("X-Naver-Client-Secret", c.searchClientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Local search request failed")
		return nil, fmt.Errorf("local search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("local search returned status %d", resp.StatusCode)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Unexpected status from local search")
		return nil, err
	}

	var body localSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to decode local search response")
		return nil, fmt.Errorf("decoding local search response: %w", err)
	}

	places := make([]types.PlaceDetailedInfo, 0, len(body.Items))
	for _, item := range body.Items {
		places = append(places, c.toPlace(item))
	}

	span.SetAttributes(attribute.Int("results", len(places)))
	span.SetStatus(codes.Ok, "Local search completed")
	return places, nil
}

// GeocodeAddress is one resolved address from the geocode API.
type GeocodeAddress struct {
	RoadAddress string `json:"roadAddress"`
	JibunAddr   string `json:"jibunAddress"`
	X           string `json:"x"` // longitude
	Y           string `json:"y"` // latitude
}

type geocodeResponse struct {
	Addresses []GeocodeAddress `json:"addresses"`
}

// Geocode resolves a free-text address into candidate coordinates.
func (c *Client) Geocode(ctx context.Context, address string) ([]GeocodeAddress, error) {
	ctx, span := otel.Tracer("NaverClient").Start(ctx, "Geocode")
	defer span.End()

	params := url.Values{}
	params.Set("query", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.geocodeURL+"?"+params.Encode(), nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to build request")
		return nil, fmt.Errorf("building geocode request: %w", err)
	}
	req.Header.Set("X-NCP-APIGW-API-KEY-ID", c.mapKeyID)
	req.Header.Set("X-NCP-APIGW-API-KEY", c.mapKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Geocode request failed")
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("geocode returned status %d", resp.StatusCode)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Unexpected status from geocode")
		return nil, err
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to decode geocode response")
		return nil, fmt.Errorf("decoding geocode response: %w", err)
	}

	span.SetStatus(codes.Ok, "Geocode completed")
	return body.Addresses, nil
}

// ReverseGeocode resolves coordinates into the raw reverse-geocode payload.
// The payload is passed through as-is for the rendering layer.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	ctx, span := otel.Tracer("NaverClient").Start(ctx, "ReverseGeocode")
	defer span.End()

	params := url.Values{}
	params.Set("coords", fmt.Sprintf("%f,%f", lon, lat))
	params.Set("orders", "roadaddr,addr")
	params.Set("output", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.reverseGeocodeURL+"?"+params.Encode(), nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to build request")
		return nil, fmt.Errorf("building reverse geocode request: %w", err)
	}
	req.Header.Set("X-NCP-APIGW-API-KEY-ID", c.mapKeyID)
	req.Header.Set("X-NCP-APIGW-API-KEY", c.mapKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Reverse geocode request failed")
		return nil, fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("reverse geocode returned status %d", resp.StatusCode)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Unexpected status from reverse geocode")
		return nil, err
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to decode reverse geocode response")
		return nil, fmt.Errorf("decoding reverse geocode response: %w", err)
	}

	span.SetStatus(codes.Ok, "Reverse geocode completed")
	return raw, nil
}
