package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youra031220/Seoulmatebeta/internal/types"
)

const localSearchPayload = `{
  "items": [
    {
      "title": "<b>경복궁</b>",
      "category": "여행,명소>궁궐",
      "description": "조선의 법궁",
      "telephone": "02-123-4567",
      "address": "서울특별시 종로구",
      "roadAddress": "서울특별시 종로구 사직로 161",
      "mapx": "1269770000",
      "mapy": "375796000"
    },
    {
      "title": "Cheap <b>Eats</b>",
      "category": "음식점>한식",
      "description": "",
      "telephone": "",
      "address": "서울 중구",
      "roadAddress": "",
      "mapx": "bad",
      "mapy": ""
    }
  ]
}`

func TestLocalSearch(t *testing.T) {
	var gotQuery, gotClientID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotClientID = r.Header.Get("X-Naver-Client-Id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(localSearchPayload))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{SearchClientID: "id", SearchClientSecret: "secret"})
	c.localSearchURL = srv.URL

	places, err := c.LocalSearch(context.Background(), "서울 야경 전망대", 10)
	require.NoError(t, err)
	require.Len(t, places, 2)

	assert.Equal(t, "서울 야경 전망대", gotQuery)
	assert.Equal(t, "id", gotClientID)

	// Markup stripped, coordinates unscaled, road address preferred.
	first := places[0]
	assert.Equal(t, "경복궁", first.Name)
	assert.InDelta(t, 37.5796, first.Latitude, 1e-6)
	assert.InDelta(t, 126.9770, first.Longitude, 1e-6)
	assert.Equal(t, "서울특별시 종로구 사직로 161", first.Address)
	assert.Equal(t, types.CategoryPOI, first.CategoryType)

	// Unparseable coordinates become the zero point, plain address kept.
	second := places[1]
	assert.Equal(t, "Cheap Eats", second.Name)
	assert.True(t, second.Point().IsZero())
	assert.Equal(t, "서울 중구", second.Address)
	assert.Equal(t, types.CategoryRestaurant, second.CategoryType)
}

func TestLocalSearch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{})
	c.localSearchURL = srv.URL

	_, err := c.LocalSearch(context.Background(), "anything", 10)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "keyid", r.Header.Get("X-NCP-APIGW-API-KEY-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"addresses":[{"roadAddress":"사직로 161","x":"126.9770","y":"37.5796"}]}`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{MapKeyID: "keyid", MapKey: "key"})
	c.geocodeURL = srv.URL

	addrs, err := c.Geocode(context.Background(), "사직로 161")
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "126.9770", addrs[0].X)
	assert.Equal(t, "37.5796", addrs[0].Y)
}

func TestReverseGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "126.977000,37.579600", r.URL.Query().Get("coords"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"name":"roadaddr"}]}`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{MapKeyID: "keyid", MapKey: "key"})
	c.reverseGeocodeURL = srv.URL

	raw, err := c.ReverseGeocode(context.Background(), 37.5796, 126.9770)
	require.NoError(t, err)
	assert.JSONEq(t, `{"results":[{"name":"roadaddr"}]}`, string(raw))
}
