package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youra031220/Seoulmatebeta/internal/types"
)

// City Hall plaza. One degree of latitude is ~111 km, so +0.0090 is ~1 km
// and ~15 minutes at the blended 4 km/h travel speed.
var (
	cityHall = types.GeoPoint{Latitude: 37.5665, Longitude: 126.9780}

	dayStart = 9 * 60
	dayEnd   = 18 * 60
)

func place(name string, ct types.CategoryType, latOffset float64) types.PlaceDetailedInfo {
	return types.PlaceDetailedInfo{
		Name:         name,
		Latitude:     cityHall.Latitude + latOffset,
		Longitude:    cityHall.Longitude,
		CategoryType: ct,
	}
}

func names(r types.Route) []string {
	out := make([]string, 0, len(r.Nodes))
	for _, n := range r.Nodes {
		out = append(out, n.Name)
	}
	return out
}

func TestOptimizeRoute_MissingEndpoints(t *testing.T) {
	s := NewSequencer(nil)

	_, err := s.OptimizeRoute(nil, types.GeoPoint{}, cityHall, dayStart, dayEnd, 30, nil, types.WeightProfile{})
	assert.ErrorIs(t, err, ErrMissingEndpoints)

	_, err = s.OptimizeRoute(nil, cityHall, types.GeoPoint{}, dayStart, dayEnd, 30, nil, types.WeightProfile{})
	assert.ErrorIs(t, err, ErrMissingEndpoints)
}

func TestOptimizeRoute_EmptyDay(t *testing.T) {
	s := NewSequencer(nil)

	r, err := s.OptimizeRoute(nil, cityHall, cityHall, dayStart, dayEnd, 30, nil, types.WeightProfile{})
	require.NoError(t, err)
	require.Len(t, r.Nodes, 2)
	assert.Equal(t, types.NodeStart, r.Nodes[0].Kind)
	assert.Equal(t, types.NodeEnd, r.Nodes[1].Kind)
	assert.Empty(t, r.Warnings)
}

// A mandatory palace 3 km (~45 min) away is included even though the leg cap
// is 30 minutes, and the violation is recorded as a warning.
func TestOptimizeRoute_MandatoryOverridesLegCap(t *testing.T) {
	s := NewSequencer(nil)
	palace := types.MandatoryStop{
		Name:      "Gyeongbokgung",
		Latitude:  cityHall.Latitude + 0.0270,
		Longitude: cityHall.Longitude,
		Category:  "palace",
	}
	cafe := place("Quiet Cafe", types.CategoryCafe, 0.0315) // near the palace

	r, err := s.OptimizeRoute([]types.PlaceDetailedInfo{cafe}, cityHall, cityHall,
		dayStart, dayEnd, 30, []types.MandatoryStop{palace}, types.WeightProfile{})
	require.NoError(t, err)

	got := names(r)
	assert.Equal(t, []string{"", "Gyeongbokgung", "Quiet Cafe", ""}, got)
	assert.Equal(t, types.NodeEnd, r.Nodes[len(r.Nodes)-1].Kind)
	assert.Equal(t, 45, r.Nodes[1].WaitMinutes)
	assert.True(t, r.Nodes[1].Mandatory)

	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "Gyeongbokgung")
	assert.Contains(t, r.Warnings[0], "included anyway")
}

func TestOptimizeRoute_MandatoryAppearsExactlyOnce(t *testing.T) {
	s := NewSequencer(nil)
	stops := []types.MandatoryStop{
		{Name: "Gyeongbokgung", Latitude: cityHall.Latitude + 0.0090, Longitude: cityHall.Longitude, Category: "palace"},
		{Name: "Namsan Tower", Latitude: cityHall.Latitude - 0.0090, Longitude: cityHall.Longitude, Category: "attraction"},
	}
	pois := []types.PlaceDetailedInfo{
		place("Lunch Spot", types.CategoryRestaurant, 0.0045),
		place("Bukchon Village", types.CategoryPOI, 0.0135),
	}

	r, err := s.OptimizeRoute(pois, cityHall, cityHall, dayStart, dayEnd, 60, stops, types.WeightProfile{})
	require.NoError(t, err)

	counts := map[string]int{}
	for _, n := range r.Nodes {
		if n.Mandatory {
			counts[n.Name]++
		}
	}
	assert.Equal(t, map[string]int{"Gyeongbokgung": 1, "Namsan Tower": 1}, counts)
	assert.Equal(t, types.NodeEnd, r.Nodes[len(r.Nodes)-1].Kind)
}

// When the return leg would overrun the window, trailing optional stops are
// removed until the end location is reachable in time.
func TestOptimizeRoute_TrimsTrailingOptionalStops(t *testing.T) {
	s := NewSequencer(nil)
	// 2 km out (30 min each way) with a 90-minute stay: fits going out,
	// overruns coming back with only 130 minutes in the day.
	museum := place("War Memorial", types.CategoryPOI, 0.0180)

	r, err := s.OptimizeRoute([]types.PlaceDetailedInfo{museum}, cityHall, cityHall,
		dayStart, dayStart+130, 30, nil, types.WeightProfile{})
	require.NoError(t, err)

	require.Len(t, r.Nodes, 2)
	assert.Equal(t, types.NodeStart, r.Nodes[0].Kind)
	assert.Equal(t, types.NodeEnd, r.Nodes[1].Kind)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "War Memorial")
	assert.Contains(t, r.Warnings[0], "removed")
}

// Mandatory stops are never removed to fit the window; the overrun is kept
// and flagged instead.
func TestOptimizeRoute_KeepsOverrunningMandatoryStop(t *testing.T) {
	s := NewSequencer(nil)
	palace := types.MandatoryStop{
		Name:      "Gyeongbokgung",
		Latitude:  cityHall.Latitude + 0.0270,
		Longitude: cityHall.Longitude,
	}

	r, err := s.OptimizeRoute(nil, cityHall, cityHall,
		dayStart, dayStart+60, 60, []types.MandatoryStop{palace}, types.WeightProfile{})
	require.NoError(t, err)

	require.Len(t, r.Nodes, 3)
	assert.Equal(t, "Gyeongbokgung", r.Nodes[1].Name)
	assert.Equal(t, types.NodeEnd, r.Nodes[2].Kind)

	require.Len(t, r.Warnings, 2)
	assert.Contains(t, r.Warnings[0], "included anyway")
	assert.Contains(t, r.Warnings[1], "overruns the day window")
}

func TestOptimizeRoute_DropsUnreachableOptionalStops(t *testing.T) {
	s := NewSequencer(nil)
	far := place("Distant Gallery", types.CategoryPOI, 0.0270) // 45 min leg

	r, err := s.OptimizeRoute([]types.PlaceDetailedInfo{far}, cityHall, cityHall,
		dayStart, dayEnd, 30, nil, types.WeightProfile{})
	require.NoError(t, err)

	require.Len(t, r.Nodes, 2)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "dropped 1 stop(s)")
}

func TestOptimizeRoute_MandatoryWithoutCoordinates(t *testing.T) {
	s := NewSequencer(nil)
	ghost := types.MandatoryStop{Name: "Unknown Tea House"}

	r, err := s.OptimizeRoute(nil, cityHall, cityHall,
		dayStart, dayEnd, 30, []types.MandatoryStop{ghost}, types.WeightProfile{})
	require.NoError(t, err)

	require.Len(t, r.Nodes, 2)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "Unknown Tea House")
	assert.Contains(t, r.Warnings[0], "no coordinates")
}

func TestOptimizeRoute_StayTimesFollowPace(t *testing.T) {
	s := NewSequencer(nil)
	museum := place("National Museum", types.CategoryPOI, 0.0045)

	w := types.WeightProfile{}
	w.Meta.Pace = types.PaceRelaxed

	r, err := s.OptimizeRoute([]types.PlaceDetailedInfo{museum}, cityHall, cityHall,
		dayStart, dayEnd, 60, nil, w)
	require.NoError(t, err)

	require.Len(t, r.Nodes, 3)
	assert.Equal(t, 120, r.Nodes[1].StayMinutes) // 90 base scaled by relaxed pace
}
