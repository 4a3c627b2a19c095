// Package schedule materializes an ordered route into a wall-clock timetable.
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/youra031220/Seoulmatebeta/internal/types"
)

// Categories shown for the synthetic endpoint rows.
const (
	categoryStart = "start"
	categoryEnd   = "end"
)

// ToMinutes parses an "HH:MM" clock string into minutes since midnight.
// Malformed input yields 0, matching a missing value.
func ToMinutes(clock string) int {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0
	}
	hours, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// ToTimeString formats minutes since midnight as "HH:MM". Negative values
// clamp to midnight.
func ToTimeString(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// Generate walks the route in order and emits one timetable row per node,
// including the synthetic start and end rows. Arrival never runs backwards:
// it is at least the previous row's departure. No row ever arrives or departs
// past endMin: stays shrink to fit and once the clock reaches the window end
// every remaining row pins there. Rows are never dropped, so every routed
// stop stays visible even on an overrunning day.
func Generate(route types.Route, startMin, endMin int, startName, endName string) []types.ScheduleEntry {
	rows := make([]types.ScheduleEntry, 0, len(route.Nodes))
	now := startMin
	prevDepart := startMin

	for i, node := range route.Nodes {
		name := node.Name
		category := node.Category
		switch node.Kind {
		case types.NodeStart:
			name = startName
			category = categoryStart
		case types.NodeEnd:
			name = endName
			category = categoryEnd
		}

		arrival := now + node.WaitMinutes
		if arrival < prevDepart {
			arrival = prevDepart
		}
		if arrival > endMin {
			arrival = endMin
		}

		stay := node.StayMinutes
		if arrival+stay > endMin {
			stay = endMin - arrival
		}
		depart := arrival + stay

		rows = append(rows, types.ScheduleEntry{
			Order:       i + 1,
			Name:        name,
			Category:    category,
			Arrival:     ToTimeString(arrival),
			Departure:   ToTimeString(depart),
			WaitMinutes: node.WaitMinutes,
			StayMinutes: stay,
			Rating:      node.Rating,
		})

		now = depart
		prevDepart = depart
	}

	return rows
}
