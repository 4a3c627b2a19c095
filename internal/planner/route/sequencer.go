// Package route orders a day's stops between a start and an end location.
// The construction is a single-threaded greedy walk, deliberately not a
// global optimum: interpretable, fast, and always terminating. Time and
// distance limits are soft for mandatory stops, which are force-included
// with recorded warnings rather than dropped.
package route

import (
	"errors"
	"fmt"

	"github.com/youra031220/Seoulmatebeta/internal/planner/geo"
	"github.com/youra031220/Seoulmatebeta/internal/types"
)

// ErrMissingEndpoints is the one fatal precondition: the sequencer cannot
// run without start and end coordinates.
var ErrMissingEndpoints = errors.New("route: start and end coordinates are required")

// Flat bonus that lets mandatory stops win every greedy comparison.
const mandatoryBonus = 10000.0

// Sequencer builds ordered routes with a configurable ordering-rule set.
type Sequencer struct {
	rules []OrderingRule
}

// NewSequencer returns a Sequencer. Nil rules fall back to the default set.
func NewSequencer(rules []OrderingRule) *Sequencer {
	if rules == nil {
		rules = DefaultOrderingRules()
	}
	return &Sequencer{rules: rules}
}

func poiNode(p types.PlaceDetailedInfo, pace string, w types.WeightProfile) types.RouteNode {
	category := string(p.CategoryType)
	if category == "" {
		category = "spot"
	}
	return types.RouteNode{
		Kind:        types.NodePOI,
		Name:        p.Name,
		Point:       p.Point(),
		Category:    category,
		StayMinutes: StayMinutes(category, pace, w),
		Rating:      p.Rating,
	}
}

func mandatoryNode(m types.MandatoryStop, pace string, w types.WeightProfile) types.RouteNode {
	category := m.Category
	if category == "" {
		category = "required"
	}
	stay := m.StayMinutes
	if stay <= 0 {
		stay = StayMinutes(category, pace, w)
	}
	return types.RouteNode{
		Kind:        types.NodePOI,
		Name:        m.Name,
		Point:       m.Point(),
		Category:    category,
		StayMinutes: stay,
		Mandatory:   true,
		Rating:      m.Rating,
	}
}

// OptimizeRoute sequences the selected POIs plus the mandatory stops between
// start and end within the [startMin, endMin] day window. maxLegMin caps a
// single leg's travel time for optional stops only. Warnings on the returned
// route record every soft violation.
func (s *Sequencer) OptimizeRoute(pois []types.PlaceDetailedInfo, start, end types.GeoPoint,
	startMin, endMin, maxLegMin int, mandatory []types.MandatoryStop, w types.WeightProfile) (types.Route, error) {

	if start.IsZero() || end.IsZero() {
		return types.Route{}, ErrMissingEndpoints
	}

	pace := w.Meta.Pace
	if pace == "" {
		pace = types.PaceNormal
	}

	// Node arena: [start] + mandatory + selected + [end]. The walk tracks
	// index sets over this fixed array instead of mutating node lists.
	var warnings []string
	nodes := []types.RouteNode{{Kind: types.NodeStart, Point: start}}
	for _, m := range mandatory {
		if m.Point().IsZero() {
			warnings = append(warnings, fmt.Sprintf("mandatory stop %q has no coordinates and cannot be routed", m.Name))
			continue
		}
		nodes = append(nodes, mandatoryNode(m, pace, w))
	}
	for _, p := range pois {
		nodes = append(nodes, poiNode(p, pace, w))
	}
	endIdx := len(nodes)
	nodes = append(nodes, types.RouteNode{Kind: types.NodeEnd, Point: end})

	remaining := make(map[int]bool, endIdx-1)
	for i := 1; i < endIdx; i++ {
		remaining[i] = true
	}

	visitOrder := []int{0}
	visited := []types.RouteNode{nodes[0]}
	current := 0
	now := startMin

	for len(remaining) > 0 {
		bestIdx := -1
		bestScore := 0.0
		bestLeg := 0
		forced := false

		for idx := range remaining {
			cand := nodes[idx]
			leg := geo.TravelMinutes(nodes[current].Point, cand.Point)

			feasible := leg <= maxLegMin && now+leg+cand.StayMinutes <= endMin
			if !feasible && !cand.Mandatory {
				continue
			}

			score := -float64(leg)
			if cand.Mandatory {
				score += mandatoryBonus
			}
			for _, rule := range s.rules {
				score += rule(visited, cand)
			}

			if bestIdx == -1 || score > bestScore {
				bestIdx = idx
				bestScore = score
				bestLeg = leg
				forced = cand.Mandatory && !feasible
			}
		}

		if bestIdx == -1 {
			// Nothing optional fits anymore and no mandatory stops remain.
			dropped := len(remaining)
			warnings = append(warnings, fmt.Sprintf("dropped %d stop(s) that do not fit the remaining day window", dropped))
			break
		}

		next := nodes[bestIdx]
		if forced {
			warnings = append(warnings, fmt.Sprintf(
				"mandatory stop %q exceeds the travel or time limit (leg %d min, max %d min) and was included anyway",
				next.Name, bestLeg, maxLegMin))
		}

		next.WaitMinutes = bestLeg
		nodes[bestIdx] = next
		now += bestLeg + next.StayMinutes
		visitOrder = append(visitOrder, bestIdx)
		visited = append(visited, next)
		current = bestIdx
		delete(remaining, bestIdx)
	}

	// The end node is always appended last. If the final leg overruns the
	// window, trailing non-mandatory stops are removed until it fits; with
	// only mandatory stops left the overrun is kept and flagged.
	legToEnd := geo.TravelMinutes(nodes[current].Point, nodes[endIdx].Point)
	for now+legToEnd > endMin {
		lastPos := len(visitOrder) - 1
		if lastPos == 0 || nodes[visitOrder[lastPos]].Mandatory {
			warnings = append(warnings, fmt.Sprintf(
				"schedule overruns the day window by %d minute(s) reaching the end location", now+legToEnd-endMin))
			break
		}
		removed := nodes[visitOrder[lastPos]]
		now -= removed.WaitMinutes + removed.StayMinutes
		visitOrder = visitOrder[:lastPos]
		visited = visited[:lastPos]
		current = visitOrder[lastPos-1]
		legToEnd = geo.TravelMinutes(nodes[current].Point, nodes[endIdx].Point)
		warnings = append(warnings, fmt.Sprintf("removed %q to reach the end location within the day window", removed.Name))
	}

	endNode := nodes[endIdx]
	endNode.WaitMinutes = legToEnd
	visited = append(visited, endNode)

	return types.Route{Nodes: visited, Warnings: warnings}, nil
}
