package services

import (
	"fmt"
	"math"
	"time"

	"tourist-route-service/internal/domain"

	"github.com/google/uuid"
)

// Walking-speed constant: minutes of travel per kilometer.
const walkMinutesPerKm = 20

// Input for one planning run. Candidates must already be filtered by the
// caller for interest match and open/closed policy; the planner only
// budgets time and distance.
type PlanInput struct {
	Candidates            []domain.POI
	StartLocation         *domain.Coordinate
	TargetDurationMinutes int
	// Nil means unconstrained; the leg-distance test is skipped entirely.
	MaxLegDistanceKm *float64
}

// Planner builds a bounded-time walking route with a greedy algorithm.
//
// Each step selects the highest-scoring candidate whose travel+dwell time
// fits the remaining budget. It does not attempt global optimization; the
// design prioritizes determinism and simplicity over optimality.
type Planner struct {
	dwell *DwellEstimator
}

func NewPlanner(dwell *DwellEstimator) *Planner {
	return &Planner{dwell: dwell}
}

// Plan greedily constructs a route. It never fails on valid input: when
// the budget or distance bound cannot accommodate further stops, the
// partially filled (possibly empty) route is the successful result.
func (p *Planner) Plan(in PlanInput) domain.Route {
	route := domain.Route{
		ID:    "generated_" + uuid.NewString(),
		Stops: []domain.RouteStop{},
		Tags:  []string{"generated"},
		Meta: map[string]any{
			"generatedAt":    time.Now().UTC().Format(time.RFC3339),
			"targetDuration": in.TargetDurationMinutes,
		},
	}
	if in.StartLocation != nil {
		route.Meta["startLocation"] = *in.StartLocation
	}

	remaining := make([]domain.POI, len(in.Candidates))
	copy(remaining, in.Candidates)

	currentLocation := in.StartLocation
	// The remaining budget is tracked unrounded while the route duration
	// accumulates rounded per-stop contributions; the minor drift between
	// the two is accepted.
	remainingTime := float64(in.TargetDurationMinutes)
	totalDistance := 0.0
	polyline := []domain.Coordinate{}
	if in.StartLocation != nil {
		polyline = append(polyline, *in.StartLocation)
	}

	for remainingTime > 0 && len(remaining) > 0 {
		bestIdx := -1
		bestScore := math.Inf(-1)
		bestDistance := 0.0
		bestDwell := 0

		for i, cand := range remaining {
			distance := 0.0
			if currentLocation != nil {
				distance = DistanceKm(*currentLocation, cand.Coordinates)
			}

			travelTime := distance * walkMinutesPerKm
			dwellTime := p.dwell.DwellMinutes(cand.Categories)
			totalTime := travelTime + float64(dwellTime)

			if totalTime > remainingTime {
				continue
			}
			if in.MaxLegDistanceKm != nil && distance > *in.MaxLegDistanceKm {
				continue
			}

			// Strict comparison keeps the earliest candidate on ties,
			// preserving the caller-supplied ordering deterministically.
			if score := Score(cand.Rating, distance, dwellTime); score > bestScore {
				bestScore = score
				bestIdx = i
				bestDistance = distance
				bestDwell = dwellTime
			}
		}

		// No eligible candidate: the route is complete, possibly before
		// the time budget is exhausted.
		if bestIdx < 0 {
			break
		}

		best := remaining[bestIdx]
		travelTime := bestDistance * walkMinutesPerKm

		route.Stops = append(route.Stops, domain.RouteStop{
			POIID:    best.ID,
			Note:     "visit " + best.Title,
			DwellMin: bestDwell,
		})
		route.DurationMinutes += int(math.Round(travelTime + float64(bestDwell)))
		totalDistance += bestDistance
		polyline = append(polyline, best.Coordinates)

		currentLocation = &best.Coordinates
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		remainingTime -= travelTime + float64(bestDwell)
	}

	route.DistanceKm = math.Round(totalDistance*100) / 100
	route.Polyline = polyline
	route.Title = routeTitle(route.DurationMinutes, len(route.Stops))

	return route
}

func routeTitle(durationMinutes, stopCount int) string {
	hours := durationMinutes / 60
	minutes := durationMinutes % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dmin route (%d stops)", hours, minutes, stopCount)
	}
	return fmt.Sprintf("%dmin route (%d stops)", minutes, stopCount)
}
