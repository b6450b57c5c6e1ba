package services

import (
	"math"
	"testing"

	"tourist-route-service/internal/config"
	"tourist-route-service/internal/domain"
)

// kmNorth offsets a coordinate north by roughly the given number of km.
func kmNorth(base domain.Coordinate, km float64) domain.Coordinate {
	return domain.Coordinate{Lat: base.Lat + km/111.195, Lng: base.Lng}
}

func testPlanner() *Planner {
	return NewPlanner(NewDwellEstimator(config.DefaultContentConfig()))
}

func TestPlanPicksHighestScoreNotNearest(t *testing.T) {
	start := domain.Coordinate{Lat: 54.1838, Lng: 45.1749}
	candidates := []domain.POI{
		{ID: "a", Title: "Museum", Categories: []string{"museum"}, Rating: 4.5, Coordinates: kmNorth(start, 1.0)},
		{ID: "b", Title: "Cafe", Categories: []string{"cafe"}, Rating: 3.0, Coordinates: kmNorth(start, 0.5)},
		{ID: "c", Title: "Park", Categories: []string{"park"}, Rating: 4.0, Coordinates: kmNorth(start, 2.0)},
	}

	route := testPlanner().Plan(PlanInput{
		Candidates:            candidates,
		StartLocation:         &start,
		TargetDurationMinutes: 90,
	})

	// The museum scores 70 against the nearer cafe's 42.5; after its
	// 20 min walk and 60 min dwell nothing else fits the 90 min budget.
	if len(route.Stops) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(route.Stops))
	}
	if route.Stops[0].POIID != "a" {
		t.Fatalf("expected first stop a, got %q", route.Stops[0].POIID)
	}
	if route.Stops[0].DwellMin != 60 {
		t.Fatalf("expected 60 min dwell, got %d", route.Stops[0].DwellMin)
	}
	if route.DurationMinutes != 80 {
		t.Fatalf("expected 80 min duration, got %d", route.DurationMinutes)
	}
	if math.Abs(route.DistanceKm-1.0) > 0.02 {
		t.Fatalf("expected about 1 km total, got %f", route.DistanceKm)
	}
	if len(route.Polyline) != 2 || route.Polyline[0] != start {
		t.Fatalf("expected polyline [start, a], got %v", route.Polyline)
	}
}

func TestPlanVisitsInScoreOrderWithinBudget(t *testing.T) {
	start := domain.Coordinate{Lat: 54.1838, Lng: 45.1749}
	candidates := []domain.POI{
		{ID: "a", Title: "Museum", Categories: []string{"museum"}, Rating: 4.5, Coordinates: kmNorth(start, 1.0)},
		{ID: "b", Title: "Cafe", Categories: []string{"cafe"}, Rating: 3.0, Coordinates: kmNorth(start, 0.5)},
		{ID: "c", Title: "Park", Categories: []string{"park"}, Rating: 4.0, Coordinates: kmNorth(start, 2.0)},
	}

	route := testPlanner().Plan(PlanInput{
		Candidates:            candidates,
		StartLocation:         &start,
		TargetDurationMinutes: 150,
	})

	if len(route.Stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(route.Stops))
	}
	if route.Stops[0].POIID != "a" || route.Stops[1].POIID != "c" {
		t.Fatalf("expected stops [a c], got %v", route.Stops)
	}
	if route.DurationMinutes > 150 {
		t.Fatalf("duration %d exceeds 150 min budget", route.DurationMinutes)
	}

	seen := map[string]bool{}
	for _, stop := range route.Stops {
		if seen[stop.POIID] {
			t.Fatalf("poi %q visited twice", stop.POIID)
		}
		seen[stop.POIID] = true
	}
}

func TestPlanWithoutStartLocation(t *testing.T) {
	base := domain.Coordinate{Lat: 54.1838, Lng: 45.1749}
	candidates := []domain.POI{
		{ID: "a", Title: "Museum", Categories: []string{"museum"}, Rating: 4.5, Coordinates: base},
		{ID: "b", Title: "Cafe", Categories: []string{"cafe"}, Rating: 3.0, Coordinates: kmNorth(base, 0.5)},
	}

	route := testPlanner().Plan(PlanInput{
		Candidates:            candidates,
		TargetDurationMinutes: 120,
	})

	// Without a start location the first leg costs no travel time.
	if len(route.Stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(route.Stops))
	}
	if route.Stops[0].POIID != "a" {
		t.Fatalf("expected first stop a, got %q", route.Stops[0].POIID)
	}
	if len(route.Polyline) != len(route.Stops) {
		t.Fatalf("expected polyline of %d points, got %d", len(route.Stops), len(route.Polyline))
	}
}

func TestPlanMaxLegDistance(t *testing.T) {
	start := domain.Coordinate{Lat: 54.1838, Lng: 45.1749}
	candidates := []domain.POI{
		{ID: "far", Title: "Far Park", Categories: []string{"park"}, Rating: 5.0, Coordinates: kmNorth(start, 5.0)},
	}

	// Nil bound: the 5 km leg is allowed.
	route := testPlanner().Plan(PlanInput{
		Candidates:            candidates,
		StartLocation:         &start,
		TargetDurationMinutes: 300,
	})
	if len(route.Stops) != 1 {
		t.Fatalf("expected far poi selected without a bound, got %d stops", len(route.Stops))
	}

	// Explicit bound below the leg distance excludes it.
	bound := 1.0
	route = testPlanner().Plan(PlanInput{
		Candidates:            candidates,
		StartLocation:         &start,
		TargetDurationMinutes: 300,
		MaxLegDistanceKm:      &bound,
	})
	if len(route.Stops) != 0 {
		t.Fatalf("expected no stops with a 1 km bound, got %d", len(route.Stops))
	}
}

func TestPlanMaxLegZeroExcludesEverything(t *testing.T) {
	start := domain.Coordinate{Lat: 54.1838, Lng: 45.1749}
	candidates := []domain.POI{
		{ID: "a", Title: "Museum", Categories: []string{"museum"}, Rating: 4.5, Coordinates: kmNorth(start, 0.3)},
	}

	zero := 0.0
	route := testPlanner().Plan(PlanInput{
		Candidates:            candidates,
		StartLocation:         &start,
		TargetDurationMinutes: 120,
		MaxLegDistanceKm:      &zero,
	})

	if len(route.Stops) != 0 {
		t.Fatalf("expected empty route with zero bound, got %d stops", len(route.Stops))
	}
	if route.DurationMinutes != 0 {
		t.Fatalf("expected 0 duration, got %d", route.DurationMinutes)
	}
	if len(route.Polyline) != 1 {
		t.Fatalf("expected polyline with start only, got %d points", len(route.Polyline))
	}
}

func TestPlanNonPositiveBudget(t *testing.T) {
	candidates := []domain.POI{
		{ID: "a", Title: "Museum", Categories: []string{"museum"}, Rating: 4.5, Coordinates: domain.Coordinate{Lat: 54.18, Lng: 45.17}},
	}

	for _, target := range []int{0, -30} {
		route := testPlanner().Plan(PlanInput{
			Candidates:            candidates,
			TargetDurationMinutes: target,
		})
		if len(route.Stops) != 0 {
			t.Fatalf("target %d: expected empty route, got %d stops", target, len(route.Stops))
		}
	}
}

func TestPlanTieBreakKeepsEarliestCandidate(t *testing.T) {
	at := domain.Coordinate{Lat: 54.1838, Lng: 45.1749}
	candidates := []domain.POI{
		{ID: "first", Title: "Cafe One", Categories: []string{"cafe"}, Rating: 4.0, Coordinates: at},
		{ID: "second", Title: "Cafe Two", Categories: []string{"cafe"}, Rating: 4.0, Coordinates: at},
	}

	route := testPlanner().Plan(PlanInput{
		Candidates:            candidates,
		StartLocation:         &at,
		TargetDurationMinutes: 45,
	})

	if len(route.Stops) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(route.Stops))
	}
	if route.Stops[0].POIID != "first" {
		t.Fatalf("expected tie to keep earliest candidate, got %q", route.Stops[0].POIID)
	}
}

func TestRouteTitle(t *testing.T) {
	if got := routeTitle(80, 2); got != "1h 20min route (2 stops)" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := routeTitle(45, 1); got != "45min route (1 stops)" {
		t.Fatalf("unexpected title %q", got)
	}
}
