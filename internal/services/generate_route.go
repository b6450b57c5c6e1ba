package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"tourist-route-service/internal/domain"
	"tourist-route-service/internal/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Advisory lifetime of a generated-route audit record.
const generatedRouteTTL = 24 * time.Hour

// RouteService orchestrates route generation: candidate filtering,
// greedy planning, and the audit-cache write.
type RouteService struct {
	catalog ports.POICatalog
	routes  ports.RouteStore
	planner *Planner
	logger  *zap.Logger
	now     func() time.Time
}

func NewRouteService(catalog ports.POICatalog, routes ports.RouteStore, planner *Planner, logger *zap.Logger) *RouteService {
	return &RouteService{
		catalog: catalog,
		routes:  routes,
		planner: planner,
		logger:  logger,
		now:     time.Now,
	}
}

// GenerateRoute produces a route for one request. Candidates are
// filtered by interest match and open/closed policy here, upstream of
// the planner.
func (s *RouteService) GenerateRoute(ctx context.Context, userID string, params domain.RouteParameters) (domain.Route, error) {
	pois, err := s.catalog.ListPOIs(ctx)
	if err != nil {
		return domain.Route{}, fmt.Errorf("generate route: list pois: %w", err)
	}

	now := s.now()
	candidates := make([]domain.POI, 0, len(pois))
	for _, poi := range pois {
		if !matchesInterests(poi, params.Interests) {
			continue
		}
		if !params.IncludeClosedPOIs && !IsOpen(poi.OpeningHours, now) {
			continue
		}
		candidates = append(candidates, poi)
	}

	// With a start location, closer candidates come first; ties in the
	// planner's scoring then break toward the nearer POI.
	if params.StartLocation != nil {
		start := *params.StartLocation
		sort.SliceStable(candidates, func(i, j int) bool {
			return DistanceKm(start, candidates[i].Coordinates) < DistanceKm(start, candidates[j].Coordinates)
		})
	}

	route := s.planner.Plan(PlanInput{
		Candidates:            candidates,
		StartLocation:         params.StartLocation,
		TargetDurationMinutes: params.DurationMinutes,
		MaxLegDistanceKm:      params.MaxLegDistanceKm,
	})

	rec := domain.GeneratedRouteRecord{
		ID:         uuid.NewString(),
		UserID:     userID,
		Route:      route,
		Parameters: params,
		CreatedAt:  now,
		ExpiresAt:  now.Add(generatedRouteTTL),
	}
	if err := s.routes.AddGeneratedRoute(ctx, rec); err != nil {
		return domain.Route{}, fmt.Errorf("generate route: cache generated route: %w", err)
	}

	s.logger.Info("route generated",
		zap.String("userId", userID),
		zap.Int("candidates", len(candidates)),
		zap.Int("stops", len(route.Stops)),
		zap.Int("durationMinutes", route.DurationMinutes),
		zap.Float64("distanceKm", route.DistanceKm))

	return route, nil
}

// An empty interest list matches every POI.
func matchesInterests(poi domain.POI, interests []string) bool {
	if len(interests) == 0 {
		return true
	}
	for _, interest := range interests {
		for _, category := range poi.Categories {
			if category == interest {
				return true
			}
		}
	}
	return false
}
