package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"tourist-route-service/internal/api/dto"
	"tourist-route-service/internal/api/middleware"
	"tourist-route-service/internal/domain"
	"tourist-route-service/internal/services"

	"go.uber.org/zap"
)

// RouteHandler exposes the route-generation endpoint.
type RouteHandler struct {
	Service *services.RouteService
	Logger  *zap.Logger
}

// Generate plans one route per request; the planner has no cross-request
// memory beyond the audit record it writes.
func (h *RouteHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.Logger, domain.ErrUnauthenticated)
		return
	}

	var req dto.GenerateRouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, h.Logger, domain.ErrInvalidInput)
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, h.Logger, domain.ErrInvalidInput)
		return
	}

	params := domain.RouteParameters{
		Interests:         req.Interests,
		DurationMinutes:   req.DurationMinutes,
		MaxLegDistanceKm:  req.MaxLegDistanceKm,
		IncludeClosedPOIs: req.IncludeClosedPOIs,
	}
	if req.StartLocation != nil {
		params.StartLocation = &domain.Coordinate{Lat: req.StartLocation.Lat, Lng: req.StartLocation.Lng}
	}

	route, err := h.Service.GenerateRoute(r.Context(), userID, params)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	writeJSON(w, r, h.Logger, http.StatusOK, dto.GenerateRouteResponse{Route: toRouteResponse(route)})
}

func toRouteResponse(route domain.Route) dto.RouteResponse {
	stops := make([]dto.RouteStopResponse, 0, len(route.Stops))
	for _, s := range route.Stops {
		stops = append(stops, dto.RouteStopResponse{
			POIID:    s.POIID,
			Note:     s.Note,
			DwellMin: s.DwellMin,
		})
	}

	polyline := make([]dto.Coordinate, 0, len(route.Polyline))
	for _, c := range route.Polyline {
		polyline = append(polyline, dto.Coordinate{Lat: c.Lat, Lng: c.Lng})
	}

	return dto.RouteResponse{
		ID:              route.ID,
		Title:           route.Title,
		DurationMinutes: route.DurationMinutes,
		DistanceKm:      route.DistanceKm,
		Stops:           stops,
		Polyline:        polyline,
		Tags:            route.Tags,
		Meta:            route.Meta,
	}
}
