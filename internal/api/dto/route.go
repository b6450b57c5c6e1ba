package dto

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type GenerateRouteRequest struct {
	Interests         []string    `json:"interests"`
	DurationMinutes   int         `json:"duration_minutes"`
	StartLocation     *Coordinate `json:"start_location"`
	MaxLegDistanceKm  *float64    `json:"max_leg_distance_km"`
	IncludeClosedPOIs bool        `json:"include_closed_pois"`
}

type RouteStopResponse struct {
	POIID    string `json:"poi_id"`
	Note     string `json:"note"`
	DwellMin int    `json:"dwell_min"`
}

type RouteResponse struct {
	ID              string              `json:"id"`
	Title           string              `json:"title"`
	DurationMinutes int                 `json:"duration_minutes"`
	DistanceKm      float64             `json:"distance_km"`
	Stops           []RouteStopResponse `json:"stops"`
	Polyline        []Coordinate        `json:"polyline"`
	Tags            []string            `json:"tags"`
	Meta            map[string]any      `json:"meta,omitempty"`
}

type GenerateRouteResponse struct {
	Route RouteResponse `json:"route"`
}
