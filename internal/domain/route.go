package domain

import "time"

// Represents a single stop in a generated walking route.
// A RouteStop references a POI by id; ordering within Route.Stops is the
// visit order.
type RouteStop struct {
	POIID    string `json:"poiId" bson:"poiId"`
	Note     string `json:"note" bson:"note"`
	DwellMin int    `json:"dwellMin" bson:"dwellMin"`
}

// Represents a generated walking route over the POI catalog.
// A Route is the output of the planner and describes the ordered sequence
// of stops along with aggregate duration and distance metrics.
// It is immutable planning data and contains no side effects.
type Route struct {
	ID              string         `json:"id" bson:"id"`
	Title           string         `json:"title" bson:"title"`
	DurationMinutes int            `json:"durationMinutes" bson:"durationMinutes"`
	DistanceKm      float64        `json:"distanceKm" bson:"distanceKm"`
	Stops           []RouteStop    `json:"stops" bson:"stops"`
	Polyline        []Coordinate   `json:"polyline" bson:"polyline"`
	Tags            []string       `json:"tags" bson:"tags"`
	Meta            map[string]any `json:"meta,omitempty" bson:"meta,omitempty"`
}

// The request parameters a route was generated from. Kept alongside the
// cached route for audit.
type RouteParameters struct {
	Interests         []string    `json:"interests,omitempty" bson:"interests,omitempty"`
	DurationMinutes   int         `json:"durationMinutes" bson:"durationMinutes"`
	StartLocation     *Coordinate `json:"startLocation,omitempty" bson:"startLocation,omitempty"`
	MaxLegDistanceKm  *float64    `json:"maxLegDistanceKm,omitempty" bson:"maxLegDistanceKm,omitempty"`
	IncludeClosedPOIs bool        `json:"includeClosedPois" bson:"includeClosedPois"`
}

// Audit record for a generated route. Write-once; ExpiresAt is advisory
// metadata consulted by an external retention job, not enforced here.
type GeneratedRouteRecord struct {
	ID         string          `json:"id" bson:"_id"`
	UserID     string          `json:"userId" bson:"userId"`
	Route      Route           `json:"route" bson:"route"`
	Parameters RouteParameters `json:"parameters" bson:"parameters"`
	CreatedAt  time.Time       `json:"createdAt" bson:"createdAt"`
	ExpiresAt  time.Time       `json:"expiresAt" bson:"expiresAt"`
}
