package domain

// Represents a single point-of-interest catalog entry.
// POIs are owned by the catalog store (seeded by import jobs) and are
// read-only to everything in this service.
type POI struct {
	ID           string     `json:"id" bson:"_id"`
	Title        string     `json:"title" bson:"title"`
	Categories   []string   `json:"categories" bson:"categories"`
	Coordinates  Coordinate `json:"coordinates" bson:"coordinates"`
	OpeningHours string     `json:"openingHours,omitempty" bson:"openingHours,omitempty"`
	Rating       float64    `json:"rating" bson:"rating"`
	Address      string     `json:"address,omitempty" bson:"address,omitempty"`
	Short        string     `json:"short,omitempty" bson:"short,omitempty"`
	Tags         []string   `json:"tags,omitempty" bson:"tags,omitempty"`
}
