package dto

type POIResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Categories   []string   `json:"categories"`
	Coordinates  Coordinate `json:"coordinates"`
	OpeningHours string     `json:"opening_hours,omitempty"`
	Rating       float64    `json:"rating"`
	Address      string     `json:"address,omitempty"`
	Short        string     `json:"short,omitempty"`
	DistanceKm   *float64   `json:"distance_km,omitempty"`
}

type ListPOIsResponse struct {
	POIs  []POIResponse `json:"pois"`
	Count int           `json:"count"`
}
