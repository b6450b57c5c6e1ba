package handlers

import (
	"net/http"
	"strconv"

	"tourist-route-service/internal/api/dto"
	"tourist-route-service/internal/domain"
	"tourist-route-service/internal/ports"
	"tourist-route-service/internal/services"

	"go.uber.org/zap"
)

// POIHandler exposes read-only catalog endpoints.
type POIHandler struct {
	Catalog ports.POICatalog
	Logger  *zap.Logger
}

// List returns catalog entries, optionally filtered by category and by
// distance from a point (lat, lng, radius_km).
func (h *POIHandler) List(w http.ResponseWriter, r *http.Request) {
	pois, err := h.Catalog.ListPOIs(r.Context())
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	category := r.URL.Query().Get("category")

	var center *domain.Coordinate
	var radiusKm float64
	if r.URL.Query().Get("lat") != "" {
		lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
		lng, lngErr := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
		radius, radErr := strconv.ParseFloat(r.URL.Query().Get("radius_km"), 64)
		if latErr != nil || lngErr != nil || radErr != nil || radius <= 0 {
			writeError(w, r, h.Logger, domain.ErrInvalidInput)
			return
		}
		center = &domain.Coordinate{Lat: lat, Lng: lng}
		radiusKm = radius
	}

	res := dto.ListPOIsResponse{POIs: make([]dto.POIResponse, 0, len(pois))}
	for _, poi := range pois {
		if category != "" && !hasCategory(poi, category) {
			continue
		}

		item := dto.POIResponse{
			ID:           poi.ID,
			Title:        poi.Title,
			Categories:   poi.Categories,
			Coordinates:  dto.Coordinate{Lat: poi.Coordinates.Lat, Lng: poi.Coordinates.Lng},
			OpeningHours: poi.OpeningHours,
			Rating:       poi.Rating,
			Address:      poi.Address,
			Short:        poi.Short,
		}

		if center != nil {
			d := services.DistanceKm(*center, poi.Coordinates)
			if d > radiusKm {
				continue
			}
			item.DistanceKm = &d
		}

		res.POIs = append(res.POIs, item)
	}
	res.Count = len(res.POIs)

	writeJSON(w, r, h.Logger, http.StatusOK, res)
}

func hasCategory(poi domain.POI, category string) bool {
	for _, c := range poi.Categories {
		if c == category {
			return true
		}
	}
	return false
}
