package services

import (
	"math"
	"testing"

	"tourist-route-service/internal/domain"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	p := domain.Coordinate{Lat: 54.1838, Lng: 45.1749}
	if d := DistanceKm(p, p); d != 0 {
		t.Fatalf("expected 0 for identical points, got %f", d)
	}
}

func TestDistanceKmOneDegreeLatitude(t *testing.T) {
	a := domain.Coordinate{Lat: 54.0, Lng: 45.0}
	b := domain.Coordinate{Lat: 55.0, Lng: 45.0}

	// One degree of latitude is about 111.19 km on a 6371 km sphere.
	d := DistanceKm(a, b)
	if math.Abs(d-111.19) > 0.1 {
		t.Fatalf("expected about 111.19 km, got %f", d)
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	a := domain.Coordinate{Lat: 54.1838, Lng: 45.1749}
	b := domain.Coordinate{Lat: 54.1903, Lng: 45.2044}

	ab := DistanceKm(a, b)
	ba := DistanceKm(b, a)
	if math.Abs(ab-ba) > 1e-12 {
		t.Fatalf("distance not symmetric: %f vs %f", ab, ba)
	}
	if ab <= 0 {
		t.Fatalf("expected positive distance, got %f", ab)
	}
}
