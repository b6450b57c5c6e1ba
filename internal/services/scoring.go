package services

// Score ranks a candidate POI for route inclusion: higher rating pulls a
// candidate in, distance pushes it away, longer dwell slightly favors
// "destination" stops. Only relative order among simultaneously eligible
// candidates is meaningful.
func Score(rating, distanceKm float64, dwellMinutes int) float64 {
	return rating*10 - distanceKm*5 + float64(dwellMinutes)*0.5
}
