package services

import "tourist-route-service/internal/config"

// DwellEstimator estimates how long a visitor spends at a POI from its
// category tags.
type DwellEstimator struct {
	minutes    map[string]int
	defaultMin int
}

func NewDwellEstimator(cfg config.ContentConfig) *DwellEstimator {
	minutes := make(map[string]int, len(cfg.DwellRules))
	for _, rule := range cfg.DwellRules {
		// First declaration of a category wins.
		if _, ok := minutes[rule.Category]; !ok {
			minutes[rule.Category] = rule.Minutes
		}
	}

	return &DwellEstimator{minutes: minutes, defaultMin: cfg.DefaultDwellMin}
}

// DwellMinutes scans categories in the POI's own order and returns the
// minutes of the first category present in the table. The POI-defined
// scan order is a contract: a POI tagged [cinema, cafe] estimates 150,
// not 30.
func (e *DwellEstimator) DwellMinutes(categories []string) int {
	for _, category := range categories {
		if minutes, ok := e.minutes[category]; ok {
			return minutes
		}
	}
	return e.defaultMin
}
