package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// A single category-to-minutes dwell rule. Rules are matched against a
// POI's categories in the POI's own category order, so the slice keeps
// declared order rather than relying on map iteration.
type DwellRule struct {
	Category string `json:"category"`
	Minutes  int    `json:"minutes"`
}

// Content configuration: the dwell-time table and the moderation keyword
// lists. This is data, not code; deployments can override it with a JSON
// file.
type ContentConfig struct {
	DwellRules         []DwellRule `json:"dwellRules"`
	DefaultDwellMin    int         `json:"defaultDwellMin"`
	SpamKeywords       []string    `json:"spamKeywords"`
	BlockedWords       []string    `json:"blockedWords"`
	RepetitionMaxCount int         `json:"repetitionMaxCount"`
}

// DefaultContentConfig returns the built-in dwell table and keyword lists.
func DefaultContentConfig() ContentConfig {
	return ContentConfig{
		DwellRules: []DwellRule{
			{Category: "museum", Minutes: 60},
			{Category: "memorial", Minutes: 15},
			{Category: "park", Minutes: 45},
			{Category: "cafe", Minutes: 30},
			{Category: "restaurant", Minutes: 60},
			{Category: "shop", Minutes: 20},
			{Category: "church", Minutes: 30},
			{Category: "theatre", Minutes: 120},
			{Category: "cinema", Minutes: 150},
		},
		DefaultDwellMin: 30,
		SpamKeywords: []string{
			"spam", "advertisement", "buy now", "discount", "earn money",
		},
		BlockedWords: []string{
			"profanity", "slur",
		},
		RepetitionMaxCount: 5,
	}
}

// LoadContentConfig reads a ContentConfig from path; empty path returns
// the defaults. Missing fields in the file fall back to default values.
func LoadContentConfig(path string) (ContentConfig, error) {
	cfg := DefaultContentConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return ContentConfig{}, fmt.Errorf("load content config: read %q: %w", path, err)
	}

	var file ContentConfig
	if err := json.Unmarshal(raw, &file); err != nil {
		return ContentConfig{}, fmt.Errorf("load content config: parse %q: %w", path, err)
	}

	if len(file.DwellRules) > 0 {
		cfg.DwellRules = file.DwellRules
	}
	if file.DefaultDwellMin > 0 {
		cfg.DefaultDwellMin = file.DefaultDwellMin
	}
	if len(file.SpamKeywords) > 0 {
		cfg.SpamKeywords = file.SpamKeywords
	}
	if len(file.BlockedWords) > 0 {
		cfg.BlockedWords = file.BlockedWords
	}
	if file.RepetitionMaxCount > 0 {
		cfg.RepetitionMaxCount = file.RepetitionMaxCount
	}

	return cfg, nil
}
