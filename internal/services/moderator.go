package services

import (
	"strings"

	"tourist-route-service/internal/config"
	"tourist-route-service/internal/domain"
)

// Moderator runs the keyword/repetition scan over submission text.
// Severity policy is binary: any flag hides the content pending human
// review.
type Moderator struct {
	spamKeywords []string
	blockedWords []string
	maxRepeats   int
}

func NewModerator(cfg config.ContentConfig) *Moderator {
	lower := func(words []string) []string {
		out := make([]string, len(words))
		for i, w := range words {
			out[i] = strings.ToLower(w)
		}
		return out
	}

	return &Moderator{
		spamKeywords: lower(cfg.SpamKeywords),
		blockedWords: lower(cfg.BlockedWords),
		maxRepeats:   cfg.RepetitionMaxCount,
	}
}

// Moderate scans text and returns the fired flags. It never errors;
// moderation is best-effort by contract.
func (m *Moderator) Moderate(text string) domain.ModerationResult {
	lowerText := strings.ToLower(text)
	flags := []string{}

	if containsAny(lowerText, m.spamKeywords) {
		flags = append(flags, domain.FlagSpam)
	}
	if containsAny(lowerText, m.blockedWords) {
		flags = append(flags, domain.FlagInappropriate)
	}
	if hasExcessiveRepetition(text, m.maxRepeats) {
		flags = append(flags, domain.FlagRepetitive)
	}

	return domain.ModerationResult{
		Flags:      flags,
		ShouldHide: len(flags) > 0,
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// A single whitespace-delimited token occurring more than maxRepeats
// times marks the text repetitive.
func hasExcessiveRepetition(text string, maxRepeats int) bool {
	counts := map[string]int{}
	for _, token := range strings.Fields(text) {
		counts[token]++
		if counts[token] > maxRepeats {
			return true
		}
	}
	return false
}
