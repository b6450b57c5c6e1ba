package services

import (
	"strconv"
	"strings"
	"time"
)

// Weekday codes used in opening-hours specs. Sunday is 0 to line up with
// time.Weekday.
var dayCodes = map[string]int{
	"Su": 0, "Mo": 1, "Tu": 2, "We": 3, "Th": 4, "Fr": 5, "Sa": 6,
}

// IsOpen evaluates an opening-hours spec at the given instant. An empty
// spec means always open.
//
// A spec is a semicolon-separated list of groups "<days> <start>-<end>",
// e.g. "Mo-Fr 09:00-18:00; Sa 10:00-16:00". A day range wraps across the
// week when its start index exceeds its end (Fr-Mo covers Fri..Mon); a
// time range wraps past midnight when start > end (22:00-02:00). The POI
// is open if any group matches both the weekday and the time of day.
// Malformed groups are skipped; one bad clause never poisons the rest.
func IsOpen(spec string, now time.Time) bool {
	if strings.TrimSpace(spec) == "" {
		return true
	}

	currentDay := int(now.Weekday())
	currentMin := now.Hour()*60 + now.Minute()

	for _, group := range strings.Split(spec, ";") {
		fields := strings.Fields(strings.TrimSpace(group))
		if len(fields) != 2 {
			continue
		}

		if dayInRange(fields[0], currentDay) && timeInRange(fields[1], currentMin) {
			return true
		}
	}

	return false
}

func dayInRange(days string, currentDay int) bool {
	if start, end, ok := strings.Cut(days, "-"); ok {
		startDay, sok := dayCodes[start]
		endDay, eok := dayCodes[end]
		if !sok || !eok {
			return false
		}

		if startDay <= endDay {
			return currentDay >= startDay && currentDay <= endDay
		}
		// Range wraps across the week boundary (e.g. Fr-Mo).
		return currentDay >= startDay || currentDay <= endDay
	}

	day, ok := dayCodes[days]
	return ok && day == currentDay
}

func timeInRange(timeRange string, currentMin int) bool {
	start, end, ok := strings.Cut(timeRange, "-")
	if !ok {
		return false
	}

	startMin, sok := parseTimeToMinutes(start)
	endMin, eok := parseTimeToMinutes(end)
	if !sok || !eok {
		return false
	}

	if startMin <= endMin {
		return currentMin >= startMin && currentMin <= endMin
	}
	// Range wraps past midnight (e.g. 22:00-02:00).
	return currentMin >= startMin || currentMin <= endMin
}

func parseTimeToMinutes(s string) (int, bool) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, false
	}

	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, false
	}

	return hours*60 + minutes, true
}
