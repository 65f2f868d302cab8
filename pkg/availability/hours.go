package availability

import (
	"strconv"
	"strings"
)

// HoursFromParts sums the durations of the given day-part tokens. If "anytime"
// is present it absorbs everything else and the full-day duration is returned.
// Tokens not in the period table contribute nothing.
func HoursFromParts(parts []string) float64 {
	for _, p := range parts {
		if PartOfDay(p) == PartAnytime {
			return periodTable[PartAnytime].hours
		}
	}

	var total float64
	for _, p := range parts {
		if ph, ok := periodTable[PartOfDay(p)]; ok {
			total += ph.hours
		}
	}
	return total
}

// HoursFromRange returns the decimal hours between two wall-clock times given
// as "HH:MM:SS" (or "HH:MM") strings. An empty or unparseable bound yields 0.
// The difference is not clamped: an end before its start produces a negative
// figure, and there is no wraparound past midnight.
func HoursFromRange(start, end string) float64 {
	startMin, ok := minutesOfDay(start)
	if !ok {
		return 0
	}
	endMin, ok := minutesOfDay(end)
	if !ok {
		return 0
	}
	return float64(endMin-startMin) / 60
}

func minutesOfDay(clock string) (int, bool) {
	if clock == "" {
		return 0, false
	}
	fields := strings.Split(clock, ":")
	if len(fields) < 2 {
		return 0, false
	}
	hh, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	mm, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, false
	}
	return hh*60 + mm, true
}
