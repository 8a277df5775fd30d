package timeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flightops/flightline/services/scheduler-service/internal/model"
)

// MinutesWindow is a half-open span of minutes since local midnight during
// which an instructor is rostered on: [StartMin, EndMin).
type MinutesWindow struct {
	StartMin int
	EndMin   int
}

// BuildAvailability folds a day's roster rules into per-instructor duty
// windows. Inactive and voided rules are skipped, as are rules whose clock
// strings do not parse or whose end does not come after their start: one bad
// rule degrades that window to unavailable instead of failing the whole day.
//
// An instructor with no surviving rules has no entry in the map, which
// callers must treat as fully unavailable, not fully open.
func BuildAvailability(rules []model.RosterRule) map[string][]MinutesWindow {
	index := make(map[string][]MinutesWindow)
	for _, rule := range rules {
		if !rule.IsActive || rule.VoidedAt != nil {
			continue
		}
		start, err := ClockMinutes(rule.StartTime)
		if err != nil {
			continue
		}
		end, err := ClockMinutes(rule.EndTime)
		if err != nil {
			continue
		}
		if end <= start {
			continue
		}
		index[rule.InstructorID] = append(index[rule.InstructorID], MinutesWindow{StartMin: start, EndMin: end})
	}
	return index
}

// WithinAnyWindow reports whether a minute-of-day falls inside any window.
// Window starts are inclusive and ends exclusive, so a duty ending at 17:00
// leaves the 17:00 slot itself unavailable.
func WithinAnyWindow(minute int, windows []MinutesWindow) bool {
	for _, w := range windows {
		if minute >= w.StartMin && minute < w.EndMin {
			return true
		}
	}
	return false
}

// ClockMinutes parses a wall-clock "HH:MM" or "HH:MM:SS" string into minutes
// since midnight.
func ClockMinutes(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d out of range in %q", hour, s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute %d out of range in %q", minute, s)
	}
	return hour*60 + minute, nil
}
