package timeline

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DayRangeUTC returns the UTC instant range covering the given local
// calendar day: [local midnight, next local midnight). The upper bound uses
// calendar-day arithmetic rather than a fixed 24h offset, so it stays
// correct across month and year rollovers and DST transitions.
func DayRangeUTC(day time.Time) (time.Time, time.Time) {
	loc := day.Location()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start.UTC(), end.UTC()
}

// DayRangeUTCStrings is DayRangeUTC formatted as RFC 3339 UTC strings,
// ready for a range query against UTC-stored timestamps.
func DayRangeUTCStrings(day time.Time) (string, string) {
	start, end := DayRangeUTC(day)
	return start.Format(time.RFC3339), end.Format(time.RFC3339)
}

var storedTimestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00", // no seconds
}

// ParseStoredTimestamp parses a persisted timestamp string. Values carrying
// an explicit offset or Z suffix are parsed as-is; values without timezone
// information are assumed to be UTC. Treating them as local time instead
// would silently shift every booking by the viewer's UTC offset, so the UTC
// default is deliberate and load-bearing.
func ParseStoredTimestamp(ts string) (time.Time, error) {
	raw := strings.TrimSpace(ts)
	if raw == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	// Tolerate a space separator between date and time.
	if len(raw) > 10 && raw[10] == ' ' {
		raw = raw[:10] + "T" + raw[11:]
	}
	if !hasExplicitZone(raw) {
		raw += "Z"
	}
	for _, layout := range storedTimestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", ts)
}

func hasExplicitZone(ts string) bool {
	if strings.HasSuffix(ts, "Z") || strings.HasSuffix(ts, "z") {
		return true
	}
	i := strings.IndexByte(ts, 'T')
	if i < 0 {
		return false
	}
	// After the date part, '+' or '-' can only introduce a numeric offset.
	return strings.ContainsAny(ts[i+1:], "+-")
}
