package timeline

import (
	"testing"
	"time"
)

func TestDayRangeUTC_FixedOffset(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	start, end := DayRangeUTC(day)
	if !start.Equal(time.Date(2026, 3, 9, 21, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected range start: %s", start)
	}
	if !end.Equal(time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected range end: %s", end)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Fatalf("range duration = %s, want 24h", end.Sub(start))
	}
}

func TestDayRangeUTC_MonthAndYearRollover(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)

	start, end := DayRangeUTC(time.Date(2026, 1, 31, 0, 0, 0, 0, loc))
	if !end.Equal(time.Date(2026, 2, 1, 5, 0, 0, 0, time.UTC)) {
		t.Fatalf("month rollover: unexpected end %s", end)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Fatalf("month rollover: duration %s", end.Sub(start))
	}

	_, end = DayRangeUTC(time.Date(2026, 12, 31, 0, 0, 0, 0, loc))
	if !end.Equal(time.Date(2027, 1, 1, 5, 0, 0, 0, time.UTC)) {
		t.Fatalf("year rollover: unexpected end %s", end)
	}
}

func TestDayRangeUTCStrings(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	start, end := DayRangeUTCStrings(day)
	if start != "2026-03-09T21:00:00Z" {
		t.Fatalf("unexpected start string: %s", start)
	}
	if end != "2026-03-10T21:00:00Z" {
		t.Fatalf("unexpected end string: %s", end)
	}
}

func TestDayRangeUTC_PassedMidDayInstant(t *testing.T) {
	// Any instant within the day yields the same range as its midnight.
	loc := time.FixedZone("UTC+3", 3*60*60)
	midDay := time.Date(2026, 3, 10, 14, 37, 12, 0, loc)
	midnight := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	s1, e1 := DayRangeUTC(midDay)
	s2, e2 := DayRangeUTC(midnight)
	if !s1.Equal(s2) || !e1.Equal(e2) {
		t.Fatalf("mid-day instant produced a different range: [%s,%s) vs [%s,%s)", s1, e1, s2, e2)
	}
}

func TestParseStoredTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-10T09:15:00Z", time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC)},
		{"2026-03-10T09:15:00+03:00", time.Date(2026, 3, 10, 6, 15, 0, 0, time.UTC)},
		{"2026-03-10T09:15:00-05:00", time.Date(2026, 3, 10, 14, 15, 0, 0, time.UTC)},
		// No timezone info: assumed UTC, never local.
		{"2026-03-10T09:15:00", time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC)},
		{"2026-03-10T09:15:00.250", time.Date(2026, 3, 10, 9, 15, 0, 250_000_000, time.UTC)},
		{"2026-03-10T09:15", time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC)},
		{"2026-03-10 09:15:00", time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseStoredTimestamp(tc.in)
		if err != nil {
			t.Fatalf("ParseStoredTimestamp(%q) failed: %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseStoredTimestamp(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseStoredTimestamp_Rejects(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-timestamp", "2026-13-45T99:99:99Z"} {
		if _, err := ParseStoredTimestamp(in); err == nil {
			t.Fatalf("ParseStoredTimestamp(%q) should fail", in)
		}
	}
}
