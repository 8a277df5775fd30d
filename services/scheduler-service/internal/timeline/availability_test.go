package timeline

import (
	"testing"
	"time"

	"github.com/flightops/flightline/services/scheduler-service/internal/model"
)

func activeRule(instructorID, start, end string) model.RosterRule {
	return model.RosterRule{
		InstructorID: instructorID,
		StartTime:    start,
		EndTime:      end,
		IsActive:     true,
	}
}

func TestBuildAvailability_SkipsBadRules(t *testing.T) {
	voided := time.Now()
	rules := []model.RosterRule{
		activeRule("ins-1", "09:00", "12:00"),
		activeRule("ins-1", "13:00:00", "17:00:00"),
		{InstructorID: "ins-2", StartTime: "09:00", EndTime: "17:00", IsActive: false},
		{InstructorID: "ins-3", StartTime: "09:00", EndTime: "17:00", IsActive: true, VoidedAt: &voided},
		activeRule("ins-4", "25:00", "26:00"),
		activeRule("ins-5", "09:60", "10:00"),
		activeRule("ins-6", "nine", "ten"),
		activeRule("ins-7", "14:00", "14:00"),
		activeRule("ins-8", "17:00", "09:00"),
	}

	index := BuildAvailability(rules)
	if len(index) != 1 {
		t.Fatalf("expected only ins-1 to survive, got %d entries", len(index))
	}
	windows := index["ins-1"]
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows for ins-1, got %d", len(windows))
	}
	if windows[0] != (MinutesWindow{StartMin: 540, EndMin: 720}) {
		t.Fatalf("unexpected first window: %+v", windows[0])
	}
	if windows[1] != (MinutesWindow{StartMin: 780, EndMin: 1020}) {
		t.Fatalf("unexpected second window: %+v", windows[1])
	}
}

func TestBuildAvailability_AbsenceIsUnavailable(t *testing.T) {
	index := BuildAvailability([]model.RosterRule{activeRule("ins-1", "09:00", "12:00")})

	// No roster rules means no entry; the nil window list rejects every minute.
	windows, ok := index["ins-unknown"]
	if ok {
		t.Fatalf("expected no entry for unrostered instructor, got %+v", windows)
	}
	if WithinAnyWindow(600, windows) {
		t.Fatal("unrostered instructor must be unavailable, not open")
	}
}

func TestWithinAnyWindow_HalfOpen(t *testing.T) {
	windows := []MinutesWindow{{StartMin: 540, EndMin: 600}} // 09:00-10:00

	if !WithinAnyWindow(540, windows) {
		t.Fatal("window start must be inclusive")
	}
	if !WithinAnyWindow(599, windows) {
		t.Fatal("last minute inside the window must be available")
	}
	if WithinAnyWindow(600, windows) {
		t.Fatal("window end must be exclusive")
	}
	if WithinAnyWindow(539, windows) {
		t.Fatal("minute before the window must be unavailable")
	}
}

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 540},
		{in: "23:59", want: 1439},
		{in: "07:15:30", want: 435},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "-1:00", wantErr: true},
		{in: "1200", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ClockMinutes(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ClockMinutes(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ClockMinutes(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ClockMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
