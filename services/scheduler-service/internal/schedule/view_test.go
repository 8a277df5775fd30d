package schedule

import (
	"testing"
	"time"

	"github.com/flightops/flightline/services/scheduler-service/internal/model"
	"github.com/flightops/flightline/services/scheduler-service/internal/timeline"
)

var testConfig = timeline.Config{StartHour: 7, EndHour: 19, IntervalMinutes: 30}

func testDay() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func testResources() []model.Resource {
	return []model.Resource{
		{Kind: model.ResourceInstructor, ID: "ins-1", Label: "A. Novak"},
		{Kind: model.ResourceAircraft, ID: "ac-1", Label: "N5312K"},
	}
}

func morningRoster() []model.RosterRule {
	return []model.RosterRule{{
		InstructorID: "ins-1",
		StartTime:    "09:00",
		EndTime:      "12:00",
		IsActive:     true,
	}}
}

func TestBuildDayView_InstructorGating(t *testing.T) {
	view, err := BuildDayView(testDay(), testConfig, testResources(), morningRoster(), nil)
	if err != nil {
		t.Fatalf("BuildDayView failed: %v", err)
	}
	if len(view.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(view.Rows))
	}

	ins := view.Rows[0]
	// Grid starts at 07:00 in 30-minute steps; slot 4 is 09:00, slot 9 is
	// 11:30, slot 10 is 12:00.
	if ins.Open[3] {
		t.Fatal("08:30 must be closed for a 09:00-12:00 roster")
	}
	if !ins.Open[4] {
		t.Fatal("09:00 must be open (window start inclusive)")
	}
	if !ins.Open[9] {
		t.Fatal("11:30 must be open")
	}
	if ins.Open[10] {
		t.Fatal("12:00 must be closed (window end exclusive)")
	}

	aircraft := view.Rows[1]
	for i, open := range aircraft.Open {
		if !open {
			t.Fatalf("aircraft slot %d must be open; aircraft have no roster gate", i)
		}
	}
}

func TestBuildDayView_BookingPlacement(t *testing.T) {
	day := testDay()
	bookings := []model.Booking{
		{
			ID:           "bk-dual",
			AircraftID:   "ac-1",
			InstructorID: "ins-1",
			StartTime:    day.Add(9*time.Hour + 15*time.Minute),
			EndTime:      day.Add(10*time.Hour + 5*time.Minute),
			Status:       model.BookingStatusBooked,
		},
		{
			ID:         "bk-solo",
			AircraftID: "ac-1",
			StartTime:  day.Add(14 * time.Hour),
			EndTime:    day.Add(15 * time.Hour),
			Status:     model.BookingStatusBooked,
		},
		{
			ID:         "bk-cancelled",
			AircraftID: "ac-1",
			StartTime:  day.Add(11 * time.Hour),
			EndTime:    day.Add(12 * time.Hour),
			Status:     model.BookingStatusCancelled,
		},
		{
			ID:         "bk-night",
			AircraftID: "ac-1",
			StartTime:  day.Add(20 * time.Hour),
			EndTime:    day.Add(21 * time.Hour),
			Status:     model.BookingStatusBooked,
		},
	}

	view, err := BuildDayView(day, testConfig, testResources(), morningRoster(), bookings)
	if err != nil {
		t.Fatalf("BuildDayView failed: %v", err)
	}

	ins := view.Rows[0]
	if len(ins.Bookings) != 1 || ins.Bookings[0].Booking.ID != "bk-dual" {
		t.Fatalf("instructor row should carry only the dual booking, got %+v", ins.Bookings)
	}

	aircraft := view.Rows[1]
	// Dual + solo; cancelled and off-window bookings are dropped.
	if len(aircraft.Bookings) != 2 {
		t.Fatalf("aircraft row should carry 2 bookings, got %d", len(aircraft.Bookings))
	}
	ids := map[string]bool{}
	for _, pb := range aircraft.Bookings {
		ids[pb.Booking.ID] = true
	}
	if !ids["bk-dual"] || !ids["bk-solo"] {
		t.Fatalf("unexpected aircraft bookings: %v", ids)
	}
}

func TestDayView_ResolveClick(t *testing.T) {
	view, err := BuildDayView(testDay(), testConfig, testResources(), morningRoster(), nil)
	if err != nil {
		t.Fatalf("BuildDayView failed: %v", err)
	}

	const width = 960.0
	cellWidth := width / 24

	// Slot 3 = 08:30, outside the 09:00-12:00 roster: resolved but inert.
	target, err := view.ResolveClick("ins-1", 3.5*cellWidth, width)
	if err != nil {
		t.Fatalf("ResolveClick failed: %v", err)
	}
	if target.SlotIndex != 3 {
		t.Fatalf("expected slot 3, got %d", target.SlotIndex)
	}
	if target.Allowed {
		t.Fatal("08:30 click must be rejected for a 09:00-12:00 roster")
	}

	// Slot 4 = 09:00: accepted.
	target, err = view.ResolveClick("ins-1", 4.5*cellWidth, width)
	if err != nil {
		t.Fatalf("ResolveClick failed: %v", err)
	}
	if target.SlotIndex != 4 {
		t.Fatalf("expected slot 4, got %d", target.SlotIndex)
	}
	if !target.Allowed {
		t.Fatal("09:00 click must be accepted")
	}
	if !target.SlotStart.Equal(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected slot start %s", target.SlotStart)
	}

	// Aircraft rows accept clicks anywhere.
	target, err = view.ResolveClick("ac-1", 3.5*cellWidth, width)
	if err != nil {
		t.Fatalf("ResolveClick failed: %v", err)
	}
	if !target.Allowed {
		t.Fatal("aircraft rows have no availability gate")
	}
}

func TestDayView_ResolveClick_Errors(t *testing.T) {
	view, err := BuildDayView(testDay(), testConfig, testResources(), nil, nil)
	if err != nil {
		t.Fatalf("BuildDayView failed: %v", err)
	}

	if _, err := view.ResolveClick("nope", 10, 100); err == nil {
		t.Fatal("unknown resource must fail")
	}
	if _, err := view.ResolveClick("ins-1", 10, 0); err == nil {
		t.Fatal("zero-width container must fail")
	}
}

func TestBuildDayView_NoRosterMeansFullyClosed(t *testing.T) {
	view, err := BuildDayView(testDay(), testConfig, testResources(), nil, nil)
	if err != nil {
		t.Fatalf("BuildDayView failed: %v", err)
	}
	for i, open := range view.Rows[0].Open {
		if open {
			t.Fatalf("slot %d open; an instructor without roster rules is fully unavailable", i)
		}
	}
}
