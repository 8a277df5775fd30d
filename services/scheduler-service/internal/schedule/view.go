// Package schedule composes the timeline engine into a renderable day view:
// one row per resource, per-slot availability, and positioned bookings.
package schedule

import (
	"fmt"
	"time"

	"github.com/flightops/flightline/services/scheduler-service/internal/model"
	"github.com/flightops/flightline/services/scheduler-service/internal/timeline"
)

// PositionedBooking pairs a booking with its geometry inside the visible
// window.
type PositionedBooking struct {
	Booking model.Booking
	Layout  timeline.BookingLayout
}

// Row is one timeline row. Open has one entry per grid slot; instructor rows
// are gated by their roster windows, aircraft rows are always open.
type Row struct {
	Resource model.Resource
	Open     []bool
	Bookings []PositionedBooking
}

// DayView is the complete composed schedule for one day. It is a pure
// projection of its inputs and holds no references back to them.
type DayView struct {
	Day    time.Time
	Config timeline.Config
	Grid   timeline.Grid
	Rows   []Row
}

// BuildDayView lays out every resource row for the given day. Cancelled
// bookings and bookings entirely outside the visible window are dropped.
// A booking appears on its aircraft row and, when it has an instructor ref,
// on that instructor's row too.
func BuildDayView(day time.Time, cfg timeline.Config, resources []model.Resource, rules []model.RosterRule, bookings []model.Booking) (DayView, error) {
	grid, err := timeline.BuildTimeSlots(day, cfg)
	if err != nil {
		return DayView{}, err
	}
	availability := timeline.BuildAvailability(rules)

	view := DayView{Day: day, Config: cfg, Grid: grid, Rows: make([]Row, 0, len(resources))}
	for _, res := range resources {
		row := Row{Resource: res, Open: make([]bool, len(grid.Slots))}

		windows := availability[res.ID]
		for i, slot := range grid.Slots {
			if res.Kind == model.ResourceAircraft {
				row.Open[i] = true
				continue
			}
			row.Open[i] = timeline.WithinAnyWindow(timeline.SlotMinute(slot), windows)
		}

		for _, b := range bookings {
			if b.Status == model.BookingStatusCancelled {
				continue
			}
			if !bookingOnRow(res, b) {
				continue
			}
			layout, visible := timeline.ProjectBooking(b.StartTime, b.EndTime, grid.Start, grid.End)
			if !visible {
				continue
			}
			row.Bookings = append(row.Bookings, PositionedBooking{Booking: b, Layout: layout})
		}

		view.Rows = append(view.Rows, row)
	}
	return view, nil
}

func bookingOnRow(res model.Resource, b model.Booking) bool {
	switch res.Kind {
	case model.ResourceInstructor:
		return b.InstructorID != "" && b.InstructorID == res.ID
	case model.ResourceAircraft:
		return b.AircraftID == res.ID
	default:
		return false
	}
}

// ClickTarget is the outcome of resolving a pointer position on a row.
// Allowed is false when the slot is outside the resource's availability, in
// which case the click must not start a booking.
type ClickTarget struct {
	SlotIndex int
	SlotStart time.Time
	Allowed   bool
}

// ResolveClick snaps a pointer position within a row to its grid cell and
// gates it against the row's availability.
func (v DayView) ResolveClick(resourceID string, pointerX, containerWidth float64) (ClickTarget, error) {
	row, ok := v.rowFor(resourceID)
	if !ok {
		return ClickTarget{}, fmt.Errorf("unknown resource %q", resourceID)
	}
	idx, err := timeline.ResolveSlotIndex(pointerX, containerWidth, len(v.Grid.Slots))
	if err != nil {
		return ClickTarget{}, err
	}
	return ClickTarget{
		SlotIndex: idx,
		SlotStart: v.Grid.Slots[idx],
		Allowed:   row.Open[idx],
	}, nil
}

func (v DayView) rowFor(resourceID string) (Row, bool) {
	for _, row := range v.Rows {
		if row.Resource.ID == resourceID {
			return row, true
		}
	}
	return Row{}, false
}
