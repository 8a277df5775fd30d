package timeline

import "time"

// BookingLayout is the horizontal geometry of a booking inside the visible
// window, as percentages of the window width. Recomputed on every render,
// never stored.
type BookingLayout struct {
	LeftPct      float64 `json:"left_pct"`
	WidthPct     float64 `json:"width_pct"`
	ClippedStart bool    `json:"clipped_start"`
	ClippedEnd   bool    `json:"clipped_end"`
}

// ProjectBooking maps a booking interval onto the visible window
// [windowStart, windowEnd). The second return is false when the booking does
// not intersect the window at all, which callers take as "render nothing".
// Bookings reaching past either edge are clamped and flagged so the caller
// can indicate truncation.
//
// Callers must not pass an empty window; such a window projects nothing.
func ProjectBooking(bookingStart, bookingEnd, windowStart, windowEnd time.Time) (BookingLayout, bool) {
	if !windowEnd.After(windowStart) {
		return BookingLayout{}, false
	}
	if !bookingEnd.After(windowStart) || !bookingStart.Before(windowEnd) {
		return BookingLayout{}, false
	}

	var layout BookingLayout
	clampedStart, clampedEnd := bookingStart, bookingEnd
	if bookingStart.Before(windowStart) {
		clampedStart = windowStart
		layout.ClippedStart = true
	}
	if bookingEnd.After(windowEnd) {
		clampedEnd = windowEnd
		layout.ClippedEnd = true
	}

	total := float64(windowEnd.Sub(windowStart))
	layout.LeftPct = float64(clampedStart.Sub(windowStart)) / total * 100
	layout.WidthPct = float64(clampedEnd.Sub(clampedStart)) / total * 100
	return layout, true
}
