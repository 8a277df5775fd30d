package model

import "time"

type ResourceKind string

const (
	ResourceInstructor ResourceKind = "instructor"
	ResourceAircraft   ResourceKind = "aircraft"
)

// Resource identifies one row of the scheduler timeline.
type Resource struct {
	Kind  ResourceKind
	ID    string
	Label string
}

const (
	BookingStatusBooked    = "booked"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a read-only projection of a flight reservation. Every booking
// occupies an aircraft; instructor and student refs are optional (solo
// flights and maintenance blocks have no instructor).
type Booking struct {
	ID           string
	AircraftID   string
	InstructorID string // empty for solo flights
	StudentID    string
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	Title        string
	CancelledAt  *time.Time
	CancelReason string
	CreatedAt    time.Time
}

// RosterRule is one instructor duty window for a single day, as stored by the
// back-office roster editor. StartTime/EndTime are wall-clock "HH:MM" or
// "HH:MM:SS" strings in the school's timezone.
type RosterRule struct {
	ID           string     `json:"id"`
	InstructorID string     `json:"instructor_id"`
	DutyDate     string     `json:"duty_date"` // "2006-01-02"
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	IsActive     bool       `json:"is_active"`
	VoidedAt     *time.Time `json:"voided_at"`
}
