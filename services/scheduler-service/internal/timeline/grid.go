// Package timeline is the pure computational core of the day scheduler:
// slot generation, roster availability lookup, booking-to-geometry
// projection, pointer snapping and UTC/local day boundary translation.
// Every function is a deterministic, side-effect-free transform, safe to
// call concurrently and to memoize on its inputs.
package timeline

import (
	"fmt"
	"time"
)

// Config describes the visible time grid for one calendar day.
type Config struct {
	StartHour       int // [0,23]
	EndHour         int // [1,24], must be > StartHour
	IntervalMinutes int // > 0
}

func (c Config) Validate() error {
	if c.StartHour < 0 || c.StartHour > 23 {
		return fmt.Errorf("start hour %d out of range [0,23]", c.StartHour)
	}
	if c.EndHour < 1 || c.EndHour > 24 {
		return fmt.Errorf("end hour %d out of range [1,24]", c.EndHour)
	}
	if c.EndHour <= c.StartHour {
		return fmt.Errorf("end hour %d must be after start hour %d", c.EndHour, c.StartHour)
	}
	if c.IntervalMinutes <= 0 {
		return fmt.Errorf("interval %d must be positive", c.IntervalMinutes)
	}
	return nil
}

// SlotCount returns how many slots BuildTimeSlots will produce.
func (c Config) SlotCount() int {
	total := (c.EndHour - c.StartHour) * 60
	return (total + c.IntervalMinutes - 1) / c.IntervalMinutes
}

// Grid is the slot layout for one day. Slots are strictly increasing and
// evenly spaced; the interval is half-open, so the last slot starts before
// End but End itself is never a slot.
type Grid struct {
	Slots []time.Time
	Start time.Time
	End   time.Time
}

// BuildTimeSlots expands a config into concrete slot start instants on the
// given day, in the day's location. An invalid config is a caller error and
// is rejected up front rather than patched over.
func BuildTimeSlots(day time.Time, cfg Config) (Grid, error) {
	if err := cfg.Validate(); err != nil {
		return Grid{}, fmt.Errorf("invalid timeline config: %w", err)
	}

	loc := day.Location()
	start := time.Date(day.Year(), day.Month(), day.Day(), cfg.StartHour, 0, 0, 0, loc)
	end := time.Date(day.Year(), day.Month(), day.Day(), cfg.EndHour, 0, 0, 0, loc)
	step := time.Duration(cfg.IntervalMinutes) * time.Minute

	slots := make([]time.Time, 0, cfg.SlotCount())
	for t := start; t.Before(end); t = t.Add(step) {
		slots = append(slots, t)
	}
	return Grid{Slots: slots, Start: start, End: end}, nil
}

// SlotMinute returns the minutes-since-local-midnight of a slot instant,
// the unit roster availability windows are expressed in.
func SlotMinute(slot time.Time) int {
	return slot.Hour()*60 + slot.Minute()
}
