package timeline

import (
	"testing"
	"time"
)

func TestBuildTimeSlots_DefaultGrid(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	cfg := Config{StartHour: 7, EndHour: 19, IntervalMinutes: 30}

	grid, err := BuildTimeSlots(day, cfg)
	if err != nil {
		t.Fatalf("BuildTimeSlots failed: %v", err)
	}
	if len(grid.Slots) != 24 {
		t.Fatalf("expected 24 slots, got %d", len(grid.Slots))
	}
	if !grid.Slots[0].Equal(time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)) {
		t.Fatalf("first slot should be 07:00, got %s", grid.Slots[0])
	}
	last := grid.Slots[len(grid.Slots)-1]
	if !last.Equal(time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)) {
		t.Fatalf("last slot should be 18:30, got %s", last)
	}
	if !last.Before(grid.End) {
		t.Fatal("last slot must stay strictly before the window end")
	}

	step := 30 * time.Minute
	for i := 1; i < len(grid.Slots); i++ {
		if grid.Slots[i].Sub(grid.Slots[i-1]) != step {
			t.Fatalf("slots %d and %d are %s apart, want %s", i-1, i, grid.Slots[i].Sub(grid.Slots[i-1]), step)
		}
	}
}

func TestBuildTimeSlots_UnevenInterval(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	cfg := Config{StartHour: 7, EndHour: 9, IntervalMinutes: 45}

	grid, err := BuildTimeSlots(day, cfg)
	if err != nil {
		t.Fatalf("BuildTimeSlots failed: %v", err)
	}
	// 07:00, 07:45, 08:30; the next step would land on 09:15, past the end.
	if len(grid.Slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(grid.Slots))
	}
	if got := cfg.SlotCount(); got != 3 {
		t.Fatalf("SlotCount() = %d, want 3", got)
	}
}

func TestBuildTimeSlots_MidnightEnd(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	cfg := Config{StartHour: 22, EndHour: 24, IntervalMinutes: 60}

	grid, err := BuildTimeSlots(day, cfg)
	if err != nil {
		t.Fatalf("BuildTimeSlots failed: %v", err)
	}
	if len(grid.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(grid.Slots))
	}
	if !grid.End.Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end hour 24 should normalize to next-day midnight, got %s", grid.End)
	}
}

func TestBuildTimeSlots_RejectsInvalidConfig(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	bad := []Config{
		{StartHour: 19, EndHour: 7, IntervalMinutes: 30},
		{StartHour: 9, EndHour: 9, IntervalMinutes: 30},
		{StartHour: -1, EndHour: 19, IntervalMinutes: 30},
		{StartHour: 7, EndHour: 25, IntervalMinutes: 30},
		{StartHour: 7, EndHour: 19, IntervalMinutes: 0},
	}
	for _, cfg := range bad {
		if _, err := BuildTimeSlots(day, cfg); err == nil {
			t.Fatalf("config %+v should be rejected", cfg)
		}
	}
}

func TestSlotMinute(t *testing.T) {
	slot := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	if got := SlotMinute(slot); got != 570 {
		t.Fatalf("SlotMinute(09:30) = %d, want 570", got)
	}
}
