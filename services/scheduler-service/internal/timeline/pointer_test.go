package timeline

import (
	"errors"
	"testing"
)

func TestResolveSlotIndex_MidpointRoundTrip(t *testing.T) {
	const width = 960.0
	const slotCount = 24

	cellWidth := width / slotCount
	for k := 0; k < slotCount; k++ {
		mid := (float64(k) + 0.5) * cellWidth
		idx, err := ResolveSlotIndex(mid, width, slotCount)
		if err != nil {
			t.Fatalf("ResolveSlotIndex failed at slot %d: %v", k, err)
		}
		if idx != k {
			t.Fatalf("midpoint of slot %d resolved to %d", k, idx)
		}
	}
}

func TestResolveSlotIndex_BucketsNotRounds(t *testing.T) {
	// A click just inside a cell's right edge belongs to that cell; rounding
	// to the nearest boundary would hand it to the neighbor.
	idx, err := ResolveSlotIndex(99.0, 100.0, 10)
	if err != nil {
		t.Fatalf("ResolveSlotIndex failed: %v", err)
	}
	if idx != 9 {
		t.Fatalf("click at 99/100 with 10 slots resolved to %d, want 9", idx)
	}

	idx, err = ResolveSlotIndex(10.0, 100.0, 10)
	if err != nil {
		t.Fatalf("ResolveSlotIndex failed: %v", err)
	}
	if idx != 1 {
		t.Fatalf("click on boundary 10/100 resolved to %d, want 1", idx)
	}
}

func TestResolveSlotIndex_Clamps(t *testing.T) {
	idx, err := ResolveSlotIndex(-5.0, 100.0, 10)
	if err != nil {
		t.Fatalf("ResolveSlotIndex failed: %v", err)
	}
	if idx != 0 {
		t.Fatalf("negative position resolved to %d, want 0", idx)
	}

	idx, err = ResolveSlotIndex(100.0, 100.0, 10)
	if err != nil {
		t.Fatalf("ResolveSlotIndex failed: %v", err)
	}
	if idx != 9 {
		t.Fatalf("trailing edge resolved to %d, want 9", idx)
	}
}

func TestResolveSlotIndex_RefusesDegenerateInput(t *testing.T) {
	if _, err := ResolveSlotIndex(10, 0, 10); !errors.Is(err, ErrZeroWidthContainer) {
		t.Fatalf("zero width should fail with ErrZeroWidthContainer, got %v", err)
	}
	if _, err := ResolveSlotIndex(10, -50, 10); !errors.Is(err, ErrZeroWidthContainer) {
		t.Fatalf("negative width should fail with ErrZeroWidthContainer, got %v", err)
	}
	if _, err := ResolveSlotIndex(10, 100, 0); !errors.Is(err, ErrNoSlots) {
		t.Fatalf("zero slot count should fail with ErrNoSlots, got %v", err)
	}
}
