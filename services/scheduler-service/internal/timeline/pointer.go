package timeline

import (
	"errors"
	"math"
)

var (
	ErrZeroWidthContainer = errors.New("container width must be positive")
	ErrNoSlots            = errors.New("slot count must be positive")
)

// ResolveSlotIndex maps a horizontal pointer position inside a row to the
// grid cell under it, by proportional bucketing: a click anywhere within a
// cell's pixel span resolves to that cell. This matches an equal-width
// column grid exactly, unlike nearest-neighbor rounding which would snap
// the right half of each cell to its neighbor.
//
// The result is clamped into [0, slotCount-1] so positions on the trailing
// edge still resolve to the last cell.
func ResolveSlotIndex(pointerX, containerWidth float64, slotCount int) (int, error) {
	if containerWidth <= 0 {
		return 0, ErrZeroWidthContainer
	}
	if slotCount <= 0 {
		return 0, ErrNoSlots
	}

	idx := int(math.Floor(pointerX / containerWidth * float64(slotCount)))
	if idx < 0 {
		idx = 0
	}
	if idx > slotCount-1 {
		idx = slotCount - 1
	}
	return idx, nil
}
