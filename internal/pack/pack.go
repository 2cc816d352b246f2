package pack

import (
	"errors"
	"fmt"
)

// Item is the packing engine's view of a source image: its identity and
// dimensions only, never pixel data.
type Item struct {
	// ID is the stable image identifier, derived from the source filename.
	ID string

	// Width is the image width in pixels. Must be > 0.
	Width int

	// Height is the image height in pixels. Must be > 0.
	Height int
}

// CanvasSpec describes the output canvas and the packing strategy.
//
// MaxWidth and MaxHeight are the exact dimensions of the atlas. CellWidth
// and CellHeight select grid mode when both are set; leaving both zero
// selects free (shelf) mode. Setting only one of them is a validation
// error.
type CanvasSpec struct {
	MaxWidth   int
	MaxHeight  int
	CellWidth  int
	CellHeight int
}

// GridMode reports whether the spec selects fixed-cell grid packing.
func (s CanvasSpec) GridMode() bool {
	return s.CellWidth > 0 || s.CellHeight > 0
}

// Validate checks the spec's internal consistency.
//
// Rules:
//   - MaxWidth and MaxHeight must be positive.
//   - CellWidth and CellHeight must be set together or not at all.
//   - When set, 0 < CellWidth <= MaxWidth and 0 < CellHeight <= MaxHeight.
func (s CanvasSpec) Validate() error {
	if s.MaxWidth <= 0 || s.MaxHeight <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", s.MaxWidth, s.MaxHeight)
	}
	if (s.CellWidth > 0) != (s.CellHeight > 0) {
		return errors.New("sprite cell width and height must be given together")
	}
	if s.CellWidth < 0 || s.CellHeight < 0 {
		return fmt.Errorf("cell dimensions must not be negative, got %dx%d", s.CellWidth, s.CellHeight)
	}
	if s.CellWidth > s.MaxWidth || s.CellHeight > s.MaxHeight {
		return fmt.Errorf("cell %dx%d does not fit canvas %dx%d",
			s.CellWidth, s.CellHeight, s.MaxWidth, s.MaxHeight)
	}
	return nil
}

// Placement records where one image landed on the canvas.
type Placement struct {
	// ID matches the Item the placement belongs to.
	ID string `json:"id"`

	// X is the horizontal offset of the image's left edge, in pixels.
	X int `json:"x"`

	// Y is the vertical offset of the image's top edge, in pixels.
	Y int `json:"y"`
}

// OversizedImageError reports an image that cannot fit the canvas (free
// mode) or its cell (grid mode) under any arrangement.
type OversizedImageError struct {
	ID     string // offending image
	Width  int    // image width in pixels
	Height int    // image height in pixels
	FitW   int    // width limit it was checked against
	FitH   int    // height limit it was checked against
}

func (e *OversizedImageError) Error() string {
	return fmt.Sprintf("image %q (%dx%d) exceeds %dx%d and can never fit",
		e.ID, e.Width, e.Height, e.FitW, e.FitH)
}

// CapacityExceededError reports that the images individually fit but
// collectively overflow the canvas.
type CapacityExceededError struct {
	Placed int // images placed before the overflow
	Total  int // images in the input set
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("canvas capacity exceeded: placed %d of %d images", e.Placed, e.Total)
}

// Pack computes a complete placement plan for items on the canvas described
// by spec, or fails without placing anything.
//
// The returned plan has exactly one placement per item, in the same order
// as items, regardless of the internal packing order. It is never partial:
// on error the returned slice is nil.
//
// Errors:
//   - validation errors from CanvasSpec.Validate
//   - *OversizedImageError if any single item can never fit
//   - *CapacityExceededError if the set overflows the canvas
func Pack(items []Item, spec CanvasSpec) ([]Placement, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if spec.GridMode() {
		return packGrid(items, spec)
	}
	return packShelf(items, spec)
}
