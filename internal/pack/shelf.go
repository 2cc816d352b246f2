package pack

import "sort"

// packShelf packs items into horizontal shelves. Items are processed
// tallest first so each shelf is anchored by its tallest member and later,
// shorter items waste as little vertical space as possible. The sort is
// stable, so equal heights keep their input order.
func packShelf(items []Item, spec CanvasSpec) ([]Placement, error) {
	// Any single image wider or taller than the canvas can never be
	// placed, whatever the packing order.
	for _, it := range items {
		if it.Width > spec.MaxWidth || it.Height > spec.MaxHeight {
			return nil, &OversizedImageError{
				ID:     it.ID,
				Width:  it.Width,
				Height: it.Height,
				FitW:   spec.MaxWidth,
				FitH:   spec.MaxHeight,
			}
		}
	}

	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Height > sorted[j].Height
	})

	// Placements are keyed by ID during packing so the plan can be
	// reported in the caller's original order afterwards.
	at := make(map[string]Placement, len(sorted))
	x, y, shelfHeight := 0, 0, 0
	for i, it := range sorted {
		if x+it.Width > spec.MaxWidth {
			y += shelfHeight
			x, shelfHeight = 0, 0
		}
		if y+it.Height > spec.MaxHeight {
			return nil, &CapacityExceededError{Placed: i, Total: len(items)}
		}
		at[it.ID] = Placement{ID: it.ID, X: x, Y: y}
		x += it.Width
		if it.Height > shelfHeight {
			shelfHeight = it.Height
		}
	}

	placements := make([]Placement, len(items))
	for i, it := range items {
		placements[i] = at[it.ID]
	}
	return placements, nil
}
