package pack

// packGrid assigns items to fixed-size cells in row-major order: item i
// goes to cell (i mod columns, i div columns), placed at the cell's
// top-left corner. No scaling or centering is performed; an image larger
// than its cell on either axis is rejected outright.
func packGrid(items []Item, spec CanvasSpec) ([]Placement, error) {
	columns := spec.MaxWidth / spec.CellWidth
	rows := spec.MaxHeight / spec.CellHeight

	if len(items) > columns*rows {
		return nil, &CapacityExceededError{Placed: columns * rows, Total: len(items)}
	}

	placements := make([]Placement, 0, len(items))
	for i, it := range items {
		if it.Width > spec.CellWidth || it.Height > spec.CellHeight {
			return nil, &OversizedImageError{
				ID:     it.ID,
				Width:  it.Width,
				Height: it.Height,
				FitW:   spec.CellWidth,
				FitH:   spec.CellHeight,
			}
		}
		placements = append(placements, Placement{
			ID: it.ID,
			X:  (i % columns) * spec.CellWidth,
			Y:  (i / columns) * spec.CellHeight,
		})
	}
	return placements, nil
}
