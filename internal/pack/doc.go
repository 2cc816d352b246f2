// Package pack computes sprite placements on a fixed-size atlas canvas.
//
// The entry point is Pack, a pure function from a list of sprite dimensions
// and a CanvasSpec to a complete placement plan. Two strategies are
// supported, selected by the CanvasSpec:
//
//   - Grid mode (CellWidth/CellHeight set): every sprite occupies the
//     top-left corner of a fixed-size cell, assigned in row-major order.
//   - Free mode (no cell size): a shelf heuristic packs sprites into rows,
//     tallest first, starting a new row when the current one is full.
//
// # Coordinate System
//
// Placements use the same convention as the rest of the repository: (0,0)
// is the top-left corner of the canvas, X increases rightward, Y increases
// downward. A placement at (x,y) for a w×h sprite covers the half-open
// rectangle [x, x+w) × [y, y+h).
//
// # Determinism
//
// Pack holds no state between calls and uses no randomness: the same items
// and spec always yield the same plan. Ties in the free-mode height sort
// are broken by input order (the sort is stable), so catalog ordering fully
// determines the result.
//
// # Error Handling
//
// Failures are total: Pack either places every item or returns nil and one
// of the typed errors below. A sprite that cannot fit the canvas (or its
// cell) under any arrangement yields *OversizedImageError naming the
// sprite. A set that individually fits but collectively overflows yields
// *CapacityExceededError reporting how many items had been placed.
package pack
