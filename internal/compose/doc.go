// Package compose turns a placement plan into output artifacts: the
// composited atlas image and the JSON mapping sidecar.
//
// Render blits each source image verbatim onto an NRGBA canvas at its
// planned offset. No resampling or color-space conversion is applied, and
// canvas pixels not covered by any placement keep the background fill
// (fully transparent unless a background color is given).
//
// WriteAtlas and WriteMapping perform the only disk writes in the
// repository. Both are called after packing and rendering have fully
// succeeded, so a failed run never leaves partial output behind.
package compose
