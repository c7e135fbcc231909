// Package labelling finds connected foreground blobs in an RGBA raster and
// renders each blob with its own color.
//
// The pipeline has four stages, each usable on its own:
//
//  1. Binarize: exact per-channel match against a background color produces a
//     Mask where 0 is background and 255 is foreground.
//  2. Label: two-pass union-find labelling under 4-connectivity produces a
//     LabelRaster with background 0 and blobs numbered densely 1..K.
//  3. ColorTable.EnsureCapacity: the session color table grows (by full
//     regeneration) when an image has more blobs than the table covers.
//  4. Remap: every label is replaced with its table color.
//
// # Coordinate System
//
// Rasters are row-major with no padding. The pixel at (x, y) lives at index
// y*Width+x; RGBA buffers use 4 bytes per pixel in R, G, B, A order.
//
// # Sessions
//
// A Finder owns one ColorTable and the output of its last successful call.
// Colors for a label stay the same across calls until an image needs a
// bigger table, at which point every color is redrawn. A Finder is not safe
// for concurrent use; callers that share one must serialize access.
//
// # Error Handling
//
// Buffers whose length disagrees with the declared dimensions fail with
// ErrDimensionMismatch and leave the previous output in place. Reading output
// before any successful call fails with ErrNoOutputAvailable. An image with
// no foreground is a valid result with zero blobs.
package labelling
