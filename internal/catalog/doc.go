// Package catalog loads a directory of source images into a validated,
// deterministically ordered set.
//
// Load scans a single directory (no recursion), keeps files whose extension
// is on the supported list (PNG, JPEG, WebP, WebM), decodes them
// concurrently, and returns the results sorted lexicographically by
// filename. Files with other extensions are skipped silently; a matching
// file that fails to decode aborts the whole load.
//
// # Determinism
//
// The returned order depends only on the set of filenames, never on decode
// completion order: each decode worker writes into an index reserved before
// the workers start, and the slot order is fixed by sorting the filenames
// first. Two runs over the same directory produce identical catalogs, which
// is what makes atlas builds reproducible.
//
// # Error Handling
//
//   - *DecodeError: a file on the extension list could not be decoded, or
//     decoded to a degenerate zero-dimension image.
//   - ErrEmptyCatalog: the directory contains no file with a supported
//     extension.
//
// Both are fatal; Load never returns a partial catalog.
package catalog
