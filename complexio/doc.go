// Package complexio reads and writes cell complexes and the results derived
// from them (incidence indexes, vertex stars, component groups).
//
// Formats:
//
//   - FormatJSON: a JSON array of arrays of vertex ids, e.g. [[0,1,2],[1,2,3]].
//   - FormatText: a face list, one cell per line. Ids are separated by spaces,
//     tabs or commas. Blank lines and lines starting with '#' are skipped, and
//     a line holding a single '-' is an empty cell.
//
// Reading validates the complex with topology.Validate unless
// WithoutValidation is given, so callers receive either a well-formed complex
// or an error naming the offending line or cell.
//
// Errors:
//
//   - ErrUnknownFormat: a format name or file extension that is not supported.
//   - ErrSyntax: malformed input; the message carries the line number.
//   - topology validation errors, matchable with errors.Is.
package complexio
