// Package cli implements the cellplex command-line interface.
//
// Every command reads one or more complexes from files (".json" files as JSON,
// anything else as the text face list), runs one operation of package
// topology and prints the result to stdout in the configured format.
//
// # Commands
//
//   - info: cell count, dimension, vertex count and component count
//   - normalize: canonical, deduplicated form
//   - skeleton -n N: distinct N-dimensional faces
//   - boundary -n N: N-faces owned by an odd number of cells
//   - explode: every non-empty face of every cell
//   - find: index of a cell in the normalized complex
//   - stars: cells around every vertex
//   - index: incidence of one complex's cells in another's
//   - components: groups of cells linked by shared vertices
//   - merge: canonical union of several complexes
//
// # Settings
//
// Settings come from a TOML file (see package config) and are overridden by
// the persistent flags --order, --format, --no-validate and --verbose.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log. The logger travels in the
// command context; --verbose lowers the level to debug.
package cli
