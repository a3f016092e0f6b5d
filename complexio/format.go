package complexio

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format selects an encoding.
type Format int

const (
	// FormatText is the line-oriented face list.
	FormatText Format = iota
	// FormatJSON is an array of arrays.
	FormatJSON
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates an unsupported format name.
	ErrUnknownFormat = errors.New("complexio: unknown format")

	// ErrSyntax indicates input that cannot be parsed as a complex.
	ErrSyntax = errors.New("complexio: syntax error")
)

// String returns the format name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseFormat maps "json" and "text" (case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return FormatText, errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}

// FormatFromName picks the format of a file from its extension: ".json" is
// JSON, everything else is the text face list.
func FormatFromName(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatText
}
