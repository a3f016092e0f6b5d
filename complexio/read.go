package complexio

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/cellplex/topology"
)

// maxLineSize bounds a single text line (a cell) to 1 MiB.
const maxLineSize = 1 << 20

// ReadOption configures Read and ReadFile.
type ReadOption func(*readOptions)

type readOptions struct {
	validate bool
}

// WithoutValidation skips topology.Validate on the decoded complex.
func WithoutValidation() ReadOption {
	return func(o *readOptions) {
		o.validate = false
	}
}

// Read decodes a complex from r in format f and validates it.
func Read(r io.Reader, f Format, opts ...ReadOption) (topology.Complex, error) {
	ro := readOptions{validate: true}
	for _, fn := range opts {
		fn(&ro)
	}

	var (
		c   topology.Complex
		err error
	)
	switch f {
	case FormatJSON:
		c, err = readJSON(r)
	case FormatText:
		c, err = readText(r)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %d", int(f))
	}
	if err != nil {
		return nil, err
	}

	if ro.validate {
		if err := topology.Validate(c); err != nil {
			return nil, errors.Wrap(err, "complexio: invalid complex")
		}
	}

	return c, nil
}

// ReadFile opens path and reads it with the format implied by its extension.
func ReadFile(path string, opts ...ReadOption) (topology.Complex, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "complexio: open %s", path)
	}
	defer fh.Close()

	c, err := Read(fh, FormatFromName(path), opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "complexio: read %s", path)
	}

	return c, nil
}

// readJSON decodes a single JSON array of arrays. Null cells become empty cells.
func readJSON(r io.Reader) (topology.Complex, error) {
	dec := json.NewDecoder(r)
	var c topology.Complex
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrapf(ErrSyntax, "json: %v", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.Wrap(ErrSyntax, "json: trailing data after complex")
	}
	if c == nil {
		c = topology.Complex{}
	}
	for i := range c {
		if c[i] == nil {
			c[i] = topology.Cell{}
		}
	}

	return c, nil
}

// readText parses the face-list format line by line.
func readText(r io.Reader) (topology.Complex, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	c := topology.Complex{}
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if text == "-" {
			c = append(c, topology.Cell{})
			continue
		}

		fields := strings.FieldsFunc(text, isSeparator)
		cell := make(topology.Cell, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(ErrSyntax, "line %d: %q is not a vertex id", line, f)
			}
			cell = append(cell, v)
		}
		c = append(c, cell)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "complexio: after line %d", line)
	}

	return c, nil
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == ','
}
