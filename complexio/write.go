package complexio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/cellplex/topology"
)

// Write encodes c to w in format f. Text output is readable by Read.
func Write(w io.Writer, c topology.Complex, f Format) error {
	lists := make([][]int, len(c))
	for i, cell := range c {
		lists[i] = cell
	}

	return WriteIndex(w, lists, f)
}

// WriteIndex encodes an incidence index or vertex star, one list per line in
// text form (an empty list prints as '-').
func WriteIndex(w io.Writer, index [][]int, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, nonNilLists(index))
	case FormatText:
		bw := bufio.NewWriter(w)
		writeTextLists(bw, index)
		return errors.Wrap(bw.Flush(), "complexio: write")
	default:
		return errors.Wrapf(ErrUnknownFormat, "format %d", int(f))
	}
}

// WriteComponents encodes component groups. Text output prefixes each group
// with a "# component i: n cells" comment and separates groups by a blank line.
func WriteComponents(w io.Writer, groups []topology.Complex, f Format) error {
	switch f {
	case FormatJSON:
		out := make([][][]int, len(groups))
		for i, g := range groups {
			lists := make([][]int, len(g))
			for j, cell := range g {
				lists[j] = cell
			}
			out[i] = nonNilLists(lists)
		}
		return writeJSON(w, out)
	case FormatText:
		bw := bufio.NewWriter(w)
		for i, g := range groups {
			if i > 0 {
				bw.WriteByte('\n')
			}
			fmt.Fprintf(bw, "# component %d: %d cells\n", i, len(g))
			lists := make([][]int, len(g))
			for j, cell := range g {
				lists[j] = cell
			}
			writeTextLists(bw, lists)
		}
		return errors.Wrap(bw.Flush(), "complexio: write")
	default:
		return errors.Wrapf(ErrUnknownFormat, "format %d", int(f))
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return errors.Wrap(err, "complexio: encode json")
	}

	return nil
}

// writeTextLists writes one list per line; bufio.Writer defers errors to Flush.
func writeTextLists(bw *bufio.Writer, lists [][]int) {
	var buf []byte
	for _, l := range lists {
		if len(l) == 0 {
			bw.WriteString("-\n")
			continue
		}
		buf = buf[:0]
		for j, v := range l {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(v), 10)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
}

// nonNilLists replaces nil lists so JSON prints [] rather than null.
func nonNilLists(lists [][]int) [][]int {
	out := make([][]int, len(lists))
	for i, l := range lists {
		if l == nil {
			l = []int{}
		}
		out[i] = l
	}

	return out
}
