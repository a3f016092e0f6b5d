package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellplex/complexio"
	"github.com/katalvlaran/cellplex/topology"
)

// summary is the output of the info command.
type summary struct {
	Cells      int `json:"cells"`
	Dimension  int `json:"dimension"`
	Vertices   int `json:"vertices"`
	Components int `json:"components"`
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print cell count, dimension, vertex count and component count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.readComplex(ctx, args[0])
			if err != nil {
				return err
			}
			groups, err := topology.ConnectedComponentsSparse(c, a.topoOptions()...)
			if err != nil {
				return err
			}

			s := summary{
				Cells:      len(c),
				Dimension:  topology.Dimension(c),
				Vertices:   topology.CountVertices(c),
				Components: len(groups),
			}
			if a.cfg.OutputFormat() == complexio.FormatJSON {
				return json.NewEncoder(a.stdout).Encode(s)
			}
			// plain text unless stdout is a terminal
			key := lipgloss.NewRenderer(a.stdout).NewStyle().Width(12).Bold(true)
			for _, row := range []struct {
				name  string
				value int
			}{
				{"cells", s.Cells},
				{"dimension", s.Dimension},
				{"vertices", s.Vertices},
				{"components", s.Components},
			} {
				if _, err := fmt.Fprintf(a.stdout, "%s%d\n", key.Render(row.name), row.value); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <file>",
		Short: "Sort and deduplicate the cells of a complex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.readComplex(ctx, args[0])
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(ctx))
			in := len(c)
			c = topology.Normalize(c, a.topoOptions()...)
			prog.done("Normalized", "in", in, "out", len(c))

			return a.writeComplex(c)
		},
	}
}

func newSkeletonCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "skeleton <file>",
		Short: "List the distinct n-dimensional faces of a complex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.readComplex(ctx, args[0])
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(ctx))
			sk, err := topology.Skeleton(c, n, a.topoOptions()...)
			if err != nil {
				return err
			}
			prog.done("Built skeleton", "dim", n, "faces", len(sk))

			return a.writeComplex(sk)
		},
	}
	cmd.Flags().IntVarP(&n, "dim", "n", 0, "face dimension")
	_ = cmd.MarkFlagRequired("dim")

	return cmd
}

func newBoundaryCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "boundary <file>",
		Short: "List the n-faces owned by an odd number of cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.readComplex(ctx, args[0])
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(ctx))
			b, err := topology.Boundary(c, n, a.topoOptions()...)
			if err != nil {
				return err
			}
			prog.done("Computed boundary", "dim", n, "faces", len(b))

			return a.writeComplex(b)
		},
	}
	cmd.Flags().IntVarP(&n, "dim", "n", 0, "face dimension")
	_ = cmd.MarkFlagRequired("dim")

	return cmd
}

func newExplodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explode <file>",
		Short: "List every non-empty face of every cell",
		Long: fmt.Sprintf(`List every non-empty face of every cell.

A cell of k vertices has 2^k - 1 faces, so cells wider than %d vertices are
rejected.`, topology.MaxPowersetWidth),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.readComplex(ctx, args[0])
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(ctx))
			all, err := topology.Explode(c, a.topoOptions()...)
			if err != nil {
				return err
			}
			prog.done("Exploded", "faces", len(all))

			return a.writeComplex(all)
		},
	}
}

func newFindCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [flags] <file> <vertex>...",
		Short: "Print the index of a cell in the normalized complex, -1 if absent",
		Long: `Print the index of a cell in the normalized complex, -1 if absent.

Flags go before the file; everything after it is a vertex id, so negative
ids such as -1000 need no "--" separator.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := make(topology.Cell, 0, len(args)-1)
			for _, s := range args[1:] {
				v, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("vertex %q: %w", s, err)
				}
				q = append(q, v)
			}

			c, err := a.readNormalized(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			idx := topology.FindCell(c, q, a.topoOptions()...)
			loggerFromContext(cmd.Context()).Debug("lookup", "cell", q, "index", idx)

			_, err = fmt.Fprintln(a.stdout, idx)
			return err
		},
	}
	// vertex ids may be negative; stop flag parsing at the file argument
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newStarsCmd(a *app) *cobra.Command {
	var vertexCount int
	cmd := &cobra.Command{
		Use:   "stars <file>",
		Short: "List, per vertex, the indices of the normalized cells containing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.readNormalized(ctx, args[0])
			if err != nil {
				return err
			}
			var extra []topology.Option
			if cmd.Flags().Changed("vertex-count") {
				extra = append(extra, topology.WithVertexCount(vertexCount))
			}
			prog := newProgress(loggerFromContext(ctx))
			stars, err := topology.Stars(c, a.topoOptions(extra...)...)
			if err != nil {
				return err
			}
			prog.done("Built stars", "vertices", len(stars))

			return complexio.WriteIndex(a.stdout, stars, a.cfg.OutputFormat())
		},
	}
	cmd.Flags().IntVar(&vertexCount, "vertex-count", 0, "number of stars (default: largest vertex id + 1)")

	return cmd
}

func newIndexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "index <from> <to>",
		Short: "List, per normalized from-cell, the normalized to-cells containing it",
		Long: fmt.Sprintf(`List, per normalized from-cell, the normalized to-cells containing it.

Every subset of every to-cell is looked up, 2^k - 1 for a cell of k vertices,
so to-cells wider than %d vertices are rejected.`, topology.MaxPowersetWidth),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			from, err := a.readNormalized(ctx, args[0])
			if err != nil {
				return err
			}
			to, err := a.readNormalized(ctx, args[1])
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(ctx))
			index, err := topology.BuildIndex(from, to, a.topoOptions()...)
			if err != nil {
				return err
			}
			prog.done("Built index", "from", len(from), "to", len(to))

			return complexio.WriteIndex(a.stdout, index, a.cfg.OutputFormat())
		},
	}
}

func newComponentsCmd(a *app) *cobra.Command {
	var vertexCount int
	cmd := &cobra.Command{
		Use:   "components <file>",
		Short: "Group cells linked by shared vertices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.readComplex(ctx, args[0])
			if err != nil {
				return err
			}
			var extra []topology.Option
			if cmd.Flags().Changed("vertex-count") {
				extra = append(extra, topology.WithVertexCount(vertexCount))
			}
			prog := newProgress(loggerFromContext(ctx))
			groups, err := topology.ConnectedComponents(c, a.topoOptions(extra...)...)
			if err != nil {
				return err
			}
			prog.done("Labeled components", "groups", len(groups))

			return complexio.WriteComponents(a.stdout, groups, a.cfg.OutputFormat())
		},
	}
	cmd.Flags().IntVar(&vertexCount, "vertex-count", 0, "use the dense labeling over ids [0, N)")

	return cmd
}

func newMergeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <file>...",
		Short: "Print the canonical union of several complexes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			set := topology.NewSet(a.topoOptions()...)
			for _, path := range args {
				c, err := a.readComplex(ctx, path)
				if err != nil {
					return err
				}
				added := set.AddAll(c)
				loggerFromContext(ctx).Debug("merged", "path", path, "added", added, "total", set.Len())
			}

			return a.writeComplex(set.Complex())
		},
	}
}
