package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellplex/complexio"
	"github.com/katalvlaran/cellplex/internal/config"
	"github.com/katalvlaran/cellplex/topology"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// It is called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app holds the flags and resolved settings of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool
	order      string
	format     string
	noValidate bool

	cfg config.Config
}

// Execute runs the cellplex CLI on os.Args with standard streams.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree writing results to stdout and logs
// to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, cfg: config.DefaultConfig()}

	root := &cobra.Command{
		Use:           "cellplex",
		Short:         "cellplex manipulates abstract cell complexes",
		Long:          `cellplex normalizes, decomposes and analyzes cell complexes given as lists of vertex-id tuples.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("cellplex %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/cellplex/config.toml)")
	pf.StringVar(&a.order, "order", "", "cell order: canonical or symmetric")
	pf.StringVarP(&a.format, "format", "f", "", "output format: text or json")
	pf.BoolVar(&a.noValidate, "no-validate", false, "skip validation of input complexes")

	root.AddCommand(
		newInfoCmd(a),
		newNormalizeCmd(a),
		newSkeletonCmd(a),
		newBoundaryCmd(a),
		newExplodeCmd(a),
		newFindCmd(a),
		newStarsCmd(a),
		newIndexCmd(a),
		newComponentsCmd(a),
		newMergeCmd(a),
	)

	return root
}

// setup loads the config file, applies flag overrides and attaches the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	} else {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.order != "" {
		cfg.Order = a.order
	}
	if a.format != "" {
		cfg.Format = a.format
	}
	if a.noValidate {
		cfg.Validate = false
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Check(); err != nil {
		return err
	}
	a.cfg = cfg

	logger := newLogger(a.stderr, cfg.Level())
	logger.Debug("settings", "config", path, "order", cfg.Order, "format", cfg.Format, "validate", cfg.Validate)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	return nil
}

// topoOptions returns the topology options implied by the settings.
func (a *app) topoOptions(extra ...topology.Option) []topology.Option {
	return append([]topology.Option{topology.WithComparator(a.cfg.Comparator())}, extra...)
}

// readComplex loads path, honoring the validate setting.
func (a *app) readComplex(ctx context.Context, path string) (topology.Complex, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var ro []complexio.ReadOption
	if !a.cfg.Validate {
		ro = append(ro, complexio.WithoutValidation())
	}

	c, err := complexio.ReadFile(path, ro...)
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("read complex", "path", path, "cells", len(c))

	return c, nil
}

// readNormalized loads path and brings it to canonical form.
func (a *app) readNormalized(ctx context.Context, path string) (topology.Complex, error) {
	c, err := a.readComplex(ctx, path)
	if err != nil {
		return nil, err
	}

	return topology.Normalize(c, a.topoOptions()...), nil
}

func (a *app) writeComplex(c topology.Complex) error {
	return complexio.Write(a.stdout, c, a.cfg.OutputFormat())
}
