// Package commands implements the rgbproc command line.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/rgbproc"
	"github.com/gogpu/rgbproc/internal/config"
)

// app holds the global flags and the resolved configuration shared by all
// subcommands.
type app struct {
	verbose    bool
	configPath string
	width      int
	height     int

	cfg *config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "rgbproc",
		Short: "Golden model for a streaming 3x3 RGB filter pipeline",
		Long: `rgbproc - reference output for a hardware image filter pipeline.

Input is a text stream with one pixel per line ("R G B"); lines starting
with "--" are comments. Every pixel is expanded into a 3x3 window with
edge replication and passed through the selected filter. Output has exactly
one line per input pixel.

Filters:
  identity   pass the center pixel through (default)
  median     per-channel rank 5 of the 9 window values
  low-pass   1 2 1 / 2 4 2 / 1 2 1 kernel, divided by 16
  high-pass  vertical second difference, (r + 510) / 4
  gray       luma of the center pixel (30/59/11)
  gen-matrix dump the raw 3x3 windows (27 integers per line)

Examples:
  # Median filter a 640x480 stream
  rgbproc run median < frame.txt > median.txt

  # Generate a 10x5 test ramp and low-pass it
  rgbproc gen --width 10 --height 5 -o ramp.txt
  rgbproc run low-pass --width 10 --height 5 -i ramp.txt

  # Check hardware output against the model
  rgbproc compare median.txt hw_median.txt`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML run configuration")
	pf.IntVar(&a.width, "width", config.DefaultWidth, "frame width in pixels")
	pf.IntVar(&a.height, "height", config.DefaultHeight, "frame height in pixels")

	root.AddCommand(
		newRunCmd(a),
		newBatchCmd(a),
		newCompareCmd(a),
		newGenCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup installs the logger and resolves the configuration: defaults, then
// the --config file, then explicitly set flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	rgbproc.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))

	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = a.width
	}
	if flags.Changed("height") {
		cfg.Height = a.height
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	rgbproc.Logger().Debug("rgbproc: configuration",
		"file", cfg.Path(), "resolution", cfg.Resolution(), "mode", cfg.Mode)
	return nil
}
