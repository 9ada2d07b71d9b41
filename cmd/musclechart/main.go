// Package main provides the CLI entry point for musclechart.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/musclechart-go/internal/config"
	"github.com/ukaji3/musclechart-go/internal/logging"
	"github.com/ukaji3/musclechart-go/internal/ui"
	"github.com/ukaji3/musclechart-go/pkg/musclechart"
	"github.com/ukaji3/musclechart-go/pkg/musclechart/render"
)

type flags struct {
	output     string
	format     string
	engine     string
	width      float64
	height     float64
	noView     bool
	viewer     string
	configPath string
	debug      bool
	color      string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// run executes the command and reports any error once on stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var f flags
	rootCmd := newRootCmd(&f, stdout, stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		mode, _ := ui.ParseColorMode(f.color)
		reportError(ui.New(mode, stderr), err)
	}
	return err
}

func newRootCmd(f *flags, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "musclechart <mode> <input.csv> [input2.csv]",
		Short: "Plot muscle development and hormone levels from simulation CSV files",
		Long: `musclechart reads simulation results (Day, Muscle Mass, Anabolic Hormone,
Catabolic Hormone) and renders line charts.

Modes:
  single-series  Day vs Muscle Mass from one file
  dual-subplot   Muscle Mass on top, both hormones below, from one file
  comparison     Muscle Mass from two files overlaid`,
		Args:          cobra.RangeArgs(2, 3),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd, f, args, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	fl := rootCmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "Output file path (default: temporary file)")
	fl.StringVarP(&f.format, "format", "f", "", "Output format: png, svg, pdf, jpg, tif, eps, xlsx (default: from --output extension, else png)")
	fl.StringVar(&f.engine, "engine", "", "Rendering engine: gonum, gochart (default: gonum)")
	fl.Float64Var(&f.width, "width", 0, "Figure width in inches")
	fl.Float64Var(&f.height, "height", 0, "Figure height in inches")
	fl.BoolVar(&f.noView, "no-view", false, "Write the chart without opening a viewer")
	fl.StringVar(&f.viewer, "viewer", "", "Viewer command; the chart path is appended (the Linux default xdg-open may return before the viewer closes)")
	fl.StringVar(&f.configPath, "config", "", "Config file (default: ~/.config/musclechart/config.yaml)")
	fl.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fl.StringVar(&f.color, "color", "", "Color mode: auto, always, never")

	return rootCmd
}

func runChart(cmd *cobra.Command, f *flags, args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	logging.Setup(cfg.Debug, stderr)

	colorMode, err := ui.ParseColorMode(cfg.Color)
	if err != nil {
		return err
	}
	f.color = cfg.Color
	out := ui.New(colorMode, stderr)

	mode, err := musclechart.ParseMode(args[0])
	if err != nil {
		return err
	}
	paths := args[1:]

	tables, err := musclechart.LoadAll(paths, mode)
	if err != nil {
		return err
	}

	spec, err := musclechart.Build(mode, tables)
	if err != nil {
		return err
	}

	renderer, err := render.New(render.Options{
		Engine: render.Engine(cfg.Engine),
		Format: cfg.Format,
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	slog.Debug("rendering", "mode", mode, "engine", cfg.Engine, "format", renderer.Format(), "subplots", len(spec.Subplots))

	path, err := render.Display(cmd.Context(), renderer, spec, render.DisplayOptions{
		Output: f.output,
		Viewer: cfg.Viewer,
		NoView: cfg.NoView,
	})
	if errors.Is(err, render.ErrNoViewer) {
		out.Warning("%v; chart left at %s", err, path)
		fmt.Fprintln(stdout, path)
		return nil
	}
	if err != nil {
		return err
	}

	out.Success("wrote %s", path)
	fmt.Fprintln(stdout, path)
	return nil
}

// loadConfig merges the config file with command-line flags.
// Flags win over the file, and the file wins over built-in defaults.
func loadConfig(f *flags) (config.Config, error) {
	var (
		fileCfg *config.Config
		err     error
	)
	if f.configPath != "" {
		fileCfg, err = config.LoadFromPath(f.configPath)
	} else {
		fileCfg, err = config.Load()
	}
	if err != nil {
		return config.Config{}, err
	}

	format := f.format
	if format == "" && f.output != "" {
		format = formatFromPath(f.output)
	}

	flagCfg := config.Config{
		Format: format,
		Engine: f.engine,
		Width:  f.width,
		Height: f.height,
		Viewer: f.viewer,
		NoView: f.noView,
		Color:  f.color,
		Debug:  f.debug,
	}
	return fileCfg.Merge(flagCfg).WithDefaults(), nil
}

func formatFromPath(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// reportError prints err once, prefixed with its taxonomy kind when known.
func reportError(out *ui.UI, err error) {
	if kind := musclechart.Kind(err); kind != "" {
		out.Error("%v (%s)", err, kind)
		return
	}
	out.Error("%v", err)
}
