package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"
)

const pipeName = "-"

var (
	app = kingpin.New("delaunay", "Delaunay triangulation of a set of points.\n\n"+
		"Input should be newline separated points in the form \"x y\". "+
		"Use - to read from stdin or write to stdout.")

	configPath    = app.Flag("config", "YAML file with default settings.").Short('c').ExistingFile()
	output        = app.Flag("output", "Output file.").Short('o').String()
	format        = app.Flag("format", "Output format.").Short('f').Enum(formats...)
	strict        = app.Flag("strict", "Fail on degenerate input instead of returning a fallback.").Bool()
	verbose       = app.Flag("verbose", "Debug logging.").Short('v').Bool()
	validate      = app.Flag("validate", "Check the result before writing it.").Bool()
	scale         = app.Flag("scale", "PNG pixels per unit. Fits to 800 pixels by default.").Float64()
	circumcenters = app.Flag("circumcenters", "Draw circumcenters in the PNG.").Bool()
	labels        = app.Flag("labels", "Label points in the PNG.").Bool()
	input         = app.Arg("input", "Points file.").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg = applyFlags(cfg)

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("triangulation failed", zap.Error(err))
		os.Exit(1)
	}
}

func applyFlags(cfg config) config {
	if *input != "" {
		cfg.Input = *input
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *scale > 0 {
		cfg.Render.Scale = *scale
	}
	cfg.Strict = cfg.Strict || *strict
	cfg.Verbose = cfg.Verbose || *verbose
	cfg.Validate = cfg.Validate || *validate
	cfg.Render.Circumcenters = cfg.Render.Circumcenters || *circumcenters
	cfg.Render.Labels = cfg.Render.Labels || *labels
	return cfg
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg config, logger *zap.Logger) error {
	start := time.Now()

	var src io.Reader
	if cfg.Input == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("`-` should be used with a pipe for stdin")
		}
		src = os.Stdin
	} else {
		file, err := os.Open(cfg.Input)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer file.Close()
		src = file
	}

	// A png for an interactive terminal gets drawn inline instead
	inline := false
	var dst io.Writer
	if cfg.Output == pipeName {
		dst = os.Stdout
		if cfg.Format == formatPNG && term.IsTerminal(int(os.Stdout.Fd())) {
			inline = true
			dst = io.Discard
		}
	} else {
		file, err := os.Create(cfg.Output)
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer file.Close()
		dst = file
	}

	tr, err := triangulate(src, dst, cfg, logger)
	if err != nil {
		return err
	}
	if inline {
		if err := tr.DbgDraw(cfg.Render.Scale); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("%s triangles, %s hull points in %.3fs",
		aurora.Green(tr.Len()), aurora.Cyan(len(tr.Hull)), time.Since(start).Seconds())
	if tr.Degenerate {
		summary += aurora.Yellow(" (degenerate)").String()
	}
	if len(tr.Skipped) > 0 {
		summary += aurora.Yellow(fmt.Sprintf(" (%d points skipped)", len(tr.Skipped))).String()
	}
	fmt.Fprintln(os.Stderr, summary)
	return nil
}

// Read points from src, triangulate them, and write the result to dst.
func triangulate(src io.Reader, dst io.Writer, cfg config, logger *zap.Logger) (*delaunay.Triangulation, error) {
	coords, err := readCoords(src)
	if err != nil {
		return nil, err
	}
	logger.Debug("read points", zap.Int("points", len(coords)/2))

	opts := []delaunay.Option{delaunay.WithLogger(logger)}
	if cfg.Strict {
		opts = append(opts, delaunay.Strict())
	}
	tr, err := delaunay.Construct(coords, opts...)
	if err != nil {
		return nil, err
	}

	if cfg.Validate {
		if err := tr.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid triangulation")
		}
	}

	if err := writeResult(dst, tr, cfg.Format, cfg); err != nil {
		return nil, err
	}
	return tr, nil
}
