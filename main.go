package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"grid/config"
	"grid/core"
	"grid/grid"
	"grid/terminal"
)

// options carries parsed command line flags into run.
type options struct {
	configFile  string
	filename    string
	width       int
	height      int
	fillChar    string
	at          string
	with        string
	interactive bool
}

func main() {
	// Define command line flags
	var (
		configFile  = flag.String("config", "", "YAML config file (GRID_* environment variables override it)")
		width       = flag.Int("width", 0, "Width of a new grid (default from config)")
		height      = flag.Int("height", 0, "Height of a new grid (default from config)")
		fillChar    = flag.String("fill-char", "", "Character a new grid starts with (default from config)")
		at          = flag.String("at", "", "Flood fill starting cell as x,y")
		with        = flag.String("with", "", "Flood fill character (default: config brush)")
		interactive = flag.Bool("i", false, "Open the grid in the interactive painter")
		help        = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [grid.txt]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Prints, flood-fills or paints a character grid.\n")
		fmt.Fprintf(os.Stderr, "Without a file a new grid is built from -width, -height and -fill-char.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -width 10 -height 4              # Print a blank grid\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -at 0,0 -with + maze.txt          # Flood fill and print\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i maze.txt                       # Paint in the terminal\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nInteractive Keys:\n")
		fmt.Fprintf(os.Stderr, "  arrows/hjkl move   space paint   f fill   b set brush\n")
		fmt.Fprintf(os.Stderr, "  u undo   Ctrl-R redo   q/Esc quit\n")
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	opts := options{
		configFile:  *configFile,
		width:       *width,
		height:      *height,
		fillChar:    *fillChar,
		at:          *at,
		with:        *with,
		interactive: *interactive,
	}
	if args := flag.Args(); len(args) > 0 {
		opts.filename = args[0]
	}

	if err := run(opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run loads the grid, applies an optional flood fill and then either prints
// the grid or hands it to the painter.
func run(opts options, stdout, stderr io.Writer) error {
	if opts.filename != "" && (opts.width != 0 || opts.height != 0 || opts.fillChar != "") {
		return errFileConflict
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}

	// Flags override the loaded config
	if opts.width != 0 {
		cfg.Width = opts.width
	}
	if opts.height != 0 {
		cfg.Height = opts.height
	}
	if opts.fillChar != "" {
		cfg.Fill = opts.fillChar
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	g, err := loadGrid(opts.filename, cfg)
	if err != nil {
		return err
	}

	if opts.at != "" {
		start, err := parsePoint(opts.at)
		if err != nil {
			return err
		}
		brush := cfg.BrushRune()
		if opts.with != "" {
			if brush, err = singleRune(opts.with); err != nil {
				return err
			}
		}
		changed := g.Fill(start.X, start.Y, brush)
		fmt.Fprintf(stderr, "Filled %d cells from (%d,%d) with %q\n", changed, start.X, start.Y, brush)
	}

	if opts.interactive {
		return runInteractive(g, cfg)
	}

	_, err = io.WriteString(stdout, g.String())
	return err
}

// loadGrid reads a grid file, or builds a blank grid from cfg when no file
// is given.
func loadGrid(filename string, cfg config.Config) (*grid.Grid, error) {
	if filename == "" {
		return grid.FilledWith(cfg.Width, cfg.Height, cfg.FillRune())
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}
	g, err := grid.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return g, nil
}

// runInteractive opens a terminal screen and runs the painter until quit.
func runInteractive(g *grid.Grid, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to setup terminal: %w", err)
	}
	// Ensure terminal is restored even on panic
	defer screen.Fini()

	return terminal.Run(screen, terminal.NewPainter(g, cfg.BrushRune(), cfg.HistoryDepth))
}

var (
	errBadPoint     = errors.New("expected x,y")
	errFileConflict = errors.New("-width, -height and -fill-char only apply to a new grid, not a grid file")
)

// parsePoint parses "x,y" into a point.
func parsePoint(s string) (core.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Point{}, fmt.Errorf("%w, got %q", errBadPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return core.Point{}, fmt.Errorf("%w, got %q: %v", errBadPoint, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return core.Point{}, fmt.Errorf("%w, got %q: %v", errBadPoint, s, err)
	}
	return core.Point{X: x, Y: y}, nil
}

// singleRune returns the only rune in s.
func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("expected a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
