// Package grid provides a fixed-size 2D character grid with bounds-checked
// access, counting and flood fill.
package grid

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"grid/core"
)

// DefaultFill is the character every cell holds after New.
const DefaultFill = ' '

// Common errors
var (
	ErrInvalidDimension = errors.New("invalid grid dimension")
	ErrRaggedRows       = errors.New("rows have different lengths")
)

// Grid is a rectangular buffer of runes stored row-major in a single slice.
//
// Thread Safety:
// Grid is NOT safe for concurrent mutation. Set and Fill must be synchronized
// externally when a Grid is shared between goroutines.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward, Y increases downward
//   - Cell (x, y) lives at index y*width + x
//
// Out-of-bounds coordinates are never an error: Get reports absence, Set and
// Fill do nothing.
type Grid struct {
	cells  []rune
	width  int
	height int
}

// New creates a width×height grid filled with DefaultFill.
func New(width, height int) (*Grid, error) {
	return FilledWith(width, height, DefaultFill)
}

// FilledWith creates a width×height grid with every cell set to fill.
func FilledWith(width, height int, fill rune) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimension, width, height)
	}

	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid{
		cells:  cells,
		width:  width,
		height: height,
	}, nil
}

// Parse builds a grid from newline separated rows. The first row fixes the
// width; every other row must have the same number of runes. A trailing
// newline and CRLF line endings are accepted.
func Parse(s string) (*Grid, error) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidDimension)
	}

	lines := strings.Split(s, "\n")
	width := len([]rune(lines[0]))
	if width == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrInvalidDimension)
	}

	cells := make([]rune, 0, width*len(lines))
	for y, line := range lines {
		row := []rune(line)
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(row), width)
		}
		cells = append(cells, row...)
	}

	return &Grid{
		cells:  cells,
		width:  width,
		height: len(lines),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Size returns the width and height of the grid.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps in-bounds coordinates to a slice position.
func (g *Grid) index(x, y int) (int, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return y*g.width + x, true
}

// Get returns the character at (x, y). The second result is false when the
// coordinates fall outside the grid.
func (g *Grid) Get(x, y int) (rune, bool) {
	i, ok := g.index(x, y)
	if !ok {
		return 0, false
	}
	return g.cells[i], true
}

// Set writes r at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, r rune) {
	if i, ok := g.index(x, y); ok {
		g.cells[i] = r
	}
}

// Count returns how many cells hold r.
func (g *Grid) Count(r rune) int {
	n := 0
	for _, c := range g.cells {
		if c == r {
			n++
		}
	}
	return n
}

// Fill flood-fills the 4-connected region of cells sharing the value found at
// (x, y), replacing it with r, and returns the number of cells changed.
// Returns 0 when (x, y) is out of bounds or already holds r.
func (g *Grid) Fill(x, y int, r rune) int {
	start, ok := g.index(x, y)
	if !ok {
		return 0
	}
	original := g.cells[start]
	if original == r {
		return 0
	}

	// Cells are painted as they are pushed, so a painted cell no longer
	// matches original and can never be queued twice.
	g.cells[start] = r
	changed := 1
	stack := []core.Point{{X: x, Y: y}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range core.Cardinal {
			n := p.Add(d.Offset())
			i, ok := g.index(n.X, n.Y)
			if !ok || g.cells[i] != original {
				continue
			}
			g.cells[i] = r
			changed++
			stack = append(stack, n)
		}
	}

	return changed
}

// Neighbours returns the in-bounds cells around (x, y), diagonals included,
// in the order N, E, S, W, SE, NE, NW, SW. Returns nil when (x, y) itself is
// out of bounds.
func (g *Grid) Neighbours(x, y int) []core.Point {
	if !g.InBounds(x, y) {
		return nil
	}

	origin := core.Point{X: x, Y: y}
	nb := make([]core.Point, 0, len(core.Compass))
	for _, d := range core.Compass {
		n := origin.Add(d.Offset())
		if g.InBounds(n.X, n.Y) {
			nb = append(nb, n)
		}
	}
	return nb
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p core.Point, r rune)) {
	for i, r := range g.cells {
		fn(core.Point{X: i % g.width, Y: i / g.width}, r)
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]rune, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		cells:  cells,
		width:  g.width,
		height: g.height,
	}
}

// String returns the grid as text, every row terminated by a newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.height)

	for y := 0; y < g.height; y++ {
		row := g.cells[y*g.width : (y+1)*g.width]
		for _, r := range row {
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
