// Package terminal implements an interactive grid painter on a tcell screen.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"grid/core"
	"grid/grid"
	"grid/render"
)

// Painter is a cursor-driven editor over a single Grid. It is driven from one
// event loop goroutine and is not safe for concurrent use.
type Painter struct {
	grid    *grid.Grid
	cursor  core.Point
	brush   rune
	mode    Mode
	history *History
	message string
	view    core.Point // Top-left cell currently on screen
}

// NewPainter creates a painter over g. The initial grid is the first undo state.
func NewPainter(g *grid.Grid, brush rune, historyDepth int) *Painter {
	p := &Painter{
		grid:    g,
		brush:   brush,
		mode:    ModeNormal,
		history: NewHistory(historyDepth),
	}
	p.history.Save(g)
	return p
}

// Grid returns the grid being edited.
func (p *Painter) Grid() *grid.Grid { return p.grid }

// Cursor returns the cursor cell.
func (p *Painter) Cursor() core.Point { return p.cursor }

// Brush returns the character used by paint and fill.
func (p *Painter) Brush() rune { return p.brush }

// Mode returns the current input mode.
func (p *Painter) Mode() Mode { return p.mode }

// Message returns the last status message.
func (p *Painter) Message() string { return p.message }

// HandleKey applies a key event and reports whether the painter should quit.
func (p *Painter) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if p.mode == ModeBrush {
		p.handleBrushKey(ev)
		return false
	}
	return p.handleNormalKey(ev)
}

// handleNormalKey processes keys in normal mode
func (p *Painter) handleNormalKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return true
	case tcell.KeyUp:
		p.move(core.North)
	case tcell.KeyDown:
		p.move(core.South)
	case tcell.KeyLeft:
		p.move(core.West)
	case tcell.KeyRight:
		p.move(core.East)
	case tcell.KeyCtrlR:
		p.redo()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			p.move(core.North)
		case 'j':
			p.move(core.South)
		case 'h':
			p.move(core.West)
		case 'l':
			p.move(core.East)
		case ' ':
			p.paint()
		case 'f':
			p.fill()
		case 'b':
			p.mode = ModeBrush
			p.message = "type a character"
		case 'u':
			p.undo()
		}
	}
	return false
}

// handleBrushKey takes the next rune as the brush; Esc cancels.
func (p *Painter) handleBrushKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		p.message = ""
	case tcell.KeyRune:
		p.brush = ev.Rune()
		p.message = fmt.Sprintf("brush %q", p.brush)
	default:
		return
	}
	p.mode = ModeNormal
}

// move steps the cursor, staying inside the grid.
func (p *Painter) move(d core.Direction) {
	next := p.cursor.Add(d.Offset())
	if p.grid.InBounds(next.X, next.Y) {
		p.cursor = next
	}
}

func (p *Painter) paint() {
	if r, _ := p.grid.Get(p.cursor.X, p.cursor.Y); r == p.brush {
		p.message = ""
		return
	}
	p.grid.Set(p.cursor.X, p.cursor.Y, p.brush)
	p.history.Save(p.grid)
	p.message = "painted"
}

func (p *Painter) fill() {
	n := p.grid.Fill(p.cursor.X, p.cursor.Y, p.brush)
	if n > 0 {
		p.history.Save(p.grid)
	}
	p.message = fmt.Sprintf("filled %d", n)
}

func (p *Painter) undo() {
	g, ok := p.history.Undo()
	if !ok {
		p.message = "nothing to undo"
		return
	}
	p.grid = g
	p.message = "undo"
}

func (p *Painter) redo() {
	g, ok := p.history.Redo()
	if !ok {
		p.message = "nothing to redo"
		return
	}
	p.grid = g
	p.message = "redo"
}

// StatusLine returns the text shown on the last screen row.
func (p *Painter) StatusLine() string {
	status := fmt.Sprintf("%s (%d,%d) brush %q", p.mode, p.cursor.X, p.cursor.Y, p.brush)
	if p.message != "" {
		status += " | " + p.message
	}
	return status
}

// Draw paints the visible part of the grid and the status line onto s.
// The cursor cell is drawn in reverse video.
func (p *Painter) Draw(s tcell.Screen) {
	s.Clear()
	sw, sh := s.Size()
	if sw <= 0 || sh <= 0 {
		return
	}

	stride := render.ColumnStride(p.grid)
	cols := sw / stride
	rows := sh - 1 // Last row is the status line
	p.scrollTo(cols, rows)

	normal := tcell.StyleDefault
	selected := normal.Reverse(true)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := core.Point{X: p.view.X + x, Y: p.view.Y + y}
			r, ok := p.grid.Get(cell.X, cell.Y)
			if !ok {
				continue
			}
			style := normal
			if cell == p.cursor {
				style = selected
			}
			s.SetContent(x*stride, y, r, nil, style)
		}
	}

	col := 0
	for _, r := range render.TruncateToWidth(p.StatusLine(), sw) {
		s.SetContent(col, sh-1, r, nil, normal)
		// Zero-width runes still take a column so the next rune cannot overwrite them
		col += max(1, render.CellWidth(r))
	}
}

// scrollTo moves the view so the cursor is inside a cols×rows window.
func (p *Painter) scrollTo(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if p.cursor.X < p.view.X {
		p.view.X = p.cursor.X
	} else if p.cursor.X >= p.view.X+cols {
		p.view.X = p.cursor.X - cols + 1
	}
	if p.cursor.Y < p.view.Y {
		p.view.Y = p.cursor.Y
	} else if p.cursor.Y >= p.view.Y+rows {
		p.view.Y = p.cursor.Y - rows + 1
	}
}
