// Package render provides display-width helpers for drawing grids in a
// terminal.
package render

import (
	"github.com/mattn/go-runewidth"

	"grid/core"
	"grid/grid"
)

// CellWidth returns the display width of a rune in terminal cells.
// Control characters and combining marks report 0, East Asian wide
// characters report 2.
func CellWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of a string in terminal cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateToWidth truncates a string to fit within the specified width.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "")
}

// ColumnStride returns how many terminal columns each grid cell needs so that
// the widest character in g does not overlap its right neighbour.
func ColumnStride(g *grid.Grid) int {
	stride := 1
	g.Each(func(_ core.Point, r rune) {
		if w := CellWidth(r); w > stride {
			stride = w
		}
	})
	return stride
}
