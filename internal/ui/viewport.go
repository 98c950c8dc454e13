package ui

import "github.com/diegok/flagpong/internal/geom"

// Viewport maps table coordinates onto the terminal. The top row holds the
// scoreboard and the bottom row the status bar; the table fills the rest.
type Viewport struct {
	Cols, Rows    int
	Width, Height float64
}

// NewViewport creates a viewport for a cols×rows terminal showing a table of
// the given size
func NewViewport(cols, rows int, width, height float64) Viewport {
	return Viewport{Cols: cols, Rows: rows, Width: width, Height: height}
}

// TableRows returns the number of rows the table occupies
func (v Viewport) TableRows() int {
	return max(v.Rows-2, 0)
}

func (v Viewport) scaleX() float64 {
	return float64(v.Cols) / v.Width
}

func (v Viewport) scaleY() float64 {
	return float64(v.TableRows()) / v.Height
}

// CellX returns the column holding table x
func (v Viewport) CellX(x float64) int {
	return int(x * v.scaleX())
}

// CellY returns the row holding table y
func (v Viewport) CellY(y float64) int {
	return int(y*v.scaleY()) + 1
}

// Cells returns the cell span covering a table rectangle, at least one cell
// in each direction
func (v Viewport) Cells(x, y, w, h float64) (cx, cy, cw, ch int) {
	cx, cy = v.CellX(x), v.CellY(y)
	cw = max(v.CellX(x+w)-cx, 1)
	ch = max(v.CellY(y+h)-cy, 1)
	return cx, cy, cw, ch
}

// TableX returns the table x at the center of a column
func (v Viewport) TableX(col int) float64 {
	return (float64(col) + 0.5) / v.scaleX()
}

// TableY returns the table y at the center of a row
func (v Viewport) TableY(row int) float64 {
	if v.TableRows() == 0 {
		return v.Height / 2
	}
	return (float64(row-1) + 0.5) / v.scaleY()
}

// InTable reports whether a cell's center lies on the table area
func (v Viewport) InTable(col, row int) bool {
	if v.Cols == 0 || v.TableRows() == 0 {
		return false
	}
	table := geom.Rect{W: v.Width, H: v.Height}
	return table.Contains(geom.Vec{X: v.TableX(col), Y: v.TableY(row)})
}
