// pkg/render/viewport.go
package render

import "math"

// Viewport maps arena pixels onto a coarser grid, e.g. terminal cells.
type Viewport struct {
	ArenaW, ArenaH float64
	Cols, Rows     int
}

// Cell returns the grid cell that contains the arena point (x, y).
func (v Viewport) Cell(x, y float64) (int, int) {
	if v.ArenaW <= 0 || v.ArenaH <= 0 {
		return 0, 0
	}
	col := int(math.Floor(x * float64(v.Cols) / v.ArenaW))
	row := int(math.Floor(y * float64(v.Rows) / v.ArenaH))
	return col, row
}

// CellSize returns the arena size of one cell.
func (v Viewport) CellSize() (float64, float64) {
	if v.Cols <= 0 || v.Rows <= 0 {
		return 0, 0
	}
	return v.ArenaW / float64(v.Cols), v.ArenaH / float64(v.Rows)
}

// Contains reports whether the cell is on the grid.
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && row >= 0 && col < v.Cols && row < v.Rows
}
