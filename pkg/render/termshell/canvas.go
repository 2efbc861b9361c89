// pkg/render/termshell/canvas.go
package termshell

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"go-bubble-shooter/pkg/render"
)

// Canvas rasterises arena drawing commands onto terminal cells.
// Shapes fill cell backgrounds; text is written cell by cell at its top-left cell.
type Canvas struct {
	screen   tcell.Screen
	viewport render.Viewport
}

func NewCanvas(screen tcell.Screen, arenaW, arenaH float64) *Canvas {
	c := &Canvas{screen: screen, viewport: render.Viewport{ArenaW: arenaW, ArenaH: arenaH}}
	c.Resize()
	return c
}

// Resize re-reads the terminal size.
func (c *Canvas) Resize() {
	cols, rows := c.screen.Size()
	c.viewport.Cols, c.viewport.Rows = cols, rows
}

func (c *Canvas) Viewport() render.Viewport {
	return c.viewport
}

func (c *Canvas) DrawRect(x, y, w, h float64, clr color.RGBA) {
	if clr.A == 0 || w <= 0 || h <= 0 {
		return
	}
	cw, ch := c.viewport.CellSize()
	c0, r0 := c.viewport.Cell(x, y)
	c1, r1 := c.viewport.Cell(x+w-cw/2, y+h-ch/2)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			c.fill(col, row, clr)
		}
	}
}

func (c *Canvas) DrawCircle(cx, cy, radius float64, clr color.RGBA) {
	if clr.A == 0 {
		return
	}
	cw, ch := c.viewport.CellSize()
	c0, r0 := c.viewport.Cell(cx-radius, cy-radius)
	c1, r1 := c.viewport.Cell(cx+radius, cy+radius)
	hit := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			// центр ячейки в координатах арены
			px := (float64(col) + 0.5) * cw
			py := (float64(row) + 0.5) * ch
			if (px-cx)*(px-cx)+(py-cy)*(py-cy) <= radius*radius {
				c.fill(col, row, clr)
				hit = true
			}
		}
	}
	// Круг меньше ячейки всё равно должен быть виден
	if !hit {
		col, row := c.viewport.Cell(cx, cy)
		c.fill(col, row, clr)
	}
}

func (c *Canvas) DrawText(s string, x, y float64, clr color.RGBA) {
	col, row := c.viewport.Cell(x, y)
	for _, r := range s {
		if c.viewport.Contains(col, row) {
			_, _, style, _ := c.screen.GetContent(col, row)
			c.screen.SetContent(col, row, r, nil, style.Foreground(toTcell(clr)))
		}
		col++
	}
}

func (c *Canvas) PresentFrame() {
	c.screen.Show()
}

func (c *Canvas) fill(col, row int, clr color.RGBA) {
	if !c.viewport.Contains(col, row) {
		return
	}
	if !render.Opaque(clr) {
		_, _, style, _ := c.screen.GetContent(col, row)
		_, bg, _ := style.Decompose()
		clr = render.Blend(fromTcell(bg), clr)
	}
	c.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(toTcell(clr)))
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func fromTcell(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	if r < 0 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
