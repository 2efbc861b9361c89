// pkg/render/ebitenshell/canvas.go
package ebitenshell

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Canvas draws onto the ebiten screen image of the current frame.
type Canvas struct {
	screen *ebiten.Image
	face   font.Face
	ascent int
}

// NewCanvas loads the HUD font. If the font cannot be parsed the
// built-in bitmap face is used instead.
func NewCanvas(fontSize float64, logger *slog.Logger) *Canvas {
	face, err := loadFace(fontSize)
	if err != nil {
		if logger != nil {
			logger.Warn("falling back to bitmap font", "error", err)
		}
		face = basicfont.Face7x13
	}
	return &Canvas{face: face, ascent: face.Metrics().Ascent.Ceil()}
}

func loadFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// SetTarget binds the canvas to the frame ebiten passed to Draw.
func (c *Canvas) SetTarget(screen *ebiten.Image) {
	c.screen = screen
}

func (c *Canvas) DrawRect(x, y, w, h float64, clr color.RGBA) {
	if c.screen == nil {
		return
	}
	vector.DrawFilledRect(c.screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *Canvas) DrawCircle(cx, cy, radius float64, clr color.RGBA) {
	if c.screen == nil {
		return
	}
	vector.DrawFilledCircle(c.screen, float32(cx), float32(cy), float32(radius), clr, true)
}

// DrawText treats (x, y) as the top-left corner of the text, not the baseline.
func (c *Canvas) DrawText(s string, x, y float64, clr color.RGBA) {
	if c.screen == nil {
		return
	}
	text.Draw(c.screen, s, c.face, int(x), int(y)+c.ascent, clr)
}

// PresentFrame is a no-op: ebiten presents the screen after Draw returns.
func (c *Canvas) PresentFrame() {}
