// pkg/render/raylibshell/canvas.go
package raylibshell

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Canvas draws through raylib's immediate-mode API.
// BeginFrame must be called before drawing; PresentFrame ends the frame.
type Canvas struct {
	FontSize int32
}

func NewCanvas(fontSize int32) *Canvas {
	return &Canvas{FontSize: fontSize}
}

func (c *Canvas) BeginFrame() {
	rl.BeginDrawing()
}

func (c *Canvas) DrawRect(x, y, w, h float64, clr color.RGBA) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), colorToRL(clr))
}

func (c *Canvas) DrawCircle(cx, cy, radius float64, clr color.RGBA) {
	rl.DrawCircle(int32(cx), int32(cy), float32(radius), colorToRL(clr))
}

func (c *Canvas) DrawText(s string, x, y float64, clr color.RGBA) {
	rl.DrawText(s, int32(x), int32(y), c.FontSize, colorToRL(clr))
}

func (c *Canvas) PresentFrame() {
	rl.EndDrawing()
}

// colorToRL converts color.RGBA to rl.Color
func colorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
