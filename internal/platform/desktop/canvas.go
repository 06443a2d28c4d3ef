package desktop

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/tile2048/internal/core"
)

// ImageCanvas draws onto an ebiten image with Go Regular text.
type ImageCanvas struct {
	dst   *ebiten.Image
	src   *text.GoTextFaceSource
	faces map[int]*text.GoTextFace
}

// NewImageCanvas loads the embedded font. Call Target before drawing.
func NewImageCanvas() (*ImageCanvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("desktop: cannot load font: %w", err)
	}
	return &ImageCanvas{src: src, faces: make(map[int]*text.GoTextFace)}, nil
}

// Target sets the image the next draws go to.
func (c *ImageCanvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

func (c *ImageCanvas) face(size int) *text.GoTextFace {
	f, ok := c.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: c.src, Size: float64(size)}
		c.faces[size] = f
	}
	return f
}

// Clear implements game.Canvas.
func (c *ImageCanvas) Clear(col core.Color) {
	c.dst.Fill(col)
}

// FillRect implements game.Canvas.
func (c *ImageCanvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
}

// DrawText implements game.Canvas. (x, y) is the top-left of the line.
func (c *ImageCanvas) DrawText(s string, x, y, size int, col core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.dst, s, c.face(size), op)
}

// MeasureText implements game.Canvas.
func (c *ImageCanvas) MeasureText(s string, size int) int {
	w, _ := text.Measure(s, c.face(size), 0)
	return int(w)
}
