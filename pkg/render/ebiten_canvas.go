// pkg/render/ebiten_canvas.go
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas draws on an ebiten image, normally the window's screen.
type EbitenCanvas struct {
	img *ebiten.Image
}

func NewEbitenCanvas(img *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{img: img}
}

// Reset points the canvas at a new target; ebiten hands Draw a fresh screen
// image every frame.
func (c *EbitenCanvas) Reset(img *ebiten.Image) {
	c.img = img
}

func (c *EbitenCanvas) Fill(clr color.Color) {
	c.img.Fill(clr)
}

func (c *EbitenCanvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(c.img, x0, y0, x1, y1, width, clr, true)
}

func (c *EbitenCanvas) FillCircle(cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(c.img, cx, cy, r, clr, true)
}

// Snapshot reads the drawn pixels back from the GPU.
func (c *EbitenCanvas) Snapshot() (image.Image, error) {
	img := image.NewRGBA(c.img.Bounds())
	c.img.ReadPixels(img.Pix)
	return img, nil
}
