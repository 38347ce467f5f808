// pkg/render/raster_canvas.go
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// circleK is the cubic Bézier handle length for a quarter circle.
const circleK = 0.5522847498

// RasterCanvas draws into an in-memory RGBA image, for rendering without a
// window. Each shape is rasterised in a buffer the size of its own bounding
// box, so cost follows the shape, not the image.
type RasterCanvas struct {
	img *image.RGBA
	z   vector.Rasterizer
}

func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the backing image; it changes with every draw call.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

func (c *RasterCanvas) Fill(clr color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// StrokeLine draws the line as a quad of the given width with butt caps.
func (c *RasterCanvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 || width <= 0 {
		return
	}
	// нормаль половинной толщины
	nx, ny := -dy/length*width/2, dx/length*width/2

	xs := [4]float32{x0 + nx, x1 + nx, x1 - nx, x0 - nx}
	ys := [4]float32{y0 + ny, y1 + ny, y1 - ny, y0 - ny}

	box, ok := c.clip(minOf(xs[:]), minOf(ys[:]), maxOf(xs[:]), maxOf(ys[:]))
	if !ok {
		return
	}
	ox, oy := float32(box.Min.X), float32(box.Min.Y)

	c.z.Reset(box.Dx(), box.Dy())
	c.z.MoveTo(xs[0]-ox, ys[0]-oy)
	for i := 1; i < 4; i++ {
		c.z.LineTo(xs[i]-ox, ys[i]-oy)
	}
	c.z.ClosePath()
	c.z.Draw(c.img, box, image.NewUniform(clr), image.Point{})
}

// FillCircle draws a disc built from four cubic arcs.
func (c *RasterCanvas) FillCircle(cx, cy, r float32, clr color.Color) {
	if r <= 0 {
		return
	}
	box, ok := c.clip(cx-r, cy-r, cx+r, cy+r)
	if !ok {
		return
	}
	x, y := cx-float32(box.Min.X), cy-float32(box.Min.Y)
	k := circleK * r

	c.z.Reset(box.Dx(), box.Dy())
	c.z.MoveTo(x+r, y)
	c.z.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
	c.z.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
	c.z.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
	c.z.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
	c.z.ClosePath()
	c.z.Draw(c.img, box, image.NewUniform(clr), image.Point{})
}

// Snapshot returns a copy of the current image.
func (c *RasterCanvas) Snapshot() (image.Image, error) {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out, nil
}

// clip returns the integer pixel box covering the float box, cut to the
// image. ok is false if nothing remains.
func (c *RasterCanvas) clip(x0, y0, x1, y1 float32) (image.Rectangle, bool) {
	box := image.Rect(
		int(math.Floor(float64(x0))), int(math.Floor(float64(y0))),
		int(math.Ceil(float64(x1))), int(math.Ceil(float64(y1))),
	).Intersect(c.img.Bounds())
	return box, !box.Empty()
}

func minOf(v []float32) float32 {
	m := v[0]
	for _, x := range v[1:] {
		m = min(m, x)
	}
	return m
}

func maxOf(v []float32) float32 {
	m := v[0]
	for _, x := range v[1:] {
		m = max(m, x)
	}
	return m
}
