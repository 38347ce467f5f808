// Package cutline holds the decorative line that jumps to a new random place
// every frame.
package cutline

import (
	"golang.org/x/image/math/f32"
	"seehuhn.de/go/geom/rect"
)

// Source supplies uniform random values in [lo, hi].
type Source interface {
	RangeFloat32(lo, hi float32) float32
}

// CutLine is a segment between two random points of a rectangle.
type CutLine struct {
	Start, End f32.Vec2
}

// New returns a cut line already sampled within bounds.
func New(bounds rect.Rect, rng Source) *CutLine {
	c := &CutLine{}
	c.Update(bounds, rng)
	return c
}

// Update replaces both endpoints with fresh samples.
func (c *CutLine) Update(bounds rect.Rect, rng Source) {
	c.Start = samplePoint(bounds, rng)
	c.End = samplePoint(bounds, rng)
}

func samplePoint(bounds rect.Rect, rng Source) f32.Vec2 {
	return f32.Vec2{
		rng.RangeFloat32(float32(bounds.LLx), float32(bounds.URx)),
		rng.RangeFloat32(float32(bounds.LLy), float32(bounds.URy)),
	}
}
