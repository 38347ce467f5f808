// Package hatch turns a filled outline into evenly spaced parallel line
// segments clipped to the outline's interior.
//
// Scan lines sit at (k + 0.5) * Interval in hatch space, so a shape whose
// extent is a multiple of the interval gets exactly extent/Interval lines.
// An edge covers the heights y0 <= y < y1; shared vertices are therefore
// counted once and horizontal edges never at all.
package hatch

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FillRule decides which spans between crossings count as inside.
type FillRule int

const (
	EvenOdd FillRule = iota
	NonZero
)

// Options configures a Hatcher.
type Options struct {
	// Interval is the distance between neighbouring hatch lines.
	Interval float64

	// Angle rotates the hatch lines, in degrees. 0 gives horizontal lines.
	Angle float64

	// Tolerance is the maximum distance between a curve and its flattened
	// approximation. Must be positive.
	Tolerance float64

	Rule FillRule
}

// DefaultOptions returns horizontal even-odd hatching with a 1.0 interval.
func DefaultOptions() Options {
	return Options{
		Interval:  1.0,
		Tolerance: 0.1,
		Rule:      EvenOdd,
	}
}

// Segment is one hatch line between two outline crossings.
type Segment struct {
	A, B vec.Vec2
}

// Length returns the Euclidean length of s.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// crossing is where a scan line meets an edge.
type crossing struct {
	x   float64
	dir int
}

// Hatcher produces hatch segments. Internal buffers are reused between
// calls; a Hatcher is not safe for concurrent use.
type Hatcher struct {
	opts     Options
	sin, cos float64

	edges      []edge
	yMin, yMax float64
	active     []int
	crossings  []crossing
}

// New returns a Hatcher for opts. A non-positive tolerance falls back to
// the default.
func New(opts Options) *Hatcher {
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultOptions().Tolerance
	}
	sin, cos := math.Sincos(opts.Angle * math.Pi / 180)
	return &Hatcher{opts: opts, sin: sin, cos: cos}
}

// Options returns the options in effect.
func (h *Hatcher) Options() Options {
	return h.opts
}

// Hatch returns the hatch segments of the region enclosed by p. The result
// is ordered scan line by scan line and left to right within a line, but
// callers should not rely on neighbouring segments being close on screen.
// An empty path or a non-positive interval gives no segments.
func (h *Hatcher) Hatch(p *path.Data) []Segment {
	if p == nil || len(p.Cmds) == 0 || h.opts.Interval <= 0 {
		return nil
	}
	if !h.collectEdges(p) {
		return nil
	}

	slices.SortFunc(h.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	var out []Segment
	interval := h.opts.Interval
	h.active = h.active[:0]
	nextEdge := 0

	for k := math.Ceil(h.yMin/interval - 0.5); ; k++ {
		y := (k + 0.5) * interval
		if y >= h.yMax {
			break
		}

		for nextEdge < len(h.edges) && h.edges[nextEdge].y0 <= y {
			h.active = append(h.active, nextEdge)
			nextEdge++
		}

		h.crossings = h.crossings[:0]
		for i := 0; i < len(h.active); {
			e := &h.edges[h.active[i]]
			if e.y1 <= y {
				h.active[i] = h.active[len(h.active)-1]
				h.active = h.active[:len(h.active)-1]
				continue
			}
			h.crossings = append(h.crossings, crossing{x: e.xAt(y), dir: e.dir})
			i++
		}
		if len(h.crossings) < 2 {
			continue
		}

		slices.SortFunc(h.crossings, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})
		out = h.appendSpans(out, y)
	}

	return out
}

// appendSpans converts the sorted crossings of scan line y into segments.
func (h *Hatcher) appendSpans(out []Segment, y float64) []Segment {
	emit := func(xa, xb float64) {
		if xb > xa {
			out = append(out, Segment{A: h.fromHatch(xa, y), B: h.fromHatch(xb, y)})
		}
	}

	switch h.opts.Rule {
	case NonZero:
		winding := 0
		var start float64
		for _, c := range h.crossings {
			prev := winding
			winding += c.dir
			switch {
			case prev == 0 && winding != 0:
				start = c.x
			case prev != 0 && winding == 0:
				emit(start, c.x)
			}
		}
	default:
		for i := 0; i+1 < len(h.crossings); i += 2 {
			emit(h.crossings[i].x, h.crossings[i+1].x)
		}
	}
	return out
}

// toHatch rotates p by -Angle so hatch lines become horizontal.
func (h *Hatcher) toHatch(p vec.Vec2) vec.Vec2 {
	if h.sin == 0 {
		return p
	}
	return vec.Vec2{
		X: p.X*h.cos + p.Y*h.sin,
		Y: -p.X*h.sin + p.Y*h.cos,
	}
}

// fromHatch undoes toHatch.
func (h *Hatcher) fromHatch(x, y float64) vec.Vec2 {
	if h.sin == 0 {
		return vec.Vec2{X: x, Y: y}
	}
	return vec.Vec2{
		X: x*h.cos - y*h.sin,
		Y: x*h.sin + y*h.cos,
	}
}

// ToPath turns segments into a path of independent move/line pairs.
func ToPath(segs []Segment) *path.Data {
	p := &path.Data{}
	for _, s := range segs {
		p.MoveTo(s.A).LineTo(s.B)
	}
	return p
}

// TotalLength sums the lengths of segs.
func TotalLength(segs []Segment) float64 {
	total := 0.0
	for _, s := range segs {
		total += s.Length()
	}
	return total
}
