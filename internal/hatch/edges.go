package hatch

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// edge is a flattened outline segment in hatch space, stored top to bottom.
type edge struct {
	x0, y0 float64 // upper end (smaller y)
	x1, y1 float64 // lower end
	dxdy   float64 // (x1-x0)/(y1-y0)
	dir    int     // +1 if the outline runs downward here, -1 if upward
}

// xAt returns the x-intercept of e at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// collectEdges walks p, rotates every point into hatch space and flattens
// curves into the edge list. Open subpaths are closed implicitly, as for a
// fill. It reports false if p has no non-horizontal edges.
func (h *Hatcher) collectEdges(p *path.Data) bool {
	h.edges = h.edges[:0]
	h.yMin, h.yMax = math.Inf(1), math.Inf(-1)

	var current, subpath vec.Vec2
	open := false

	closeSubpath := func() {
		if open && current != subpath {
			h.addEdge(current, subpath)
		}
		current = subpath
		open = false
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			current = h.toHatch(p.Coords[coordIdx])
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			next := h.toHatch(p.Coords[coordIdx])
			h.addEdge(current, next)
			current = next
			open = true
			coordIdx++

		case path.CmdQuadTo:
			c1 := h.toHatch(p.Coords[coordIdx])
			next := h.toHatch(p.Coords[coordIdx+1])
			h.flattenQuadratic(current, c1, next, h.addEdge)
			current = next
			open = true
			coordIdx += 2

		case path.CmdCubeTo:
			c1 := h.toHatch(p.Coords[coordIdx])
			c2 := h.toHatch(p.Coords[coordIdx+1])
			next := h.toHatch(p.Coords[coordIdx+2])
			h.flattenCubic(current, c1, c2, next, h.addEdge)
			current = next
			open = true
			coordIdx += 3

		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()

	return len(h.edges) > 0
}

// addEdge appends the edge p0→p1, skipping horizontal ones: a horizontal
// scan line never crosses them.
func (h *Hatcher) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	e := edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dir: 1}
	if dy < 0 {
		e.x0, e.y0, e.x1, e.y1 = p1.X, p1.Y, p0.X, p0.Y
		e.dir = -1
	}
	e.dxdy = (e.x1 - e.x0) / (e.y1 - e.y0)
	h.edges = append(h.edges, e)

	h.yMin = min(h.yMin, e.y0)
	h.yMax = max(h.yMax, e.y1)
}

// flattenQuadratic approximates the quadratic Bézier p0,p1,p2 by line
// segments whose distance from the curve stays below the tolerance.
func (h *Hatcher) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if dev := e.Length(); dev > h.opts.Tolerance {
		n = int(math.Ceil(math.Sqrt(dev / h.opts.Tolerance)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier p0..p3 using Wang's formula
// for the segment count.
func (h *Hatcher) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		if nf := math.Sqrt(3 * m / (4 * h.opts.Tolerance)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// horizontalEdgeThreshold is the minimum vertical extent for an edge to be
// kept.
const horizontalEdgeThreshold = 1e-10
