package hatch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func square(x, y, side float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x, y)).
		LineTo(pt(x+side, y)).
		LineTo(pt(x+side, y+side)).
		LineTo(pt(x, y+side)).
		Close()
}

// circle approximates a circle with four cubic arcs, running clockwise
// when ccw is false.
func circle(p *path.Data, cx, cy, r float64, ccw bool) *path.Data {
	const k = 0.5522847498
	s := 1.0
	if ccw {
		s = -1
	}
	p.MoveTo(pt(cx+r, cy))
	p.CubeTo(pt(cx+r, cy+s*k*r), pt(cx+k*r, cy+s*r), pt(cx, cy+s*r))
	p.CubeTo(pt(cx-k*r, cy+s*r), pt(cx-r, cy+s*k*r), pt(cx-r, cy))
	p.CubeTo(pt(cx-r, cy-s*k*r), pt(cx-k*r, cy-s*r), pt(cx, cy-s*r))
	p.CubeTo(pt(cx+k*r, cy-s*r), pt(cx+r, cy-s*k*r), pt(cx+r, cy))
	return p.Close()
}

func hatchWith(interval float64, p *path.Data) []Segment {
	opts := DefaultOptions()
	opts.Interval = interval
	return New(opts).Hatch(p)
}

func TestSquare(t *testing.T) {
	segs := hatchWith(10, square(0, 0, 100))
	require.Len(t, segs, 10)

	for i, s := range segs {
		assert.InDelta(t, 100, s.Length(), 1e-9, "segment %d", i)
		assert.Equal(t, s.A.Y, s.B.Y, "segment %d must be horizontal", i)
		assert.InDelta(t, 0, s.A.X, 1e-9)
		assert.InDelta(t, 100, s.B.X, 1e-9)
		if i > 0 {
			assert.InDelta(t, 10, s.A.Y-segs[i-1].A.Y, 1e-9)
		}
	}
	assert.InDelta(t, 1000, TotalLength(segs), 1e-9)
}

func TestSquareDefaultInterval(t *testing.T) {
	segs := New(DefaultOptions()).Hatch(square(0, 0, 100))
	assert.Len(t, segs, 100)
}

func TestEmptyInput(t *testing.T) {
	h := New(DefaultOptions())
	assert.Empty(t, h.Hatch(nil))
	assert.Empty(t, h.Hatch(&path.Data{}))

	// a lone horizontal line encloses nothing
	line := (&path.Data{}).MoveTo(pt(0, 5)).LineTo(pt(50, 5))
	assert.Empty(t, h.Hatch(line))
}

func TestNonPositiveInterval(t *testing.T) {
	assert.Empty(t, hatchWith(0, square(0, 0, 100)))
	assert.Empty(t, hatchWith(-1, square(0, 0, 100)))
}

func TestDeterministicAndIdempotent(t *testing.T) {
	p := circle(&path.Data{}, 50, 50, 40, false)
	h := New(Options{Interval: 3, Tolerance: 0.1})

	first := h.Hatch(p)
	second := h.Hatch(p)
	third := New(Options{Interval: 3, Tolerance: 0.1}).Hatch(p)

	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
	assert.Equal(t, TotalLength(first), TotalLength(third))
}

func TestOpenSubpathIsClosed(t *testing.T) {
	open := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(100, 0)).
		LineTo(pt(100, 100)).
		LineTo(pt(0, 100))

	assert.Equal(t, hatchWith(10, square(0, 0, 100)), hatchWith(10, open))
}

func TestCircleCoversArea(t *testing.T) {
	const r = 40.0
	segs := hatchWith(1, circle(&path.Data{}, 50, 50, r, false))

	assert.Len(t, segs, 80)
	// the hatch lines sample the disc area at unit spacing
	assert.InEpsilon(t, math.Pi*r*r, TotalLength(segs), 0.01)
}

func TestRingEvenOdd(t *testing.T) {
	p := circle(&path.Data{}, 50, 50, 40, false)
	p = circle(p, 50, 50, 20, false)

	segs := hatchWith(1, p)
	area := math.Pi * (40*40 - 20*20)
	assert.InEpsilon(t, area, TotalLength(segs), 0.01)

	// lines through the hole split in two
	mid := 0
	for _, s := range segs {
		if s.A.Y == 50.5 {
			mid++
		}
	}
	assert.Equal(t, 2, mid)
}

func TestRingNonZero(t *testing.T) {
	tests := []struct {
		name     string
		innerCCW bool
		area     float64
	}{
		{name: "hole wound opposite", innerCCW: true, area: math.Pi * (40*40 - 20*20)},
		{name: "hole wound alike", innerCCW: false, area: math.Pi * 40 * 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := circle(&path.Data{}, 50, 50, 40, false)
			p = circle(p, 50, 50, 20, tt.innerCCW)

			segs := New(Options{Interval: 1, Tolerance: 0.1, Rule: NonZero}).Hatch(p)
			assert.InEpsilon(t, tt.area, TotalLength(segs), 0.01)
		})
	}
}

func TestOverlapRules(t *testing.T) {
	p := square(0, 0, 100)
	p = p.MoveTo(pt(50, 0)).
		LineTo(pt(150, 0)).
		LineTo(pt(150, 100)).
		LineTo(pt(50, 100)).
		Close()

	even := New(Options{Interval: 10, Tolerance: 0.1, Rule: EvenOdd}).Hatch(p)
	require.Len(t, even, 20)
	assert.InDelta(t, 50, even[0].Length(), 1e-9)
	assert.InDelta(t, 1000, TotalLength(even), 1e-9)

	nonzero := New(Options{Interval: 10, Tolerance: 0.1, Rule: NonZero}).Hatch(p)
	require.Len(t, nonzero, 10)
	assert.InDelta(t, 150, nonzero[0].Length(), 1e-9)
}

func TestAngle(t *testing.T) {
	segs := New(Options{Interval: 10, Angle: 90, Tolerance: 0.1}).Hatch(square(0, 0, 100))
	require.Len(t, segs, 10)

	for _, s := range segs {
		assert.InDelta(t, 100, s.Length(), 1e-9)
		assert.InDelta(t, s.A.X, s.B.X, 1e-9, "segment must be vertical")
	}
}

func TestDiagonalAngleKeepsArea(t *testing.T) {
	segs := New(Options{Interval: 1, Angle: 45, Tolerance: 0.1}).Hatch(square(0, 0, 100))
	assert.InEpsilon(t, 100*100, TotalLength(segs), 0.01)
}

func TestQuadraticCurve(t *testing.T) {
	// parabolic cap over a flat base, area = 2/3 * base * height
	p := (&path.Data{}).
		MoveTo(pt(0, 100)).
		QuadTo(pt(50, -100), pt(100, 100)).
		Close()

	segs := hatchWith(0.5, p)
	assert.InEpsilon(t, 2.0/3.0*100*100, TotalLength(segs)*0.5, 0.01)
}

func TestToPath(t *testing.T) {
	segs := hatchWith(10, square(0, 0, 100))
	p := ToPath(segs)

	require.Len(t, p.Cmds, 2*len(segs))
	require.Len(t, p.Coords, 2*len(segs))
	for i, s := range segs {
		assert.Equal(t, path.CmdMoveTo, p.Cmds[2*i])
		assert.Equal(t, path.CmdLineTo, p.Cmds[2*i+1])
		assert.Equal(t, s.A, p.Coords[2*i])
		assert.Equal(t, s.B, p.Coords[2*i+1])
	}
}
