// Package outline converts text into a vector outline suitable for hatching.
package outline

import (
	"errors"
	"fmt"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DefaultFont returns the embedded Go Bold face.
func DefaultFont() (*sfnt.Font, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}
	return f, nil
}

// LoadFont reads a TrueType or OpenType font file. An empty path gives the
// default font.
func LoadFont(path string) (*sfnt.Font, error) {
	if path == "" {
		return DefaultFont()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return f, nil
}

// Text lays s out on a single line at the given pixel size and returns the
// glyph contours, centred in bounds. Coordinates grow downward, like the
// screen. Every contour is closed.
func Text(f *sfnt.Font, s string, size float64, bounds rect.Rect) (*path.Data, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %g", size)
	}

	var buf sfnt.Buffer
	ppem := fixed.Int26_6(math.Round(size * 64))

	indices := make([]sfnt.GlyphIndex, 0, len(s))
	for _, r := range s {
		gi, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, fmt.Errorf("glyph index for %q: %w", r, err)
		}
		indices = append(indices, gi)
	}

	// Первый проход: ширина строки для центрирования
	offsets := make([]fixed.Int26_6, len(indices))
	var pen fixed.Int26_6
	for i, gi := range indices {
		if i > 0 {
			k, err := kern(f, &buf, indices[i-1], gi, ppem)
			if err != nil {
				return nil, err
			}
			pen += k
		}
		offsets[i] = pen

		adv, err := f.GlyphAdvance(&buf, gi, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("glyph advance for %q: %w", s, err)
		}
		pen += adv
	}

	m, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("font metrics: %w", err)
	}

	cx := (bounds.LLx + bounds.URx) / 2
	cy := (bounds.LLy + bounds.URy) / 2
	originX := cx - toFloat(pen)/2
	baseline := cy + (toFloat(m.Ascent)-toFloat(m.Descent))/2

	p := &path.Data{}
	for i, gi := range indices {
		segs, err := f.LoadGlyph(&buf, gi, ppem, nil)
		if err != nil {
			if errors.Is(err, sfnt.ErrColoredGlyph) {
				continue
			}
			return nil, fmt.Errorf("load glyph %d: %w", gi, err)
		}
		appendGlyph(p, segs, originX+toFloat(offsets[i]), baseline)
	}
	return p, nil
}

// kern returns the kerning between two glyphs; fonts without kerning data
// give zero.
func kern(f *sfnt.Font, buf *sfnt.Buffer, a, b sfnt.GlyphIndex, ppem fixed.Int26_6) (fixed.Int26_6, error) {
	k, err := f.Kern(buf, a, b, ppem, font.HintingNone)
	if errors.Is(err, sfnt.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("kerning: %w", err)
	}
	return k, nil
}

// appendGlyph copies glyph segments into p, translated to (x, y).
func appendGlyph(p *path.Data, segs sfnt.Segments, x, y float64) {
	at := func(q fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: x + toFloat(q.X), Y: y + toFloat(q.Y)}
	}

	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(at(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(at(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(at(seg.Args[0]), at(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.CubeTo(at(seg.Args[0]), at(seg.Args[1]), at(seg.Args[2]))
		}
	}
	if open {
		p.Close()
	}
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
