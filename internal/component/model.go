// internal/component/model.go
package component

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"go-unstable/internal/cutline"
	"go-unstable/internal/hatch"
	"go-unstable/internal/physics"
)

// Model is the whole animation state. The update phase owns and mutates it,
// the draw phase only reads it.
type Model struct {
	// Segments and Hatched are computed once and never regenerated.
	Segments []hatch.Segment
	Hatched  *path.Data

	Body    *physics.Body
	CutLine *cutline.CutLine
	Bounds  rect.Rect

	Time  float64 // секунды с начала скетча
	Frame int     // отрисованные кадры

	points []vec.Vec2
}

// Points returns the hatch points in drawing order. Walking a segment
// visits its start, its end and then the start again as the subpath ends,
// so every segment contributes three points: A, B, A. The slice is built
// on first use and shared afterwards.
func (m *Model) Points() []vec.Vec2 {
	if m.points == nil && len(m.Segments) > 0 {
		m.points = make([]vec.Vec2, 0, 3*len(m.Segments))
		for _, s := range m.Segments {
			m.points = append(m.points, s.A, s.B, s.A)
		}
	}
	return m.points
}
