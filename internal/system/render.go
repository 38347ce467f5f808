// internal/system/render.go
package system

import (
	"math"

	"github.com/aquilax/go-perlin"

	"go-unstable/internal/component"
	"go-unstable/internal/config"
	"go-unstable/internal/utils"
)

// RenderSystem рисует штриховку, точки и линию разреза.
type RenderSystem struct {
	noise  *perlin.Perlin
	params config.NoiseSettings
}

// NewRenderSystem creates the renderer with one noise generator that lives
// as long as the renderer does.
func NewRenderSystem(params config.NoiseSettings, seed int64) *RenderSystem {
	return &RenderSystem{
		noise:  perlin.NewPerlin(config.NoiseAlpha, config.NoiseBeta, config.NoiseOctave, seed),
		params: params,
	}
}

// Jitter returns the half-length of the flicker stroke for point i at time
// t. Noise is sampled along (time, index), so neighbouring points and frames
// flicker coherently. The result is clamped to ±MaxLength.
func (s *RenderSystem) Jitter(i int, t float64) float32 {
	// смещение на полшага: в целых узлах решётки шум Перлина равен нулю
	n := s.noise.Noise2D(t*s.params.Rate+0.5, float64(i)*s.params.Step+0.5)
	limit := s.params.MaxLength
	if n == 0 {
		return float32(limit)
	}
	l := s.params.Scale / n
	return float32(max(-limit, min(limit, l)))
}

// DotRadius returns the pulsing radius of the dot drawn at point i.
func DotRadius(i int, t float64) float32 {
	phase := math.Sin(float64(i)*config.DotPhaseStep + t*config.DotPulseRate)
	return utils.MapRange(float32(phase), -1, 1, config.DotMinRadius, config.DotMaxRadius)
}

func (s *RenderSystem) Draw(c Canvas, m *component.Model) {
	c.Fill(config.BackgroundColor)

	vx, vy := m.Body.Velocity[0], m.Body.Velocity[1]
	for i, p := range m.Points() {
		x := float32(p.X) + vx
		y := float32(p.Y) + vy

		l := s.Jitter(i, m.Time)
		// штрих над точкой: экранная ось y направлена вниз
		c.StrokeLine(x-l, y-l, x+l, y-l, config.HatchStrokeWidth, config.HatchColor)

		if i%2 == 0 {
			c.FillCircle(x, y, DotRadius(i, m.Time), config.DotColor)
		}
	}

	cut := m.CutLine
	c.StrokeLine(cut.Start[0], cut.Start[1], cut.End[0], cut.End[1], config.CutLineWidth, config.CutLineColor)
}
