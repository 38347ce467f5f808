// internal/system/wind.go
package system

import (
	"golang.org/x/image/math/f32"

	"go-unstable/internal/component"
	"go-unstable/internal/utils"
)

// WindSystem pushes the message with a random gust every frame.
type WindSystem struct {
	rng      *utils.PRNGService
	strength float32
}

func NewWindSystem(rng *utils.PRNGService, strength float32) *WindSystem {
	return &WindSystem{rng: rng, strength: strength}
}

// Gust samples a force uniformly from [-strength, strength]².
func (s *WindSystem) Gust() f32.Vec2 {
	return f32.Vec2{
		s.rng.RangeFloat32(-s.strength, s.strength),
		s.rng.RangeFloat32(-s.strength, s.strength),
	}
}

func (s *WindSystem) Update(m *component.Model) {
	m.Body.ApplyForce(s.Gust())
	m.Body.Advance()
}
