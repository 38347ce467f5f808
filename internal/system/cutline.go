// internal/system/cutline.go
package system

import (
	"go-unstable/internal/component"
	"go-unstable/internal/utils"
)

// CutLineSystem re-samples the cut line inside the model bounds.
type CutLineSystem struct {
	rng *utils.PRNGService
}

func NewCutLineSystem(rng *utils.PRNGService) *CutLineSystem {
	return &CutLineSystem{rng: rng}
}

func (s *CutLineSystem) Update(m *component.Model) {
	m.CutLine.Update(m.Bounds, s.rng)
}
