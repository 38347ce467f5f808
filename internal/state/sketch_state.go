// internal/state/sketch_state.go
package state

import (
	"go-unstable/internal/app"
	"go-unstable/internal/system"
)

// Toggle reports whether the pause key was just pressed.
type Toggle func() bool

var _ State = (*SketchState)(nil)

// SketchState runs the animation. Errors from drawing are kept and
// returned by the next Update, since ebiten's Draw cannot fail.
//
// A frame is counted and captured only by the first Draw after an Update.
// Extra draws repaint the same state without touching the frame counter.
type SketchState struct {
	sm      *StateMachine
	sketch  *app.Sketch
	pause   Toggle
	err     error
	stepped bool // Update ran since the last counted Draw
}

// NewSketchState creates the running state. pause may be nil.
func NewSketchState(sm *StateMachine, sketch *app.Sketch, pause Toggle) *SketchState {
	return &SketchState{sm: sm, sketch: sketch, pause: pause}
}

func (s *SketchState) Sketch() *app.Sketch {
	return s.sketch
}

func (s *SketchState) Enter() {}

func (s *SketchState) Update(deltaTime float64) error {
	if s.err != nil {
		return s.err
	}
	if s.pause != nil && s.pause() {
		s.sm.SetState(NewPauseState(s.sm, s, s.pause))
		return nil
	}
	s.sketch.Update(deltaTime)
	s.stepped = true
	return nil
}

func (s *SketchState) Draw(surface system.Surface) {
	if s.err != nil {
		return
	}
	if !s.stepped {
		s.sketch.Preview(surface)
		return
	}
	s.stepped = false
	s.err = s.sketch.Draw(surface)
}

func (s *SketchState) Exit() {}
