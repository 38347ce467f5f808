// internal/state/pause_state.go
package state

import "go-unstable/internal/system"

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the sketch: the last frame is redrawn, nothing moves,
// nothing is captured and the frame counter stands still.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *SketchState
	resume        Toggle
}

func NewPauseState(sm *StateMachine, prevState *SketchState, resume Toggle) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		resume:        resume,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) error {
	if s.resume != nil && s.resume() {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(surface system.Surface) {
	s.previousState.Sketch().Preview(surface)
}

func (s *PauseState) Exit() {}
