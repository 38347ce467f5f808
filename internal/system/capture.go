// internal/system/capture.go
package system

import (
	"fmt"
	"io"

	"go-unstable/internal/capture"
	"go-unstable/internal/config"
	"go-unstable/internal/event"
)

// CaptureSystem writes the first frames to disk and announces when it is
// done. Any write error is returned to the caller, who must stop the loop.
type CaptureSystem struct {
	policy     capture.Policy
	writer     *capture.Writer
	dispatcher *event.Dispatcher
	out        io.Writer
	announced  bool
}

func NewCaptureSystem(policy capture.Policy, writer *capture.Writer, dispatcher *event.Dispatcher, out io.Writer) *CaptureSystem {
	return &CaptureSystem{
		policy:     policy,
		writer:     writer,
		dispatcher: dispatcher,
		out:        out,
	}
}

// Done reports whether the completion message has been printed.
func (s *CaptureSystem) Done() bool {
	return s.announced
}

// Frame handles the surface of the given elapsed frame after it was drawn.
func (s *CaptureSystem) Frame(frame int, surface Surface) error {
	switch s.policy.Decide(frame) {
	case capture.Capture:
		img, err := surface.Snapshot()
		if err != nil {
			return fmt.Errorf("failed to read frame %d: %w", frame, err)
		}
		name, err := s.writer.Save(frame, img)
		if err != nil {
			return err
		}
		s.dispatcher.Dispatch(event.Event{
			Type: event.FrameCaptured,
			Data: event.FrameInfo{Frame: frame, Path: name},
		})

	case capture.Finished:
		if s.announced {
			return nil
		}
		s.announced = true
		fmt.Fprintln(s.out, config.CompletionMessage)
		s.dispatcher.Dispatch(event.Event{
			Type: event.CaptureFinished,
			Data: event.FrameInfo{Frame: frame},
		})
	}
	return nil
}
