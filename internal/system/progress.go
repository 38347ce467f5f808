// internal/system/progress.go
package system

import (
	"github.com/charmbracelet/log"

	"go-unstable/internal/event"
)

// ProgressLogger reports sketch events to the log: every capture at debug
// level, every `every`-th capture and the lifecycle events at info. It stops
// listening once capture has finished.
type ProgressLogger struct {
	logger     *log.Logger
	every      int
	dispatcher *event.Dispatcher
}

func NewProgressLogger(logger *log.Logger, every int, d *event.Dispatcher) *ProgressLogger {
	p := &ProgressLogger{logger: logger, every: every, dispatcher: d}
	d.Subscribe(event.SketchStarted, p)
	d.Subscribe(event.FrameCaptured, p)
	d.Subscribe(event.CaptureFinished, p)
	return p
}

func (p *ProgressLogger) OnEvent(e event.Event) {
	switch e.Type {
	case event.SketchStarted:
		p.logger.Info("sketch ready", "segments", e.Data)

	case event.FrameCaptured:
		info, _ := e.Data.(event.FrameInfo)
		if p.every > 0 && info.Frame%p.every == 0 {
			p.logger.Info("captured frame", "frame", info.Frame, "path", info.Path)
			return
		}
		p.logger.Debug("captured frame", "frame", info.Frame, "path", info.Path)

	case event.CaptureFinished:
		info, _ := e.Data.(event.FrameInfo)
		p.logger.Info("capture finished", "frame", info.Frame)
		p.dispatcher.Unsubscribe(event.SketchStarted, p)
		p.dispatcher.Unsubscribe(event.FrameCaptured, p)
		p.dispatcher.Unsubscribe(event.CaptureFinished, p)
	}
}
