// internal/event/types.go
package event

const (
	SketchStarted   EventType = "SketchStarted"   // модель построена, штриховка готова
	FrameCaptured   EventType = "FrameCaptured"   // кадр записан на диск
	CaptureFinished EventType = "CaptureFinished" // запись кадров завершена
)

// FrameInfo is the Data of FrameCaptured and CaptureFinished events.
type FrameInfo struct {
	Frame int
	Path  string // empty for CaptureFinished
}
