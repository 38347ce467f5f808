package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchByType(t *testing.T) {
	d := NewDispatcher()
	captured, finished := &recorder{}, &recorder{}
	d.Subscribe(FrameCaptured, captured)
	d.Subscribe(CaptureFinished, finished)

	d.Dispatch(Event{Type: FrameCaptured, Data: FrameInfo{Frame: 1, Path: "frames/0001.png"}})
	d.Dispatch(Event{Type: FrameCaptured, Data: FrameInfo{Frame: 2, Path: "frames/0002.png"}})
	d.Dispatch(Event{Type: CaptureFinished, Data: FrameInfo{Frame: 452}})

	assert.Len(t, captured.got, 2)
	assert.Equal(t, 2, captured.got[1].Data.(FrameInfo).Frame)
	assert.Len(t, finished.got, 1)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(SketchStarted, a)
	d.Subscribe(SketchStarted, b)
	d.Unsubscribe(SketchStarted, a)

	d.Dispatch(Event{Type: SketchStarted})
	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)

	// unknown listener is a no-op
	d.Unsubscribe(SketchStarted, &recorder{})
	d.Dispatch(Event{Type: SketchStarted})
	assert.Len(t, b.got, 2)
}

// quitter unsubscribes itself on its first event.
type quitter struct {
	d   *Dispatcher
	got int
}

func (q *quitter) OnEvent(e Event) {
	q.got++
	q.d.Unsubscribe(e.Type, q)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	q := &quitter{d: d}
	after := &recorder{}
	d.Subscribe(CaptureFinished, q)
	d.Subscribe(CaptureFinished, after)

	d.Dispatch(Event{Type: CaptureFinished})
	assert.Equal(t, 1, q.got)
	assert.Len(t, after.got, 1, "listeners after the quitter still get the event")

	d.Dispatch(Event{Type: CaptureFinished})
	assert.Equal(t, 1, q.got)
	assert.Len(t, after.got, 2)
}
