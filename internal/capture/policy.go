// Package capture decides which frames are written to disk and writes them.
package capture

// Action is what to do with a rendered frame.
type Action int

const (
	// Idle neither captures nor reports completion.
	Idle Action = iota
	// Capture writes the frame to disk.
	Capture
	// Finished reports that capturing is over.
	Finished
)

func (a Action) String() string {
	switch a {
	case Capture:
		return "capture"
	case Finished:
		return "finished"
	default:
		return "idle"
	}
}

// Policy captures frames up to and including Last. Completion is reported
// only from Last+2 on: frame Last+1 falls between the two checks and gets
// Idle.
type Policy struct {
	Last     int
	Disabled bool
}

// Decide returns the action for the given elapsed frame count.
func (p Policy) Decide(frame int) Action {
	if p.Disabled {
		return Idle
	}
	switch {
	case frame <= p.Last:
		return Capture
	case frame > p.Last+1:
		return Finished
	default:
		return Idle
	}
}
