// internal/app/sketch.go
package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/image/math/f32"
	"seehuhn.de/go/geom/rect"

	"go-unstable/internal/capture"
	"go-unstable/internal/component"
	"go-unstable/internal/config"
	"go-unstable/internal/cutline"
	"go-unstable/internal/event"
	"go-unstable/internal/hatch"
	"go-unstable/internal/outline"
	"go-unstable/internal/physics"
	"go-unstable/internal/system"
	"go-unstable/internal/utils"
)

// progressEvery is how often a captured frame is logged at info level.
const progressEvery = 50

// Sketch holds the model and the systems that animate it.
type Sketch struct {
	Model           *component.Model
	WindSystem      *system.WindSystem
	CutLineSystem   *system.CutLineSystem
	RenderSystem    *system.RenderSystem
	CaptureSystem   *system.CaptureSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Settings        config.Settings
}

// Bounds is the drawing area of the window.
func Bounds() rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: config.ScreenWidth, URy: config.ScreenHeight}
}

// HatchOptions converts the hatch settings to hatcher options.
func HatchOptions(s config.HatchSettings) hatch.Options {
	opts := hatch.Options{
		Interval:  s.Interval,
		Angle:     s.Angle,
		Tolerance: s.Tolerance,
		Rule:      hatch.EvenOdd,
	}
	if s.EvenOdd != nil && !*s.EvenOdd {
		opts.Rule = hatch.NonZero
	}
	return opts
}

// HatchText builds the outline of the configured text and hatches it.
func HatchText(s config.Settings, bounds rect.Rect) ([]hatch.Segment, error) {
	face, err := outline.LoadFont(s.FontPath)
	if err != nil {
		return nil, err
	}
	p, err := outline.Text(face, s.Text, s.FontSize, bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to build outline of %q: %w", s.Text, err)
	}
	return hatch.New(HatchOptions(s.Hatch)).Hatch(p), nil
}

// NewModel builds the initial animation state. The outline is hatched here
// and never again.
func NewModel(s config.Settings, rng *utils.PRNGService) (*component.Model, error) {
	bounds := Bounds()
	segs, err := HatchText(s, bounds)
	if err != nil {
		return nil, err
	}

	body := physics.NewBody(s.Physics.Mass)
	// стартовое ускорение (1, 0) задаём силой, чтобы не трогать Body напрямую
	body.ApplyForce(f32.Vec2{
		config.InitialDrift[0] * s.Physics.Mass,
		config.InitialDrift[1] * s.Physics.Mass,
	})

	return &component.Model{
		Segments: segs,
		Hatched:  hatch.ToPath(segs),
		Body:     body,
		CutLine:  cutline.New(bounds, rng),
		Bounds:   bounds,
	}, nil
}

// NewSketch wires the model, systems and event listeners. The completion
// message goes to out.
func NewSketch(s config.Settings, logger *log.Logger, out io.Writer) (*Sketch, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	rng := utils.NewPRNGService(s.Seed)
	model, err := NewModel(s, rng)
	if err != nil {
		return nil, err
	}

	dispatcher := event.NewDispatcher()
	sk := &Sketch{
		Model:           model,
		WindSystem:      system.NewWindSystem(rng, s.Physics.WindStrength),
		CutLineSystem:   system.NewCutLineSystem(rng),
		RenderSystem:    system.NewRenderSystem(s.Noise, rng.Int63()),
		EventDispatcher: dispatcher,
		Rng:             rng,
		Settings:        s,
	}
	sk.CaptureSystem = system.NewCaptureSystem(
		capture.Policy{Last: s.Capture.LastFrame, Disabled: s.Capture.Disabled},
		capture.NewWriter(s.Capture.ProjectPath, s.Capture.Dir),
		dispatcher,
		out,
	)
	if logger != nil {
		system.NewProgressLogger(logger, progressEvery, dispatcher)
		logger.Debug("sketch seeded", "seed", rng.Seed())
	}

	dispatcher.Dispatch(event.Event{Type: event.SketchStarted, Data: len(model.Segments)})
	return sk, nil
}

// Update advances the simulation by one frame. deltaTime only drives the
// noise and the dot pulse; physics steps once per call.
func (sk *Sketch) Update(deltaTime float64) {
	sk.Model.Time += deltaTime
	sk.WindSystem.Update(sk.Model)
	sk.CutLineSystem.Update(sk.Model)
}

// Draw renders the current frame, hands it to capture and counts it.
func (sk *Sketch) Draw(surface system.Surface) error {
	sk.RenderSystem.Draw(surface, sk.Model)
	err := sk.CaptureSystem.Frame(sk.Model.Frame, surface)
	sk.Model.Frame++
	return err
}

// Preview renders the current frame without capturing or counting it.
func (sk *Sketch) Preview(c system.Canvas) {
	sk.RenderSystem.Draw(c, sk.Model)
}
