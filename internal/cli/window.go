package cli

import (
	"context"
	"io"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-unstable/internal/app"
	"go-unstable/internal/config"
	"go-unstable/internal/state"
	"go-unstable/pkg/render"
)

// appGame adapts the state machine to ebiten's game loop.
type appGame struct {
	ctx            context.Context
	stateMachine   *state.StateMachine
	canvas         *render.EbitenCanvas
	lastUpdateTime time.Time
}

func (a *appGame) Update() error {
	if err := a.ctx.Err(); err != nil {
		return err
	}
	now := time.Now()
	deltaTime := clampDelta(now.Sub(a.lastUpdateTime).Seconds())
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *appGame) Draw(screen *ebiten.Image) {
	a.canvas.Reset(screen)
	a.stateMachine.Draw(a.canvas)
}

func (a *appGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// clampDelta limits a frame's time step so a stalled window does not make
// the animation jump.
func clampDelta(dt float64) float64 {
	return min(max(dt, 0), config.MaxDeltaTime)
}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP)
}

// runWindow opens the sketch window and blocks until it closes, ctx is
// cancelled or a frame fails to save.
func runWindow(ctx context.Context, s config.Settings, stdout io.Writer) error {
	logger := loggerFromContext(ctx)

	sketch, err := app.NewSketch(s, logger, stdout)
	if err != nil {
		return err
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewSketchState(sm, sketch, pausePressed))

	game := &appGame{
		ctx:            ctx,
		stateMachine:   sm,
		canvas:         render.NewEbitenCanvas(nil),
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	// один Update на каждый отрисованный кадр
	ebiten.SetTPS(ebiten.SyncWithFPS)

	logger.Info("opening window", "project", s.Capture.ProjectPath, "capture", !s.Capture.Disabled)
	return ebiten.RunGame(game)
}
