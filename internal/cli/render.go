package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go-unstable/internal/app"
	"go-unstable/internal/config"
	"go-unstable/pkg/render"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	frames int     // frames to draw, 0 draws until the completion message
	fps    float64 // simulated frame rate
}

// newRenderCmd creates the headless render command. It runs the same
// update and draw phases as the window, on an in-memory canvas.
func newRenderCmd(root *rootOpts, stdout io.Writer) *cobra.Command {
	opts := renderOpts{fps: 60}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render frames without opening a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.frames < 0 {
				return fmt.Errorf("frames must not be negative, got %d", opts.frames)
			}
			if opts.fps <= 0 {
				return fmt.Errorf("fps must be positive, got %g", opts.fps)
			}
			s, err := root.settings(cmd)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), s, opts, stdout)
		},
	}

	cmd.Flags().IntVarP(&opts.frames, "frames", "n", 0, "number of frames to draw (default: until capture finishes)")
	cmd.Flags().Float64Var(&opts.fps, "fps", opts.fps, "simulated frames per second")

	return cmd
}

// frameCount returns how many frames the render command draws. By default
// it stops on the first frame that reports completion, two after the last
// captured one.
func frameCount(opts renderOpts, s config.Settings) int {
	if opts.frames > 0 {
		return opts.frames
	}
	return s.Capture.LastFrame + 3
}

func runRender(ctx context.Context, s config.Settings, opts renderOpts, stdout io.Writer) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	sketch, err := app.NewSketch(s, logger, stdout)
	if err != nil {
		return err
	}

	canvas := render.NewRasterCanvas(config.ScreenWidth, config.ScreenHeight)
	n := frameCount(opts, s)
	dt := min(1/opts.fps, config.MaxDeltaTime)
	for range n {
		if err := ctx.Err(); err != nil {
			return err
		}
		sketch.Update(dt)
		if err := sketch.Draw(canvas); err != nil {
			return err
		}
	}

	prog.done(fmt.Sprintf("rendered %d frames", n))
	return nil
}
