package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go-unstable/internal/app"
	"go-unstable/internal/hatch"
)

// hatchOpts overrides hatch settings for a single run.
type hatchOpts struct {
	interval float64
	angle    float64
}

// newHatchCmd creates a diagnostic command that hatches the configured text
// and prints how many segments it produced and their total length.
func newHatchCmd(root *rootOpts, stdout io.Writer) *cobra.Command {
	var opts hatchOpts

	cmd := &cobra.Command{
		Use:   "hatch",
		Short: "Hatch the message outline and print statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.settings(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("interval") {
				s.Hatch.Interval = opts.interval
			}
			if cmd.Flags().Changed("angle") {
				s.Hatch.Angle = opts.angle
			}
			if err := s.Validate(); err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			segs, err := app.HatchText(s, app.Bounds())
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("hatched %q", s.Text))

			fmt.Fprintf(stdout, "segments: %d\n", len(segs))
			fmt.Fprintf(stdout, "length: %.1f\n", hatch.TotalLength(segs))
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.interval, "interval", 0, "distance between hatch lines")
	cmd.Flags().Float64Var(&opts.angle, "angle", 0, "hatch angle in degrees")

	return cmd
}
