// Package cli implements the unstable command-line interface.
//
// The root command opens a 720×1280 window and runs the sketch, capturing
// the first frames to <project>/frames. Subcommands render the same frames
// without a window and report hatching statistics.
//
// All commands accept --verbose (-v) for debug logging. The logger travels
// through context.Context.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"go-unstable/internal/config"
)

// rootOpts holds the persistent flags shared by every command.
type rootOpts struct {
	configPath  string // TOML settings file
	projectPath string // directory that receives frames/
	seed        int64  // 0 keeps the file's seed or picks a fresh one
	noCapture   bool
	verbose     bool
}

// settings loads the configured settings and applies flag overrides. The
// project path falls back to the working directory.
func (o *rootOpts) settings(cmd *cobra.Command) (config.Settings, error) {
	s, err := config.Load(o.configPath)
	if err != nil {
		return s, err
	}
	if o.projectPath != "" {
		s.Capture.ProjectPath = o.projectPath
	}
	if s.Capture.ProjectPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return s, fmt.Errorf("failed to locate project path: %w", err)
		}
		s.Capture.ProjectPath = wd
	}
	if cmd.Flags().Changed("seed") {
		s.Seed = o.seed
	}
	if o.noCapture {
		s.Capture.Disabled = true
	}
	return s, nil
}

// NewRootCmd builds the command tree. The completion message and command
// output go to stdout, logs to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:          "unstable",
		Short:        "Unstable draws a hatched word shaken by the wind",
		Long:         `Unstable hatches the outline of a word, pushes it around with random wind gusts and records the first frames as PNG files for video assembly.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			return runWindow(cmd.Context(), s, stdout)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML settings file")
	root.PersistentFlags().StringVar(&opts.projectPath, "project-path", "", "directory that receives the frames folder (default: working directory)")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "random seed, 0 picks a fresh one")
	root.PersistentFlags().BoolVar(&opts.noCapture, "no-capture", false, "do not write frames to disk")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd(opts, stdout))
	root.AddCommand(newHatchCmd(opts, stdout))

	return root
}
