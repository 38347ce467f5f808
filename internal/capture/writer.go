package capture

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// ErrNoProjectPath is returned when a frame is saved without a project path.
var ErrNoProjectPath = errors.New("failed to locate project path")

// FramePath returns <project>/<dir>/<frame, zero-padded to 4>.png.
func FramePath(project, dir string, frame int) string {
	return filepath.Join(project, dir, fmt.Sprintf("%04d.png", frame))
}

// Writer stores frames as PNG files under a project directory.
type Writer struct {
	ProjectPath string
	Dir         string

	encoder png.Encoder
	ready   bool
}

// NewWriter returns a writer for <projectPath>/<dir>.
func NewWriter(projectPath, dir string) *Writer {
	return &Writer{
		ProjectPath: projectPath,
		Dir:         dir,
		encoder:     png.Encoder{CompressionLevel: png.BestSpeed},
	}
}

// Save encodes img as the given frame and returns the file path.
func (w *Writer) Save(frame int, img image.Image) (string, error) {
	if w.ProjectPath == "" {
		return "", ErrNoProjectPath
	}
	if !w.ready {
		if err := os.MkdirAll(filepath.Join(w.ProjectPath, w.Dir), 0o755); err != nil {
			return "", fmt.Errorf("failed to create frames directory: %w", err)
		}
		w.ready = true
	}

	name := FramePath(w.ProjectPath, w.Dir, frame)
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("failed to create frame file: %w", err)
	}
	if err := w.encoder.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to encode frame %d: %w", frame, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write frame %d: %w", frame, err)
	}
	return name, nil
}
