package app

import (
	"bytes"
	"os"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"

	"go-unstable/internal/capture"
	"go-unstable/internal/config"
	"go-unstable/internal/hatch"
	"go-unstable/internal/utils"
	"go-unstable/pkg/render"
)

func testSettings(t *testing.T) config.Settings {
	t.Helper()
	s := config.Default()
	s.Seed = 7
	s.Hatch.Interval = 8
	s.Capture.ProjectPath = t.TempDir()
	s.Capture.LastFrame = 2
	return s
}

func TestHatchOptions(t *testing.T) {
	s := config.Default().Hatch
	opts := HatchOptions(s)
	assert.Equal(t, hatch.EvenOdd, opts.Rule)
	assert.Equal(t, config.HatchInterval, opts.Interval)

	off := false
	s.EvenOdd = &off
	assert.Equal(t, hatch.NonZero, HatchOptions(s).Rule)
}

func TestNewModel(t *testing.T) {
	s := testSettings(t)
	m, err := NewModel(s, utils.NewPRNGService(1))
	require.NoError(t, err)

	require.NotEmpty(t, m.Segments)
	assert.Len(t, m.Points(), 3*len(m.Segments))
	assert.Equal(t, Bounds(), m.Bounds)

	assert.Equal(t, f32.Vec2{1, 0}, m.Body.Acceleration)
	assert.Equal(t, f32.Vec2{0, 0}, m.Body.Velocity)
	assert.Equal(t, 0, m.Frame)

	for _, p := range m.Points() {
		assert.True(t, p.Y >= 0 && p.Y <= config.ScreenHeight, "y out of window: %v", p)
	}
}

func TestNewModelBadFont(t *testing.T) {
	s := testSettings(t)
	s.FontPath = "/nonexistent/font.ttf"
	_, err := NewModel(s, utils.NewPRNGService(1))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewSketchInvalidSettings(t *testing.T) {
	s := testSettings(t)
	s.Physics.Mass = 0
	_, err := NewSketch(s, nil, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNewSketchLogsStart(t *testing.T) {
	var logs bytes.Buffer
	_, err := NewSketch(testSettings(t), log.New(&logs), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "sketch ready")
}

func TestSketchReproducible(t *testing.T) {
	s := testSettings(t)
	a, err := NewSketch(s, nil, &bytes.Buffer{})
	require.NoError(t, err)
	b, err := NewSketch(s, nil, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, a.Model.Segments, b.Model.Segments)
	for range 10 {
		a.Update(1.0 / 60)
		b.Update(1.0 / 60)
	}
	assert.Equal(t, a.Model.Body.Velocity, b.Model.Body.Velocity)
	assert.Equal(t, *a.Model.CutLine, *b.Model.CutLine)
}

func TestSketchUpdate(t *testing.T) {
	sk, err := NewSketch(testSettings(t), nil, &bytes.Buffer{})
	require.NoError(t, err)
	before := *sk.Model.CutLine

	sk.Update(0.5)

	assert.InDelta(t, 0.5, sk.Model.Time, 1e-12)
	assert.Equal(t, f32.Vec2{0, 0}, sk.Model.Body.Acceleration)
	// начальный дрейф (1, 0) плюс порыв не больше 5/10 по каждой оси
	v := sk.Model.Body.Velocity
	assert.InDelta(t, 1, v[0], 0.5+1e-6)
	assert.InDelta(t, 0, v[1], 0.5+1e-6)
	assert.NotEqual(t, before, *sk.Model.CutLine)
}

func TestSketchDrawCapturesFrames(t *testing.T) {
	s := testSettings(t)
	var out bytes.Buffer
	sk, err := NewSketch(s, nil, &out)
	require.NoError(t, err)

	canvas := render.NewRasterCanvas(config.ScreenWidth, config.ScreenHeight)
	for frame := 0; frame < 6; frame++ {
		sk.Update(1.0 / 60)
		require.NoError(t, sk.Draw(canvas))
	}

	assert.Equal(t, 6, sk.Model.Frame)
	for frame := 0; frame <= 2; frame++ {
		assert.FileExists(t, capture.FramePath(s.Capture.ProjectPath, s.Capture.Dir, frame))
	}
	assert.NoFileExists(t, capture.FramePath(s.Capture.ProjectPath, s.Capture.Dir, 3))
	assert.Equal(t, config.CompletionMessage+"\n", out.String())
}

func TestSketchHatchesOnce(t *testing.T) {
	s := testSettings(t)
	sk, err := NewSketch(s, nil, &bytes.Buffer{})
	require.NoError(t, err)

	segs := sk.Model.Segments
	hatched := sk.Model.Hatched
	wantSegs := slices.Clone(segs)
	wantCmds := slices.Clone(hatched.Cmds)
	wantCoords := slices.Clone(hatched.Coords)
	require.NotEmpty(t, segs)

	// захватываем кадры 0..2, пропуск 3, завершение с 4
	canvas := render.NewRasterCanvas(64, 64)
	for range s.Capture.LastFrame + 6 {
		sk.Update(1.0 / 60)
		require.NoError(t, sk.Draw(canvas))
	}

	assert.Same(t, hatched, sk.Model.Hatched)
	assert.Same(t, &segs[0], &sk.Model.Segments[0])
	assert.Len(t, sk.Model.Segments, len(segs))
	assert.Equal(t, wantSegs, sk.Model.Segments)
	assert.Equal(t, wantCmds, sk.Model.Hatched.Cmds)
	assert.Equal(t, wantCoords, sk.Model.Hatched.Coords)
}

func TestSketchDrawWithoutProjectPath(t *testing.T) {
	s := testSettings(t)
	s.Capture.ProjectPath = ""
	sk, err := NewSketch(s, nil, &bytes.Buffer{})
	require.NoError(t, err)

	err = sk.Draw(render.NewRasterCanvas(8, 8))
	assert.ErrorIs(t, err, capture.ErrNoProjectPath)
}

func TestSketchPreviewDoesNotCount(t *testing.T) {
	sk, err := NewSketch(testSettings(t), nil, &bytes.Buffer{})
	require.NoError(t, err)

	sk.Preview(render.NewRasterCanvas(config.ScreenWidth, config.ScreenHeight))
	assert.Equal(t, 0, sk.Model.Frame)
}
