// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings holds the tunable parameters of the sketch. Zero-valued fields in
// a settings file keep their defaults.
type Settings struct {
	Text     string  `toml:"text"`
	FontSize float64 `toml:"font_size"`
	FontPath string  `toml:"font_path"` // empty means the embedded Go Bold face

	Hatch   HatchSettings   `toml:"hatch"`
	Physics PhysicsSettings `toml:"physics"`
	Noise   NoiseSettings   `toml:"noise"`
	Capture CaptureSettings `toml:"capture"`

	Seed int64 `toml:"seed"` // 0: новый сид при каждом запуске
}

// HatchSettings configures the outline hatcher.
type HatchSettings struct {
	Interval  float64 `toml:"interval"`
	Angle     float64 `toml:"angle"`
	Tolerance float64 `toml:"tolerance"`
	EvenOdd   *bool   `toml:"even_odd"`
}

// PhysicsSettings configures the wind-driven body.
type PhysicsSettings struct {
	Mass         float32 `toml:"mass"`
	WindStrength float32 `toml:"wind_strength"`
}

// NoiseSettings configures the coherent jitter applied to hatch points.
type NoiseSettings struct {
	Scale     float64 `toml:"scale"`
	MaxLength float64 `toml:"max_length"`
	Rate      float64 `toml:"rate"`
	Step      float64 `toml:"step"`
}

// CaptureSettings configures frame capture to disk.
type CaptureSettings struct {
	ProjectPath string `toml:"project_path"`
	Dir         string `toml:"dir"`
	LastFrame   int    `toml:"last_frame"`
	Disabled    bool   `toml:"disabled"`
}

// Default returns the settings the sketch was designed with.
func Default() Settings {
	evenOdd := true
	return Settings{
		Text:     Message,
		FontSize: FontSize,
		Hatch: HatchSettings{
			Interval:  HatchInterval,
			Tolerance: HatchTolerance,
			EvenOdd:   &evenOdd,
		},
		Physics: PhysicsSettings{
			Mass:         BodyMass,
			WindStrength: WindStrength,
		},
		Noise: NoiseSettings{
			Scale:     JitterScale,
			MaxLength: MaxJitter,
			Rate:      NoiseRate,
			Step:      NoiseStep,
		},
		Capture: CaptureSettings{
			Dir:       FramesDir,
			LastFrame: LastCapturedFrame,
		},
	}
}

// Load reads a TOML settings file on top of Default. An empty path returns
// the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	var file Settings
	if err := toml.Unmarshal(data, &file); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	s.merge(file)

	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return s, nil
}

// merge copies every non-zero field of o into s.
func (s *Settings) merge(o Settings) {
	if o.Text != "" {
		s.Text = o.Text
	}
	if o.FontSize != 0 {
		s.FontSize = o.FontSize
	}
	if o.FontPath != "" {
		s.FontPath = o.FontPath
	}
	if o.Hatch.Interval != 0 {
		s.Hatch.Interval = o.Hatch.Interval
	}
	if o.Hatch.Angle != 0 {
		s.Hatch.Angle = o.Hatch.Angle
	}
	if o.Hatch.Tolerance != 0 {
		s.Hatch.Tolerance = o.Hatch.Tolerance
	}
	if o.Hatch.EvenOdd != nil {
		s.Hatch.EvenOdd = o.Hatch.EvenOdd
	}
	if o.Physics.Mass != 0 {
		s.Physics.Mass = o.Physics.Mass
	}
	if o.Physics.WindStrength != 0 {
		s.Physics.WindStrength = o.Physics.WindStrength
	}
	if o.Noise.Scale != 0 {
		s.Noise.Scale = o.Noise.Scale
	}
	if o.Noise.MaxLength != 0 {
		s.Noise.MaxLength = o.Noise.MaxLength
	}
	if o.Noise.Rate != 0 {
		s.Noise.Rate = o.Noise.Rate
	}
	if o.Noise.Step != 0 {
		s.Noise.Step = o.Noise.Step
	}
	if o.Capture.ProjectPath != "" {
		s.Capture.ProjectPath = o.Capture.ProjectPath
	}
	if o.Capture.Dir != "" {
		s.Capture.Dir = o.Capture.Dir
	}
	if o.Capture.LastFrame != 0 {
		s.Capture.LastFrame = o.Capture.LastFrame
	}
	if o.Capture.Disabled {
		s.Capture.Disabled = true
	}
	if o.Seed != 0 {
		s.Seed = o.Seed
	}
}

// Validate reports the first setting that would break the sketch.
func (s Settings) Validate() error {
	switch {
	case s.Text == "":
		return errors.New("text must not be empty")
	case s.FontSize <= 0:
		return fmt.Errorf("font_size must be positive, got %g", s.FontSize)
	case s.Hatch.Interval <= 0:
		return fmt.Errorf("hatch.interval must be positive, got %g", s.Hatch.Interval)
	case s.Hatch.Tolerance <= 0:
		return fmt.Errorf("hatch.tolerance must be positive, got %g", s.Hatch.Tolerance)
	case s.Physics.Mass <= 0:
		return fmt.Errorf("physics.mass must be positive, got %g", s.Physics.Mass)
	case s.Physics.WindStrength < 0:
		return fmt.Errorf("physics.wind_strength must not be negative, got %g", s.Physics.WindStrength)
	case s.Noise.MaxLength <= 0:
		return fmt.Errorf("noise.max_length must be positive, got %g", s.Noise.MaxLength)
	case s.Capture.LastFrame < 0:
		return fmt.Errorf("capture.last_frame must not be negative, got %d", s.Capture.LastFrame)
	}
	return nil
}
