// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 720
	ScreenHeight = 1280
	WindowTitle  = "Unstable"
	MaxDeltaTime = 0.06

	Message  = "Unstable"
	FontSize = 150.0

	HatchInterval  = 1.0
	HatchTolerance = 0.1

	BodyMass     = 10.0
	WindStrength = 5.0 // ветер в диапазоне [-5, 5] по каждой оси

	JitterScale = 10.0 // длина штриха = JitterScale / noise
	MaxJitter   = 60.0
	NoiseAlpha  = 2.0
	NoiseBeta   = 2.0
	NoiseOctave = 3
	NoiseRate   = 0.7  // скорость по времени
	NoiseStep   = 0.05 // шаг по индексу точки

	DotPhaseStep = 0.05
	DotPulseRate = 8.6
	DotMinRadius = 2.0
	DotMaxRadius = 6.0

	HatchStrokeWidth = 1.0
	CutLineWidth     = 3.5

	LastCapturedFrame = 450
	FramesDir         = "frames"
	CompletionMessage = "end!!"
)

// Colours are non-premultiplied, alpha included.
var (
	BackgroundColor = color.NRGBA{13, 13, 13, 200}
	HatchColor      = color.NRGBA{242, 5, 25, 25}
	DotColor        = color.NRGBA{242, 159, 5, 95}
	CutLineColor    = color.NRGBA{13, 13, 13, 200}

	// InitialDrift is the acceleration the message starts with before the
	// first wind gust.
	InitialDrift = [2]float32{1, 0}
)
