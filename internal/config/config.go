package config

import "time"

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "For You"

	// Particle field
	ParticleCount   = 1500
	ParticleSpread  = 20.0
	MaterialOpacity = 0.8
	LerpFactor      = 0.05
	InitialDrift    = 0.05
	DriftScale      = 0.001

	// Lateral sway, only while the clouds theme is active
	SwayTheme     = 2
	SwayFrequency = 0.5
	SwayAmplitude = 0.2

	ParallaxFactor = 0.00005

	// Camera
	CameraFov  = 75.0
	CameraNear = 0.1
	CameraFar  = 1000.0
	CameraZ    = 5.0

	// Glyph textures
	TextureSize   = 64
	GlyphFontSize = 48.0

	VisibilityThreshold = 0.5
	SectionFadeIn       = 1.0  // seconds
	ScrollEaseDuration  = 0.35 // seconds
	ScrollStep          = 120.0

	// Proposal buttons
	ButtonWidth  = 140
	ButtonHeight = 48
	ButtonGap    = 40

	// Celebration
	ConfettiBursts    = 5
	ConfettiPerBurst  = 50
	ConfettiInterval  = 300 * time.Millisecond
	ConfettiDelay     = 100 * time.Millisecond
	ConfettiFall      = 3 * time.Second
	ConfettiLifetime  = 3 * time.Second
	ConfettiRem       = 16.0
	ConfettiMaxDriftX = 10.0 // vw either side

	CursorRadius = 8.0

	MusicVolume = 0.5
)
