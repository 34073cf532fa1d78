package scene

import (
	"math"
	"time"

	"github.com/iburimskiy/heart-particles/internal/config"
)

// Loop advances the animation once per displayed frame. All rates are per
// frame, so the motion speed follows the refresh rate.
type Loop struct {
	anim    *Animation
	now     func() time.Time
	start   time.Time
	started bool
	frames  uint64
}

func NewLoop(anim *Animation) *Loop {
	return &Loop{anim: anim, now: time.Now}
}

// Tick runs one frame using the time since the first Tick.
func (l *Loop) Tick() {
	now := l.now()
	if !l.started {
		l.start = now
		l.started = true
	}
	l.Step(now.Sub(l.start).Seconds())
}

// Step runs one frame at the given elapsed time in seconds. Color and size
// move a fixed fraction toward the target, rotation and vertical drift
// accumulate, and the clouds sway overwrites the horizontal position.
func (l *Loop) Step(elapsed float64) {
	a := l.anim
	m := &a.Field.Material

	m.Color = m.Color.BlendRgb(a.Target.Color, config.LerpFactor)
	m.Size += (a.Target.Size - m.Size) * config.LerpFactor

	a.Field.Rotation[1] += a.ActiveTheme().Rotation
	a.Field.Position[1] += math.Sin(elapsed) * config.DriftScale * a.Target.Drift

	if a.Active == config.SwayTheme {
		a.Field.Position[0] = math.Sin(elapsed*config.SwayFrequency) * config.SwayAmplitude
	}
	l.frames++
}

func (l *Loop) Frames() uint64 { return l.frames }
