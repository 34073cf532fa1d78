package celebrate

import (
	"math/rand/v2"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/heart-particles/internal/config"
)

// Piece is one falling glyph. Positions are in viewport percent (vw, vh),
// sizes in rem.
type Piece struct {
	Glyph   int
	Left    float64
	Top     float64
	SizeRem float64
	DriftX  float64
	Spin    float64 // degrees

	age  time.Duration
	fall *gween.Tween
	t    float64
}

// Transform returns the current offset from the starting spot, rotation in
// degrees and opacity.
func (p *Piece) Transform() (dx, dy, rotation, alpha float64) {
	return p.DriftX * p.t, 110 * p.t, p.Spin * p.t, 1 - p.t
}

func (p *Piece) Age() time.Duration { return p.age }

func (p *Piece) update(dt time.Duration) {
	p.age += dt
	if p.age < config.ConfettiDelay {
		return
	}
	step := dt
	if p.fall == nil {
		p.fall = gween.New(0, 1, float32(config.ConfettiFall.Seconds()), ease.InQuad)
		step = p.age - config.ConfettiDelay
	}
	v, done := p.fall.Update(float32(step.Seconds()))
	p.t = float64(v)
	if done {
		p.t = 1
	}
}

type Confetti struct {
	Pieces []*Piece
	glyphs int
	random func() float64
}

// NewConfetti picks among glyphs kinds of glyph. A nil rng uses the global
// source.
func NewConfetti(glyphs int, rng *rand.Rand) *Confetti {
	c := &Confetti{glyphs: glyphs, random: rand.Float64}
	if rng != nil {
		c.random = rng.Float64
	}
	return c
}

// Burst drops a handful of pieces from just above the top edge.
func (c *Confetti) Burst() {
	for i := 0; i < config.ConfettiPerBurst; i++ {
		c.Pieces = append(c.Pieces, &Piece{
			Glyph:   min(int(c.random()*float64(c.glyphs)), c.glyphs-1),
			Left:    c.random() * 100,
			Top:     -10,
			SizeRem: c.random()*2 + 1,
			DriftX:  c.random()*2*config.ConfettiMaxDriftX - config.ConfettiMaxDriftX,
			Spin:    c.random() * 360,
		})
	}
}

// Update ages every piece and drops the ones past their lifetime.
func (c *Confetti) Update(dt time.Duration) {
	kept := c.Pieces[:0]
	for _, p := range c.Pieces {
		p.update(dt)
		if p.age < config.ConfettiLifetime {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(c.Pieces); i++ {
		c.Pieces[i] = nil
	}
	c.Pieces = kept
}

// Celebration is the overlay shown after "yes", with its confetti.
type Celebration struct {
	Active   bool
	Confetti *Confetti
	sched    Scheduler
}

func NewCelebration(confetti *Confetti) *Celebration {
	return &Celebration{Confetti: confetti}
}

// Start shows the overlay and queues the confetti bursts.
func (c *Celebration) Start() {
	c.Active = true
	for i := 0; i < config.ConfettiBursts; i++ {
		c.sched.After(time.Duration(i)*config.ConfettiInterval, c.Confetti.Burst)
	}
}

func (c *Celebration) Update(dt time.Duration) {
	c.Confetti.Update(dt)
	c.sched.Advance(dt)
}
