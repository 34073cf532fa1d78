package celebrate

import "math/rand/v2"

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Evader is a button that jumps to a random spot in the window whenever the
// pointer reaches it. It scrolls with the page until the first jump, then
// stays put on screen.
type Evader struct {
	W, H  float64
	X, Y  float64 // screen position, valid once Fixed
	Fixed bool

	random       func() float64
	inside       bool
	lastX, lastY float64
}

// NewEvader creates a w by h button. A nil rng uses the global source.
func NewEvader(w, h float64, rng *rand.Rand) *Evader {
	e := &Evader{W: w, H: h, random: rand.Float64}
	if rng != nil {
		e.random = rng.Float64
	}
	return e
}

// Bounds returns the on-screen rectangle; (x, y) is where the page places
// the button before it first moves.
func (e *Evader) Bounds(x, y float64) Rect {
	if e.Fixed {
		return Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
	}
	return Rect{X: x, Y: y, W: e.W, H: e.H}
}

// Dodge moves the button anywhere it still fits inside the view.
func (e *Evader) Dodge(viewW, viewH float64) {
	e.X = e.random() * max(0, viewW-e.W)
	e.Y = e.random() * max(0, viewH-e.H)
	e.Fixed = true
}

// Pointer reacts to the cursor at (x, y) over bounds r, dodging when the
// cursor enters or moves inside it. It reports whether the button moved.
func (e *Evader) Pointer(x, y float64, r Rect, viewW, viewH float64) bool {
	inside := r.Contains(x, y)
	moved := x != e.lastX || y != e.lastY
	e.lastX, e.lastY = x, y
	hit := inside && (!e.inside || moved)
	e.inside = inside
	if hit {
		e.Dodge(viewW, viewH)
	}
	return hit
}

// Touch dodges on a touch start inside r.
func (e *Evader) Touch(x, y float64, r Rect, viewW, viewH float64) bool {
	if !r.Contains(x, y) {
		return false
	}
	e.Dodge(viewW, viewH)
	return true
}
