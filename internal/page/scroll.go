package page

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/heart-particles/internal/config"
)

// Scroller eases the page offset toward where the user asked to scroll.
type Scroller struct {
	sections int
	height   float64
	offset   float64
	target   float64
	tween    *gween.Tween
}

func NewScroller(sections int, height float64) *Scroller {
	return &Scroller{sections: sections, height: height}
}

func (s *Scroller) Offset() float64 { return s.offset }
func (s *Scroller) Target() float64 { return s.target }
func (s *Scroller) Height() float64 { return s.height }

func (s *Scroller) maxOffset() float64 {
	return max(0, float64(s.sections-1)*s.height)
}

// ScrollBy moves the target by dy pixels and restarts the ease from the
// current offset.
func (s *Scroller) ScrollBy(dy float64) {
	s.ScrollTo(s.target + dy)
}

func (s *Scroller) ScrollTo(y float64) {
	s.target = min(max(y, 0), s.maxOffset())
	if s.target == s.offset {
		s.tween = nil
		return
	}
	s.tween = gween.New(float32(s.offset), float32(s.target), config.ScrollEaseDuration, ease.OutCubic)
}

// Jump moves immediately, as a touch drag does.
func (s *Scroller) Jump(dy float64) {
	s.offset = min(max(s.offset+dy, 0), s.maxOffset())
	s.target = s.offset
	s.tween = nil
}

// Update advances the ease by dt seconds.
func (s *Scroller) Update(dt float64) {
	if s.tween == nil {
		return
	}
	v, done := s.tween.Update(float32(dt))
	s.offset = float64(v)
	if done {
		s.offset = s.target
		s.tween = nil
	}
}

// Resize keeps the same relative position in the page for a new viewport
// height.
func (s *Scroller) Resize(height float64) {
	if height <= 0 || height == s.height {
		return
	}
	if s.height > 0 {
		k := height / s.height
		s.offset *= k
		s.target *= k
	}
	s.height = height
	s.tween = nil
	s.offset = min(max(s.offset, 0), s.maxOffset())
	s.target = s.offset
}
