// Package page models the vertically scrolling document the particle field
// sits behind: full-height sections, their visibility and the scroll
// position.
package page

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/heart-particles/internal/config"
	"github.com/iburimskiy/heart-particles/internal/scene"
)

// VisibleRatio is the fraction of section i inside a viewport of height h
// scrolled to offset. Every section is one viewport tall.
func VisibleRatio(i int, offset, h float64) float64 {
	if h <= 0 {
		return 0
	}
	top := float64(i) * h
	bottom := top + h
	lo := max(top, offset)
	hi := min(bottom, offset+h)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / h
}

// Observer reports sections crossing the visibility threshold.
type Observer struct {
	threshold    float64
	intersecting []bool
	primed       bool
}

func NewObserver(sections int) *Observer {
	return &Observer{
		threshold:    config.VisibilityThreshold,
		intersecting: make([]bool, sections),
	}
}

// Check compares every section against the threshold. The first call
// reports all sections; later calls report only changes. Entries come out
// in section order.
func (o *Observer) Check(offset, h float64) []scene.Entry {
	var entries []scene.Entry
	for i := range o.intersecting {
		now := VisibleRatio(i, offset, h) >= o.threshold
		if o.primed && now == o.intersecting[i] {
			continue
		}
		o.intersecting[i] = now
		entries = append(entries, scene.Entry{Index: i, Intersecting: now})
	}
	o.primed = true
	return entries
}

// Sections tracks which sections have been revealed and their fade-in.
type Sections struct {
	visible []bool
	alpha   []float64
	fades   []*gween.Tween
}

func NewSections(n int) *Sections {
	return &Sections{
		visible: make([]bool, n),
		alpha:   make([]float64, n),
		fades:   make([]*gween.Tween, n),
	}
}

func (s *Sections) Len() int { return len(s.visible) }

// Reveal marks section i visible and starts its fade-in. Revealing twice is
// a no-op; sections never hide again.
func (s *Sections) Reveal(i int) {
	if i < 0 || i >= len(s.visible) || s.visible[i] {
		return
	}
	s.visible[i] = true
	s.fades[i] = gween.New(0, 1, config.SectionFadeIn, ease.OutQuad)
}

func (s *Sections) Visible(i int) bool {
	return i >= 0 && i < len(s.visible) && s.visible[i]
}

// Alpha is the current opacity of section i.
func (s *Sections) Alpha(i int) float64 {
	if i < 0 || i >= len(s.alpha) {
		return 0
	}
	return s.alpha[i]
}

// Update advances fades by dt seconds.
func (s *Sections) Update(dt float64) {
	for i, tw := range s.fades {
		if tw == nil {
			continue
		}
		v, done := tw.Update(float32(dt))
		s.alpha[i] = clamp01(float64(v))
		if done {
			s.alpha[i] = 1
			s.fades[i] = nil
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
