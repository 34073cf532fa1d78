package scene

// Entry reports a section crossing the visibility threshold.
type Entry struct {
	Index        int
	Intersecting bool
}

// Selector turns section visibility into the active theme.
type Selector struct {
	anim *Animation
}

func NewSelector(anim *Animation) *Selector {
	return &Selector{anim: anim}
}

// Observe handles a batch of entries in order, so the last intersecting
// section wins.
func (s *Selector) Observe(entries []Entry) {
	for _, e := range entries {
		if e.Intersecting {
			s.Enter(e.Index)
		}
	}
}

// Enter makes section i the active theme. Indices without a theme are
// ignored and report false.
func (s *Selector) Enter(i int) bool {
	th, err := s.anim.Themes.At(i)
	if err != nil {
		return false
	}
	s.anim.Active = i
	s.anim.SetTargetTheme(th)
	return true
}
