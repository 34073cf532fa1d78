package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/heart-particles/internal/scene"
)

func TestVisibleRatio(t *testing.T) {
	const h = 600.0
	assert.Equal(t, 1.0, VisibleRatio(0, 0, h))
	assert.Equal(t, 0.0, VisibleRatio(1, 0, h))
	assert.Equal(t, 0.5, VisibleRatio(0, 300, h))
	assert.Equal(t, 0.5, VisibleRatio(1, 300, h))
	assert.InDelta(t, 0.25, VisibleRatio(2, 750, h), 1e-12)
	assert.Equal(t, 0.0, VisibleRatio(0, 0, 0))
}

func TestObserver_initialThenChanges(t *testing.T) {
	const h = 600.0
	o := NewObserver(5)

	entries := o.Check(0, h)
	require.Len(t, entries, 5)
	assert.Equal(t, scene.Entry{Index: 0, Intersecting: true}, entries[0])
	for _, e := range entries[1:] {
		assert.False(t, e.Intersecting)
	}

	assert.Empty(t, o.Check(10, h), "below the threshold nothing fires")

	entries = o.Check(1200, h)
	assert.Equal(t, []scene.Entry{
		{Index: 0, Intersecting: false},
		{Index: 2, Intersecting: true},
	}, entries)

	// halfway between two sections both count; order follows the page
	entries = o.Check(1500, h)
	assert.Equal(t, []scene.Entry{{Index: 3, Intersecting: true}}, entries)

	entries = o.Check(700, h)
	assert.Equal(t, []scene.Entry{
		{Index: 1, Intersecting: true},
		{Index: 2, Intersecting: false},
		{Index: 3, Intersecting: false},
	}, entries)
}

func TestSections_revealAndFade(t *testing.T) {
	s := NewSections(3)
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.Visible(1))

	s.Reveal(1)
	s.Reveal(7)
	assert.True(t, s.Visible(1))
	assert.False(t, s.Visible(7))
	assert.Equal(t, 0.0, s.Alpha(1))

	s.Update(0.5)
	mid := s.Alpha(1)
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 1.0)
	assert.Equal(t, 0.0, s.Alpha(0))

	s.Reveal(1) // no restart
	s.Update(0.6)
	assert.Equal(t, 1.0, s.Alpha(1))
	assert.Equal(t, 0.0, s.Alpha(-1))
}

func TestScroller(t *testing.T) {
	s := NewScroller(5, 600)

	s.ScrollBy(-100)
	assert.Equal(t, 0.0, s.Target())

	s.ScrollBy(900)
	assert.Equal(t, 900.0, s.Target())
	s.Update(0.1)
	assert.Greater(t, s.Offset(), 0.0)
	assert.Less(t, s.Offset(), 900.0)
	s.Update(1)
	assert.Equal(t, 900.0, s.Offset())

	s.ScrollTo(1e6)
	assert.Equal(t, 2400.0, s.Target())

	s.Jump(-2000)
	assert.Equal(t, 0.0, s.Offset())
	assert.Equal(t, 0.0, s.Target())
	s.Jump(600)
	assert.Equal(t, 600.0, s.Offset())

	s.Resize(300)
	assert.Equal(t, 300.0, s.Height())
	assert.Equal(t, 300.0, s.Offset())
}
