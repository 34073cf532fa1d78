package scene

import (
	"errors"
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrThemeIndex = errors.New("theme index out of range")

// Theme bundles the look of the particle field for one page section.
type Theme struct {
	Name     string
	Color    colorful.Color
	Texture  image.Image
	Size     float64
	Drift    float64 // vertical drift speed
	Rotation float64 // radians per frame about the vertical axis
}

// Table is the fixed, ordered list of themes: intro first, then one per
// scrolled section.
type Table struct {
	themes []Theme
}

type themeSpec struct {
	name     string
	color    string
	glyph    string
	size     float64
	drift    float64
	rotation float64
}

type glyphSpec struct {
	glyph string
	fill  string
}

var glyphs = map[string]glyphSpec{
	"heart": {"♥", "#ff69b4"},
	"star":  {"✦", "#ffd700"},
	"cloud": {"☁", "#ffffff"},
	"orb":   {"•", "#ffae42"},
}

var themeSpecs = [...]themeSpec{
	{"intro", "#ffaaaa", "heart", 0.2, 0.2, 0.0005},
	{"dawn", "#ffd700", "star", 0.15, 0.02, 0.0002},
	{"clouds", "#e0ffff", "cloud", 0.3, -0.05, 0.0001},
	{"memories", "#ffae42", "orb", 0.1, 0, 0.001},
	{"proposal", "#ff0000", "heart", 0.3, 0.5, 0.002},
}

// NewTable renders the four glyph textures once and builds the five
// themes from them. The intro and proposal themes share the heart.
func NewTable(r *GlyphRenderer) (*Table, error) {
	textures := make(map[string]image.Image, len(glyphs))
	for name, g := range glyphs {
		fill, err := colorful.Hex(g.fill)
		if err != nil {
			return nil, fmt.Errorf("glyph %s: %w", name, err)
		}
		textures[name] = r.Render(g.glyph, fill)
	}

	t := &Table{themes: make([]Theme, 0, len(themeSpecs))}
	for _, s := range themeSpecs {
		c, err := colorful.Hex(s.color)
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", s.name, err)
		}
		t.themes = append(t.themes, Theme{
			Name:     s.name,
			Color:    c,
			Texture:  textures[s.glyph],
			Size:     s.size,
			Drift:    s.drift,
			Rotation: s.rotation,
		})
	}
	return t, nil
}

func (t *Table) Len() int { return len(t.themes) }

// At returns the theme at index i.
func (t *Table) At(i int) (Theme, error) {
	if i < 0 || i >= len(t.themes) {
		return Theme{}, fmt.Errorf("%w: %d", ErrThemeIndex, i)
	}
	return t.themes[i], nil
}

// MustAt is At for indices known to be valid.
func (t *Table) MustAt(i int) Theme {
	th, err := t.At(i)
	if err != nil {
		panic(err)
	}
	return th
}
