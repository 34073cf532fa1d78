package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/heart-particles/internal/config"
)

// Target is the end state the live material eases toward.
type Target struct {
	Color colorful.Color
	Size  float64
	Drift float64
}

// Animation is the state shared between the render loop, the scroll theme
// selector and pointer parallax. The selector writes Target and Active, the
// loop writes the field's material and position, parallax writes the
// field's X and Y rotation.
type Animation struct {
	Themes *Table
	Field  *Field
	Target Target
	Active int
}

func NewAnimation(themes *Table, field *Field) *Animation {
	intro := themes.MustAt(0)
	return &Animation{
		Themes: themes,
		Field:  field,
		Target: Target{
			Color: intro.Color,
			Size:  intro.Size,
			Drift: config.InitialDrift,
		},
	}
}

// SetTargetTheme points color, size and drift at th. Color and size are
// reached gradually by the render loop; the texture swaps immediately.
func (a *Animation) SetTargetTheme(th Theme) {
	a.Target = Target{Color: th.Color, Size: th.Size, Drift: th.Drift}
	a.Field.Material.Texture = th.Texture
}

func (a *Animation) ActiveTheme() Theme {
	return a.Themes.MustAt(a.Active)
}
