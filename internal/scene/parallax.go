package scene

import "github.com/iburimskiy/heart-particles/internal/config"

// Parallax tilts the field toward the pointer.
type Parallax struct {
	field  *Field
	factor float64
}

func NewParallax(field *Field) *Parallax {
	return &Parallax{field: field, factor: config.ParallaxFactor}
}

// Move sets the X and Y rotation from the pointer's screen position. The Y
// value replaces any spin the render loop accumulated so far.
func (p *Parallax) Move(x, y float64) {
	p.field.Rotation[0] = y * p.factor
	p.field.Rotation[1] = x * p.factor
}
