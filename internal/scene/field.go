package scene

import (
	"image"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/heart-particles/internal/config"
)

// LiveMaterial is the single paint state shared by every particle.
type LiveMaterial struct {
	Color   colorful.Color
	Size    float64
	Texture image.Image
	Opacity float64
}

// Field is a static point cloud plus the transform and material the render
// loop animates.
type Field struct {
	// Positions holds x, y, z per particle.
	Positions []float32
	Material  LiveMaterial
	Rotation  mgl64.Vec3 // Euler angles, XYZ order
	Position  mgl64.Vec3
}

// NewField samples count points uniformly in a cube of side spread centered
// at the origin. A nil rng uses the global source.
func NewField(count int, spread float64, rng *rand.Rand, initial Theme) *Field {
	random := rand.Float64
	if rng != nil {
		random = rng.Float64
	}
	pos := make([]float32, count*3)
	for i := range pos {
		pos[i] = float32((random() - 0.5) * spread)
	}
	return &Field{
		Positions: pos,
		Material: LiveMaterial{
			Color:   initial.Color,
			Size:    initial.Size,
			Texture: initial.Texture,
			Opacity: config.MaterialOpacity,
		},
	}
}

func (f *Field) Count() int { return len(f.Positions) / 3 }

// Point returns particle i in local space.
func (f *Field) Point(i int) mgl64.Vec3 {
	return mgl64.Vec3{
		float64(f.Positions[i*3]),
		float64(f.Positions[i*3+1]),
		float64(f.Positions[i*3+2]),
	}
}

// Model returns the local-to-world transform: translation, then X, Y, Z
// rotations applied in that order.
func (f *Field) Model() mgl64.Mat4 {
	return mgl64.Translate3D(f.Position.X(), f.Position.Y(), f.Position.Z()).
		Mul4(mgl64.HomogRotate3DX(f.Rotation.X())).
		Mul4(mgl64.HomogRotate3DY(f.Rotation.Y())).
		Mul4(mgl64.HomogRotate3DZ(f.Rotation.Z()))
}
