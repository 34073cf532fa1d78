package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/heart-particles/internal/config"
)

type Camera struct {
	Fov  float64 // vertical, degrees
	Near float64
	Far  float64
	Z    float64
}

func DefaultCamera() Camera {
	return Camera{
		Fov:  config.CameraFov,
		Near: config.CameraNear,
		Far:  config.CameraFar,
		Z:    config.CameraZ,
	}
}

// Sprite is a particle projected to screen pixels. Size is the side length.
type Sprite struct {
	X, Y float64
	Size float64
}

func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(mgl64.Vec3{0, 0, c.Z}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
}

func (c Camera) Projection(width, height int) mgl64.Mat4 {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return mgl64.Perspective(mgl64.DegToRad(c.Fov), aspect, c.Near, c.Far)
}

// Project appends the on-screen sprites of f to dst. Point size shrinks with
// depth the way attenuated GL points do: size * (height/2) / depth.
func (c Camera) Project(f *Field, width, height int, dst []Sprite) []Sprite {
	mv := c.View().Mul4(f.Model())
	proj := c.Projection(width, height)
	w, h := float64(width), float64(height)

	for i := 0; i < f.Count(); i++ {
		eye := mv.Mul4x1(f.Point(i).Vec4(1))
		depth := -eye.Z()
		if depth <= c.Near || depth >= c.Far {
			continue
		}
		clip := proj.Mul4x1(eye)
		ndc := clip.Vec3().Mul(1 / clip.W())
		size := f.Material.Size * (h / 2) / depth
		x := (ndc.X() + 1) / 2 * w
		y := (1 - ndc.Y()) / 2 * h
		if x+size < 0 || x-size > w || y+size < 0 || y-size > h {
			continue
		}
		dst = append(dst, Sprite{X: x, Y: y, Size: size})
	}
	return dst
}
