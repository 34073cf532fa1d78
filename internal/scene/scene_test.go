package scene

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/heart-particles/internal/config"
)

const tolerance = 1e-9

func newTestAnimation(t *testing.T) *Animation {
	t.Helper()
	r, err := NewGlyphRenderer()
	require.NoError(t, err)
	themes, err := NewTable(r)
	require.NoError(t, err)
	field := NewField(config.ParticleCount, config.ParticleSpread, rand.New(rand.NewPCG(1, 2)), themes.MustAt(0))
	return NewAnimation(themes, field)
}

func hex(t *testing.T, s string) colorful.Color {
	t.Helper()
	c, err := colorful.Hex(s)
	require.NoError(t, err)
	return c
}

func assertColor(t *testing.T, want, got colorful.Color, delta float64) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, delta)
	assert.InDelta(t, want.G, got.G, delta)
	assert.InDelta(t, want.B, got.B, delta)
}

func TestGlyphRenderer_Render(t *testing.T) {
	r, err := NewGlyphRenderer()
	require.NoError(t, err)

	for _, glyph := range []string{"♥", "✦", "☁", "•", ""} {
		img := r.Render(glyph, color.White)
		b := img.Bounds()
		assert.Equal(t, config.TextureSize, b.Dx(), glyph)
		assert.Equal(t, config.TextureSize, b.Dy(), glyph)

		painted := false
		for y := b.Min.Y; y < b.Max.Y && !painted; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
					painted = true
					break
				}
			}
		}
		assert.True(t, painted, "glyph %q left the texture empty", glyph)
	}
}

func TestTable(t *testing.T) {
	anim := newTestAnimation(t)
	themes := anim.Themes
	require.Equal(t, 5, themes.Len())

	want := []struct {
		name     string
		color    string
		size     float64
		drift    float64
		rotation float64
	}{
		{"intro", "#ffaaaa", 0.2, 0.2, 0.0005},
		{"dawn", "#ffd700", 0.15, 0.02, 0.0002},
		{"clouds", "#e0ffff", 0.3, -0.05, 0.0001},
		{"memories", "#ffae42", 0.1, 0, 0.001},
		{"proposal", "#ff0000", 0.3, 0.5, 0.002},
	}
	for i, w := range want {
		th, err := themes.At(i)
		require.NoError(t, err)
		assert.Equal(t, w.name, th.Name)
		assertColor(t, hex(t, w.color), th.Color, tolerance)
		assert.Equal(t, w.size, th.Size)
		assert.Equal(t, w.drift, th.Drift)
		assert.Equal(t, w.rotation, th.Rotation)
		assert.NotNil(t, th.Texture)
	}

	assert.Same(t, themes.MustAt(0).Texture, themes.MustAt(4).Texture)
	assert.NotSame(t, themes.MustAt(0).Texture, themes.MustAt(1).Texture)

	_, err := themes.At(5)
	assert.ErrorIs(t, err, ErrThemeIndex)
	_, err = themes.At(-1)
	assert.ErrorIs(t, err, ErrThemeIndex)
	assert.Panics(t, func() { themes.MustAt(7) })
}

func TestNewField_bounds(t *testing.T) {
	anim := newTestAnimation(t)
	f := anim.Field

	require.Len(t, f.Positions, config.ParticleCount*3)
	assert.Equal(t, config.ParticleCount, f.Count())
	for _, v := range f.Positions {
		assert.GreaterOrEqual(t, v, float32(-10))
		assert.LessOrEqual(t, v, float32(10))
	}

	intro := anim.Themes.MustAt(0)
	assert.Equal(t, intro.Color, f.Material.Color)
	assert.Equal(t, intro.Size, f.Material.Size)
	assert.Same(t, intro.Texture, f.Material.Texture)
	assert.Equal(t, config.MaterialOpacity, f.Material.Opacity)
}

func TestNewField_globalSource(t *testing.T) {
	f := NewField(10, 20, nil, Theme{})
	assert.Len(t, f.Positions, 30)
}

func TestAnimation_initialTarget(t *testing.T) {
	anim := newTestAnimation(t)
	assert.Equal(t, 0, anim.Active)
	assert.Equal(t, config.InitialDrift, anim.Target.Drift)
	assert.Equal(t, 0.2, anim.Target.Size)
}

func TestLoop_colorConvergesGeometrically(t *testing.T) {
	anim := newTestAnimation(t)
	c0 := anim.Field.Material.Color
	target := hex(t, "#3366cc")
	anim.Target.Color = target

	loop := NewLoop(anim)
	for n := 1; n <= 200; n++ {
		loop.Step(0)
		k := math.Pow(1-config.LerpFactor, float64(n))
		want := colorful.Color{
			R: target.R - (target.R-c0.R)*k,
			G: target.G - (target.G-c0.G)*k,
			B: target.B - (target.B-c0.B)*k,
		}
		assertColor(t, want, anim.Field.Material.Color, 1e-9)
	}
	assertColor(t, target, anim.Field.Material.Color, 1e-4)
	assert.Equal(t, uint64(200), loop.Frames())
}

func TestLoop_sizeEasesTowardTarget(t *testing.T) {
	anim := newTestAnimation(t)
	anim.Target.Size = 1.2
	loop := NewLoop(anim)

	loop.Step(0)
	assert.InDelta(t, 0.2+(1.2-0.2)*0.05, anim.Field.Material.Size, tolerance)
}

func TestLoop_driftAccumulates(t *testing.T) {
	anim := newTestAnimation(t)
	loop := NewLoop(anim)

	anim.Field.Position[1] = 1
	loop.Step(math.Pi / 2)
	loop.Step(math.Pi / 2)
	want := 1 + 2*config.DriftScale*config.InitialDrift
	assert.InDelta(t, want, anim.Field.Position.Y(), tolerance)
	assert.Equal(t, 0.0, anim.Field.Position.X())
}

func TestLoop_cloudsSwayOverwritesX(t *testing.T) {
	anim := newTestAnimation(t)
	sel := NewSelector(anim)
	require.True(t, sel.Enter(2))
	loop := NewLoop(anim)

	for _, elapsed := range []float64{0.1, 1.7, 3.3, 10} {
		anim.Field.Position[0] = 42
		loop.Step(elapsed)
		assert.Equal(t, math.Sin(elapsed*0.5)*0.2, anim.Field.Position.X())
	}

	require.True(t, sel.Enter(3))
	anim.Field.Position[0] = 42
	loop.Step(1)
	assert.Equal(t, 42.0, anim.Field.Position.X())
}

func TestLoop_TickUsesElapsedSinceFirstFrame(t *testing.T) {
	anim := newTestAnimation(t)
	require.True(t, NewSelector(anim).Enter(2))
	loop := NewLoop(anim)

	start := time.Date(2026, 2, 14, 20, 0, 0, 0, time.UTC)
	now := start
	loop.now = func() time.Time { return now }

	loop.Tick()
	assert.Equal(t, 0.0, anim.Field.Position.X())

	now = start.Add(3 * time.Second)
	loop.Tick()
	assert.InDelta(t, math.Sin(1.5)*0.2, anim.Field.Position.X(), tolerance)
}

func TestSelector(t *testing.T) {
	anim := newTestAnimation(t)
	sel := NewSelector(anim)
	clouds := anim.Themes.MustAt(2)

	sel.Observe([]Entry{{Index: 2, Intersecting: true}})
	assert.Equal(t, 2, anim.Active)
	assert.Equal(t, Target{Color: clouds.Color, Size: clouds.Size, Drift: clouds.Drift}, anim.Target)
	assert.Same(t, clouds.Texture, anim.Field.Material.Texture)

	// color and size are left for the loop
	assert.NotEqual(t, clouds.Size, anim.Field.Material.Size)

	before := *anim
	sel.Observe([]Entry{{Index: 5, Intersecting: true}, {Index: -1, Intersecting: true}})
	assert.Equal(t, before.Active, anim.Active)
	assert.Equal(t, before.Target, anim.Target)
	assert.False(t, sel.Enter(5))

	sel.Observe([]Entry{{Index: 4, Intersecting: false}})
	assert.Equal(t, 2, anim.Active)

	// scrolling back up works too; the last intersecting entry wins
	sel.Observe([]Entry{{Index: 0, Intersecting: true}, {Index: 1, Intersecting: true}})
	assert.Equal(t, 1, anim.Active)
}

func TestParallax_setsRotation(t *testing.T) {
	anim := newTestAnimation(t)
	anim.Field.Rotation[1] = 3
	anim.Field.Rotation[2] = 0.5

	NewParallax(anim.Field).Move(400, 200)
	assert.InDelta(t, 200*config.ParallaxFactor, anim.Field.Rotation.X(), tolerance)
	assert.InDelta(t, 400*config.ParallaxFactor, anim.Field.Rotation.Y(), tolerance)
	assert.Equal(t, 0.5, anim.Field.Rotation.Z())
}

func TestScenario_scrollToMemories(t *testing.T) {
	anim := newTestAnimation(t)
	sel := NewSelector(anim)
	loop := NewLoop(anim)

	sel.Observe([]Entry{{Index: 0, Intersecting: true}})
	sel.Observe([]Entry{{Index: 0, Intersecting: false}, {Index: 3, Intersecting: true}})
	require.Equal(t, 3, anim.Active)

	for i := 0; i < 500; i++ {
		loop.Step(float64(i) / 60)
	}

	memories := anim.Themes.MustAt(3)
	assertColor(t, memories.Color, anim.Field.Material.Color, 1e-6)
	assert.InDelta(t, memories.Size, anim.Field.Material.Size, 1e-6)
	assert.InDelta(t,
		math.Mod(500*memories.Rotation, 2*math.Pi),
		math.Mod(anim.Field.Rotation.Y(), 2*math.Pi),
		1e-9)
	// memories has no drift
	assert.Equal(t, 0.0, anim.Field.Position.Y())
}

func TestCamera_Project(t *testing.T) {
	f := &Field{
		Positions: []float32{0, 0, 0, 0, 0, 10, 100, 0, 0},
		Material:  LiveMaterial{Size: 0.2},
	}
	cam := DefaultCamera()

	sprites := cam.Project(f, 800, 600, nil)
	require.Len(t, sprites, 1, "points behind the camera or off screen are dropped")
	assert.InDelta(t, 400, sprites[0].X, 1e-6)
	assert.InDelta(t, 300, sprites[0].Y, 1e-6)
	assert.InDelta(t, 0.2*300/5, sprites[0].Size, 1e-6)

	// lifting the field moves the sprite up the screen
	f.Position[1] = 1
	sprites = cam.Project(f, 800, 600, sprites[:0])
	require.Len(t, sprites, 1)
	assert.Less(t, sprites[0].Y, 300.0)
}
