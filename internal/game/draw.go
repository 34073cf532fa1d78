package game

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/heart-particles/internal/celebrate"
	"github.com/iburimskiy/heart-particles/internal/config"
)

var (
	background   = color.NRGBA{R: 0x12, G: 0x06, B: 0x14, A: 0xff}
	textColor    = mustHex("#ffe4ec")
	yesColor     = mustHex("#ff4d7d")
	noColor      = mustHex("#8a7f8c")
	overlayColor = color.NRGBA{R: 0x2a, G: 0x05, B: 0x16, A: 0xd8}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.drawParticles(screen)
	g.drawSections(screen)
	g.drawButtons(screen)
	if g.party.Active {
		g.drawCelebration(screen)
	}
	g.drawCursor(screen)
}

// drawParticles draws every projected particle with the live material:
// its texture tinted by its color, additive, no depth test.
func (g *Game) drawParticles(screen *ebiten.Image) {
	m := g.anim.Field.Material
	if m.Texture == nil {
		return
	}
	tex := g.gpuImage(m.Texture)
	side := float64(tex.Bounds().Dx())

	g.sprites = g.camera.Project(g.anim.Field, g.width, g.height, g.sprites[:0])

	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendLighter
	op.Filter = ebiten.FilterLinear
	op.ColorScale.Scale(float32(m.Color.R), float32(m.Color.G), float32(m.Color.B), 1)
	op.ColorScale.ScaleAlpha(float32(m.Opacity))
	for _, s := range g.sprites {
		k := s.Size / side
		op.GeoM.Reset()
		op.GeoM.Scale(k, k)
		op.GeoM.Translate(s.X-s.Size/2, s.Y-s.Size/2)
		screen.DrawImage(tex, op)
	}
}

func (g *Game) drawSections(screen *ebiten.Image) {
	h := float64(g.height)
	cx := float64(g.width) / 2
	offset := g.scroller.Offset()

	for i, sec := range g.page.Sections {
		alpha := g.sections.Alpha(i)
		top := float64(i)*h - offset
		if alpha <= 0 || top >= h || top+h <= 0 {
			continue
		}
		// sections rise a little while fading in
		y := top + h*0.32 + (1-alpha)*30

		g.drawText(screen, sec.Heading, g.headingFace, cx, y, alpha, text.AlignStart)
		body := strings.TrimSpace(sec.Body)
		g.drawText(screen, body, g.bodyFace, cx, y+g.headingFace.Size*1.8, alpha*0.9, text.AlignStart)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y, alpha float64, valign text.Align) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = valign
	op.LineSpacing = face.Size * 1.5
	op.ColorScale.ScaleWithColor(rgba(textColor, 1))
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, face, op)
}

func (g *Game) drawButtons(screen *ebiten.Image) {
	last := g.sections.Len() - 1
	if !g.sections.Visible(last) {
		return
	}
	alpha := g.sections.Alpha(last)
	yes, noX, noY := g.proposalAnchor()
	no := g.no.Bounds(noX, noY)

	g.drawText(screen, g.page.Question, g.headingFace, float64(g.width)/2, yes.Y-g.headingFace.Size*1.6, alpha, text.AlignStart)
	g.drawButton(screen, yes, g.page.Yes, yesColor.BlendRgb(textColor, g.hover(yes)), alpha)

	// once it has run away the button stays visible wherever it landed
	noAlpha := alpha
	if g.no.Fixed {
		noAlpha = 1
	}
	g.drawButton(screen, no, g.page.No, noColor, noAlpha)
}

func (g *Game) hover(r celebrate.Rect) float64 {
	if r.Contains(float64(g.cursorX), float64(g.cursorY)) {
		return 0.2
	}
	return 0
}

func (g *Game) drawButton(screen *ebiten.Image, r celebrate.Rect, label string, fill colorful.Color, alpha float64) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(fill, alpha), true)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, rgba(textColor, alpha*0.8), true)
	g.drawText(screen, label, g.buttonFace, r.X+r.W/2, r.Y+r.H/2, alpha, text.AlignCenter)
}

func (g *Game) drawCelebration(screen *ebiten.Image) {
	w, h := float64(g.width), float64(g.height)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)
	g.drawText(screen, g.page.Celebration, g.bigFace, w/2, h/2, 1, text.AlignCenter)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	for _, p := range g.party.Confetti.Pieces {
		img := g.gpuImage(g.confetti[p.Glyph])
		side := float64(img.Bounds().Dx())
		dx, dy, rot, alpha := p.Transform()

		size := p.SizeRem * config.ConfettiRem
		x := (p.Left + dx) / 100 * w
		y := (p.Top + dy) / 100 * h

		op.GeoM.Reset()
		op.GeoM.Translate(-side/2, -side/2)
		op.GeoM.Scale(size/side, size/side)
		op.GeoM.Rotate(rot * math.Pi / 180)
		op.GeoM.Translate(x+size/2, y+size/2)
		op.ColorScale.Reset()
		op.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(img, op)
	}
}

// drawCursor replaces the hidden system cursor with a soft dot tinted like
// the particles.
func (g *Game) drawCursor(screen *ebiten.Image) {
	if !g.pointerSeen {
		return
	}
	x, y := float32(g.cursorX), float32(g.cursorY)
	c := g.anim.Field.Material.Color
	vector.DrawFilledCircle(screen, x, y, config.CursorRadius*1.8, rgba(c, 0.25), true)
	vector.DrawFilledCircle(screen, x, y, config.CursorRadius, rgba(c, 0.8), true)
}
