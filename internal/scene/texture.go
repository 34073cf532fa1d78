package scene

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/heart-particles/internal/config"
)

// GlyphRenderer paints single glyphs onto small square bitmaps used as
// particle sprites.
type GlyphRenderer struct {
	font *truetype.Font
	face font.Face
	size int
}

func NewGlyphRenderer() (*GlyphRenderer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse glyph font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    config.GlyphFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &GlyphRenderer{font: f, face: face, size: config.TextureSize}, nil
}

// Render draws glyph centered on a transparent TextureSize square.
// Glyphs the font has no outline for get a stand-in shape of the same color.
func (r *GlyphRenderer) Render(glyph string, fill color.Color) image.Image {
	dc := gg.NewContext(r.size, r.size)
	dc.SetColor(fill)
	c := float64(r.size) / 2

	if r.covers(glyph) {
		dc.SetFontFace(r.face)
		dc.DrawStringAnchored(glyph, c, c, 0.5, 0.5)
		return dc.Image()
	}

	switch glyph {
	case "✦":
		drawSparkle(dc, c, c, c*0.7)
	case "☁":
		drawCloud(dc, c, c, c*0.6)
	default:
		dc.DrawCircle(c, c, c*0.35)
		dc.Fill()
	}
	return dc.Image()
}

func (r *GlyphRenderer) covers(glyph string) bool {
	if glyph == "" {
		return false
	}
	for _, ch := range glyph {
		if r.font.Index(ch) == 0 {
			return false
		}
	}
	return true
}

func drawSparkle(dc *gg.Context, cx, cy, radius float64) {
	inner := radius * 0.28
	for i := 0; i < 8; i++ {
		a := float64(i)*math.Pi/4 - math.Pi/2
		rr := radius
		if i%2 == 1 {
			rr = inner
		}
		x, y := cx+math.Cos(a)*rr, cy+math.Sin(a)*rr
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.Fill()
}

func drawCloud(dc *gg.Context, cx, cy, w float64) {
	dc.DrawCircle(cx-w*0.45, cy+w*0.1, w*0.35)
	dc.DrawCircle(cx, cy-w*0.15, w*0.5)
	dc.DrawCircle(cx+w*0.5, cy+w*0.1, w*0.35)
	dc.DrawRoundedRectangle(cx-w*0.8, cy+w*0.05, w*1.6, w*0.4, w*0.2)
	dc.Fill()
}
