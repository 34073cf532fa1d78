package game

import (
	"bytes"
	"fmt"
	"image"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/heart-particles/internal/celebrate"
	"github.com/iburimskiy/heart-particles/internal/config"
	"github.com/iburimskiy/heart-particles/internal/logging"
	"github.com/iburimskiy/heart-particles/internal/music"
	"github.com/iburimskiy/heart-particles/internal/page"
	"github.com/iburimskiy/heart-particles/internal/scene"
)

// confettiGlyphs are the pieces thrown when the answer is yes.
var confettiGlyphs = []struct {
	glyph string
	fill  string
}{
	{"♥", "#e0245e"},
	{"♥", "#ff69b4"},
	{"☺", "#ffcc4d"},
	{"♥", "#f4abba"},
	{"✿", "#be1931"},
}

type Options struct {
	Page   *config.Page
	Player music.Player
	Log    logging.Logger
	Width  int
	Height int
	Rand   *rand.Rand
}

type Game struct {
	log  logging.Logger
	page *config.Page

	// particles
	anim     *scene.Animation
	loop     *scene.Loop
	selector *scene.Selector
	parallax *scene.Parallax
	camera   scene.Camera
	sprites  []scene.Sprite

	// document
	observer *page.Observer
	sections *page.Sections
	scroller *page.Scroller

	// peripheral
	no       *celebrate.Evader
	party    *celebrate.Celebration
	autoplay *music.Autoplay

	confetti []image.Image
	images   map[image.Image]*ebiten.Image

	headingFace *text.GoTextFace
	bodyFace    *text.GoTextFace
	buttonFace  *text.GoTextFace
	bigFace     *text.GoTextFace

	width, height    int
	cursorX, cursorY int
	pointerSeen      bool
}

func New(opts Options) (*Game, error) {
	if opts.Log == nil {
		opts.Log = logging.Nop{}
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = config.WindowWidth, config.WindowHeight
	}

	glyphs, err := scene.NewGlyphRenderer()
	if err != nil {
		return nil, err
	}
	themes, err := scene.NewTable(glyphs)
	if err != nil {
		return nil, fmt.Errorf("build themes: %w", err)
	}
	field := scene.NewField(config.ParticleCount, config.ParticleSpread, opts.Rand, themes.MustAt(0))
	anim := scene.NewAnimation(themes, field)

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load text font: %w", err)
	}

	n := len(opts.Page.Sections)
	g := &Game{
		log:      opts.Log,
		page:     opts.Page,
		anim:     anim,
		loop:     scene.NewLoop(anim),
		selector: scene.NewSelector(anim),
		parallax: scene.NewParallax(field),
		camera:   scene.DefaultCamera(),
		observer: page.NewObserver(n),
		sections: page.NewSections(n),
		scroller: page.NewScroller(n, float64(opts.Height)),
		no:       celebrate.NewEvader(config.ButtonWidth, config.ButtonHeight, opts.Rand),
		party:    celebrate.NewCelebration(celebrate.NewConfetti(len(confettiGlyphs), opts.Rand)),
		autoplay: music.NewAutoplay(opts.Player, opts.Log),
		images:   map[image.Image]*ebiten.Image{},

		headingFace: &text.GoTextFace{Source: src, Size: 40},
		bodyFace:    &text.GoTextFace{Source: src, Size: 22},
		buttonFace:  &text.GoTextFace{Source: src, Size: 22},
		bigFace:     &text.GoTextFace{Source: src, Size: 48},

		width:  opts.Width,
		height: opts.Height,
	}
	for _, c := range confettiGlyphs {
		g.confetti = append(g.confetti, glyphs.Render(c.glyph, mustHex(c.fill)))
	}

	g.log.Debugf("page %q: %d sections, %d themes, %d particles", opts.Page.Title, n, themes.Len(), field.Count())
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	dt := 1.0 / float64(ebiten.TPS())

	g.updateScroll()
	g.scroller.Update(dt)

	entries := g.observer.Check(g.scroller.Offset(), float64(g.height))
	for _, e := range entries {
		if e.Intersecting {
			g.sections.Reveal(e.Index)
		}
	}
	g.selector.Observe(entries)
	g.sections.Update(dt)

	g.loop.Tick()

	g.updatePointer()
	g.updateButtons()
	g.party.Update(time.Duration(dt * float64(time.Second)))
	g.updateAutoplay()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
		g.scroller.Resize(float64(outsideHeight))
	}
	return g.width, g.height
}

func (g *Game) updateScroll() {
	h := float64(g.height)
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.scroller.ScrollBy(-wy * config.ScrollStep)
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.scroller.ScrollBy(config.ScrollStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.scroller.ScrollBy(-config.ScrollStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.scroller.ScrollBy(h)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.scroller.ScrollBy(-h)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.scroller.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.scroller.ScrollTo(float64(g.sections.Len()) * h)
	}

	for _, id := range ebiten.AppendTouchIDs(nil) {
		if inpututil.IsTouchJustReleased(id) || inpututil.TouchPressDuration(id) < 2 {
			continue
		}
		_, py := inpututil.TouchPositionInPreviousTick(id)
		_, y := ebiten.TouchPosition(id)
		g.scroller.Jump(float64(py - y))
		break
	}
}

func (g *Game) updatePointer() {
	x, y := ebiten.CursorPosition()
	if g.pointerSeen && x == g.cursorX && y == g.cursorY {
		return
	}
	g.cursorX, g.cursorY = x, y
	g.pointerSeen = true
	g.parallax.Move(float64(x), float64(y))
}

// proposalAnchor is where the buttons sit inside the last section, in
// screen space for the current scroll offset.
func (g *Game) proposalAnchor() (yes celebrate.Rect, noX, noY float64) {
	last := g.sections.Len() - 1
	top := float64(last)*float64(g.height) - g.scroller.Offset()
	cx := float64(g.width) / 2
	y := top + float64(g.height)*0.68
	yes = celebrate.Rect{
		X: cx - config.ButtonGap/2 - config.ButtonWidth,
		Y: y,
		W: config.ButtonWidth,
		H: config.ButtonHeight,
	}
	return yes, cx + config.ButtonGap/2, y
}

func (g *Game) updateButtons() {
	if !g.sections.Visible(g.sections.Len() - 1) {
		return
	}
	w, h := float64(g.width), float64(g.height)
	yes, noX, noY := g.proposalAnchor()

	cx, cy := float64(g.cursorX), float64(g.cursorY)
	g.no.Pointer(cx, cy, g.no.Bounds(noX, noY), w, h)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && yes.Contains(cx, cy) {
		g.yes()
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		tx, ty := float64(x), float64(y)
		if yes.Contains(tx, ty) {
			g.yes()
			continue
		}
		g.no.Touch(tx, ty, g.no.Bounds(noX, noY), w, h)
	}
}

func (g *Game) yes() {
	g.log.Infof("they said yes")
	g.party.Start()
}

func (g *Game) updateAutoplay() {
	if !g.autoplay.Listening() {
		return
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.autoplay.Trigger("click")
	case len(inpututil.AppendJustPressedTouchIDs(nil)) > 0:
		g.autoplay.Trigger("touchstart")
	case len(inpututil.AppendJustPressedKeys(nil)) > 0:
		g.autoplay.Trigger("keydown")
	}
}

// gpuImage returns the GPU copy of img, uploading it on first use.
func (g *Game) gpuImage(img image.Image) *ebiten.Image {
	if e, ok := g.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	g.images[img] = e
	return e
}
