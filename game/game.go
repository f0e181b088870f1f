package game

import (
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"portalfx/page"
)

// Surface names the page attaches the animation to
const (
	HeroSurface = "hero"
	JoinSurface = "join"
)

// Game hosts the portal page in an ebiten window.
// Every Draw advances and renders each attached field exactly once.
type Game struct {
	config Config
	page   *page.Page
	text   *TextLayer

	fields   []*Field
	surfaces []*Surface // parallel to fields, nil for inert fields

	// Measured window; outsideW and outsideH are logical pixels
	outsideW float64
	outsideH float64
	dpr      float64

	// scaleFactor reports the monitor's device pixel ratio
	scaleFactor func() float64

	debug    DebugState
	profiler *Profiler
	stopped  atomic.Bool

	// FPS tracking
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64
	lastUpdateTime   time.Time
}

// NewGame creates a game for p, attaching a field to each named surface
func NewGame(config Config, p *page.Page, seed int64) *Game {
	g := &Game{
		config:         config,
		page:           p,
		scaleFactor:    monitorScale,
		fps:            60.0,
		lastUpdateTime: time.Now(),
	}

	for i, name := range []string{HeroSurface, JoinSurface} {
		f := Attach(p, name, config.DotCount, seed+int64(i))
		g.fields = append(g.fields, f)
		if f.Inert() {
			log.Printf("[Portal] no %q surface on the page, skipping", name)
			g.surfaces = append(g.surfaces, nil)
			continue
		}
		g.surfaces = append(g.surfaces, NewSurface(name))
	}

	text, err := NewTextLayer()
	if err != nil {
		log.Printf("[Portal] page text disabled: %v", err)
	}
	g.text = text

	return g
}

// monitorScale reads the device scale factor of the current monitor
func monitorScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// EnableProfiling writes CPU profiles into dir whenever the frame rate drops
func (g *Game) EnableProfiling(dir string) {
	g.profiler = NewProfiler(dir)
}

// Stop ends the game at the next Update. Safe to call from any goroutine.
func (g *Game) Stop() {
	g.stopped.Store(true)
}

// Fields returns the attached fields, inert ones included
func (g *Game) Fields() []*Field {
	return g.fields
}

// Update handles debug input and frame timing
func (g *Game) Update() error {
	if g.stopped.Load() {
		return ebiten.Termination
	}

	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.ShowOverlay = !g.debug.ShowOverlay
	}

	// Update FPS calculation (update every 0.5 seconds)
	g.fpsUpdateTimer += deltaTime
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer >= 0.5 {
		g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
		g.profiler.ObserveFPS(g.fps, g.dotCount(), g.cometCount())
		g.fpsUpdateCounter = 0
		g.fpsUpdateTimer = 0.0
	}

	return nil
}

func (g *Game) dotCount() int {
	n := 0
	for _, f := range g.fields {
		n += f.DotCount()
	}
	return n
}

func (g *Game) cometCount() int {
	n := 0
	for _, f := range g.fields {
		n += f.CometCount()
	}
	return n
}

// Draw runs one frame step per field and composites the page
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorPage)

	for i, f := range g.fields {
		s := g.surfaces[i]
		if s == nil {
			continue
		}
		f.Frame(s)

		x, y, _, _ := g.deviceRect(i)
		s.DrawTo(screen, math.Floor(x), math.Floor(y))
	}

	g.text.Draw(screen, g.page, g.outsideW, g.outsideH, g.dpr)

	if g.debug.ShowOverlay {
		g.drawDebug(screen)
	}
}

// Layout is required by ebiten.Game; LayoutF takes precedence
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// LayoutF measures the window and returns a screen in device pixels.
// A change in size or pixel ratio resizes every surface, which reseeds its
// dots and clears its comets.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	dpr := atLeastOne(g.scaleFactor())
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH || dpr != g.dpr {
		g.outsideW, g.outsideH, g.dpr = outsideWidth, outsideHeight, dpr
		g.relayout()
	}
	return math.Max(1, outsideWidth*dpr), math.Max(1, outsideHeight*dpr)
}

func (g *Game) relayout() {
	for i, f := range g.fields {
		if f.Inert() {
			continue
		}
		surf, _ := g.page.Surface(f.Name())
		_, _, w, h := surf.Rect(g.outsideW, g.outsideH)
		if !f.Resize(w, h, g.dpr) {
			continue
		}

		geom := f.Geometry()
		g.surfaces[i].Resize(geom)
		bw, bh := geom.BufferSize()
		log.Printf("[Portal] surface %q resized to %.0fx%.0f @%.2fx (buffer %dx%d)", f.Name(), geom.W, geom.H, geom.DPR, bw, bh)
	}
}

// deviceRect returns the rectangle of field i on the screen in device pixels
func (g *Game) deviceRect(i int) (x, y, w, h float64) {
	surf, _ := g.page.Surface(g.fields[i].Name())
	x, y, w, h = surf.Rect(g.outsideW, g.outsideH)
	return x * g.dpr, y * g.dpr, w * g.dpr, h * g.dpr
}
