//go:build ebiten

package app

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"venation/internal/colonize"
	"venation/internal/core"
	"venation/internal/render"
	"venation/internal/runfile"
	"venation/internal/ui"
)

// Game adapts a colonization engine to the ebiten.Game interface.
type Game struct {
	cfg    *Config
	file   runfile.File
	engine *colonize.Engine
	driver *colonize.Driver
	timer  *core.FixedStep

	painter *render.ScenePainter
	overlay *ui.Overlay
	hud     *ui.HUD
	style   render.Style

	running   bool
	placeTips bool
	pending   core.Size // scene size requested by the window, applied in Update
	message   string
	messageAt time.Time
}

// New constructs a Game for the provided engine. file describes where the
// engine came from and is used for config export.
func New(cfg *Config, e *colonize.Engine, file runfile.File) *Game {
	g := &Game{
		cfg:     cfg,
		file:    file,
		timer:   core.NewFixedStep(cfg.SPS),
		painter: render.NewScenePainter(),
		style:   render.DefaultStyle(),
	}
	g.overlay = ui.NewOverlay(e, cfg.Scale)
	g.hud = ui.NewHUD(e, cfg.HUDWidth)
	g.setEngine(e)
	return g
}

func (g *Game) setEngine(e *colonize.Engine) {
	g.engine = e
	g.driver = colonize.NewDriver(e, 0)
	g.overlay.SetSim(e)
	g.hud.SetSim(e)
}

// Reset reseeds the engine. Zero keeps the configured seed.
func (g *Game) Reset(seed int64) {
	g.engine.Reset(seed)
	g.driver.Resume()
	g.running = false
	g.timer.Reset()
}

// Update handles per-frame logic and advances the growth.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.applyResize()
	g.handleKeys()
	g.handleMouse()
	g.overlay.Update()
	g.hud.Update(g.sceneWidth())

	if g.running && g.timer.ShouldStep() {
		if !g.driver.Tick() {
			g.running = false
			g.notify(fmt.Sprintf("quiescent after %d steps", g.engine.Steps()))
		}
	}
	g.hud.SetStatus(g.statusLines()...)
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.running = !g.running
		if g.running {
			g.driver.Resume()
			g.timer.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.running = false
		if !g.driver.Tick() {
			g.notify("nothing to grow")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		n := g.engine.RandomizeInteriorAttractors(g.cfg.Batch)
		g.driver.Resume()
		g.notify(fmt.Sprintf("added %d attractors", n))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.engine.RandomizeInteriorTips(1)
		g.driver.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.engine.ClearTips()
		g.engine.ClearAttractors()
		g.running = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.placeTips = !g.placeTips
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.switchMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.style.Nodes = !g.style.Nodes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.style.ShowAttractors = !g.style.ShowAttractors
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.exportPNG()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyConfig()
	}
}

func (g *Game) handleMouse() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx >= g.sceneWidth() {
		return
	}
	x := float64(mx) / float64(g.cfg.Scale)
	y := float64(my) / float64(g.cfg.Scale)
	var ok bool
	if g.placeTips {
		ok = g.engine.CreateTip(x, y)
	} else {
		ok = g.engine.CreateAttractor(x, y)
	}
	if ok {
		g.driver.Resume()
	}
}

// switchMode restarts growth under the other association mode, keeping the
// seed tips and the remaining attractors so both modes can be compared on
// the same field.
func (g *Game) switchMode() {
	cfg := g.engine.Config()
	cfg.Mode = colonize.ModeClosed
	if g.engine.Mode() == colonize.ModeClosed {
		cfg.Mode = colonize.ModeOpen
	}
	next := colonize.NewWithConfig(cfg, g.engine.Mask())
	for _, t := range g.engine.Tips() {
		if t.IsSeed() {
			next.CreateTip(t.Pos.X, t.Pos.Y)
		}
	}
	next.CopyAttractors(g.engine.Attractors())
	g.setEngine(next)
	g.running = false
	g.notify("mode " + cfg.Mode.String())
}

func (g *Game) exportPNG() {
	name := fmt.Sprintf("venation-%s.png", time.Now().Format("20060102-150405"))
	path := filepath.Join(g.cfg.ExportDir, name)
	if err := render.WritePNG(path, g.engine, g.style, float64(g.cfg.Scale)); err != nil {
		log.Printf("export: %v", err)
		g.notify("export failed")
		return
	}
	g.notify("saved " + name)
}

func (g *Game) copyConfig() {
	f := g.file
	f.Engine = g.engine.Config()
	var buf bytes.Buffer
	if err := f.Encode(&buf); err != nil {
		log.Printf("copy config: %v", err)
		return
	}
	if err := clipboard.WriteAll(buf.String()); err != nil {
		log.Printf("copy config: %v", err)
		g.notify("clipboard unavailable")
		return
	}
	g.notify("config copied")
}

func (g *Game) notify(msg string) {
	g.message = msg
	g.messageAt = time.Now()
}

func (g *Game) statusLines() []string {
	place := "attractors"
	if g.placeTips {
		place = "tips"
	}
	run := g.driver.State().String()
	if g.running {
		run = "running"
	}
	return []string{
		fmt.Sprintf("tips %d  attractors %d", len(g.engine.Tips()), len(g.engine.Attractors())),
		fmt.Sprintf("step %d  %s", g.engine.Steps(), run),
		"click adds " + place + " (tab)",
		"space run  n step  r reset  s reseed",
		"a/t seed  x clear  m mode  1/2/z zones",
		"v nodes  h attractors  p png  c config",
	}
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.engine, g.style, g.cfg.Scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sceneWidth(), g.cfg.Scale)
	if g.message != "" && time.Since(g.messageAt) < 3*time.Second {
		ebitenutil.DebugPrintAt(screen, g.message, 8, 8)
	}
}

// applyResize moves the engine onto a mask matching the window size recorded
// by Layout. It runs between ticks so no step sees a half-updated scene.
func (g *Game) applyResize() {
	if g.pending == (core.Size{}) || g.pending == g.engine.Size() {
		g.pending = core.Size{}
		return
	}
	f, err := Resize(g.engine, g.file, g.pending)
	g.pending = core.Size{}
	if err != nil {
		log.Printf("resize: %v", err)
		g.notify("resize failed")
		return
	}
	g.file = f
	g.driver.Resume()
}

// Layout returns the logical screen size. A window resized by the user
// schedules a matching scene resize for the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if size, ok := sceneSize(outsideWidth, outsideHeight, g.cfg.HUDWidth, g.cfg.Scale); ok && size != g.engine.Size() {
		g.pending = size
	}
	s := g.engine.Size()
	return s.W*g.cfg.Scale + max(g.cfg.HUDWidth, 0), s.H * g.cfg.Scale
}

func (g *Game) sceneWidth() int { return g.engine.Size().W * g.cfg.Scale }
