//go:build ebiten

package app

import (
	"life-canvas/internal/engine"
	"life-canvas/internal/render"
	"life-canvas/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
)

// Game adapts an engine and its window surface to the ebiten.Game interface.
type Game struct {
	eng     *engine.Engine
	surface *render.WindowSurface
	hud     *ui.HUD

	w, h int
}

// New constructs a Game drawing eng onto surface.
func New(eng *engine.Engine, surface *render.WindowSurface) *Game {
	w, h := surface.Size()
	return &Game{eng: eng, surface: surface, hud: ui.NewHUD(w), w: w, h: h}
}

// Update handles the start/stop and quit keys. The engine ticks on its own.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.eng.Toggle()
	}
	return nil
}

// Draw renders the last painted generation and the status strip.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Draw(screen)
	g.hud.Draw(screen, g.h, g.eng.Snapshot())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h + ui.Height
}

// Run opens a window for eng and blocks until it is closed. The engine is
// started before the window opens and stopped when it closes.
func Run(eng *engine.Engine, surface render.Surface, title string) error {
	ws, ok := surface.(*render.WindowSurface)
	if !ok {
		return errors.New("app: window run needs the window surface")
	}
	game := New(eng, ws)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(game.Layout(0, 0))

	eng.Start()
	defer eng.Stop()
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
