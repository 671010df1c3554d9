//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/swansonk14/graphing-fleas/internal/render"
	"github.com/swansonk14/graphing-fleas/internal/ui"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	geom    render.CellGeometry
	seed    int64
}

// New constructs a Game drawing the controller's simulation with geom.
func New(ctrl *Controller, geom render.CellGeometry, visited bool, seed int64) *Game {
	sim := ctrl.Sim()
	size := sim.Size()
	w, _ := geom.WindowSize(size.Rows, size.Cols)
	return &Game{
		ctrl:    ctrl,
		painter: render.NewGridPainter(size.Rows, size.Cols, geom, render.Palette(sim.NumColors())),
		hud:     ui.NewHUD(ctrl, w, geom.MarginTop),
		overlay: ui.NewOverlay(sim, size.Rows, size.Cols, geom, visited),
		geom:    geom,
		seed:    seed,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.ctrl.Redraw()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.ctrl.Advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset(g.seed)
	}
	g.overlay.Update()
	if !g.hud.Update() {
		g.handleClick()
	}
	g.ctrl.Update()
	return nil
}

func (g *Game) handleClick() {
	left := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	size := g.ctrl.Sim().Size()
	x, y := ebiten.CursorPosition()
	row, col, ok := g.geom.CellAt(x, y, size.Rows, size.Cols)
	if !ok {
		return
	}
	g.ctrl.Edit(row, col, left)
}

// Draw renders the displayed frame.
func (g *Game) Draw(screen *ebiten.Image) {
	cells, markers := g.ctrl.Frame()
	g.painter.Blit(screen, cells, markers)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.ctrl.Sim().Size()
	return g.geom.WindowSize(size.Rows, size.Cols)
}
