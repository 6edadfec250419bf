// Package game adapts a Scene to ebiten.Game.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hiddenui/internal/application/scene"
)

// Game implements ebiten.Game on top of a single Scene.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene.
// A scene returning ebiten.Termination is exited before the error is
// passed on, which makes ebiten stop the loop.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	err := g.current.Update(g.dt)
	if errors.Is(err, ebiten.Termination) {
		g.current.OnExit()
	}
	return err
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time passed to the scene on every update.
// It should match the ticks per second given to ebiten.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
