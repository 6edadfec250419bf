// Package scene defines the Scene interface for screens driven by the game loop.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a screen driven by the game loop.
//
// The game loop delegates Update and Draw calls to the scene.
type Scene interface {
	// Update runs the event phase of a frame.
	// dt is the delta time in seconds (typically 1/60).
	// Returns ebiten.Termination to stop, any other error to abort.
	Update(dt float64) error

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when the scene terminates the loop.
	OnExit()
}
