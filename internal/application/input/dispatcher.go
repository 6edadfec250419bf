// Package input translates raw window and keyboard events into actions.
package input

import "github.com/hajimehoshi/ebiten/v2"

// EventKind is the kind of a raw window event
type EventKind int

const (
	EventUnknown EventKind = iota
	EventCloseRequested
	EventKeyDown
	EventKeyUp
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventCloseRequested:
		return "CloseRequested"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	default:
		return "Unknown"
	}
}

// Event is a raw window event. Key is only meaningful for key events.
type Event struct {
	Kind EventKind
	Key  ebiten.Key
}

// CloseRequested returns a window-close event
func CloseRequested() Event { return Event{Kind: EventCloseRequested} }

// KeyDown returns a key-down event
func KeyDown(k ebiten.Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// KeyUp returns a key-up event
func KeyUp(k ebiten.Key) Event { return Event{Kind: EventKeyUp, Key: k} }

// Action is what the application loop should do in response to an event
type Action int

const (
	NoOp Action = iota
	Quit
	SpawnMarkedEntity
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case NoOp:
		return "NoOp"
	case Quit:
		return "Quit"
	case SpawnMarkedEntity:
		return "SpawnMarkedEntity"
	default:
		return "Unknown"
	}
}

var keyDownActions = map[ebiten.Key]Action{
	ebiten.KeyEscape: Quit,
	ebiten.KeySpace:  SpawnMarkedEntity,
}

// Dispatch maps an event to its action. Unmapped events and key releases
// are NoOp.
func Dispatch(ev Event) Action {
	switch ev.Kind {
	case EventCloseRequested:
		return Quit
	case EventKeyDown:
		if a, ok := keyDownActions[ev.Key]; ok {
			return a
		}
	}
	return NoOp
}
