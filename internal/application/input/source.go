package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source yields the raw events of one frame
type Source interface {
	Poll() []Event
}

// EbitenSource reads window and keyboard events from ebiten.
// Window closing must be handled by the caller via
// ebiten.SetWindowClosingHandled(true) for close requests to be seen.
type EbitenSource struct {
	keys []ebiten.Key
}

// NewEbitenSource creates a new ebiten event source
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll returns this frame's events: close request first, then key presses,
// then key releases.
func (s *EbitenSource) Poll() []Event {
	var events []Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, CloseRequested())
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		events = append(events, KeyDown(k))
	}

	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		events = append(events, KeyUp(k))
	}
	return events
}

// SliceSource replays a fixed list of frames, one per Poll.
type SliceSource struct {
	frames [][]Event
	next   int
}

// NewSliceSource creates a source returning frames in order, then nothing
func NewSliceSource(frames ...[]Event) *SliceSource {
	return &SliceSource{frames: frames}
}

// Poll returns the next frame's events
func (s *SliceSource) Poll() []Event {
	if s.next >= len(s.frames) {
		return nil
	}
	ev := s.frames[s.next]
	s.next++
	return ev
}
