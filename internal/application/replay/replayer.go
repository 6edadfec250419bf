package replay

import (
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hiddenui/internal/application/input"
)

// Replayer plays recorded events back as an input.Source
type Replayer struct {
	data  ReplayData
	frame int
	next  int // index into data.Frames
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file. Frames are put back in frame
// order, so hand-edited files with shuffled entries replay correctly.
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	for _, fe := range data.Frames {
		if fe.F < 0 {
			return nil, fmt.Errorf("invalid replay: negative frame %d", fe.F)
		}
	}
	slices.SortStableFunc(data.Frames, func(a, b FrameEvents) int {
		return cmp.Compare(a.F, b.F)
	})

	return &data, nil
}

// Poll returns the events of the current frame and advances.
// Entries for the same frame are merged; entries for a frame already
// played are skipped.
func (r *Replayer) Poll() []input.Event {
	defer func() { r.frame++ }()

	frames := r.data.Frames
	for r.next < len(frames) && frames[r.next].F < r.frame {
		r.next++
	}

	var events []input.Event
	for r.next < len(frames) && frames[r.next].F == r.frame {
		for _, rec := range frames[r.next].E {
			events = append(events, input.Event{Kind: input.EventKind(rec.K), Key: ebiten.Key(rec.Key)})
		}
		r.next++
	}
	return events
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	n := r.data.Length
	for _, fe := range r.data.Frames {
		n = max(n, fe.F+1)
	}
	return n
}

// CreateTestReplayData creates replay data for testing.
// Each entry of frames is the events of one frame.
func CreateTestReplayData(frames ...[]input.Event) ReplayData {
	rec := NewRecorder()
	for _, ev := range frames {
		rec.RecordFrame(ev)
	}
	return rec.GetData()
}
