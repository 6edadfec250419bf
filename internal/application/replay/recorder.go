package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/hiddenui/internal/application/input"
)

// Recorder handles input recording for replay
type Recorder struct {
	data  ReplayData
	frame int
}

// NewRecorder creates a new recorder
func NewRecorder() *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   "1.0",
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameEvents, 0, 64),
		},
	}
}

// RecordFrame records a single frame's events
func (r *Recorder) RecordFrame(events []input.Event) {
	if len(events) > 0 {
		fe := FrameEvents{F: r.frame, E: make([]EventRecord, len(events))}
		for i, ev := range events {
			fe.E[i] = EventRecord{K: int(ev.Kind), Key: int(ev.Key)}
		}
		r.data.Frames = append(r.data.Frames, fe)
	}

	r.frame++
	r.data.Length = r.frame
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if r.frame == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return r.frame
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() ReplayData {
	return r.data
}
