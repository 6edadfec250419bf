package replay

// EventRecord is one raw event inside a recorded frame
type EventRecord struct {
	K   int `json:"k"`   // input.EventKind
	Key int `json:"key"` // ebiten.Key, key events only
}

// FrameEvents records the events of a single frame. Frames without
// events are not stored.
type FrameEvents struct {
	F int           `json:"f"` // Frame number
	E []EventRecord `json:"e"`
}

// ReplayData contains all data needed to replay a harness session
type ReplayData struct {
	Version   string        `json:"version"`
	StartTime string        `json:"startTime"`
	Length    int           `json:"length"` // total frames recorded
	Frames    []FrameEvents `json:"frames"`
}
