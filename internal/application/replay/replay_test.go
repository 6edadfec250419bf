package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/hiddenui/internal/application/input"
)

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder()

	rec.RecordFrame(nil)
	rec.RecordFrame([]input.Event{input.KeyDown(ebiten.KeySpace)})
	rec.RecordFrame(nil)
	rec.RecordFrame([]input.Event{input.KeyUp(ebiten.KeySpace), input.CloseRequested()})

	data := rec.GetData()
	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, 4, data.Length)
	assert.Equal(t, 4, rec.FrameCount())
	require.Len(t, data.Frames, 2, "empty frames are not stored")
	assert.Equal(t, 1, data.Frames[0].F)
	assert.Equal(t, 3, data.Frames[1].F)
	assert.Equal(t, EventRecord{K: int(input.EventKeyDown), Key: int(ebiten.KeySpace)}, data.Frames[0].E[0])
}

func TestReplayer_Poll(t *testing.T) {
	data := CreateTestReplayData(
		nil,
		[]input.Event{input.KeyDown(ebiten.KeySpace)},
		nil,
		[]input.Event{input.KeyDown(ebiten.KeyEscape)},
	)
	replayer := NewReplayer(data)

	assert.Equal(t, 4, replayer.TotalFrames())

	assert.Empty(t, replayer.Poll())
	assert.Equal(t, []input.Event{input.KeyDown(ebiten.KeySpace)}, replayer.Poll())
	assert.Empty(t, replayer.Poll())
	assert.Equal(t, []input.Event{input.KeyDown(ebiten.KeyEscape)}, replayer.Poll())

	assert.Empty(t, replayer.Poll(), "nothing after the last frame")
}

func TestReplayer_PollUnsortedAndDuplicateFrames(t *testing.T) {
	space := EventRecord{K: int(input.EventKeyDown), Key: int(ebiten.KeySpace)}
	escape := EventRecord{K: int(input.EventKeyDown), Key: int(ebiten.KeyEscape)}
	replayer := NewReplayer(ReplayData{Frames: []FrameEvents{
		{F: 1, E: []EventRecord{space}},
		{F: 1, E: []EventRecord{space}},
		{F: 0, E: []EventRecord{escape}}, // out of order, already played by the time it is reached
		{F: 3, E: []EventRecord{escape}},
	}})

	assert.Empty(t, replayer.Poll())
	assert.Equal(t, []input.Event{input.KeyDown(ebiten.KeySpace), input.KeyDown(ebiten.KeySpace)}, replayer.Poll())
	assert.Empty(t, replayer.Poll())
	assert.Equal(t, []input.Event{input.KeyDown(ebiten.KeyEscape)}, replayer.Poll(), "later frames still play")
}

func TestLoadReplay_SortsFrames(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "shuffled.json")
	k := strconv.Itoa(int(input.EventKeyDown))
	raw := `{"version":"1.0","length":4,"frames":[` +
		`{"f":3,"e":[{"k":` + k + `,"key":` + strconv.Itoa(int(ebiten.KeyEscape)) + `}]},` +
		`{"f":1,"e":[{"k":` + k + `,"key":` + strconv.Itoa(int(ebiten.KeySpace)) + `}]}]}`
	require.NoError(t, os.WriteFile(filename, []byte(raw), 0o644))

	data, err := LoadReplay(filename)
	require.NoError(t, err)
	require.Len(t, data.Frames, 2)
	assert.Equal(t, 1, data.Frames[0].F)

	replayer := NewReplayer(*data)
	var got []input.Event
	for i := 0; i < replayer.TotalFrames(); i++ {
		got = append(got, replayer.Poll()...)
	}
	assert.Equal(t, []input.Event{input.KeyDown(ebiten.KeySpace), input.KeyDown(ebiten.KeyEscape)}, got)
}

func TestReplayer_TotalFramesWithoutLength(t *testing.T) {
	replayer := NewReplayer(ReplayData{Frames: []FrameEvents{{F: 9}}})

	assert.Equal(t, 10, replayer.TotalFrames())
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder()
	rec.RecordFrame([]input.Event{input.KeyDown(ebiten.KeySpace)})
	rec.RecordFrame(nil)

	filename := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, rec.Save(filename))

	raw, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.True(t, json.Valid(raw))

	data, err := LoadReplay(filename)
	require.NoError(t, err)
	assert.Equal(t, rec.GetData(), *data)

	replayer := NewReplayer(*data)
	assert.Equal(t, []input.Event{input.KeyDown(ebiten.KeySpace)}, replayer.Poll())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder()

	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadReplay(bad)
	assert.Error(t, err)

	negative := filepath.Join(t.TempDir(), "negative.json")
	require.NoError(t, os.WriteFile(negative, []byte(`{"frames":[{"f":-1,"e":[]}]}`), 0o644))
	_, err = LoadReplay(negative)
	assert.ErrorContains(t, err, "negative frame")
}
