package asset

import (
	"context"
	"io/fs"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

// countingFS counts Open calls per path
type countingFS struct {
	fs.FS
	opens atomic.Int32
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens.Add(1)
	return c.FS.Open(name)
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"font/square.ttf": &fstest.MapFile{Data: goregular.TTF},
		"font/other.ttf":  &fstest.MapFile{Data: goregular.TTF},
		"font/broken.ttf": &fstest.MapFile{Data: []byte("not a font")},
	}
}

func waitFor(t *testing.T, c *Cache, h Handle) State {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	st, err := c.Wait(ctx, h)
	require.NoError(t, err)
	return st
}

func TestCache_LoadSamePathReturnsEqualHandles(t *testing.T) {
	fsys := &countingFS{FS: testFS()}
	c := NewFSCache(fsys, nil)

	h1 := c.Load("font/square.ttf")
	h2 := c.Load("font/square.ttf")

	assert.Equal(t, h1, h2)
	assert.Equal(t, 1, c.Len())

	assert.Equal(t, StateReady, waitFor(t, c, h1))
	c.Load("font/square.ttf")
	assert.Equal(t, int32(1), fsys.opens.Load(), "resource should be fetched once")
}

func TestCache_LoadDistinctPathsReturnsDistinctHandles(t *testing.T) {
	c := NewFSCache(testFS(), nil)

	h1 := c.Load("font/square.ttf")
	h2 := c.Load("font/other.ttf")

	assert.NotEqual(t, h1, h2)
	assert.NotEqual(t, Handle(0), h1)
	assert.NotEqual(t, Handle(0), h2)
	assert.Equal(t, 2, c.Len())
}

func TestCache_ReadyFace(t *testing.T) {
	c := NewFSCache(testFS(), nil)
	h := c.Load("font/square.ttf")

	require.Equal(t, StateReady, waitFor(t, c, h))

	src, ok := c.Face(h)
	assert.True(t, ok)
	assert.NotNil(t, src)
	assert.NotSame(t, Placeholder(), src)
}

func TestCache_MissingAsset(t *testing.T) {
	c := NewFSCache(testFS(), nil)

	t.Run("unknown path resolves to missing", func(t *testing.T) {
		h := c.Load("font/nope.ttf")
		assert.NotEqual(t, Handle(0), h, "handle is valid even when the asset is missing")
		assert.Equal(t, StateMissing, waitFor(t, c, h))

		src, ok := c.Face(h)
		assert.False(t, ok)
		assert.Same(t, Placeholder(), src)
	})

	t.Run("unparsable font resolves to missing", func(t *testing.T) {
		h := c.Load("font/broken.ttf")
		assert.Equal(t, StateMissing, waitFor(t, c, h))
	})

	t.Run("unknown handle", func(t *testing.T) {
		assert.Equal(t, StateMissing, c.State(Handle(999)))
		st, err := c.Wait(context.Background(), Handle(999))
		assert.NoError(t, err)
		assert.Equal(t, StateMissing, st)
	})
}

func TestCache_WaitHonorsContext(t *testing.T) {
	blocked := make(chan struct{})
	c := NewFSCache(blockingFS{release: blocked}, nil)
	h := c.Load("font/slow.ttf")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st, err := c.Wait(ctx, h)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateLoading, st)
	assert.Equal(t, StateLoading, c.State(h))

	close(blocked)
	assert.Equal(t, StateMissing, waitFor(t, c, h))
}

// blockingFS blocks every Open until release is closed, then fails
type blockingFS struct {
	release chan struct{}
}

func (b blockingFS) Open(name string) (fs.File, error) {
	<-b.release
	return nil, fs.ErrNotExist
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateLoading, "Loading"},
		{StateReady, "Ready"},
		{StateMissing, "Missing"},
		{State(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}
