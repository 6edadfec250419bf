// Package asset resolves resource paths to reusable handles.
//
// Loading is deferred: Load returns a handle immediately and the font is
// read and parsed in the background. A handle whose resource cannot be
// read or parsed stays valid and resolves to StateMissing.
package asset

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
)

// Handle identifies a cached resource. The zero Handle is invalid.
type Handle uint32

// State is the load state of a cached resource
type State int

const (
	StateLoading State = iota
	StateReady
	StateMissing
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateReady:
		return "Ready"
	case StateMissing:
		return "Missing"
	default:
		return "Unknown"
	}
}

type entry struct {
	path   string
	state  State
	source *text.GoTextFaceSource
	done   chan struct{}
}

// Cache deduplicates font loads by path
type Cache struct {
	fsys fs.FS
	log  *zap.Logger

	mu      sync.Mutex
	next    Handle
	byPath  map[string]Handle
	entries map[Handle]*entry
}

// NewCache creates a cache reading from a filesystem path
func NewCache(basePath string, log *zap.Logger) *Cache {
	return NewFSCache(os.DirFS(basePath), log)
}

// NewFSCache creates a cache reading from fs.FS
func NewFSCache(fsys fs.FS, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		fsys:    fsys,
		log:     log,
		next:    1,
		byPath:  make(map[string]Handle),
		entries: make(map[Handle]*entry),
	}
}

// Load returns the handle for path, starting the fetch on first request.
func (c *Cache) Load(path string) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()

	if h, ok := c.byPath[path]; ok {
		return h
	}

	h := c.next
	c.next++
	e := &entry{path: path, state: StateLoading, done: make(chan struct{})}
	c.byPath[path] = h
	c.entries[h] = e

	go c.fetch(e)
	return h
}

func (c *Cache) fetch(e *entry) {
	source, err := c.parse(e.path)

	c.mu.Lock()
	if err != nil {
		e.state = StateMissing
	} else {
		e.state = StateReady
		e.source = source
	}
	c.mu.Unlock()
	close(e.done)

	if err != nil {
		c.log.Warn("asset missing", zap.String("path", e.path), zap.Error(err))
		return
	}
	c.log.Debug("asset loaded", zap.String("path", e.path))
}

func (c *Cache) parse(path string) (*text.GoTextFaceSource, error) {
	data, err := fs.ReadFile(c.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return source, nil
}

// State returns the load state of h. Unknown handles are reported missing.
func (c *Cache) State(h Handle) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[h]
	if !ok {
		return StateMissing
	}
	return e.state
}

// Face returns the loaded font source for h. While the font is loading or
// missing it returns the placeholder source and false.
func (c *Cache) Face(h Handle) (*text.GoTextFaceSource, bool) {
	c.mu.Lock()
	e, ok := c.entries[h]
	if ok && e.state == StateReady {
		src := e.source
		c.mu.Unlock()
		return src, true
	}
	c.mu.Unlock()
	return Placeholder(), false
}

// Wait blocks until h is no longer loading or ctx is done.
// The frame loop never calls it.
func (c *Cache) Wait(ctx context.Context, h Handle) (State, error) {
	c.mu.Lock()
	e, ok := c.entries[h]
	c.mu.Unlock()
	if !ok {
		return StateMissing, nil
	}

	select {
	case <-e.done:
		return c.State(h), nil
	case <-ctx.Done():
		return StateLoading, ctx.Err()
	}
}

// Len returns the number of distinct paths requested so far
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

var (
	placeholderOnce   sync.Once
	placeholderSource *text.GoTextFaceSource
)

// Placeholder returns the built-in glyph set used while a font is not ready.
func Placeholder() *text.GoTextFaceSource {
	placeholderOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(fmt.Sprintf("asset: embedded placeholder font: %v", err))
		}
		placeholderSource = src
	})
	return placeholderSource
}
