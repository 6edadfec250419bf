// Package harness provides the scene that seeds the UI entities and
// spawns SuppressRender-marked entities on demand.
package harness

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/hiddenui/internal/application/input"
	"github.com/younwookim/hiddenui/internal/application/replay"
	"github.com/younwookim/hiddenui/internal/application/scene"
	"github.com/younwookim/hiddenui/internal/application/state"
	"github.com/younwookim/hiddenui/internal/application/system"
	"github.com/younwookim/hiddenui/internal/ecs"
	"github.com/younwookim/hiddenui/internal/infrastructure/asset"
	"github.com/younwookim/hiddenui/internal/infrastructure/config"
)

// Instructions is the text shown at the top of the screen
const Instructions = "Press Space to add a new entity with a 'Hidden' component"

// Context is the state shared by the update and draw phases
type Context struct {
	World  *ecs.World
	Assets *asset.Cache
	Log    *zap.Logger
}

var _ scene.Scene = (*Loop)(nil)

// Loop is the harness scene. It implements scene.Scene.
type Loop struct {
	ctx      Context
	state    state.AppState
	source   input.Source
	render   *system.RenderSystem
	recorder *replay.Recorder

	fontPath   string
	clearColor color.NRGBA
	seeded     bool
	frame      int
	spawned    int
	elapsed    float64 // seconds of Update time while running
}

// New creates the harness scene. The world is seeded in OnEnter.
// recorder may be nil.
func New(ctx Context, cfg *config.HarnessConfig, source input.Source, recorder *replay.Recorder) *Loop {
	if ctx.Log == nil {
		ctx.Log = zap.NewNop()
	}
	return &Loop{
		ctx:        ctx,
		state:      state.StateRunning,
		source:     source,
		render:     system.NewRenderSystem(ctx.World),
		recorder:   recorder,
		fontPath:   cfg.Assets.Font,
		clearColor: ecs.Color(cfg.Display.ClearRGBA()).RGBA(),
	}
}

// OnEnter seeds the visible quad and the instruction text.
// Entering again does not seed twice.
func (l *Loop) OnEnter() {
	if l.seeded {
		return
	}
	l.seeded = true

	l.ctx.World.CreateEntity(
		ecs.Transform{
			ID:     "shown_ui",
			Anchor: ecs.AnchorMiddle,
			Pivot:  ecs.AnchorMiddle,
			X:      -100,
			Width:  100,
			Height: 100,
		},
		ecs.SolidVisual(ecs.Color{0, 1, 0, 1}),
	)

	font := l.ctx.Assets.Load(l.fontPath)
	l.ctx.World.CreateEntity(
		ecs.Transform{
			ID:     "text_ui",
			Anchor: ecs.AnchorTopMiddle,
			Pivot:  ecs.AnchorTopMiddle,
			Y:      -10,
			Width:  300,
			Height: 100,
		},
		ecs.TextVisual(ecs.Text{
			Content:  Instructions,
			Font:     font,
			Color:    ecs.Color{0.2, 0.2, 1, 1},
			Size:     20,
			LineMode: ecs.LineWrap,
			Align:    ecs.AnchorMiddle,
		}),
	)

	l.ctx.Log.Info("scene seeded", zap.Int("entities", l.ctx.World.Len()))
}

// OnExit is called when leaving this scene
func (l *Loop) OnExit() {
	l.ctx.Log.Info("scene exit",
		zap.Stringer("state", l.state),
		zap.Int("frames", l.frame),
		zap.Float64("elapsed", l.elapsed),
		zap.Int("spawned", l.spawned))
}

// State returns the current run state
func (l *Loop) State() state.AppState {
	return l.state
}

// Elapsed returns the simulated seconds accumulated by Update while running
func (l *Loop) Elapsed() float64 {
	return l.elapsed
}

// Spawned returns the number of marked entities created by input
func (l *Loop) Spawned() int {
	return l.spawned
}

// Apply performs one action. Nothing happens once the loop has quit.
func (l *Loop) Apply(a input.Action) {
	if l.state.Terminal() {
		return
	}

	switch a {
	case input.Quit:
		l.state = state.StateQuit
		l.ctx.Log.Info("quit requested", zap.Int("frame", l.frame))
	case input.SpawnMarkedEntity:
		id := l.spawnMarked()
		l.ctx.Log.Debug("spawned marked entity",
			zap.Uint64("id", uint64(id)),
			zap.Int("entities", l.ctx.World.Len()))
	}
}

func (l *Loop) spawnMarked() ecs.EntityID {
	l.spawned++
	return l.ctx.World.CreateEntity(
		ecs.Transform{
			ID:     "hidden_ui",
			Anchor: ecs.AnchorMiddle,
			Pivot:  ecs.AnchorMiddle,
			Width:  100,
			Height: 100,
		},
		ecs.SolidVisual(ecs.Color{1, 0, 0, 1}),
		ecs.SuppressRender{},
	)
}

// HandleEvents dispatches events in order, stopping at the first Quit.
func (l *Loop) HandleEvents(events []input.Event) {
	for _, ev := range events {
		if l.state.Terminal() {
			return
		}
		l.Apply(input.Dispatch(ev))
	}
}

// Step runs the event phase of one frame: poll, record, dispatch.
func (l *Loop) Step() state.AppState {
	if l.state.Terminal() {
		return l.state
	}

	events := l.source.Poll()
	if l.recorder != nil {
		l.recorder.RecordFrame(events)
	}
	l.HandleEvents(events)
	l.frame++
	return l.state
}

// Update runs the event phase and asks ebiten to stop once quit.
func (l *Loop) Update(dt float64) error {
	if l.state.Terminal() {
		return ebiten.Termination
	}
	l.elapsed += dt
	if l.Step().Terminal() {
		return ebiten.Termination
	}
	return nil
}

// Draw clears the screen and submits the render set
func (l *Loop) Draw(screen *ebiten.Image) {
	screen.Fill(l.clearColor)
	l.render.Draw(system.NewEbitenRenderer(screen, l.ctx.Assets))
}

// RenderSet returns the entities that would be drawn this frame
func (l *Loop) RenderSet() []ecs.EntityID {
	return l.render.RenderSet()
}
