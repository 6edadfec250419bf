package harness

import (
	"fmt"
	"slices"

	"github.com/younwookim/hiddenui/internal/application/state"
	"github.com/younwookim/hiddenui/internal/ecs"
)

// Report summarizes a headless run
type Report struct {
	Frames    int
	Entities  int
	RenderSet int
	Spawned   int
	State     state.AppState
}

// Verify runs up to frames event phases without a window. After every
// frame the render set must equal the seeded one and the seeded entities'
// components must be unchanged.
func Verify(l *Loop, frames int) (Report, error) {
	l.OnEnter()

	baseline := l.RenderSet()
	transforms := make(map[ecs.EntityID]ecs.Transform, len(baseline))
	visuals := make(map[ecs.EntityID]ecs.Visual, len(baseline))
	for _, id := range baseline {
		transforms[id], _ = ecs.Get[ecs.Transform](l.ctx.World, id)
		visuals[id], _ = ecs.Get[ecs.Visual](l.ctx.World, id)
	}

	report := Report{}
	for report.Frames < frames && !l.State().Terminal() {
		l.Step()
		report.Frames++

		current := l.RenderSet()
		if !slices.Equal(current, baseline) {
			return report, fmt.Errorf("frame %d: render set %v, want %v", report.Frames, current, baseline)
		}
		for _, id := range baseline {
			t, _ := ecs.Get[ecs.Transform](l.ctx.World, id)
			v, _ := ecs.Get[ecs.Visual](l.ctx.World, id)
			if t != transforms[id] || v != visuals[id] {
				return report, fmt.Errorf("frame %d: entity %d components changed", report.Frames, id)
			}
		}
	}

	report.Entities = l.ctx.World.Len()
	report.RenderSet = len(baseline)
	report.Spawned = l.spawned
	report.State = l.State()
	return report, nil
}
