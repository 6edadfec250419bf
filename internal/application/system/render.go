package system

import (
	"github.com/younwookim/hiddenui/internal/ecs"
)

// Renderer receives one draw call per eligible entity
type Renderer interface {
	DrawQuad(t ecs.Transform, c ecs.Color)
	DrawText(t ecs.Transform, txt ecs.Text)
}

// RenderSystem selects drawable entities and submits them to a Renderer
type RenderSystem struct {
	world *ecs.World
}

// NewRenderSystem creates a new render system
func NewRenderSystem(w *ecs.World) *RenderSystem {
	return &RenderSystem{world: w}
}

// RenderSet returns the entities to draw this frame, in creation order.
func (s *RenderSystem) RenderSet() []ecs.EntityID {
	return RenderSet(s.world)
}

// Draw submits every eligible entity to r. The world is not modified.
func (s *RenderSystem) Draw(r Renderer) int {
	n := 0
	s.world.Each(func(id ecs.EntityID) {
		t, vis, ok := drawable(s.world, id)
		if !ok {
			return
		}
		if vis.IsText() {
			r.DrawText(t, vis.Text)
		} else {
			r.DrawQuad(t, vis.SolidColor)
		}
		n++
	})
	return n
}

// RenderSet returns ids holding Transform and Visual but not SuppressRender,
// in creation order.
func RenderSet(w *ecs.World) []ecs.EntityID {
	var out []ecs.EntityID
	w.Each(func(id ecs.EntityID) {
		if _, _, ok := drawable(w, id); ok {
			out = append(out, id)
		}
	})
	return out
}

func drawable(w *ecs.World, id ecs.EntityID) (ecs.Transform, ecs.Visual, bool) {
	if w.HasSuppressRender(id) {
		return ecs.Transform{}, ecs.Visual{}, false
	}
	t, ok := ecs.Get[ecs.Transform](w, id)
	if !ok {
		return ecs.Transform{}, ecs.Visual{}, false
	}
	vis, ok := ecs.Get[ecs.Visual](w, id)
	if !ok {
		return ecs.Transform{}, ecs.Visual{}, false
	}
	return t, vis, true
}

// Rect is a screen-space rectangle (y down)
type Rect struct {
	X, Y, W, H float64
}

// Layout resolves a transform against a screen of the given size.
// The pivot point of the element lands on the anchor point of the screen,
// shifted by the offset (positive Y is up).
func Layout(t ecs.Transform, screenW, screenH int) Rect {
	ax, ay := t.Anchor.Norm()
	px, py := t.Pivot.Norm()
	return Rect{
		X: ax*float64(screenW) + t.X - px*t.Width,
		Y: ay*float64(screenH) - t.Y - py*t.Height,
		W: t.Width,
		H: t.Height,
	}
}
