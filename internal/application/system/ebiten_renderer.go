package system

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/hiddenui/internal/ecs"
	"github.com/younwookim/hiddenui/internal/infrastructure/asset"
)

// FontSource resolves font handles to faces. A false result means the
// returned source is a placeholder.
type FontSource interface {
	Face(h asset.Handle) (*text.GoTextFaceSource, bool)
}

// EbitenRenderer draws quads and text runs onto an ebiten image
type EbitenRenderer struct {
	screen *ebiten.Image
	fonts  FontSource
	w, h   int
}

// NewEbitenRenderer creates a renderer targeting screen
func NewEbitenRenderer(screen *ebiten.Image, fonts FontSource) *EbitenRenderer {
	b := screen.Bounds()
	return &EbitenRenderer{screen: screen, fonts: fonts, w: b.Dx(), h: b.Dy()}
}

// DrawQuad fills the element rectangle with a flat color
func (r *EbitenRenderer) DrawQuad(t ecs.Transform, c ecs.Color) {
	rect := Layout(t, r.w, r.h)
	vector.DrawFilledRect(r.screen,
		float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H),
		c.RGBA(), false)
}

// DrawText draws a text run inside the element rectangle
func (r *EbitenRenderer) DrawText(t ecs.Transform, txt ecs.Text) {
	src, _ := r.fonts.Face(txt.Font)
	face := &text.GoTextFace{Source: src, Size: txt.Size}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	rect := Layout(t, r.w, r.h)
	lines := []string{txt.Content}
	if txt.LineMode == ecs.LineWrap {
		lines = WrapLines(txt.Content, rect.W, func(s string) float64 {
			return text.Advance(s, face)
		})
	}

	fx, fy := txt.Align.Norm()
	blockH := lh * float64(len(lines))

	op := &text.DrawOptions{}
	op.GeoM.Translate(rect.X+fx*rect.W, rect.Y+fy*(rect.H-blockH))
	op.ColorScale.ScaleWithColor(txt.Color.RGBA())
	op.LineSpacing = lh
	op.PrimaryAlign = primaryAlign(fx)
	text.Draw(r.screen, strings.Join(lines, "\n"), face, op)
}

func primaryAlign(fx float64) text.Align {
	switch {
	case fx < 0.5:
		return text.AlignStart
	case fx > 0.5:
		return text.AlignEnd
	default:
		return text.AlignCenter
	}
}

// WrapLines breaks s on spaces so that no line exceeds width according to
// measure. A single word wider than width gets a line of its own.
func WrapLines(s string, width float64, measure func(string) float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 || width <= 0 {
		return []string{s}
	}

	var lines []string
	cur := words[0]
	for _, word := range words[1:] {
		next := cur + " " + word
		if measure(next) > width {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur = next
	}
	return append(lines, cur)
}
