package ecs

import (
	"image/color"

	"github.com/younwookim/hiddenui/internal/infrastructure/asset"
)

// Anchor is a reference point on a rectangle, used both for the parent
// attachment point and for the element's own pivot.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopMiddle
	AnchorTopRight
	AnchorMiddleLeft
	AnchorMiddle
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomMiddle
	AnchorBottomRight
)

// Norm returns the anchor as fractions of a rectangle, (0,0) being the
// top-left corner and (1,1) the bottom-right one.
func (a Anchor) Norm() (fx, fy float64) {
	switch a {
	case AnchorTopLeft:
		return 0, 0
	case AnchorTopMiddle:
		return 0.5, 0
	case AnchorTopRight:
		return 1, 0
	case AnchorMiddleLeft:
		return 0, 0.5
	case AnchorMiddleRight:
		return 1, 0.5
	case AnchorBottomLeft:
		return 0, 1
	case AnchorBottomMiddle:
		return 0.5, 1
	case AnchorBottomRight:
		return 1, 1
	default:
		return 0.5, 0.5
	}
}

// String returns the anchor name
func (a Anchor) String() string {
	switch a {
	case AnchorTopLeft:
		return "TopLeft"
	case AnchorTopMiddle:
		return "TopMiddle"
	case AnchorTopRight:
		return "TopRight"
	case AnchorMiddleLeft:
		return "MiddleLeft"
	case AnchorMiddle:
		return "Middle"
	case AnchorMiddleRight:
		return "MiddleRight"
	case AnchorBottomLeft:
		return "BottomLeft"
	case AnchorBottomMiddle:
		return "BottomMiddle"
	case AnchorBottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// Component is implemented by every value that can be attached to an entity.
type Component interface {
	attach(w *World, id EntityID)
}

// Transform places an element relative to its parent (the screen).
// Offsets follow the UI convention: positive Y moves the element up.
type Transform struct {
	ID     string // debug name
	Anchor Anchor // attachment point on the parent
	Pivot  Anchor // point of the element placed on the anchor
	X, Y   float64
	Z      float64
	Width  float64
	Height float64
}

func (t Transform) attach(w *World, id EntityID) { w.transform[id] = t }

// Color is a 4-channel float color, each channel in [0, 1].
type Color [4]float32

// RGBA converts the color to an 8-bit non-premultiplied color.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: channel(c[0]),
		G: channel(c[1]),
		B: channel(c[2]),
		A: channel(c[3]),
	}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// LineMode controls how text exceeding the element width is handled.
type LineMode int

const (
	LineSingle LineMode = iota
	LineWrap
)

// Text is a text run drawn inside the element rectangle.
type Text struct {
	Content  string
	Font     asset.Handle
	Color    Color
	Size     float64
	LineMode LineMode
	Align    Anchor
}

// VisualKind selects which payload of a Visual is drawn.
type VisualKind int

const (
	VisualSolid VisualKind = iota
	VisualText
)

// Visual describes how an element looks. Kind selects SolidColor or Text.
// Visual is a plain value: a copy returned by Get shares nothing with the store.
type Visual struct {
	Kind       VisualKind
	SolidColor Color
	Text       Text
}

// SolidVisual returns a flat-color visual.
func SolidVisual(c Color) Visual {
	return Visual{Kind: VisualSolid, SolidColor: c}
}

// TextVisual returns a text visual.
func TextVisual(t Text) Visual {
	return Visual{Kind: VisualText, Text: t}
}

// IsText reports whether the visual is a text run
func (v Visual) IsText() bool { return v.Kind == VisualText }

func (v Visual) attach(w *World, id EntityID) { w.visual[id] = v }

// SuppressRender marks an entity that must not be drawn.
type SuppressRender struct{}

func (SuppressRender) attach(w *World, id EntityID) { w.suppressRender[id] = struct{}{} }
