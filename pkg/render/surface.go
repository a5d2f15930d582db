// pkg/render/surface.go
package render

import (
	"image/color"
	"strings"
)

// Surface is the drawing target of the game. The simulation never sees
// ebiten directly, so tests can record draw calls instead.
type Surface interface {
	// DrawSprite draws a primitive shape chosen by kind inside the box.
	// clr.A is a straight alpha.
	DrawSprite(kind string, x, y, w, h float64, clr color.RGBA)
	// DrawText draws str horizontally centred on x, with y as the top edge.
	DrawText(str string, size, x, y float64, clr color.Color)
	// DrawBar draws a framed progress bar filled to fraction (clamped to [0,1]).
	DrawBar(x, y, w, h, fraction float64, clr color.RGBA)
}

// Shape is a drawing primitive.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeFrame
	ShapeTriangleUp
	ShapeTriangleDown
	ShapeDiamond
	ShapeCircle
	ShapeRing
)

var shapes = map[string]Shape{
	"player":           ShapeTriangleUp,
	"basic":            ShapeTriangleDown,
	"elite":            ShapeTriangleDown,
	"cloaked_ambusher": ShapeTriangleDown,
	"splitter_drone":   ShapeDiamond,
	"shield_bearer":    ShapeRect,
	"energy_sapper":    ShapeDiamond,
	"blade_spinner":    ShapeCircle,
	"drone":            ShapeCircle,
	"portal":           ShapeCircle,
	"shield":           ShapeRing,
	"frame":            ShapeFrame,
	"homing_bullet":    ShapeCircle,
	"bouncing_bullet":  ShapeCircle,
}

// ShapeOf maps a sprite kind to its primitive. Unknown kinds are rectangles.
func ShapeOf(kind string) Shape {
	if s, ok := shapes[kind]; ok {
		return s
	}
	if strings.HasPrefix(kind, "powerup_") {
		return ShapeCircle
	}
	return ShapeRect
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
