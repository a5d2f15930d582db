// pkg/render/recorder.go
package render

import "image/color"

// Op is one recorded draw call.
type Op struct {
	Method   string // sprite, text, bar
	Kind     string
	Text     string
	X, Y     float64
	W, H     float64
	Fraction float64
	Color    color.RGBA
}

// Recorder is a Surface that remembers what was drawn.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) DrawSprite(kind string, x, y, w, h float64, clr color.RGBA) {
	r.Ops = append(r.Ops, Op{Method: "sprite", Kind: kind, X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) DrawText(str string, size, x, y float64, clr color.Color) {
	c, _ := color.RGBAModel.Convert(clr).(color.RGBA)
	r.Ops = append(r.Ops, Op{Method: "text", Text: str, X: x, Y: y, H: size, Color: c})
}

func (r *Recorder) DrawBar(x, y, w, h, fraction float64, clr color.RGBA) {
	r.Ops = append(r.Ops, Op{Method: "bar", X: x, Y: y, W: w, H: h, Fraction: clamp01(fraction), Color: clr})
}

// Sprites returns the recorded sprite calls of the given kind.
func (r *Recorder) Sprites(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Method == "sprite" && op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// HasText reports whether str was drawn.
func (r *Recorder) HasText(str string) bool {
	for _, op := range r.Ops {
		if op.Method == "text" && op.Text == str {
			return true
		}
	}
	return false
}

// Reset drops the recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
