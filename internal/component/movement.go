// internal/component/movement.go
package component

// Rect - прямоугольник сущности (AABB), X/Y - левый верхний угол.
type Rect struct {
	X, Y, W, H float64
}

// NewRectCentered строит прямоугольник с центром в (cx, cy).
func NewRectCentered(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// SetCenter переносит прямоугольник, сохраняя размер.
func (r *Rect) SetCenter(cx, cy float64) {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
}

// Intersects - строгое пересечение: касание гранями столкновением не считается.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// ClampHorizontal удерживает прямоугольник в полосе [0, width].
func (r *Rect) ClampHorizontal(width float64) {
	if r.Right() > width {
		r.X = width - r.W
	}
	if r.X < 0 {
		r.X = 0
	}
}

// ClampTo удерживает прямоугольник внутри [0,width]x[0,height].
func (r *Rect) ClampTo(width, height float64) {
	r.ClampHorizontal(width)
	if r.Bottom() > height {
		r.Y = height - r.H
	}
	if r.Y < 0 {
		r.Y = 0
	}
}

// Velocity - скорость в пикселях за тик.
type Velocity struct {
	X, Y float64
}
