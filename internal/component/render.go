// component/render.go
package component

import "image/color"

// Renderable - что отдать рендереру: вид спрайта, цвет и прозрачность.
type Renderable struct {
	Sprite string
	Color  color.RGBA
	Alpha  uint8
}
