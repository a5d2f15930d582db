// pkg/render/screen.go
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// FaceSource hands out font faces by size.
type FaceSource interface {
	Face(size float64) font.Face
}

var whiteSubImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Screen draws onto an ebiten image.
type Screen struct {
	dst   *ebiten.Image
	fonts FaceSource
}

func NewScreen(dst *ebiten.Image, fonts FaceSource) *Screen {
	return &Screen{dst: dst, fonts: fonts}
}

func (s *Screen) DrawSprite(kind string, x, y, w, h float64, clr color.RGBA) {
	if clr.A == 0 {
		return
	}
	c := nrgba(clr)
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)
	switch ShapeOf(kind) {
	case ShapeFrame:
		vector.StrokeRect(s.dst, fx, fy, fw, fh, 2, c, true)
	case ShapeTriangleUp:
		s.polygon(c, fx, fy+fh, fx+fw/2, fy, fx+fw, fy+fh)
	case ShapeTriangleDown:
		s.polygon(c, fx, fy, fx+fw, fy, fx+fw/2, fy+fh)
	case ShapeDiamond:
		s.polygon(c, fx+fw/2, fy, fx+fw, fy+fh/2, fx+fw/2, fy+fh, fx, fy+fh/2)
	case ShapeCircle:
		vector.DrawFilledCircle(s.dst, fx+fw/2, fy+fh/2, min(fw, fh)/2, c, true)
	case ShapeRing:
		vector.StrokeCircle(s.dst, fx+fw/2, fy+fh/2, min(fw, fh)/2, 2, c, true)
	default:
		vector.DrawFilledRect(s.dst, fx, fy, fw, fh, c, true)
	}
}

// polygon заливает многоугольник по парам координат.
func (s *Screen) polygon(c color.NRGBA, pts ...float32) {
	var path vector.Path
	path.MoveTo(pts[0], pts[1])
	for i := 2; i+1 < len(pts); i += 2 {
		path.LineTo(pts[i], pts[i+1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	s.dst.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	})
}

func (s *Screen) DrawText(str string, size, x, y float64, clr color.Color) {
	if str == "" || s.fonts == nil {
		return
	}
	face := s.fonts.Face(size)
	if face == nil {
		return
	}
	bounds := text.BoundString(face, str)
	tx := int(x) - bounds.Dx()/2
	ty := int(y) - bounds.Min.Y
	text.Draw(s.dst, str, face, tx, ty, clr)
}

func (s *Screen) DrawBar(x, y, w, h, fraction float64, clr color.RGBA) {
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)
	vector.DrawFilledRect(s.dst, fx, fy, fw, fh, nrgba(DarkenColor(DarkenColor(clr))), false)
	if f := float32(clamp01(fraction)); f > 0 {
		vector.DrawFilledRect(s.dst, fx, fy, fw*f, fh, nrgba(clr), false)
	}
	vector.StrokeRect(s.dst, fx, fy, fw, fh, 1, color.White, false)
}
