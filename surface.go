package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/olivierh59500/flowfield-shapes/internal/effect"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ebitenSurface draws effect primitives onto an Ebitengine image.
type ebitenSurface struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (s *ebitenSurface) path(pts []effect.Point) *vector.Path {
	var p vector.Path
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(float32(pt.X), float32(pt.Y))
			continue
		}
		p.LineTo(float32(pt.X), float32(pt.Y))
	}
	p.Close()
	return &p
}

func (s *ebitenSurface) FillPolygon(pts []effect.Point, paint effect.Paint) {
	s.vertices, s.indices = s.path(pts).AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	for i := range s.vertices {
		v := &s.vertices[i]
		c := paint.At(float64(v.DstX), float64(v.DstY)).Clamped()
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = float32(c.R), float32(c.G), float32(c.B), 1
	}
	s.draw()
}

func (s *ebitenSurface) StrokePolygon(pts []effect.Point, width float64, c color.Color) {
	op := &vector.StrokeOptions{Width: float32(width), LineJoin: vector.LineJoinMiter, MiterLimit: 10}
	s.vertices, s.indices = s.path(pts).AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)
	r, g, b, a := c.RGBA()
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(r) / 0xffff
		v.ColorG = float32(g) / 0xffff
		v.ColorB = float32(b) / 0xffff
		v.ColorA = float32(a) / 0xffff
	}
	s.draw()
}

func (s *ebitenSurface) draw() {
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, trianglesOptions())
}

// trianglesOptions renders path triangles. vector.Path fills with an
// overlapping fan, which FillRuleFillAll would spread over a star's notches.
func trianglesOptions() *ebiten.DrawTrianglesOptions {
	return &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
}

func (s *ebitenSurface) StrokeRect(x, y, w, h, width float64, c color.Color) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(width), c, false)
}

// Text places the label so that its top-left corner sits at (x, y).
func (s *ebitenSurface) Text(str string, x, y float64, c color.Color) {
	face := basicfont.Face7x13
	text.Draw(s.dst, str, face, int(x)+2, int(y)+face.Ascent+2, c)
}
