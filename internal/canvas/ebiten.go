package canvas

import (
	"bytes"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Immernachtreich/speedometer/internal/geom"
)

// whiteSubImage is the standard 1x1 white texture used as the source image
// when rendering triangulated vector paths.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

var goFaceSource *text.GoTextFaceSource

func init() {
	whiteImage.Fill(color.White)

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("canvas: loading embedded Go Regular font: " + err.Error())
	}
	goFaceSource = s
}

// Ebiten draws canvas primitives onto an *ebiten.Image. The surface is
// created and sized by the host; Ebiten only draws on it.
type Ebiten struct {
	dst *ebiten.Image
}

var _ Canvas = (*Ebiten)(nil)

// NewEbiten wraps an ebiten image as a Canvas.
func NewEbiten(dst *ebiten.Image) *Ebiten {
	return &Ebiten{dst: dst}
}

// Retarget points the canvas at a new destination image. Ebiten hands a
// fresh screen image to Draw every frame, so the game retargets once per
// frame instead of allocating a wrapper.
func (c *Ebiten) Retarget(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Ebiten) Clear(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *Ebiten) Dot(center geom.Point, style DotStyle) {
	s := style.withDefaults()
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(s.Radius), s.Color, true)
}

func (c *Ebiten) Line(a, b geom.Point, style LineStyle) {
	s := style.withDefaults()
	vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(s.Width), s.Color, true)
}

func (c *Ebiten) Arc(center geom.Point, radius, startDeg, endDeg float64, style ArcStyle) {
	s := style.withDefaults()

	dir := vector.Clockwise
	if s.Direction == CounterClockwise {
		dir = vector.CounterClockwise
	}

	var p vector.Path
	p.Arc(float32(center.X), float32(center.Y), float32(radius),
		float32(geom.Radians(startDeg)), float32(geom.Radians(endDeg)), dir)

	op := &vector.StrokeOptions{}
	op.Width = float32(s.Width)
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, op)
	c.drawVertices(vs, is, s.Color)
}

func (c *Ebiten) Text(anchor geom.Point, str string, style TextStyle) {
	s := style.withDefaults()
	face := &text.GoTextFace{Source: goFaceSource, Size: s.Size}
	op := &text.DrawOptions{}
	op.GeoM.Translate(anchor.X, anchor.Y)
	op.ColorScale.ScaleWithColor(s.Color)
	text.Draw(c.dst, str, face, op)
}

func (c *Ebiten) Triangle(v1, v2, v3 geom.Point, style TriangleStyle) {
	s := style.withDefaults()

	var p vector.Path
	p.MoveTo(float32(v1.X), float32(v1.Y))
	p.LineTo(float32(v2.X), float32(v2.Y))
	p.LineTo(float32(v3.X), float32(v3.Y))
	p.Close()

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	c.drawVertices(vs, is, s.Color)
}

func (c *Ebiten) drawVertices(vs []ebiten.Vertex, is []uint16, clr color.Color) {
	r, g, b, a := clr.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff

	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(vs, is, whiteSubImage, op)
}
