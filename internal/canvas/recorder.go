package canvas

import (
	"image/color"

	"github.com/Immernachtreich/speedometer/internal/geom"
)

// Op is a recorded drawing command. This is a sealed interface: only the
// op types in this package implement it.
type Op interface {
	op()
}

type ClearOp struct {
	Color color.Color
}

type DotOp struct {
	Center geom.Point
	Style  DotStyle
}

type LineOp struct {
	From, To geom.Point
	Style    LineStyle
}

type ArcOp struct {
	Center           geom.Point
	Radius           float64
	StartDeg, EndDeg float64
	Style            ArcStyle
}

type TextOp struct {
	Anchor geom.Point
	Text   string
	Style  TextStyle
}

type TriangleOp struct {
	V1, V2, V3 geom.Point
	Style      TriangleStyle
}

func (ClearOp) op()    {}
func (DotOp) op()      {}
func (LineOp) op()     {}
func (ArcOp) op()      {}
func (TextOp) op()     {}
func (TriangleOp) op() {}

// Recorder is a Canvas that records every call as a typed op instead of
// rasterizing. Styles are recorded with defaults already applied, so the
// recorded sequence is exactly what a rasterizing backend would receive.
type Recorder struct {
	ops []Op
}

var _ Canvas = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Ops returns the recorded ops in call order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Reset discards all recorded ops.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

func (r *Recorder) Clear(clr color.Color) {
	r.ops = append(r.ops, ClearOp{Color: clr})
}

func (r *Recorder) Dot(center geom.Point, style DotStyle) {
	r.ops = append(r.ops, DotOp{Center: center, Style: style.withDefaults()})
}

func (r *Recorder) Line(a, b geom.Point, style LineStyle) {
	r.ops = append(r.ops, LineOp{From: a, To: b, Style: style.withDefaults()})
}

func (r *Recorder) Arc(center geom.Point, radius, startDeg, endDeg float64, style ArcStyle) {
	r.ops = append(r.ops, ArcOp{
		Center:   center,
		Radius:   radius,
		StartDeg: startDeg,
		EndDeg:   endDeg,
		Style:    style.withDefaults(),
	})
}

func (r *Recorder) Text(anchor geom.Point, s string, style TextStyle) {
	r.ops = append(r.ops, TextOp{Anchor: anchor, Text: s, Style: style.withDefaults()})
}

func (r *Recorder) Triangle(v1, v2, v3 geom.Point, style TriangleStyle) {
	r.ops = append(r.ops, TriangleOp{V1: v1, V2: v2, V3: v3, Style: style.withDefaults()})
}
