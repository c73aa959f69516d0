// Package canvas is the primitive drawing layer of the speedometer. It
// defines a small backend-independent Canvas interface (dot, line, arc,
// text, filled triangle) plus per-call style records with documented
// defaults, so the scene composer never touches a concrete surface type.
//
// Two implementations are provided: Ebiten draws on an *ebiten.Image, and
// Recorder captures calls as typed ops for headless tests.
package canvas

import (
	"image/color"

	"github.com/Immernachtreich/speedometer/internal/geom"
)

// Direction selects which way an arc sweeps between its start and end
// angles, and therefore which of the two possible arcs is drawn.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Canvas is an abstract 2D drawing surface. Every operation is a pure
// side-effecting draw: none reads surface state back, and geometry beyond
// the surface bounds is silently clipped by the surface itself.
type Canvas interface {
	// Clear fills the entire surface with a single color.
	Clear(clr color.Color)
	// Dot draws a filled circle centered at center.
	Dot(center geom.Point, style DotStyle)
	// Line draws a straight stroked segment from a to b.
	Line(a, b geom.Point, style LineStyle)
	// Arc draws a stroked circular arc around center between the two
	// angles, sweeping in the style's Direction.
	Arc(center geom.Point, radius, startDeg, endDeg float64, style ArcStyle)
	// Text draws s with its top-left anchor at the given point. There is
	// no automatic centering; callers position text themselves.
	Text(anchor geom.Point, s string, style TextStyle)
	// Triangle draws a filled triangle from three vertices, closed path,
	// no stroke.
	Triangle(v1, v2, v3 geom.Point, style TriangleStyle)
}

// defaultColor is used whenever a style leaves its color unset.
var defaultColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// DotStyle styles a filled circle. Zero value means radius 4, white.
type DotStyle struct {
	Radius float64
	Color  color.Color
}

func (s DotStyle) withDefaults() DotStyle {
	if s.Radius <= 0 {
		s.Radius = 4
	}
	if s.Color == nil {
		s.Color = defaultColor
	}
	return s
}

// LineStyle styles a stroked segment. Zero value means width 1, white.
type LineStyle struct {
	Color color.Color
	Width float64
}

func (s LineStyle) withDefaults() LineStyle {
	if s.Width <= 0 {
		s.Width = 1
	}
	if s.Color == nil {
		s.Color = defaultColor
	}
	return s
}

// ArcStyle styles a stroked arc. Zero value means width 1, white,
// clockwise sweep.
type ArcStyle struct {
	Color     color.Color
	Width     float64
	Direction Direction
}

func (s ArcStyle) withDefaults() ArcStyle {
	if s.Width <= 0 {
		s.Width = 1
	}
	if s.Color == nil {
		s.Color = defaultColor
	}
	return s
}

// TextStyle styles a text draw. Zero value means size 16, white.
type TextStyle struct {
	Size  float64
	Color color.Color
}

func (s TextStyle) withDefaults() TextStyle {
	if s.Size <= 0 {
		s.Size = 16
	}
	if s.Color == nil {
		s.Color = defaultColor
	}
	return s
}

// TriangleStyle styles a filled triangle. Zero value means white.
type TriangleStyle struct {
	Color color.Color
}

func (s TriangleStyle) withDefaults() TriangleStyle {
	if s.Color == nil {
		s.Color = defaultColor
	}
	return s
}
