// Package dial contains the speedometer scene composer and its animation
// driver: the mapping from a (needle angle, display value) pair to a fully
// composed frame, and the per-frame state advancement that produces the
// sweep.
package dial

import (
	"fmt"
	"image/color"

	"github.com/Immernachtreich/speedometer/internal/geom"
)

// Palette is the fixed set of colors the dial is drawn with.
type Palette struct {
	Background color.RGBA
	Rim        color.RGBA
	Track      color.RGBA
	Highlight  color.RGBA
	Tick       color.RGBA
	Label      color.RGBA
	Hub        color.RGBA
	Needle     color.RGBA
	Readout    color.RGBA
	Caption    color.RGBA
}

// Config holds the immutable visual constants of a dial. It is fixed at
// startup and shared read-only by the composer and the animation driver.
//
// Angles are in degrees with 0 = positive x-axis, increasing clockwise on
// the y-down canvas. The default sweep runs 135..405: the dial opens at the
// lower left, passes over the top, and closes at the lower right.
type Config struct {
	Width  int
	Height int

	StartAngle float64 // dial sweep start (degrees)
	EndAngle   float64 // dial sweep end (degrees)
	RestAngle  float64 // angle at which the needle animation stops

	BigSteps   int // labeled major ticks, including both ends
	SmallSteps int // unlabeled minor ticks between two majors

	Step float64 // needle advancement per frame (degrees)

	ReadoutTextSize float64
	LabelTextSize   float64
	CaptionTextSize float64

	NeedleHalfWidth float64 // half the needle base, in pixels
	HubRadius       float64

	Unit string // caption under the readout

	Palette Palette
}

// DefaultConfig returns the stock 500x500 speedometer: a 270 degree sweep
// from 135 to 405, eleven labeled ticks 0..100, needle resting at 335.
func DefaultConfig() Config {
	return Config{
		Width:  500,
		Height: 500,

		StartAngle: 135,
		EndAngle:   405,
		RestAngle:  335,

		BigSteps:   11,
		SmallSteps: 4,

		Step: 1,

		ReadoutTextSize: 48,
		LabelTextSize:   16,
		CaptionTextSize: 18,

		NeedleHalfWidth: 6,
		HubRadius:       10,

		Unit: "km/h",

		Palette: Palette{
			Background: color.RGBA{R: 0x12, G: 0x16, B: 0x1d, A: 0xff},
			Rim:        color.RGBA{R: 0x3a, G: 0x42, B: 0x50, A: 0xff},
			Track:      color.RGBA{R: 0x2a, G: 0x30, B: 0x3b, A: 0xff},
			Highlight:  color.RGBA{R: 0xff, G: 0x6b, B: 0x2b, A: 0xff},
			Tick:       color.RGBA{R: 0x8a, G: 0x93, B: 0xa3, A: 0xff},
			Label:      color.RGBA{R: 0xc8, G: 0xd0, B: 0xdc, A: 0xff},
			Hub:        color.RGBA{R: 0xdd, G: 0xe2, B: 0xea, A: 0xff},
			Needle:     color.RGBA{R: 0xe6, G: 0x3c, B: 0x3c, A: 0xff},
			Readout:    color.RGBA{R: 0xf2, G: 0xf5, B: 0xfa, A: 0xff},
			Caption:    color.RGBA{R: 0x8a, G: 0x93, B: 0xa3, A: 0xff},
		},
	}
}

// Validate rejects configurations that would break the tick-increment
// formulas or the animation. Called once at startup; a failure here is a
// contract violation, not a runtime error.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("dial: canvas size %dx%d must be positive", c.Width, c.Height)
	}
	if c.StartAngle >= c.EndAngle {
		return fmt.Errorf("dial: start angle %.1f must be less than end angle %.1f", c.StartAngle, c.EndAngle)
	}
	if c.BigSteps < 2 {
		return fmt.Errorf("dial: big step count %d must be at least 2", c.BigSteps)
	}
	if c.SmallSteps < 0 {
		return fmt.Errorf("dial: small step count %d must not be negative", c.SmallSteps)
	}
	if c.Step <= 0 {
		return fmt.Errorf("dial: animation step %.2f must be positive", c.Step)
	}
	if c.RestAngle < c.StartAngle {
		return fmt.Errorf("dial: rest angle %.1f must not precede start angle %.1f", c.RestAngle, c.StartAngle)
	}
	return nil
}

// Derived holds the values computed once from a valid Config. It never
// drifts from the Config it was derived from.
type Derived struct {
	Sweep          float64 // EndAngle - StartAngle
	MajorStep      float64 // degrees between two labeled ticks
	MinorStep      float64 // degrees between two minor ticks
	MinorTickCount int     // minor tick positions, both boundaries included
	Center         geom.Point
	Radius         float64 // half the smaller canvas dimension
}

// Derive computes the dial geometry. The Config must have been validated.
func (c Config) Derive() Derived {
	sweep := c.EndAngle - c.StartAngle
	minorDivs := (c.SmallSteps + 1) * (c.BigSteps - 1)
	r := float64(min(c.Width, c.Height)) / 2
	return Derived{
		Sweep:          sweep,
		MajorStep:      sweep / float64(c.BigSteps-1),
		MinorStep:      sweep / float64(minorDivs),
		MinorTickCount: minorDivs + 1,
		Center:         geom.Pt(float64(c.Width)/2, float64(c.Height)/2),
		Radius:         r,
	}
}

// MaxValue is the display value the readout reaches when the needle
// completes the full sweep.
func (c Config) MaxValue() float64 {
	return float64(c.BigSteps-1) * 10
}
