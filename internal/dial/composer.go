package dial

import (
	"strconv"

	"github.com/Immernachtreich/speedometer/internal/canvas"
	"github.com/Immernachtreich/speedometer/internal/geom"
)

// Radii of the dial features as fractions of the canvas radius, and the
// stroke widths of the arcs and ticks.
const (
	rimRadius      = 0.70
	trackRadius    = 0.75
	minorTickInner = 0.65
	minorTickOuter = 0.70
	majorTickInner = 0.575
	majorTickOuter = 0.70
	labelRadius    = 0.50
	needleLength   = 0.75

	rimWidth       = 2.0
	trackWidth     = 18.0
	minorTickWidth = 1.0
	majorTickWidth = 3.0

	// Approximate advance of one glyph as a fraction of the text size.
	// Used for centering since the canvas anchors text at its top left.
	glyphWidth = 0.5
)

// Composer redraws the complete dial for a given needle angle and readout
// text. It holds only immutable configuration; all per-frame state lives in
// Animation and arrives by parameter.
type Composer struct {
	cfg Config
	geo Derived
}

// NewComposer validates cfg and derives the dial geometry.
func NewComposer(cfg Config) (*Composer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Composer{cfg: cfg, geo: cfg.Derive()}, nil
}

// Geometry returns the derived dial geometry.
func (cm *Composer) Geometry() Derived {
	return cm.geo
}

// RenderFrame clears the surface and redraws the whole dial, back to
// front. It is fully deterministic given its arguments: two calls with the
// same inputs produce identical draw sequences.
func (cm *Composer) RenderFrame(c canvas.Canvas, needleAngle float64, displayValue string) {
	cfg, geo := cm.cfg, cm.geo
	pal := cfg.Palette

	c.Clear(pal.Background)

	// Rim, background track, then the highlight segment tracking the
	// needle. All three sweep the same direction so the highlight sits
	// exactly on top of the track.
	c.Arc(geo.Center, rimRadius*geo.Radius, cfg.StartAngle, cfg.EndAngle,
		canvas.ArcStyle{Color: pal.Rim, Width: rimWidth})
	c.Arc(geo.Center, trackRadius*geo.Radius, cfg.StartAngle, cfg.EndAngle,
		canvas.ArcStyle{Color: pal.Track, Width: trackWidth})
	c.Arc(geo.Center, trackRadius*geo.Radius, cfg.StartAngle, needleAngle,
		canvas.ArcStyle{Color: pal.Highlight, Width: trackWidth})

	cm.drawMinorTicks(c)
	cm.drawMajorTicks(c)

	c.Dot(geo.Center, canvas.DotStyle{Radius: cfg.HubRadius, Color: pal.Hub})

	cm.drawNeedle(c, needleAngle)
	cm.drawReadout(c, displayValue)
}

func (cm *Composer) drawMinorTicks(c canvas.Canvas) {
	cfg, geo := cm.cfg, cm.geo
	style := canvas.LineStyle{Color: cfg.Palette.Tick, Width: minorTickWidth}
	for i := 0; i < geo.MinorTickCount; i++ {
		angle := cfg.StartAngle + float64(i)*geo.MinorStep
		from := geom.PolarOffset(geo.Center, angle, minorTickInner*geo.Radius)
		to := geom.PolarOffset(geo.Center, angle, minorTickOuter*geo.Radius)
		c.Line(from, to, style)
	}
}

func (cm *Composer) drawMajorTicks(c canvas.Canvas) {
	cfg, geo := cm.cfg, cm.geo
	lineStyle := canvas.LineStyle{Color: cfg.Palette.Tick, Width: majorTickWidth}
	textStyle := canvas.TextStyle{Size: cfg.LabelTextSize, Color: cfg.Palette.Label}
	for i := 0; i < cfg.BigSteps; i++ {
		angle := cfg.StartAngle + float64(i)*geo.MajorStep
		from := geom.PolarOffset(geo.Center, angle, majorTickInner*geo.Radius)
		to := geom.PolarOffset(geo.Center, angle, majorTickOuter*geo.Radius)
		c.Line(from, to, lineStyle)

		// Label sits inside its tick, nudged by half its pixel size in
		// both axes so the glyphs center on the tick line.
		anchor := geom.PolarOffset(geo.Center, angle, labelRadius*geo.Radius)
		anchor.X -= cfg.LabelTextSize / 2
		anchor.Y -= cfg.LabelTextSize / 2
		c.Text(anchor, strconv.Itoa(i*10), textStyle)
	}
}

func (cm *Composer) drawNeedle(c canvas.Canvas, needleAngle float64) {
	cfg, geo := cm.cfg, cm.geo
	base1 := geom.PolarOffset(geo.Center, needleAngle-90, cfg.NeedleHalfWidth)
	base2 := geom.PolarOffset(geo.Center, needleAngle+90, cfg.NeedleHalfWidth)
	tip := geom.PolarOffset(geo.Center, needleAngle, needleLength*geo.Radius)
	c.Triangle(base1, base2, tip, canvas.TriangleStyle{Color: cfg.Palette.Needle})
}

func (cm *Composer) drawReadout(c canvas.Canvas, displayValue string) {
	cfg, geo := cm.cfg, cm.geo

	// Centering is approximate: character count times a nominal glyph
	// width, not measured text metrics.
	width := float64(len(displayValue)) * cfg.ReadoutTextSize * glyphWidth
	anchor := geom.Pt(geo.Center.X-width/2, geo.Center.Y+cfg.ReadoutTextSize/2)
	c.Text(anchor, displayValue, canvas.TextStyle{Size: cfg.ReadoutTextSize, Color: cfg.Palette.Readout})

	capWidth := float64(len(cfg.Unit)) * cfg.CaptionTextSize * glyphWidth
	capAnchor := geom.Pt(geo.Center.X-capWidth/2, geo.Center.Y+cfg.ReadoutTextSize*1.8)
	c.Text(capAnchor, cfg.Unit, canvas.TextStyle{Size: cfg.CaptionTextSize, Color: cfg.Palette.Caption})
}
