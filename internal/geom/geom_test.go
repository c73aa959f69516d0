package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestRadiansDegreesRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
	}{
		{"zero", 0},
		{"right angle", 90},
		{"dial start", 135},
		{"needle rest", 335},
		{"past full turn", 405},
		{"negative", -45},
		{"fractional", 12.34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Degrees(Radians(tt.deg))
			if math.Abs(got-tt.deg) > eps {
				t.Errorf("Degrees(Radians(%v)) = %v, want %v", tt.deg, got, tt.deg)
			}
		})
	}
}

func TestRadiansKnownValues(t *testing.T) {
	if got := Radians(180); math.Abs(got-math.Pi) > eps {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
	if got := Radians(90); math.Abs(got-math.Pi/2) > eps {
		t.Errorf("Radians(90) = %v, want pi/2", got)
	}
}

func TestPolarOffsetDistance(t *testing.T) {
	center := Pt(250, 250)
	tests := []struct {
		name  string
		angle float64
		dist  float64
	}{
		{"east", 0, 100},
		{"south", 90, 100},
		{"dial start", 135, 175},
		{"unnormalized angle", 405, 50},
		{"negative distance", 200, -75},
		{"zero distance", 77, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PolarOffset(center, tt.angle, tt.dist)
			dx, dy := p.X-center.X, p.Y-center.Y
			got := math.Sqrt(dx*dx + dy*dy)
			want := math.Abs(tt.dist)
			if math.Abs(got-want) > eps {
				t.Errorf("distance = %v, want %v", got, want)
			}
		})
	}
}

func TestPolarOffsetZeroDistanceIsCenter(t *testing.T) {
	center := Pt(13, -7)
	p := PolarOffset(center, 42, 0)
	if math.Abs(p.X-center.X) > eps || math.Abs(p.Y-center.Y) > eps {
		t.Errorf("PolarOffset(center, 42, 0) = %v, want %v", p, center)
	}
}

func TestPolarOffsetClockwiseYDown(t *testing.T) {
	// On a y-down surface, 90 degrees points straight down.
	center := Pt(0, 0)
	p := PolarOffset(center, 90, 10)
	if math.Abs(p.X) > eps || math.Abs(p.Y-10) > eps {
		t.Errorf("PolarOffset(origin, 90, 10) = %v, want (0, 10)", p)
	}

	// Negative distance reflects through the center.
	q := PolarOffset(center, 90, -10)
	if math.Abs(q.X) > eps || math.Abs(q.Y+10) > eps {
		t.Errorf("PolarOffset(origin, 90, -10) = %v, want (0, -10)", q)
	}
}

func TestPolarOffsetAngleWraps(t *testing.T) {
	center := Pt(100, 100)
	a := PolarOffset(center, 45, 60)
	b := PolarOffset(center, 405, 60)
	if math.Abs(a.X-b.X) > eps || math.Abs(a.Y-b.Y) > eps {
		t.Errorf("PolarOffset at 45 and 405 degrees differ: %v vs %v", a, b)
	}
}
