// Package geom provides the small amount of plane geometry the dial
// renderer needs: degree/radian conversion and polar-to-Cartesian offsets
// on a y-down pixel surface.
package geom

import "math"

// Point is a position on the drawing surface in pixels.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// PolarOffset returns the point at the given distance and angle from center.
// Angle 0 points along the positive x-axis and increases clockwise, which is
// the natural convention on a y-down surface. Neither argument is
// normalized: a negative distance reflects through center, and angles
// outside [0,360) wrap implicitly via the trig functions.
func PolarOffset(center Point, angleDeg, dist float64) Point {
	rad := Radians(angleDeg)
	return Point{
		X: center.X + dist*math.Cos(rad),
		Y: center.Y + dist*math.Sin(rad),
	}
}
