// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import "math"

// Length is a distance in English Metric Units (EMU), the coordinate unit of
// DrawingML.
type Length int64

const (
	EMU   Length = 1
	Point Length = 12700
	Inch  Length = 914400
)

// Inches converts a measurement in inches to a Length.
func Inches(in float64) Length {
	return Length(math.Round(in * float64(Inch)))
}

// Points converts a measurement in points to a Length.
func Points(pt float64) Length {
	return Length(math.Round(pt * float64(Point)))
}

// Inches reports l in inches.
func (l Length) Inches() float64 {
	return float64(l) / float64(Inch)
}

// centipoints converts a point size to the hundredths-of-a-point integers used
// by font sizes and paragraph spacing.
func centipoints(pt float64) int {
	return int(math.Round(pt * 100))
}

// scale returns frac of l.
func scale(l Length, frac float64) Length {
	return Length(math.Round(float64(l) * frac))
}
