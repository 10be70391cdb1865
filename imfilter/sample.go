package imfilter

import (
	"math"

	"github.com/jvlmdr/go-cv/rimg64"
)

// SampleLinear interpolates the field bilinearly at a fractional position.
// Coordinates are clamped to the valid domain, so samples beyond the border
// repeat the edge value.
func SampleLinear(f *rimg64.Image, x, y float64) float64 {
	x = clamp(x, 0, float64(f.Width-1))
	y = clamp(y, 0, float64(f.Height-1))
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := min(x0+1, f.Width-1)
	y1 := min(y0+1, f.Height-1)
	a := x - float64(x0)
	b := y - float64(y0)
	return (1-b)*((1-a)*f.At(x0, y0)+a*f.At(x1, y0)) +
		b*((1-a)*f.At(x0, y1)+a*f.At(x1, y1))
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
