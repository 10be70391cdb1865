package imfilter

import "github.com/jvlmdr/go-cv/rimg64"

// Gradients computes horizontal and vertical derivative fields by central
// difference, falling back to one-sided differences at the border.
func Gradients(f *rimg64.Image) (gx, gy *rimg64.Image) {
	gx = rimg64.New(f.Width, f.Height)
	gy = rimg64.New(f.Width, f.Height)
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			x0, x1 := max(x-1, 0), min(x+1, f.Width-1)
			y0, y1 := max(y-1, 0), min(y+1, f.Height-1)
			if x1 > x0 {
				gx.Set(x, y, (f.At(x1, y)-f.At(x0, y))/float64(x1-x0))
			}
			if y1 > y0 {
				gy.Set(x, y, (f.At(x, y1)-f.At(x, y0))/float64(y1-y0))
			}
		}
	}
	return gx, gy
}
