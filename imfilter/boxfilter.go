package imfilter

import "github.com/jvlmdr/go-cv/rimg64"

// BoxFilter smooths a field with a moving average over a square window.
// The window size must be odd and positive.
// At the border the window is truncated and normalized by the number of
// pixels which remain inside.
func BoxFilter(f *rimg64.Image, size int) *rimg64.Image {
	if size < 1 || size%2 == 0 {
		panic("filter size is not odd and positive")
	}
	half := size / 2
	// Two separable passes, horizontal then vertical.
	tmp := rimg64.New(f.Width, f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			lo, hi := max(x-half, 0), min(x+half, f.Width-1)
			var sum float64
			for u := lo; u <= hi; u++ {
				sum += f.At(u, y)
			}
			tmp.Set(x, y, sum/float64(hi-lo+1))
		}
	}
	g := rimg64.New(f.Width, f.Height)
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			lo, hi := max(y-half, 0), min(y+half, f.Height-1)
			var sum float64
			for v := lo; v <= hi; v++ {
				sum += tmp.At(x, v)
			}
			g.Set(x, y, sum/float64(hi-lo+1))
		}
	}
	return g
}

// MultiplyElements computes the elementwise product of two fields.
func MultiplyElements(f, g *rimg64.Image) *rimg64.Image {
	if f.Width != g.Width || f.Height != g.Height {
		panic("dimensions are not the same")
	}
	dst := rimg64.New(f.Width, f.Height)
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			dst.Set(x, y, f.At(x, y)*g.At(x, y))
		}
	}
	return dst
}
