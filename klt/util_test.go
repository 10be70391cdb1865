package klt

import (
	"math"

	"github.com/jvlmdr/go-cv/rimg64"
)

func epsEq(want, got, eps float64) bool {
	return math.Abs(want-got) <= eps
}

// texture samples a fixed smooth pattern with maxima in both directions.
// Shifting (dx, dy) moves the pattern content by (+dx, +dy) pixels, so a
// point at p in texture(w, h, 0, 0) appears at p+(dx, dy) in
// texture(w, h, dx, dy). Values stay within (0, 1).
func texture(width, height int, dx, dy float64) *rimg64.Image {
	f := rimg64.New(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			f.Set(x, y, textureAt(float64(x)-dx, float64(y)-dy))
		}
	}
	return f
}

func textureAt(x, y float64) float64 {
	return 0.5 +
		0.18*math.Sin(0.31*x) +
		0.18*math.Sin(0.27*y) +
		0.12*math.Sin(0.21*(x+y))
}

// blobImage is a flat image with a single Gaussian blob at (cx, cy).
func blobImage(width, height int, cx, cy, sigma float64) *rimg64.Image {
	f := rimg64.New(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			f.Set(x, y, 0.1+0.8*math.Exp(-(dx*dx+dy*dy)/(2*sigma*sigma)))
		}
	}
	return f
}

func constImage(width, height int, value float64) *rimg64.Image {
	f := rimg64.New(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			f.Set(x, y, value)
		}
	}
	return f
}
