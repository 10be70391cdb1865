package imfilter

import (
	"math"
	"math/rand"

	"github.com/jvlmdr/go-cv/rimg64"
)

const eps = 1e-12

func epsEq(want, got, eps float64) bool {
	return math.Abs(want-got) <= eps
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

func randImage(width, height int) *rimg64.Image {
	f := rimg64.New(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			f.Set(x, y, rand.Float64())
		}
	}
	return f
}
