package klt

import (
	"math"

	"github.com/jvlmdr/go-cv/rimg64"
)

const crossWidth = 5

// DrawFeatures marks every feature on a 3-channel image.
func DrawFeatures(im *rimg64.Multi, features FeatureList, color [3]float64) {
	for _, f := range features {
		DrawFeature(im, f, color)
	}
}

// DrawFeature marks the rounded feature position with a small cross.
// Features whose center rounds outside the image are skipped.
func DrawFeature(im *rimg64.Multi, feature Feature, color [3]float64) {
	if im.Channels != 3 {
		panic("image does not have 3 channels")
	}
	x := int(math.Round(feature.X))
	y := int(math.Round(feature.Y))
	if x < 0 || x >= im.Width || y < 0 || y >= im.Height {
		return
	}
	for v := max(y-crossWidth, 0); v <= min(y+crossWidth, im.Height-1); v++ {
		for k := 0; k < 3; k++ {
			im.Set(x, v, k, color[k])
		}
	}
	for u := max(x-crossWidth, 0); u <= min(x+crossWidth, im.Width-1); u++ {
		for k := 0; k < 3; k++ {
			im.Set(u, y, k, color[k])
		}
	}
}
