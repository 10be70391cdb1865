package klt

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/jvlmdr/go-klt/imfilter"
	"github.com/jvlmdr/go-klt/imgpyr"
)

// Detect finds trackable features in the finest level of the pyramid.
// It returns the features and the trackness threshold that was applied,
// which is cfg.MinTrackness if positive and otherwise the mean trackness
// of this image.
func Detect(pyr *imgpyr.Pyramid, cfg Config) (FeatureList, float64) {
	level := pyr.Level(0)
	gxx, gxy, gyy := GradientMatrix(level.GradX, level.GradY, cfg.WindowSize)
	trackness, mean := Trackness(gxx, gxy, gyy)
	thresh := cfg.MinTrackness
	if thresh <= 0 {
		thresh = mean
	}
	features := findLocalMaxima(trackness, thresh)
	return removeTooClose(features, cfg.MinFeatureDist), thresh
}

// GradientMatrix computes the per-pixel structure tensor from a pair of
// gradient fields. The elementwise gradient products are each summed over
// the tracking window by a box filter.
func GradientMatrix(gx, gy *rimg64.Image, size int) (gxx, gxy, gyy *rimg64.Image) {
	gxx = imfilter.BoxFilter(imfilter.MultiplyElements(gx, gx), size)
	gxy = imfilter.BoxFilter(imfilter.MultiplyElements(gx, gy), size)
	gyy = imfilter.BoxFilter(imfilter.MultiplyElements(gy, gy), size)
	return gxx, gxy, gyy
}

// Trackness reduces the structure tensor to its minimum eigenvalue at
// every pixel and also returns the mean over the image.
func Trackness(gxx, gxy, gyy *rimg64.Image) (*rimg64.Image, float64) {
	t := rimg64.New(gxx.Width, gxx.Height)
	for x := 0; x < t.Width; x++ {
		for y := 0; y < t.Height; y++ {
			t.Set(x, y, minEigenValue(gxx.At(x, y), gxy.At(x, y), gyy.At(x, y)))
		}
	}
	return t, floats.Sum(t.Elems) / float64(len(t.Elems))
}

// Minimum eigenvalue of the symmetric matrix [{gxx, gxy}, {gxy, gyy}].
// The discriminant is non-negative for any symmetric matrix; clip it to
// zero to keep rounding error out of the square root.
func minEigenValue(gxx, gxy, gyy float64) float64 {
	half := (gxx + gyy) / 2
	disc := half*half - (gxx*gyy - gxy*gxy)
	if disc < 0 {
		disc = 0
	}
	return half - math.Sqrt(disc)
}

// findLocalMaxima emits a feature at every interior pixel whose trackness
// reaches the threshold and is no smaller than its 8 neighbors. Ties count
// as maxima, so a plateau can emit several adjacent features. Pixels with
// zero trackness carry no gradient information and are never features.
func findLocalMaxima(t *rimg64.Image, thresh float64) FeatureList {
	var features FeatureList
	for y := 1; y < t.Height-1; y++ {
		for x := 1; x < t.Width-1; x++ {
			v := t.At(x, y)
			if v < thresh || v <= 0 {
				continue
			}
			if v >= t.At(x-1, y-1) && v >= t.At(x, y-1) && v >= t.At(x+1, y-1) &&
				v >= t.At(x-1, y) && v >= t.At(x+1, y) &&
				v >= t.At(x-1, y+1) && v >= t.At(x, y+1) && v >= t.At(x+1, y+1) {
				features = append(features, Feature{
					X:         float64(x),
					Y:         float64(y),
					Trackness: v,
				})
			}
		}
	}
	return features
}

// removeTooClose deletes the lower-trackness member of every pair of
// features closer than minDist. Features are visited in detection order,
// so exact trackness ties resolve in favor of the earlier (row-major
// first) feature.
func removeTooClose(features FeatureList, minDist float64) FeatureList {
	thresh := minDist * minDist
	alive := make([]bool, len(features))
	for i := range alive {
		alive[i] = true
	}
	for i := range features {
		if !alive[i] {
			continue
		}
		for j := i + 1; j < len(features); j++ {
			if !alive[j] {
				continue
			}
			if dist2(features[i], features[j]) >= thresh {
				continue
			}
			if features[i].Trackness < features[j].Trackness {
				alive[i] = false
				break
			}
			alive[j] = false
		}
	}
	keep := make(FeatureList, 0, len(features))
	for i, f := range features {
		if alive[i] {
			keep = append(keep, f)
		}
	}
	return keep
}
