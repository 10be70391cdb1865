package klt

import (
	"math"

	"github.com/jvlmdr/go-klt/imfilter"
	"github.com/jvlmdr/go-klt/imgpyr"
)

// Status describes how tracking of one feature went.
type Status struct {
	// Iterations is the number of solver iterations at the finest level.
	Iterations int
	// Converged reports whether the finest level stopped because the
	// update fell below the convergence threshold rather than hitting
	// the iteration cap.
	Converged bool
	// Degenerate reports whether any level hit a near-singular tracking
	// matrix and stopped refining there.
	Degenerate bool
	// OutOfBounds reports whether any level was aborted because the
	// patch reached outside the image (aligned mode only).
	OutOfBounds bool
}

// Track follows every feature of the first image into the second.
// The output list has the same length and order as the input; features are
// never dropped, however badly they track. status[i] describes feature i.
// Trackness is carried over from the input, not recomputed.
func Track(pyr1 *imgpyr.Pyramid, features FeatureList, pyr2 *imgpyr.Pyramid, cfg Config) (FeatureList, []Status) {
	out := make(FeatureList, len(features))
	status := make([]Status, len(features))
	for i, f := range features {
		out[i], status[i] = TrackFeature(pyr1, f, pyr2, cfg)
	}
	return out, status
}

// TrackFeature follows a single feature from the first image into the
// second, refining its position from the coarsest pyramid level down to
// the finest. The returned status reflects the finest level's iteration
// count and convergence.
func TrackFeature(pyr1 *imgpyr.Pyramid, feature Feature, pyr2 *imgpyr.Pyramid, cfg Config) (Feature, Status) {
	top := pyr1.NumLevels() - 1
	// Start the estimate at the feature position itself; it is scaled up
	// by 2 on entering each level, including the coarsest.
	scale := math.Pow(2, float64(top+1))
	x2 := feature.X / scale
	y2 := feature.Y / scale

	var status Status
	for i := top; i >= 0; i-- {
		s := math.Pow(2, float64(i))
		x1 := feature.X / s
		y1 := feature.Y / s
		x2 *= 2
		y2 *= 2

		var level Status
		x2, y2, level = trackLevel(pyr1.Level(i), x1, y1, pyr2.Level(i), x2, y2, cfg)
		status.Degenerate = status.Degenerate || level.Degenerate
		status.OutOfBounds = status.OutOfBounds || level.OutOfBounds
		if i == 0 {
			status.Iterations = level.Iterations
			status.Converged = level.Converged
		}
	}

	tracked := feature
	tracked.X = x2
	tracked.Y = y2
	return tracked, status
}

// trackLevel iterates accumulate-and-solve at one pyramid level until the
// update is small enough or the iteration cap is reached. Both
// accumulation modes share this loop; they differ only in how the patch
// sums are built and in how the position update is applied.
func trackLevel(l1 imgpyr.Level, x1, y1 float64, l2 imgpyr.Level, x2, y2 float64, cfg Config) (float64, float64, Status) {
	var status Status
	half := cfg.halfWindow()

	if cfg.Mode == Aligned {
		// Whole-pixel positions; the sub-pixel residual of the estimate
		// is preserved and restored after refinement.
		x1i, y1i := int(math.Round(x1)), int(math.Round(y1))
		x2i, y2i := int(math.Round(x2)), int(math.Round(y2))
		rx, ry := x2-float64(x2i), y2-float64(y2i)
		for it := 0; it < cfg.MaxIterations; it++ {
			status.Iterations = it + 1
			gxx, gxy, gyy, ex, ey, ok := accumulateAligned(l1, x1i, y1i, l2, x2i, y2i, half)
			if !ok {
				status.OutOfBounds = true
				break
			}
			dx, dy, ok := solveTracking(gxx, gxy, gyy, ex, ey, cfg.MinDeterminant)
			if !ok {
				status.Degenerate = true
				break
			}
			if dx*dx+dy*dy < 1 {
				status.Converged = true
				break
			}
			x2i += int(math.Round(dx))
			y2i += int(math.Round(dy))
		}
		return float64(x2i) + rx, float64(y2i) + ry, status
	}

	for it := 0; it < cfg.MaxIterations; it++ {
		status.Iterations = it + 1
		gxx, gxy, gyy, ex, ey := accumulate(l1, x1, y1, l2, x2, y2, half)
		dx, dy, ok := solveTracking(gxx, gxy, gyy, ex, ey, cfg.MinDeterminant)
		if !ok {
			status.Degenerate = true
			break
		}
		x2 += dx
		y2 += dy
		if dx*dx+dy*dy < cfg.MinUpdateDist2 {
			status.Converged = true
			break
		}
	}
	return x2, y2, status
}

// accumulate builds the patch sums of the tracking equation with bilinear
// sub-pixel sampling around the reference position in the first image and
// the current estimate in the second.
func accumulate(l1 imgpyr.Level, x1, y1 float64, l2 imgpyr.Level, x2, y2 float64, half int) (gxx, gxy, gyy, ex, ey float64) {
	for j := -half; j <= half; j++ {
		for i := -half; i <= half; i++ {
			u1, v1 := x1+float64(i), y1+float64(j)
			u2, v2 := x2+float64(i), y2+float64(j)
			a := imfilter.SampleLinear(l1.Image, u1, v1)
			b := imfilter.SampleLinear(l2.Image, u2, v2)
			gx := imfilter.SampleLinear(l2.GradX, u2, v2)
			gy := imfilter.SampleLinear(l2.GradY, u2, v2)
			gxx += gx * gx
			gxy += gx * gy
			gyy += gy * gy
			ex += (a - b) * gx
			ey += (a - b) * gy
		}
	}
	return gxx, gxy, gyy, ex, ey
}

// accumulateAligned builds the patch sums at whole-pixel offsets without
// interpolation. A patch which reaches outside either image reports not
// ok; the level must then be abandoned rather than solved on partial sums.
func accumulateAligned(l1 imgpyr.Level, x1, y1 int, l2 imgpyr.Level, x2, y2 int, half int) (gxx, gxy, gyy, ex, ey float64, ok bool) {
	for j := -half; j <= half; j++ {
		for i := -half; i <= half; i++ {
			u1, v1 := x1+i, y1+j
			u2, v2 := x2+i, y2+j
			if !contains(l1, u1, v1) || !contains(l2, u2, v2) {
				return 0, 0, 0, 0, 0, false
			}
			a := l1.Image.At(u1, v1)
			b := l2.Image.At(u2, v2)
			gx := l2.GradX.At(u2, v2)
			gy := l2.GradY.At(u2, v2)
			gxx += gx * gx
			gxy += gx * gy
			gyy += gy * gy
			ex += (a - b) * gx
			ey += (a - b) * gy
		}
	}
	return gxx, gxy, gyy, ex, ey, true
}

func contains(l imgpyr.Level, x, y int) bool {
	return x >= 0 && x < l.Image.Width && y >= 0 && y < l.Image.Height
}
