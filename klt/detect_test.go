package klt

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jvlmdr/go-klt/imgpyr"
)

func TestDetect_IsolatedCorner(t *testing.T) {
	const cx, cy = 16, 16
	pyr := imgpyr.New(blobImage(32, 32, cx, cy, 2), 1)
	features, thresh := Detect(pyr, DefaultConfig())
	if thresh <= 0 {
		t.Errorf("derived threshold: want positive, got %g", thresh)
	}
	if len(features) != 1 {
		t.Fatalf("features: want 1, got %d", len(features))
	}
	f := features[0]
	if math.Abs(f.X-cx) > 1 || math.Abs(f.Y-cy) > 1 {
		t.Errorf("position: want within 1px of (%d, %d), got (%g, %g)", cx, cy, f.X, f.Y)
	}
	if f.Trackness <= 0 {
		t.Errorf("trackness: want positive, got %g", f.Trackness)
	}
}

func TestDetect_FlatImage(t *testing.T) {
	pyr := imgpyr.New(constImage(32, 32, 0.5), 1)
	features, _ := Detect(pyr, DefaultConfig())
	if len(features) != 0 {
		t.Errorf("features on flat image: want 0, got %d", len(features))
	}
}

func TestDetect_FlatRegionEmitsNothing(t *testing.T) {
	// Left half flat, right half textured. The box window and gradient
	// bleed the texture a few pixels past the boundary.
	f := texture(64, 64, 0, 0)
	for x := 0; x < 32; x++ {
		for y := 0; y < f.Height; y++ {
			f.Set(x, y, 0.5)
		}
	}
	pyr := imgpyr.New(f, 1)
	features, _ := Detect(pyr, DefaultConfig())
	for _, p := range features {
		if p.X < 32-6 {
			t.Errorf("feature at (%g, %g) inside flat region", p.X, p.Y)
		}
	}
}

func TestTrackness_FlatIsZero(t *testing.T) {
	pyr := imgpyr.New(constImage(16, 16, 0.25), 1)
	level := pyr.Level(0)
	gxx, gxy, gyy := GradientMatrix(level.GradX, level.GradY, 7)
	trackness, mean := Trackness(gxx, gxy, gyy)
	if !epsEq(0, mean, 1e-12) {
		t.Errorf("mean trackness: want 0, got %g", mean)
	}
	for x := 0; x < trackness.Width; x++ {
		for y := 0; y < trackness.Height; y++ {
			if !epsEq(0, trackness.At(x, y), 1e-12) {
				t.Errorf("at (%d, %d): want 0, got %g", x, y, trackness.At(x, y))
			}
		}
	}
}

func TestMinEigenValue(t *testing.T) {
	cases := []struct {
		gxx, gxy, gyy float64
		want          float64
	}{
		{1, 0, 1, 1},
		{2, 0, 3, 2},
		{1, 1, 1, 0}, // rank one
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		got := minEigenValue(c.gxx, c.gxy, c.gyy)
		if !epsEq(c.want, got, 1e-12) {
			t.Errorf("minEig(%g, %g, %g): want %g, got %g", c.gxx, c.gxy, c.gyy, c.want, got)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("minEig(%g, %g, %g): not finite", c.gxx, c.gxy, c.gyy)
		}
	}
}

func randFeatures(n int, width, height float64) FeatureList {
	features := make(FeatureList, n)
	for i := range features {
		features[i] = Feature{
			X:         rand.Float64() * width,
			Y:         rand.Float64() * height,
			Trackness: rand.Float64(),
		}
	}
	return features
}

func TestRemoveTooClose_Properties(t *testing.T) {
	const minDist = 10
	features := randFeatures(200, 100, 100)
	kept := removeTooClose(features, minDist)

	// Survivors are pairwise far enough apart.
	for i := range kept {
		for j := i + 1; j < len(kept); j++ {
			if d := dist2(kept[i], kept[j]); d < minDist*minDist {
				t.Errorf("features %d and %d too close: dist2 %g", i, j, d)
			}
		}
	}

	// Every removed feature was within range of some feature at least as
	// trackable as itself.
	seen := make(map[Feature]bool)
	for _, f := range kept {
		seen[f] = true
	}
	for _, f := range features {
		if seen[f] {
			continue
		}
		found := false
		for _, g := range features {
			if g != f && g.Trackness >= f.Trackness && dist2(f, g) < minDist*minDist {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("feature (%g, %g) removed without a stronger neighbor", f.X, f.Y)
		}
	}
}

func TestRemoveTooClose_Idempotent(t *testing.T) {
	features := randFeatures(200, 100, 100)
	once := removeTooClose(features, 10)
	twice := removeTooClose(once, 10)
	if len(once) != len(twice) {
		t.Fatalf("length changed: %d to %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("feature %d changed: %v to %v", i, once[i], twice[i])
		}
	}
}

func TestRemoveTooClose_KeepsStronger(t *testing.T) {
	features := FeatureList{
		{X: 10, Y: 10, Trackness: 1},
		{X: 12, Y: 10, Trackness: 2},
		{X: 50, Y: 50, Trackness: 3},
	}
	kept := removeTooClose(features, 5)
	want := FeatureList{features[1], features[2]}
	if len(kept) != len(want) {
		t.Fatalf("length: want %d, got %d", len(want), len(kept))
	}
	for i := range want {
		if kept[i] != want[i] {
			t.Errorf("feature %d: want %v, got %v", i, want[i], kept[i])
		}
	}
}

func TestSolveTracking_Singular(t *testing.T) {
	dx, dy, ok := solveTracking(0, 0, 0, 1, 1, 1e-6)
	if ok {
		t.Error("singular system reported solvable")
	}
	if dx != 0 || dy != 0 {
		t.Errorf("displacement: want (0, 0), got (%g, %g)", dx, dy)
	}
	if math.IsNaN(dx) || math.IsNaN(dy) {
		t.Error("displacement is NaN")
	}
}

func TestSolveTracking_Identity(t *testing.T) {
	dx, dy, ok := solveTracking(1, 0, 1, 0.25, -0.5, 1e-6)
	if !ok {
		t.Fatal("well-conditioned system reported degenerate")
	}
	if !epsEq(0.25, dx, 1e-12) || !epsEq(-0.5, dy, 1e-12) {
		t.Errorf("displacement: want (0.25, -0.5), got (%g, %g)", dx, dy)
	}
}
