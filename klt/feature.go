package klt

// Feature is a trackable image point in level-0 coordinates.
type Feature struct {
	X, Y float64
	// Trackness is the minimum eigenvalue of the structure tensor at the
	// point where the feature was detected.
	Trackness float64
}

// FeatureList is an ordered list of features.
type FeatureList []Feature

func dist2(a, b Feature) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
