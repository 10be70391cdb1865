/*
Package klt detects and tracks sparse point features between images using
pyramidal Kanade-Lucas-Tomasi tracking.

Detection scores every pixel by the minimum eigenvalue of its local
gradient structure tensor, keeps local maxima of that score and greedily
removes features which are too close together:

	pyr1 := imgpyr.New(im1, 3)
	cfg := klt.DefaultConfig()
	features, _ := klt.Detect(pyr1, cfg)

Tracking refines each feature position from the coarsest pyramid level to
the finest, iterating a two-unknown translation solve over a square patch
until the update is small or the iteration cap is reached:

	pyr2 := imgpyr.New(im2, 3)
	tracked, status := klt.Track(pyr1, features, pyr2, cfg)

The output list has the same length and order as the input. Poorly tracked
features are not dropped; status[i] reports convergence and degeneracy per
feature so that the caller can filter.
*/
package klt
