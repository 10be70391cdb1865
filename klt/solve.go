package klt

// solveTracking solves the 2x2 normal equations
//
//	[gxx gxy] [dx]   [ex]
//	[gxy gyy] [dy] = [ey]
//
// by Cramer's rule. A determinant below minDet means the patch has no
// gradient variation in some direction (the aperture problem); the system
// is reported degenerate and the displacement is zero.
func solveTracking(gxx, gxy, gyy, ex, ey, minDet float64) (dx, dy float64, ok bool) {
	det := gxx*gyy - gxy*gxy
	if det < minDet {
		return 0, 0, false
	}
	dx = (gyy*ex - gxy*ey) / det
	dy = (gxx*ey - gxy*ex) / det
	return dx, dy, true
}
