package tracer

// NormalizeCoords maps pixel (x, y) of a w×h image onto the view plane.
//
// Row 0 maps to y = +1 and the horizontal axis is mirrored and scaled by w/h:
// pixel (0, 0) lands on (1, 1, 0) and pixel (w/2, h/2) on (1 - w/h, 0, 0).
func NormalizeCoords(x, y, w, h int) Vec3 {
	nx := float32(2*x) / float32(w)
	ny := float32(2*y) / float32(h)
	return Vec3{1 - nx*float32(w)/float32(h), 1 - ny, 0}
}
