package tracer

// Background is the color of rays that miss, and of unlit surface points.
var Background = Pack(0, 0, 0, 255)

// Pack encodes ARGB8888: blue is the least significant byte, alpha the most.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(b) | uint32(g)<<8 | uint32(r)<<16 | uint32(a)<<24
}

// Unpack is the inverse of Pack.
func Unpack(p uint32) (r, g, b, a uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p), uint8(p >> 24)
}
