package hal

// rgbaFromARGB unpacks 0xAARRGGBB pixels into R, G, B, A byte order.
func rgbaFromARGB(dst []byte, src []uint32) {
	for i, p := range src {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		dst[j+0] = byte(p >> 16)
		dst[j+1] = byte(p >> 8)
		dst[j+2] = byte(p)
		dst[j+3] = byte(p >> 24)
	}
}
