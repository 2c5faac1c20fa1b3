package hal

import "testing"

func TestRGBAFromARGB(t *testing.T) {
	src := []uint32{0xFF112233, 0x80AABBCC}
	dst := make([]byte, 8)
	rgbaFromARGB(dst, src)
	want := []byte{0x11, 0x22, 0x33, 0xFF, 0xAA, 0xBB, 0xCC, 0x80}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("byte %d = %#02x, want %#02x", i, dst[i], want[i])
		}
	}
}

func TestRGBAFromARGBShortDst(t *testing.T) {
	dst := make([]byte, 6)
	rgbaFromARGB(dst, []uint32{0xFF010203, 0xFF040506})
	if dst[0] != 0x01 || dst[4] != 0 {
		t.Fatalf("unexpected dst %v", dst)
	}
}
