package snapshot

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// ToImage copies a row-major 0xAARRGGBB framebuffer into an NRGBA image.
func ToImage(px []uint32, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 || len(px) != width*height {
		return nil, fmt.Errorf("snapshot: %d pixels for %dx%d frame", len(px), width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, p := range px {
		j := i * 4
		img.Pix[j+0] = byte(p >> 16)
		img.Pix[j+1] = byte(p >> 8)
		img.Pix[j+2] = byte(p)
		img.Pix[j+3] = byte(p >> 24)
	}
	return img, nil
}

// Upscale enlarges img by an integer factor with nearest-neighbour sampling.
// A factor of 1 or less returns img unchanged.
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Thumbnail resizes img to the given width, keeping the aspect ratio.
func Thumbnail(img image.Image, width uint) image.Image {
	return resize.Resize(width, 0, img, resize.Bilinear)
}
