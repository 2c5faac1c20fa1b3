package snapshot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	case FormatTGA:
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", f, err)
	}
	return nil
}

// Options controls how a frame is written.
type Options struct {
	Format Format // zero means "from the file extension"
	Scale  int    // integer upscale factor
	Thumb  uint   // thumbnail width; 0 disables the thumbnail
}

// Result lists what Write produced.
type Result struct {
	Path      string
	ThumbPath string
	Format    Format
	Bytes     int
}

// EncodeFrame builds the image for px and encodes it into memory.
func EncodeFrame(px []uint32, width, height int, f Format, scale int) ([]byte, error) {
	img, err := ToImage(px, width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, Upscale(img, scale), f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes the frame to path, and a thumbnail next to it when
// opts.Thumb is set ("name.thumb.<ext>").
func Write(path string, px []uint32, width, height int, opts Options) (Result, error) {
	f := opts.Format
	if f == 0 {
		var err error
		if f, err = FormatFromPath(path); err != nil {
			return Result{}, err
		}
	}

	data, err := EncodeFrame(px, width, height, f, opts.Scale)
	if err != nil {
		return Result{}, err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("snapshot: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Result{}, fmt.Errorf("snapshot: %w", err)
	}
	res := Result{Path: path, Format: f, Bytes: len(data)}

	if opts.Thumb > 0 {
		img, err := ToImage(px, width, height)
		if err != nil {
			return res, err
		}
		var buf bytes.Buffer
		if err := Encode(&buf, Thumbnail(img, opts.Thumb), f); err != nil {
			return res, err
		}
		res.ThumbPath = ThumbPath(path)
		if err := os.WriteFile(res.ThumbPath, buf.Bytes(), 0o644); err != nil {
			return res, fmt.Errorf("snapshot: %w", err)
		}
	}
	return res, nil
}

// ThumbPath derives the thumbnail file name from the frame path.
func ThumbPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".thumb" + ext
}
