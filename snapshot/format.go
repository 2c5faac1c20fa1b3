package snapshot

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrUnknownFormat = errors.New("snapshot: unknown format")

// Format is an output image encoding.
type Format uint8

const (
	FormatPNG Format = iota + 1
	FormatWebP
	FormatTGA
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatWebP:
		return "webp"
	case FormatTGA:
		return "tga"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Ext is the file extension including the dot.
func (f Format) Ext() string { return "." + f.String() }

func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatWebP:
		return "image/webp"
	case FormatTGA:
		return "image/x-tga"
	default:
		return "application/octet-stream"
	}
}

// ParseFormat accepts "png", "webp" or "tga" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "webp":
		return FormatWebP, nil
	case "tga":
		return FormatTGA, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}
