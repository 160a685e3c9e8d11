package imageio

import (
	"path/filepath"
	"strings"
)

// Kind identifies an image file format.
type Kind uint8

const (
	// KindUnknown is an unrecognized file format.
	KindUnknown Kind = iota
	// KindPNG is Portable Network Graphics.
	KindPNG
	// KindJPEG is JPEG/JFIF.
	KindJPEG
	// KindBMP is Windows bitmap.
	KindBMP
	// KindTIFF is Tagged Image File Format.
	KindTIFF
	// KindWebP is WebP. Decoding only.
	KindWebP
)

// String returns the kind name as used by image.Decode.
func (k Kind) String() string {
	switch k {
	case KindPNG:
		return "png"
	case KindJPEG:
		return "jpeg"
	case KindBMP:
		return "bmp"
	case KindTIFF:
		return "tiff"
	case KindWebP:
		return "webp"
	default:
		return "unknown"
	}
}

// CanEncode reports whether Encode supports k.
func (k Kind) CanEncode() bool {
	switch k {
	case KindPNG, KindJPEG, KindBMP, KindTIFF:
		return true
	default:
		return false
	}
}

// KindFromPath returns the kind matching the extension of path.
func KindFromPath(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return KindPNG
	case ".jpg", ".jpeg":
		return KindJPEG
	case ".bmp":
		return KindBMP
	case ".tif", ".tiff":
		return KindTIFF
	case ".webp":
		return KindWebP
	default:
		return KindUnknown
	}
}
