// Package pixconv converts raw pixel buffers between in-memory color
// encodings.
//
// # Overview
//
// pixconv is the pixel format engine of the GoGPU ecosystem. It moves
// pixels between packed RGB layouts (32, 24, 16 and 8 bits per pixel),
// planar RGB(A), premultiplied and straight alpha, full-resolution YUV and
// the four 4:2:0 chroma-subsampled layouts produced by cameras and video
// codecs. Rounding and clamping are fixed, so a conversion gives the same
// bytes on every platform.
//
// # Quick Start
//
//	import "github.com/gogpu/pixconv"
//
//	src := pixconv.BitmapData{Width: w, Height: h, Format: pixconv.FormatNV12}
//	src.Planes[0].Data = frame // Y plane followed by the UV plane
//
//	dst, _ := pixconv.NewBitmap(w, h, pixconv.FormatBGRA)
//	defer dst.Release()
//
//	pixconv.Convert(dst.BitmapData(), src)
//
// # Formats
//
// A [Format] is a packed 32-bit descriptor. Every query on it (color space,
// alpha, plane count, bit widths) is a bit extraction, and two formats are
// equal exactly when their values are equal. See the Format* constants for
// the supported encodings.
//
// # Conversion paths
//
// [ConvertAlpha] picks one of four paths:
//   - 4:2:0 to 4:2:0: plane reshuffle, no resampling
//   - to 4:2:0: 2x2 block subsampling
//   - from 4:2:0: nearest chroma upsampling
//   - otherwise: verbatim copy for identical formats, or decode to [Color]
//     and re-encode row by row
//
// Degenerate input (zero size, odd dimensions at a 4:2:0 endpoint, an
// unknown format) is a silent no-op.
//
// # Alpha
//
// [Color] values are straight (non-premultiplied). Formats with a PA suffix
// store premultiplied alpha and are converted with
// PA = NPA*(A+1)>>8 and NPA = PA*256/(A+1). The single-color helpers
// [Color.Premultiplied] and [Color.Unpremultiplied] use the compositing
// formulas instead; the two families are intentionally distinct.
//
// # Concurrency
//
// Conversions are synchronous and keep no state. Independent conversions
// over disjoint buffers may run on separate goroutines; [ConvertParallel]
// does exactly that for horizontal bands of one image.
package pixconv

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
