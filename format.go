package pixconv

import (
	"fmt"
	"slices"
	"strings"
)

// ColorSpace identifies the color model of a Format.
type ColorSpace uint8

const (
	// ColorSpaceNone is the color space of FormatNone.
	ColorSpaceNone ColorSpace = iota

	// ColorSpaceRGB covers packed and planar RGB layouts and gray.
	ColorSpaceRGB

	// ColorSpaceYUV covers full-resolution and 4:2:0 Y'CbCr layouts.
	ColorSpaceYUV
)

// String returns the color space name.
func (s ColorSpace) String() string {
	switch s {
	case ColorSpaceNone:
		return "None"
	case ColorSpaceRGB:
		return "RGB"
	case ColorSpaceYUV:
		return "YUV"
	default:
		return fmt.Sprintf("ColorSpace(%d)", uint8(s))
	}
}

// Format describes one pixel encoding as a packed 32-bit value.
//
// Bit layout, most significant first:
//
//	colorSpace:4 | hasAlpha:1 | premultiplied:1 | planeCount-1:2 |
//	bitsPerSample:8 | bitsPerPixel:8 | id:8
//
// The id separates formats of identical shape, such as the four 32-bit
// RGB orderings. Format values are part of the public API and never change.
type Format uint32

// Bit positions of the Format fields.
const (
	formatShiftSpace   = 28
	formatShiftAlpha   = 27
	formatShiftPremul  = 26
	formatShiftPlanes  = 24
	formatShiftSample  = 16
	formatShiftPixel   = 8
	formatMaskSpace    = 0xF
	formatMaskPlanes   = 0x3
	formatMaskBits     = 0xFF
	formatMaskID       = 0xFF
	formatBitAlpha     = Format(1) << formatShiftAlpha
	formatBitPremul    = Format(1) << formatShiftPremul
	bitsPerPixelYUV420 = 12
)

// MaxPlanes is the largest number of memory planes a Format can use.
const MaxPlanes = 4

// Field values used to compose the Format constants.
const (
	spaceRGB = Format(ColorSpaceRGB) << formatShiftSpace
	spaceYUV = Format(ColorSpaceYUV) << formatShiftSpace

	planes1 = Format(0) << formatShiftPlanes
	planes2 = Format(1) << formatShiftPlanes
	planes3 = Format(2) << formatShiftPlanes
	planes4 = Format(3) << formatShiftPlanes

	sample8  = Format(8) << formatShiftSample
	sample16 = Format(16) << formatShiftSample

	pixel8  = Format(8) << formatShiftPixel
	pixel12 = Format(bitsPerPixelYUV420) << formatShiftPixel
	pixel16 = Format(16) << formatShiftPixel
	pixel24 = Format(24) << formatShiftPixel
	pixel32 = Format(32) << formatShiftPixel
)

// FormatNone is the zero Format; conversions involving it are no-ops.
const FormatNone Format = 0

// Supported formats. Channel names list bytes in memory order.
const (
	FormatRGBA = spaceRGB | formatBitAlpha | planes1 | sample8 | pixel32 | 1
	FormatBGRA = spaceRGB | formatBitAlpha | planes1 | sample8 | pixel32 | 2
	FormatARGB = spaceRGB | formatBitAlpha | planes1 | sample8 | pixel32 | 3
	FormatABGR = spaceRGB | formatBitAlpha | planes1 | sample8 | pixel32 | 4

	FormatRGBAPA = FormatRGBA | formatBitPremul
	FormatBGRAPA = FormatBGRA | formatBitPremul
	FormatARGBPA = FormatARGB | formatBitPremul
	FormatABGRPA = FormatABGR | formatBitPremul

	FormatRGB = spaceRGB | planes1 | sample8 | pixel24 | 1
	FormatBGR = spaceRGB | planes1 | sample8 | pixel24 | 2

	// 5/6/5 layouts. BE stores the high byte first, LE the low byte.
	// RGB565 puts red in the top five bits, BGR565 puts blue there.
	FormatRGB565BE = spaceRGB | planes1 | sample16 | pixel16 | 1
	FormatRGB565LE = spaceRGB | planes1 | sample16 | pixel16 | 2
	FormatBGR565BE = spaceRGB | planes1 | sample16 | pixel16 | 3
	FormatBGR565LE = spaceRGB | planes1 | sample16 | pixel16 | 4

	FormatGray8 = spaceRGB | planes1 | sample8 | pixel8 | 1

	FormatYUVA   = spaceYUV | formatBitAlpha | planes1 | sample8 | pixel32 | 1
	FormatYUV444 = spaceYUV | planes1 | sample8 | pixel24 | 1

	FormatRGBAPlanar   = spaceRGB | formatBitAlpha | planes4 | sample8 | pixel32 | 1
	FormatRGBAPlanarPA = FormatRGBAPlanar | formatBitPremul
	FormatRGBPlanar    = spaceRGB | planes3 | sample8 | pixel24 | 1

	FormatYUVAPlanar   = spaceYUV | formatBitAlpha | planes4 | sample8 | pixel32 | 1
	FormatYUV444Planar = spaceYUV | planes3 | sample8 | pixel24 | 1

	// 4:2:0 layouts: I420 is Y, U, V planes; YV12 is Y, V, U planes;
	// NV21 is Y plus interleaved V/U; NV12 is Y plus interleaved U/V.
	FormatI420 = spaceYUV | planes3 | sample8 | pixel12 | 1
	FormatYV12 = spaceYUV | planes3 | sample8 | pixel12 | 2
	FormatNV21 = spaceYUV | planes2 | sample8 | pixel12 | 1
	FormatNV12 = spaceYUV | planes2 | sample8 | pixel12 | 2
)

// formatNames lists every supported format.
var formatNames = map[Format]string{
	FormatRGBA:         "RGBA",
	FormatBGRA:         "BGRA",
	FormatARGB:         "ARGB",
	FormatABGR:         "ABGR",
	FormatRGBAPA:       "RGBA_PA",
	FormatBGRAPA:       "BGRA_PA",
	FormatARGBPA:       "ARGB_PA",
	FormatABGRPA:       "ABGR_PA",
	FormatRGB:          "RGB",
	FormatBGR:          "BGR",
	FormatRGB565BE:     "RGB565BE",
	FormatRGB565LE:     "RGB565LE",
	FormatBGR565BE:     "BGR565BE",
	FormatBGR565LE:     "BGR565LE",
	FormatGray8:        "Gray8",
	FormatYUVA:         "YUVA",
	FormatYUV444:       "YUV444",
	FormatRGBAPlanar:   "RGBA_Planar",
	FormatRGBAPlanarPA: "RGBA_Planar_PA",
	FormatRGBPlanar:    "RGB_Planar",
	FormatYUVAPlanar:   "YUVA_Planar",
	FormatYUV444Planar: "YUV444_Planar",
	FormatI420:         "I420",
	FormatYV12:         "YV12",
	FormatNV21:         "NV21",
	FormatNV12:         "NV12",
}

// Formats returns every supported format.
func Formats() []Format {
	out := make([]Format, 0, len(formatNames))
	for f := range formatNames {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// ColorSpace returns the color space of f.
func (f Format) ColorSpace() ColorSpace {
	return ColorSpace(f >> formatShiftSpace & formatMaskSpace)
}

// HasAlpha reports whether f stores an alpha channel.
func (f Format) HasAlpha() bool {
	return f&formatBitAlpha != 0
}

// IsPremultiplied reports whether f stores premultiplied alpha.
func (f Format) IsPremultiplied() bool {
	return f&formatBitPremul != 0
}

// PlaneCount returns the number of memory planes, 1 to 4.
func (f Format) PlaneCount() int {
	return int(f>>formatShiftPlanes&formatMaskPlanes) + 1
}

// BitsPerSample returns the size of one sample. For packed formats a
// sample is a whole pixel of a 16-bit layout or one channel otherwise.
func (f Format) BitsPerSample() int {
	return int(f >> formatShiftSample & formatMaskBits)
}

// BytesPerSample returns BitsPerSample rounded down to bytes.
func (f Format) BytesPerSample() int {
	return f.BitsPerSample() >> 3
}

// BitsPerPixel returns the average storage per pixel over all planes.
func (f Format) BitsPerPixel() int {
	return int(f >> formatShiftPixel & formatMaskBits)
}

// BytesPerPixel returns BitsPerPixel rounded down to bytes. It is not
// meaningful for 4:2:0 formats; use ImageSize for those.
func (f Format) BytesPerPixel() int {
	return f.BitsPerPixel() >> 3
}

// ID returns the id that separates formats of identical shape.
func (f Format) ID() int {
	return int(f & formatMaskID)
}

// IsYUV420 reports whether f is a 4:2:0 chroma-subsampled layout.
func (f Format) IsYUV420() bool {
	return f.ColorSpace() == ColorSpaceYUV && f.BitsPerPixel() == bitsPerPixelYUV420
}

// IsPlanar reports whether f keeps its channels in separate planes.
func (f Format) IsPlanar() bool {
	return f.PlaneCount() > 1
}

// IsValid reports whether f is one of the supported formats.
func (f Format) IsValid() bool {
	_, ok := formatNames[f]
	return ok
}

// String returns the format name, or its hex value if unknown.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	if f == FormatNone {
		return "None"
	}
	return fmt.Sprintf("Format(0x%08X)", uint32(f))
}

// ParseFormat returns the format named name, as printed by String.
// Matching ignores case.
func ParseFormat(name string) (Format, bool) {
	for f, n := range formatNames {
		if strings.EqualFold(n, name) {
			return f, true
		}
	}
	return FormatNone, false
}

// AlphaTwin returns the premultiplied variant of a straight-alpha format
// and the straight variant of a premultiplied one. Formats without a twin
// are returned unchanged.
func (f Format) AlphaTwin() Format {
	switch f {
	case FormatRGBA:
		return FormatRGBAPA
	case FormatBGRA:
		return FormatBGRAPA
	case FormatARGB:
		return FormatARGBPA
	case FormatABGR:
		return FormatABGRPA
	case FormatRGBAPlanar:
		return FormatRGBAPlanarPA
	case FormatRGBAPA:
		return FormatRGBA
	case FormatBGRAPA:
		return FormatBGRA
	case FormatARGBPA:
		return FormatARGB
	case FormatABGRPA:
		return FormatABGR
	case FormatRGBAPlanarPA:
		return FormatRGBAPlanar
	default:
		return f
	}
}

// Premultiplied returns the premultiplied variant of f, or f itself if it
// is already premultiplied or has no such variant.
func (f Format) Premultiplied() Format {
	if f.IsPremultiplied() {
		return f
	}
	return f.AlphaTwin()
}

// NonPremultiplied returns the straight-alpha variant of f, or f itself if
// it is already straight or has no such variant.
func (f Format) NonPremultiplied() Format {
	if !f.IsPremultiplied() {
		return f
	}
	return f.AlphaTwin()
}

// RGBEquivalent returns the RGB format with the same shape as a YUV
// format. 4:2:0 formats map to FormatRGB. Other formats are returned
// unchanged.
func (f Format) RGBEquivalent() Format {
	switch f {
	case FormatYUVA:
		return FormatRGBA
	case FormatYUV444:
		return FormatRGB
	case FormatYUVAPlanar:
		return FormatRGBAPlanar
	case FormatYUV444Planar:
		return FormatRGBPlanar
	case FormatI420, FormatYV12, FormatNV21, FormatNV12:
		return FormatRGB
	default:
		return f
	}
}

// planeGeometry returns the sample size, samples per row and row count of
// plane i for an image of the given size. It returns zeros for planes the
// format does not use.
func (f Format) planeGeometry(i, width, height int) (bitsPerSample, samples, rows int) {
	if i < 0 || i >= f.PlaneCount() {
		return 0, 0, 0
	}
	if f.IsYUV420() {
		if i == 0 {
			return f.BitsPerSample(), width, height
		}
		if f.PlaneCount() == 2 {
			// interleaved chroma pairs
			return f.BitsPerSample(), width / 2 * 2, height / 2
		}
		return f.BitsPerSample(), width / 2, height / 2
	}
	if f.IsPlanar() {
		return f.BitsPerSample(), width, height
	}
	return f.BitsPerPixel(), width, height
}

// RowBytes returns the tightly packed row size of plane i.
func (f Format) RowBytes(plane, width int) int {
	bits, samples, _ := f.planeGeometry(plane, width, 1)
	return (bits*samples + 7) / 8
}

// PlaneRows returns the number of rows of plane i for an image height.
func (f Format) PlaneRows(plane, height int) int {
	_, _, rows := f.planeGeometry(plane, 2, height)
	return rows
}

// ImageSize returns the tightly packed size of a whole image over all
// planes. For 4:2:0 formats with even dimensions this is width*height*3/2.
func (f Format) ImageSize(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	total := 0
	for i := range f.PlaneCount() {
		total += f.RowBytes(i, width) * f.PlaneRows(i, height)
	}
	return total
}
