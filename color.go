package pixconv

import (
	"encoding/binary"
	"image/color"
	"unsafe"
)

// Color is a 32-bit color with straight (non-premultiplied) alpha.
//
// The fields are laid out in physical byte order blue, green, red, alpha,
// which is the memory layout of [FormatBGRA]. Two colors are equal exactly
// when their 32-bit values are equal, and a []Color may be reinterpreted as
// BGRA bytes with [ColorsAsBytes].
type Color struct {
	B, G, R, A uint8
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{A: 255}
	White       = Color{B: 255, G: 255, R: 255, A: 255}
	Red         = Color{R: 255, A: 255}
	Green       = Color{G: 255, A: 255}
	Blue        = Color{B: 255, A: 255}
)

// NewColor creates a color from red, green, blue and alpha components.
func NewColor(r, g, b, a uint8) Color {
	return Color{B: b, G: g, R: r, A: a}
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{B: b, G: g, R: r, A: 255}
}

// ColorFromUint32 creates a color from its packed 0xAARRGGBB value.
func ColorFromUint32(v uint32) Color {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return Color{B: b[0], G: b[1], R: b[2], A: b[3]}
}

// Uint32 returns the packed 0xAARRGGBB value of c. The value read as a
// little-endian uint32 from c's memory is the same number.
func (c Color) Uint32() uint32 {
	return binary.LittleEndian.Uint32([]byte{c.B, c.G, c.R, c.A})
}

// RGBA implements the color.Color interface.
// The returned values are alpha-premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// IsOpaque reports whether alpha is 255.
func (c Color) IsOpaque() bool {
	return c.A == 255
}

// Premultiplied returns c with color channels multiplied by alpha,
// rounded to nearest: channel = (channel*alpha + 127) / 255.
//
// This is the compositing formula. Bulk conversion into premultiplied
// formats uses [PremultiplyComponent] instead.
func (c Color) Premultiplied() Color {
	a := uint32(c.A)
	switch a {
	case 255:
		return c
	case 0:
		return Color{}
	}
	return Color{
		B: uint8((uint32(c.B)*a + 127) / 255),
		G: uint8((uint32(c.G)*a + 127) / 255),
		R: uint8((uint32(c.R)*a + 127) / 255),
		A: c.A,
	}
}

// Unpremultiplied reverses Premultiplied, treating c as premultiplied:
// channel = (channel*255 + alpha/2) / alpha, clamped to 255.
// A fully transparent color becomes transparent black.
func (c Color) Unpremultiplied() Color {
	a := uint32(c.A)
	switch a {
	case 255:
		return c
	case 0:
		return Color{}
	}
	div := func(v uint8) uint8 {
		n := (uint32(v)*255 + a/2) / a
		if n > 255 {
			return 255
		}
		return uint8(n)
	}
	return Color{B: div(c.B), G: div(c.G), R: div(c.R), A: c.A}
}

// BlendOver composites c over dst with the Porter-Duff "source over"
// operator. Both colors and the result use straight alpha.
func (c Color) BlendOver(dst Color) Color {
	if c.A == 255 || dst.A == 0 {
		return c
	}
	if c.A == 0 {
		return dst
	}

	// Destination weight is its alpha attenuated by the source coverage.
	sa := uint32(c.A)
	da := uint32(dst.A) * (255 - sa) / 255
	outA := sa + da

	mix := func(s, d uint8) uint8 {
		v := (uint32(s)*sa + uint32(d)*da + outA/2) / outA
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return Color{
		B: mix(c.B, dst.B),
		G: mix(c.G, dst.G),
		R: mix(c.R, dst.R),
		A: uint8(outA),
	}
}

// ColorsAsBytes reinterprets colors as BGRA bytes without copying.
// The returned slice aliases colors.
func ColorsAsBytes(colors []Color) []byte {
	if len(colors) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&colors[0])), len(colors)*int(unsafe.Sizeof(Color{})))
}

// ColorModel converts any color.Color to a Color.
var ColorModel color.Model = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{B: n.B, G: n.G, R: n.R, A: n.A}
}
