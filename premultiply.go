package pixconv

import (
	"fmt"

	"github.com/gogpu/pixconv/internal/alpha"
)

// AlphaMode requests an explicit alpha transform on top of a conversion.
type AlphaMode uint8

const (
	// AlphaPlain lets the formats decide: a premultiplied source written
	// to a straight or alpha-less destination is un-premultiplied, a
	// straight source with alpha written to a premultiplied destination
	// is premultiplied, anything else passes values through.
	AlphaPlain AlphaMode = iota

	// AlphaPremultiply reads the source as straight alpha and writes
	// premultiplied values, whatever the formats' own flags say.
	AlphaPremultiply

	// AlphaUnpremultiply reads the source as premultiplied and writes
	// straight values, whatever the formats' own flags say.
	AlphaUnpremultiply
)

// String returns the mode name.
func (m AlphaMode) String() string {
	switch m {
	case AlphaPlain:
		return "Plain"
	case AlphaPremultiply:
		return "Premultiply"
	case AlphaUnpremultiply:
		return "Unpremultiply"
	default:
		return fmt.Sprintf("AlphaMode(%d)", uint8(m))
	}
}

// alphaOp is the transform a conversion applies between decode and encode.
type alphaOp uint8

const (
	alphaNone alphaOp = iota
	alphaPremultiply
	alphaUnpremultiply
)

// resolveAlphaOp picks the transform for converting src to dst.
func resolveAlphaOp(dst, src Format, mode AlphaMode) alphaOp {
	switch mode {
	case AlphaPremultiply:
		return alphaPremultiply
	case AlphaUnpremultiply:
		return alphaUnpremultiply
	}
	switch {
	case src.IsPremultiplied() && !dst.IsPremultiplied():
		return alphaUnpremultiply
	case !src.IsPremultiplied() && dst.IsPremultiplied() && src.HasAlpha():
		return alphaPremultiply
	default:
		return alphaNone
	}
}

// applyAlpha runs op over px in place.
func applyAlpha(px []Color, op alphaOp) {
	switch op {
	case alphaPremultiply:
		premultiplySpan(px)
	case alphaUnpremultiply:
		unpremultiplySpan(px)
	}
}

// premultiplySpan converts straight colors to premultiplied values with
// PA = NPA*(A+1) >> 8.
func premultiplySpan(px []Color) {
	for i := range px {
		c := &px[i]
		if c.A == 255 {
			continue
		}
		c.R = alpha.Premultiply(c.R, c.A)
		c.G = alpha.Premultiply(c.G, c.A)
		c.B = alpha.Premultiply(c.B, c.A)
	}
}

// unpremultiplySpan converts premultiplied values to straight colors with
// NPA = PA*256 / (A+1), clamped to 255.
func unpremultiplySpan(px []Color) {
	for i := range px {
		c := &px[i]
		if c.A == 255 {
			continue
		}
		c.R = alpha.Unpremultiply(c.R, c.A)
		c.G = alpha.Unpremultiply(c.G, c.A)
		c.B = alpha.Unpremultiply(c.B, c.A)
	}
}

// PremultiplyComponent applies the bulk-conversion premultiply formula
// c*(a+1) >> 8 to one component.
func PremultiplyComponent(c, a uint8) uint8 {
	return alpha.Premultiply(c, a)
}

// UnpremultiplyComponent applies the bulk-conversion formula
// c*256 / (a+1), clamped to 255, to one component.
func UnpremultiplyComponent(c, a uint8) uint8 {
	return alpha.Unpremultiply(c, a)
}
