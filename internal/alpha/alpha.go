// Package alpha provides the premultiplication arithmetic used by bulk
// pixel conversion.
//
// Conversion into a premultiplied format uses PA = NPA*(A+1) >> 8 and the
// reverse uses NPA = PA*256 / (A+1), clamped to 255. Un-premultiplying
// needs a division per channel, so its results are precomputed into a
// 64KB table indexed by alpha and component.
package alpha

// unpremulLUT[a][c] holds UnpremultiplySlow(c, a).
var unpremulLUT [256][256]uint8

func init() {
	for a := range 256 {
		for c := range 256 {
			unpremulLUT[a][c] = UnpremultiplySlow(uint8(c), uint8(a))
		}
	}
}

// Premultiply scales a straight component by alpha: c*(a+1) >> 8.
// The result is exact for a == 255 and zero for a == 0.
func Premultiply(c, a uint8) uint8 {
	return uint8(uint32(c) * (uint32(a) + 1) >> 8)
}

// Unpremultiply recovers a straight component from a premultiplied one
// using the lookup table.
func Unpremultiply(c, a uint8) uint8 {
	return unpremulLUT[a][c]
}

// UnpremultiplySlow computes c*256/(a+1) clamped to 255.
//
// This is the reference implementation of the table. Used by init and
// tests.
func UnpremultiplySlow(c, a uint8) uint8 {
	v := uint32(c) << 8 / (uint32(a) + 1)
	if v > 255 {
		return 255
	}
	return uint8(v)
}
