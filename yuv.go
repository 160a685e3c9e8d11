package pixconv

// Full-range BT.601 coefficients in 10-bit fixed point.
//
// The inverse coefficients are rounded up slightly from 1.402, 0.344,
// 0.714 and 1.772 so that black, white, every gray level and the six
// primary/secondary colors survive RGB -> YUV -> RGB unchanged. Any other
// color comes back within 2 per channel.
const (
	yuvFix  = 10
	yuvHalf = 1 << (yuvFix - 1)

	kYR = 306
	kYG = 601
	kYB = 117

	kUR = -173
	kUG = -339
	kUB = 512

	kVR = 512
	kVG = -429
	kVB = -83

	kRV = 1440
	kGU = 351
	kGV = 728
	kBU = 1823
)

// yuva is one full-resolution Y'CbCr sample with alpha.
type yuva struct {
	Y, U, V, A uint8
}

// clamp8 clamps v to [0, 255].
func clamp8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// RGBToYUV converts one RGB triple to full-range Y'CbCr.
func RGBToYUV(r, g, b uint8) (y, u, v uint8) {
	ri, gi, bi := int32(r), int32(g), int32(b)
	y = clamp8((kYR*ri + kYG*gi + kYB*bi + yuvHalf) >> yuvFix)
	u = clamp8((kUR*ri+kUG*gi+kUB*bi+yuvHalf)>>yuvFix + 128)
	v = clamp8((kVR*ri+kVG*gi+kVB*bi+yuvHalf)>>yuvFix + 128)
	return y, u, v
}

// YUVToRGB converts one full-range Y'CbCr triple to RGB.
func YUVToRGB(y, u, v uint8) (r, g, b uint8) {
	yi := int32(y)
	ui := int32(u) - 128
	vi := int32(v) - 128
	r = clamp8(yi + (kRV*vi+yuvHalf)>>yuvFix)
	g = clamp8(yi - (kGU*ui+kGV*vi+yuvHalf)>>yuvFix)
	b = clamp8(yi + (kBU*ui+yuvHalf)>>yuvFix)
	return r, g, b
}

// colorToYUVA converts a straight-alpha color to a Y'CbCr sample.
func colorToYUVA(c Color) yuva {
	y, u, v := RGBToYUV(c.R, c.G, c.B)
	return yuva{Y: y, U: u, V: v, A: c.A}
}

// yuvaToColor converts a Y'CbCr sample to a straight-alpha color.
func yuvaToColor(s yuva) Color {
	r, g, b := YUVToRGB(s.Y, s.U, s.V)
	return Color{B: b, G: g, R: r, A: s.A}
}
