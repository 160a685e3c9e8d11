package pixconv

import (
	"bytes"
	"testing"
)

// testColors is a mix of primaries, grays and translucent colors.
var testColors = []Color{
	{}, Black, White, Red, Green, Blue,
	RGB(255, 255, 0), RGB(0, 255, 255), RGB(255, 0, 255),
	RGB(128, 128, 128), RGB(10, 200, 30), RGB(1, 2, 3),
	NewColor(200, 100, 50, 128), NewColor(255, 255, 255, 1),
	NewColor(17, 34, 51, 254), NewColor(90, 0, 240, 64),
}

// quantize returns what a single encode/decode pass through f yields
// for c.
func quantize(f Format, c Color) Color {
	if f.IsPremultiplied() {
		if c.A != 255 {
			c.R = UnpremultiplyComponent(PremultiplyComponent(c.R, c.A), c.A)
			c.G = UnpremultiplyComponent(PremultiplyComponent(c.G, c.A), c.A)
			c.B = UnpremultiplyComponent(PremultiplyComponent(c.B, c.A), c.A)
		}
		return c
	}
	if !f.HasAlpha() {
		c.A = 255
	}
	switch f.NonPremultiplied() {
	case FormatGray8:
		v := uint8((int(c.R) + int(c.G) + int(c.B)) / 3)
		return Color{B: v, G: v, R: v, A: 255}
	case FormatRGB565BE, FormatRGB565LE, FormatBGR565BE, FormatBGR565LE:
		return Color{B: c.B &^ 7, G: c.G &^ 3, R: c.R &^ 7, A: 255}
	}
	if f.ColorSpace() == ColorSpaceYUV {
		r, g, b := YUVToRGB(RGBToYUV(c.R, c.G, c.B))
		return Color{B: b, G: g, R: r, A: c.A}
	}
	return c
}

// newCursor allocates one buffer per plane, big enough for n pixels.
func newCursor(f Format, n int) Cursor {
	var c Cursor
	for i := range f.PlaneCount() {
		c[i] = make([]byte, f.RowBytes(i, n))
	}
	return c
}

func TestCodecRoundTrip(t *testing.T) {
	for _, f := range Formats() {
		if f.IsYUV420() {
			continue
		}
		t.Run(f.String(), func(t *testing.T) {
			for _, c := range testColors {
				cur := newCursor(f, 1)
				EncodePixel(f, cur, c)
				got := DecodePixel(f, cur)
				if want := quantize(f, c); got != want {
					t.Errorf("%+v: got %+v, want %+v", c, got, want)
				}
			}
		})
	}
}

func TestCodecByteOrder(t *testing.T) {
	c := NewColor(1, 2, 3, 4)
	tests := []struct {
		format Format
		want   []byte
	}{
		{FormatRGBA, []byte{1, 2, 3, 4}},
		{FormatBGRA, []byte{3, 2, 1, 4}},
		{FormatARGB, []byte{4, 1, 2, 3}},
		{FormatABGR, []byte{4, 3, 2, 1}},
		{FormatRGB, []byte{1, 2, 3}},
		{FormatBGR, []byte{3, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			cur := newCursor(tt.format, 1)
			EncodePixel(tt.format, cur, c)
			if !bytes.Equal(cur[0], tt.want) {
				t.Errorf("encoded %v, want %v", cur[0], tt.want)
			}
		})
	}
}

func TestCodec565(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		color  Color
		want   []byte
	}{
		{"RGB565LE red", FormatRGB565LE, Red, []byte{0x00, 0xF8}},
		{"RGB565BE red", FormatRGB565BE, Red, []byte{0xF8, 0x00}},
		{"BGR565LE red", FormatBGR565LE, Red, []byte{0x1F, 0x00}},
		{"BGR565BE blue", FormatBGR565BE, Blue, []byte{0xF8, 0x00}},
		{"RGB565LE green", FormatRGB565LE, Green, []byte{0xE0, 0x07}},
		{"RGB565BE white", FormatRGB565BE, White, []byte{0xFF, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := newCursor(tt.format, 1)
			EncodePixel(tt.format, cur, tt.color)
			if !bytes.Equal(cur[0], tt.want) {
				t.Errorf("encoded %#v, want %#v", cur[0], tt.want)
			}
		})
	}

	for _, f := range []Format{FormatRGB565BE, FormatRGB565LE, FormatBGR565BE, FormatBGR565LE} {
		cur := newCursor(f, 1)
		EncodePixel(f, cur, White)
		if got, want := DecodePixel(f, cur), RGB(248, 252, 248); got != want {
			t.Errorf("%v white: got %+v, want %+v", f, got, want)
		}
	}
}

func TestCodecGray(t *testing.T) {
	src := []byte{255, 0, 0, 255}
	gray := make([]byte, 1)
	ConvertPixels(1, FormatGray8, PackedCursor(gray), FormatRGBA, PackedCursor(src))
	if gray[0] != 85 {
		t.Fatalf("gray = %d, want 85", gray[0])
	}

	back := make([]byte, 4)
	ConvertPixels(1, FormatRGBA, PackedCursor(back), FormatGray8, PackedCursor(gray))
	if want := []byte{85, 85, 85, 255}; !bytes.Equal(back, want) {
		t.Errorf("back = %v, want %v", back, want)
	}
}

func TestCodecPlanar(t *testing.T) {
	f := FormatRGBAPlanar
	cur := newCursor(f, 2)
	EncodePixel(f, cur, NewColor(1, 2, 3, 4))
	EncodePixel(f, cur.Advance(f, 1), NewColor(5, 6, 7, 8))

	want := [][]byte{{1, 5}, {2, 6}, {3, 7}, {4, 8}}
	for i, w := range want {
		if !bytes.Equal(cur[i], w) {
			t.Errorf("plane %d = %v, want %v", i, cur[i], w)
		}
	}

	yuv := newCursor(FormatYUV444Planar, 1)
	EncodePixel(FormatYUV444Planar, yuv, Red)
	if yuv[0][0] != 76 || yuv[1][0] != 85 || yuv[2][0] != 255 {
		t.Errorf("red in YUV444 planes = %d,%d,%d, want 76,85,255", yuv[0][0], yuv[1][0], yuv[2][0])
	}
}

func TestCursorAdvance(t *testing.T) {
	buf := make([]byte, 32)

	if got := PackedCursor(buf).Advance(FormatRGB, 2); len(got[0]) != 26 {
		t.Errorf("RGB advance left %d bytes, want 26", len(got[0]))
	}
	if got := PackedCursor(buf).Advance(FormatRGB565LE, 3); len(got[0]) != 26 {
		t.Errorf("RGB565 advance left %d bytes, want 26", len(got[0]))
	}

	planar := Cursor{buf[0:8], buf[8:16], buf[16:24]}
	got := planar.Advance(FormatRGBPlanar, 2)
	for i := range 3 {
		if len(got[i]) != 6 {
			t.Errorf("plane %d advance left %d bytes, want 6", i, len(got[i]))
		}
	}

	if got := PackedCursor(buf).Advance(FormatI420, 4); len(got[0]) != 32 {
		t.Errorf("4:2:0 cursor moved")
	}
}

func TestPixelCodecUnavailable(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	if got := DecodePixel(FormatI420, PackedCursor(buf)); got != (Color{}) {
		t.Errorf("DecodePixel(I420) = %+v, want zero", got)
	}
	EncodePixel(FormatNone, PackedCursor(buf), White)
	if !bytes.Equal(buf, []byte{1, 2, 3, 4}) {
		t.Error("EncodePixel(None) modified the buffer")
	}

	dst := []byte{9, 9, 9, 9}
	ConvertPixels(1, FormatRGBA, PackedCursor(dst), FormatNV12, PackedCursor(buf))
	if !bytes.Equal(dst, []byte{9, 9, 9, 9}) {
		t.Error("ConvertPixels from NV12 modified the destination")
	}
}

func TestConvertPixelsLongRun(t *testing.T) {
	const n = 3*scratchPixels + 17
	src := make([]byte, n*4)
	for i := range src {
		src[i] = byte(i * 7)
	}
	dst := make([]byte, n*4)
	ConvertPixels(n, FormatBGRA, PackedCursor(dst), FormatRGBA, PackedCursor(src))

	for i := range n {
		s, d := src[i*4:i*4+4], dst[i*4:i*4+4]
		if d[0] != s[2] || d[1] != s[1] || d[2] != s[0] || d[3] != s[3] {
			t.Fatalf("pixel %d: got %v from %v", i, d, s)
		}
	}
}

func TestConvertPixelsIdentityVerbatim(t *testing.T) {
	// Not valid premultiplied data; an identity copy must not touch it.
	src := []byte{200, 150, 100, 50, 0, 0, 0, 0}
	dst := make([]byte, len(src))
	ConvertPixels(2, FormatRGBAPA, PackedCursor(dst), FormatRGBAPA, PackedCursor(src))
	if !bytes.Equal(dst, src) {
		t.Errorf("dst = %v, want %v", dst, src)
	}
}
