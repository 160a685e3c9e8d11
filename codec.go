package pixconv

// Cursor addresses the current pixel in each plane of a pixel run.
// Packed formats use only the first slot.
type Cursor [MaxPlanes][]byte

// PackedCursor returns a cursor over a single packed buffer.
func PackedCursor(b []byte) Cursor {
	return Cursor{b}
}

// Advance moves the cursor n pixels forward: n*BytesPerPixel for packed
// formats and n*BytesPerSample in every plane for planar formats.
// 4:2:0 formats are not addressable per pixel; their cursor is returned
// unchanged.
func (c Cursor) Advance(f Format, n int) Cursor {
	switch {
	case f.IsYUV420():
		return c
	case f.IsPlanar():
		step := n * f.BytesPerSample()
		for i := range f.PlaneCount() {
			c[i] = c[i][step:]
		}
	default:
		c[0] = c[0][n*f.BytesPerPixel():]
	}
	return c
}

// pixelCodec reads and writes runs of pixels for one memory layout.
// It works on raw values: premultiplied formats share the codec of their
// straight twin and the alpha transform is applied by the caller.
type pixelCodec interface {
	// decode reads len(dst) pixels starting at src.
	decode(dst []Color, src Cursor)
	// encode writes len(src) pixels starting at dst.
	encode(dst Cursor, src []Color)
}

// yuvCodec is implemented by Y'CbCr layouts so that chroma sampling can
// use their native samples without a round trip through RGB.
type yuvCodec interface {
	decodeYUV(dst []yuva, src Cursor)
	encodeYUV(dst Cursor, src []yuva)
}

// codecs maps each straight-alpha layout to its codec.
var codecs = map[Format]pixelCodec{
	FormatRGBA: packed32Codec{r: 0, g: 1, b: 2, a: 3},
	FormatBGRA: packed32Codec{r: 2, g: 1, b: 0, a: 3},
	FormatARGB: packed32Codec{r: 1, g: 2, b: 3, a: 0},
	FormatABGR: packed32Codec{r: 3, g: 2, b: 1, a: 0},

	FormatRGB: packed24Codec{r: 0, g: 1, b: 2},
	FormatBGR: packed24Codec{r: 2, g: 1, b: 0},

	FormatRGB565BE: rgb565Codec{bigEndian: true},
	FormatRGB565LE: rgb565Codec{},
	FormatBGR565BE: rgb565Codec{bigEndian: true, swapRB: true},
	FormatBGR565LE: rgb565Codec{swapRB: true},

	FormatGray8: gray8Codec{},

	FormatYUVA:   packedYUVCodec{alpha: true},
	FormatYUV444: packedYUVCodec{},

	FormatRGBAPlanar: planarRGBCodec{alpha: true},
	FormatRGBPlanar:  planarRGBCodec{},

	FormatYUVAPlanar:   planarYUVCodec{alpha: true},
	FormatYUV444Planar: planarYUVCodec{},
}

// layoutCodec returns the codec for the memory layout of f, or nil if f
// has no per-pixel codec (unknown and 4:2:0 formats).
func layoutCodec(f Format) pixelCodec {
	return codecs[f.NonPremultiplied()]
}

// DecodePixel reads one pixel of format f at src. Premultiplied formats
// are un-premultiplied, so the result is always a straight-alpha color.
// Formats without a per-pixel codec yield the zero Color.
func DecodePixel(f Format, src Cursor) Color {
	c := layoutCodec(f)
	if c == nil {
		return Color{}
	}
	var px [1]Color
	c.decode(px[:], src)
	if f.IsPremultiplied() {
		unpremultiplySpan(px[:])
	}
	return px[0]
}

// EncodePixel writes one straight-alpha color as format f at dst,
// premultiplying it for premultiplied formats. Formats without a
// per-pixel codec are left untouched.
func EncodePixel(f Format, dst Cursor, c Color) {
	codec := layoutCodec(f)
	if codec == nil {
		return
	}
	px := [1]Color{c}
	if f.IsPremultiplied() {
		premultiplySpan(px[:])
	}
	codec.encode(dst, px[:])
}

// packed32Codec handles the 8:8:8:8 layouts. Fields are byte offsets.
type packed32Codec struct {
	r, g, b, a int
}

func (c packed32Codec) decode(dst []Color, src Cursor) {
	p := src[0][:len(dst)*4]
	for i := range dst {
		px := p[i*4 : i*4+4]
		dst[i] = Color{B: px[c.b], G: px[c.g], R: px[c.r], A: px[c.a]}
	}
}

func (c packed32Codec) encode(dst Cursor, src []Color) {
	p := dst[0][:len(src)*4]
	for i, col := range src {
		px := p[i*4 : i*4+4]
		px[c.r] = col.R
		px[c.g] = col.G
		px[c.b] = col.B
		px[c.a] = col.A
	}
}

// packed24Codec handles the 8:8:8 layouts. Decoded alpha is always 255.
type packed24Codec struct {
	r, g, b int
}

func (c packed24Codec) decode(dst []Color, src Cursor) {
	p := src[0][:len(dst)*3]
	for i := range dst {
		px := p[i*3 : i*3+3]
		dst[i] = Color{B: px[c.b], G: px[c.g], R: px[c.r], A: 255}
	}
}

func (c packed24Codec) encode(dst Cursor, src []Color) {
	p := dst[0][:len(src)*3]
	for i, col := range src {
		px := p[i*3 : i*3+3]
		px[c.r] = col.R
		px[c.g] = col.G
		px[c.b] = col.B
	}
}

// rgb565Codec handles the 5:6:5 layouts.
//
// Channels are widened by shifting alone (no low-bit replication) and
// narrowed by truncation, so white decodes as (248, 252, 248).
type rgb565Codec struct {
	bigEndian bool
	swapRB    bool
}

func (c rgb565Codec) decode(dst []Color, src Cursor) {
	p := src[0][:len(dst)*2]
	for i := range dst {
		var v uint16
		if c.bigEndian {
			v = uint16(p[i*2])<<8 | uint16(p[i*2+1])
		} else {
			v = uint16(p[i*2]) | uint16(p[i*2+1])<<8
		}
		hi := uint8(v>>11) << 3
		mid := uint8(v>>5&0x3F) << 2
		lo := uint8(v&0x1F) << 3
		if c.swapRB {
			dst[i] = Color{B: hi, G: mid, R: lo, A: 255}
		} else {
			dst[i] = Color{B: lo, G: mid, R: hi, A: 255}
		}
	}
}

func (c rgb565Codec) encode(dst Cursor, src []Color) {
	p := dst[0][:len(src)*2]
	for i, col := range src {
		hi, lo := col.R, col.B
		if c.swapRB {
			hi, lo = col.B, col.R
		}
		v := uint16(hi>>3)<<11 | uint16(col.G>>2)<<5 | uint16(lo>>3)
		if c.bigEndian {
			p[i*2] = byte(v >> 8)
			p[i*2+1] = byte(v)
		} else {
			p[i*2] = byte(v)
			p[i*2+1] = byte(v >> 8)
		}
	}
}

// gray8Codec handles single-channel gray.
// Encoding takes the truncated mean (R+G+B)/3; decoded alpha is 255.
type gray8Codec struct{}

func (gray8Codec) decode(dst []Color, src Cursor) {
	p := src[0][:len(dst)]
	for i, v := range p {
		dst[i] = Color{B: v, G: v, R: v, A: 255}
	}
}

func (gray8Codec) encode(dst Cursor, src []Color) {
	p := dst[0][:len(src)]
	for i, col := range src {
		p[i] = uint8((uint32(col.R) + uint32(col.G) + uint32(col.B)) / 3)
	}
}

// packedYUVCodec handles interleaved full-resolution Y'CbCr: Y, U, V and
// optionally A bytes per pixel.
type packedYUVCodec struct {
	alpha bool
}

func (c packedYUVCodec) size() int {
	if c.alpha {
		return 4
	}
	return 3
}

func (c packedYUVCodec) decodeYUV(dst []yuva, src Cursor) {
	n := c.size()
	p := src[0][:len(dst)*n]
	for i := range dst {
		px := p[i*n : i*n+n]
		s := yuva{Y: px[0], U: px[1], V: px[2], A: 255}
		if c.alpha {
			s.A = px[3]
		}
		dst[i] = s
	}
}

func (c packedYUVCodec) encodeYUV(dst Cursor, src []yuva) {
	n := c.size()
	p := dst[0][:len(src)*n]
	for i, s := range src {
		px := p[i*n : i*n+n]
		px[0], px[1], px[2] = s.Y, s.U, s.V
		if c.alpha {
			px[3] = s.A
		}
	}
}

func (c packedYUVCodec) decode(dst []Color, src Cursor) {
	n := c.size()
	p := src[0][:len(dst)*n]
	for i := range dst {
		px := p[i*n : i*n+n]
		s := yuva{Y: px[0], U: px[1], V: px[2], A: 255}
		if c.alpha {
			s.A = px[3]
		}
		dst[i] = yuvaToColor(s)
	}
}

func (c packedYUVCodec) encode(dst Cursor, src []Color) {
	n := c.size()
	p := dst[0][:len(src)*n]
	for i, col := range src {
		s := colorToYUVA(col)
		px := p[i*n : i*n+n]
		px[0], px[1], px[2] = s.Y, s.U, s.V
		if c.alpha {
			px[3] = s.A
		}
	}
}

// planarRGBCodec handles one plane per channel: R, G, B and optionally A.
type planarRGBCodec struct {
	alpha bool
}

func (c planarRGBCodec) decode(dst []Color, src Cursor) {
	n := len(dst)
	r, g, b := src[0][:n], src[1][:n], src[2][:n]
	var a []byte
	if c.alpha {
		a = src[3][:n]
	}
	for i := range dst {
		col := Color{B: b[i], G: g[i], R: r[i], A: 255}
		if a != nil {
			col.A = a[i]
		}
		dst[i] = col
	}
}

func (c planarRGBCodec) encode(dst Cursor, src []Color) {
	n := len(src)
	r, g, b := dst[0][:n], dst[1][:n], dst[2][:n]
	var a []byte
	if c.alpha {
		a = dst[3][:n]
	}
	for i, col := range src {
		r[i], g[i], b[i] = col.R, col.G, col.B
		if a != nil {
			a[i] = col.A
		}
	}
}

// planarYUVCodec handles one plane per channel: Y, U, V and optionally A.
type planarYUVCodec struct {
	alpha bool
}

func (c planarYUVCodec) decodeYUV(dst []yuva, src Cursor) {
	n := len(dst)
	y, u, v := src[0][:n], src[1][:n], src[2][:n]
	var a []byte
	if c.alpha {
		a = src[3][:n]
	}
	for i := range dst {
		s := yuva{Y: y[i], U: u[i], V: v[i], A: 255}
		if a != nil {
			s.A = a[i]
		}
		dst[i] = s
	}
}

func (c planarYUVCodec) encodeYUV(dst Cursor, src []yuva) {
	n := len(src)
	y, u, v := dst[0][:n], dst[1][:n], dst[2][:n]
	var a []byte
	if c.alpha {
		a = dst[3][:n]
	}
	for i, s := range src {
		y[i], u[i], v[i] = s.Y, s.U, s.V
		if a != nil {
			a[i] = s.A
		}
	}
}

func (c planarYUVCodec) decode(dst []Color, src Cursor) {
	n := len(dst)
	y, u, v := src[0][:n], src[1][:n], src[2][:n]
	var a []byte
	if c.alpha {
		a = src[3][:n]
	}
	for i := range dst {
		s := yuva{Y: y[i], U: u[i], V: v[i], A: 255}
		if a != nil {
			s.A = a[i]
		}
		dst[i] = yuvaToColor(s)
	}
}

func (c planarYUVCodec) encode(dst Cursor, src []Color) {
	n := len(src)
	y, u, v := dst[0][:n], dst[1][:n], dst[2][:n]
	var a []byte
	if c.alpha {
		a = dst[3][:n]
	}
	for i, col := range src {
		s := colorToYUVA(col)
		y[i], u[i], v[i] = s.Y, s.U, s.V
		if a != nil {
			a[i] = s.A
		}
	}
}
