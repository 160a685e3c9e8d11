package pixconv

// Referable is an owning reference to plane memory. A plane keeps its
// memory alive by holding a Referable; the memory is released when the
// last holder calls Release.
type Referable interface {
	Retain()
	Release()
}

// Plane is one memory region of a BitmapData.
//
// Stride is the byte distance between rows. Zero means tightly packed.
// A negative stride means bottom-up storage: the first image row is the
// last row in Data, so row y starts at (rows-1-y) * -Stride.
type Plane struct {
	Data   []byte
	Stride int
	Ref    Referable
}

// rowOffset returns the byte offset of row y in a plane of rows rows.
func (p Plane) rowOffset(y, rows int) int {
	if p.Stride < 0 {
		return (rows - 1 - y) * -p.Stride
	}
	return y * p.Stride
}

// BitmapData describes pixel memory: dimensions, a Format and up to
// MaxPlanes planes.
//
// BitmapData never owns memory. It is a transient view created for a
// conversion and discarded afterwards; ownership stays with each plane's
// Ref. The Data and Stride fields must not change while a conversion is
// reading them.
type BitmapData struct {
	Width  int
	Height int
	Format Format
	Planes [MaxPlanes]Plane
}

// FillDefaultValues normalizes bd before a conversion.
//
// Zero strides become the tightly packed row size of their plane. For
// multi-plane formats, a later plane with nil Data is placed directly
// after the previous plane in that plane's Data, so a single contiguous
// buffer in Planes[0] describes the whole image.
func (bd *BitmapData) FillDefaultValues() {
	f := bd.Format
	for i := range f.PlaneCount() {
		p := &bd.Planes[i]
		if p.Stride == 0 {
			p.Stride = f.RowBytes(i, bd.Width)
		}
		if i == 0 || p.Data != nil {
			continue
		}
		prev := bd.Planes[i-1]
		size := abs(prev.Stride) * f.PlaneRows(i-1, bd.Height)
		if len(prev.Data) >= size {
			p.Data = prev.Data[size:]
		}
	}
}

// TotalSize returns the number of bytes spanned by all planes, using the
// tightly packed row size for planes with a zero stride.
func (bd BitmapData) TotalSize() int {
	if bd.Width <= 0 || bd.Height <= 0 {
		return 0
	}
	f := bd.Format
	total := 0
	for i := range f.PlaneCount() {
		stride := abs(bd.Planes[i].Stride)
		if stride == 0 {
			stride = f.RowBytes(i, bd.Width)
		}
		total += stride * f.PlaneRows(i, bd.Height)
	}
	return total
}

// planeRow returns plane i from the start of row y to the end of Data.
// bd must have been normalized with FillDefaultValues.
func (bd *BitmapData) planeRow(i, y int) []byte {
	p := bd.Planes[i]
	return p.Data[p.rowOffset(y, bd.Format.PlaneRows(i, bd.Height)):]
}

// rowCursor returns a cursor at the first pixel of row y. Not valid for
// 4:2:0 formats, whose planes have different row counts.
func (bd *BitmapData) rowCursor(y int) Cursor {
	var c Cursor
	for i := range bd.Format.PlaneCount() {
		c[i] = bd.planeRow(i, y)
	}
	return c
}

// Sub returns a view of the region with its top-left corner at (x, y).
// It returns the zero BitmapData if the region is empty or not inside bd,
// or if a 4:2:0 region does not start on an even coordinate.
func (bd BitmapData) Sub(x, y, width, height int) BitmapData {
	if x < 0 || y < 0 || width <= 0 || height <= 0 ||
		x+width > bd.Width || y+height > bd.Height {
		return BitmapData{}
	}
	f := bd.Format
	if f.IsYUV420() && (x%2 != 0 || y%2 != 0) {
		return BitmapData{}
	}
	bd.FillDefaultValues()

	sub := BitmapData{Width: width, Height: height, Format: f}
	for i := range f.PlaneCount() {
		p := bd.Planes[i]
		xBytes := f.RowBytes(i, x)
		row := f.PlaneRows(i, y)
		if p.Stride < 0 {
			// The last row of the region is the first in memory.
			row = f.PlaneRows(i, bd.Height) - row - f.PlaneRows(i, height)
		}
		off := row*abs(p.Stride) + xBytes
		if off > len(p.Data) {
			return BitmapData{}
		}
		sub.Planes[i] = Plane{Data: p.Data[off:], Stride: p.Stride, Ref: p.Ref}
	}
	return sub
}

// Retain retains every plane reference.
func (bd BitmapData) Retain() {
	for _, p := range bd.Planes {
		if p.Ref != nil {
			p.Ref.Retain()
		}
	}
}

// Release releases every plane reference.
func (bd BitmapData) Release() {
	for _, p := range bd.Planes {
		if p.Ref != nil {
			p.Ref.Release()
		}
	}
}

// SetFromColors describes colors as a BGRA bitmap. stride is counted in
// colors; zero means width. The colors are aliased, not copied.
func (bd *BitmapData) SetFromColors(width, height int, colors []Color, stride int) {
	if stride == 0 {
		stride = width
	}
	*bd = BitmapData{Width: width, Height: height, Format: FormatBGRA}
	bd.Planes[0] = Plane{Data: ColorsAsBytes(colors), Stride: stride * 4}
}

// PlaneView is a view of one plane or one color component.
//
// Sample x of row y is Data[rowOffset(y) + x*SampleStride], where the row
// offset follows the Plane stride rules (negative means bottom-up).
type PlaneView struct {
	Data         []byte
	SampleStride int
	Stride       int
	Width        int
	Height       int
	Ref          Referable
}

// At returns the sample at (x, y). Coordinates are not checked.
func (v PlaneView) At(x, y int) byte {
	return v.Data[v.offset(x, y)]
}

// Set stores the sample at (x, y). Coordinates are not checked.
func (v PlaneView) Set(x, y int, b byte) {
	v.Data[v.offset(x, y)] = b
}

// Row returns row y from its first sample to the end of Data.
func (v PlaneView) Row(y int) []byte {
	return v.Data[v.offset(0, y):]
}

func (v PlaneView) offset(x, y int) int {
	return Plane{Stride: v.Stride}.rowOffset(y, v.Height) + x*v.SampleStride
}

// PlaneViews returns one view per physical plane. SampleStride is the
// size of one pixel for packed formats, 1 for planar channels and 2 for
// the interleaved chroma plane of NV12/NV21.
func (bd BitmapData) PlaneViews() []PlaneView {
	bd.FillDefaultValues()
	f := bd.Format
	n := f.PlaneCount()
	views := make([]PlaneView, n)
	for i := range n {
		p := bd.Planes[i]
		v := PlaneView{
			Data:   p.Data,
			Stride: p.Stride,
			Width:  bd.Width,
			Height: f.PlaneRows(i, bd.Height),
			Ref:    p.Ref,
		}
		switch {
		case f.IsYUV420() && i > 0:
			v.Width = bd.Width / 2
			v.SampleStride = 1
			if n == 2 {
				v.SampleStride = 2
			}
		case f.IsPlanar():
			v.SampleStride = f.BytesPerSample()
		default:
			v.SampleStride = f.BytesPerPixel()
		}
		views[i] = v
	}
	return views
}

// component locates one color channel inside the planes of a format.
type component struct {
	plane  int
	offset int
	step   int
	half   bool // chroma of a 4:2:0 layout
}

// componentTable lists channels in R, G, B, A or Y, U, V, A order for
// each byte-addressable layout. The 5:6:5 layouts are absent.
var componentTable = map[Format][]component{
	FormatRGBA: {{0, 0, 4, false}, {0, 1, 4, false}, {0, 2, 4, false}, {0, 3, 4, false}},
	FormatBGRA: {{0, 2, 4, false}, {0, 1, 4, false}, {0, 0, 4, false}, {0, 3, 4, false}},
	FormatARGB: {{0, 1, 4, false}, {0, 2, 4, false}, {0, 3, 4, false}, {0, 0, 4, false}},
	FormatABGR: {{0, 3, 4, false}, {0, 2, 4, false}, {0, 1, 4, false}, {0, 0, 4, false}},

	FormatRGB: {{0, 0, 3, false}, {0, 1, 3, false}, {0, 2, 3, false}},
	FormatBGR: {{0, 2, 3, false}, {0, 1, 3, false}, {0, 0, 3, false}},

	FormatGray8: {{0, 0, 1, false}},

	FormatYUVA:   {{0, 0, 4, false}, {0, 1, 4, false}, {0, 2, 4, false}, {0, 3, 4, false}},
	FormatYUV444: {{0, 0, 3, false}, {0, 1, 3, false}, {0, 2, 3, false}},

	FormatRGBAPlanar:   {{0, 0, 1, false}, {1, 0, 1, false}, {2, 0, 1, false}, {3, 0, 1, false}},
	FormatRGBPlanar:    {{0, 0, 1, false}, {1, 0, 1, false}, {2, 0, 1, false}},
	FormatYUVAPlanar:   {{0, 0, 1, false}, {1, 0, 1, false}, {2, 0, 1, false}, {3, 0, 1, false}},
	FormatYUV444Planar: {{0, 0, 1, false}, {1, 0, 1, false}, {2, 0, 1, false}},

	FormatI420: {{0, 0, 1, false}, {1, 0, 1, true}, {2, 0, 1, true}},
	FormatYV12: {{0, 0, 1, false}, {2, 0, 1, true}, {1, 0, 1, true}},
	FormatNV21: {{0, 0, 1, false}, {1, 1, 2, true}, {1, 0, 2, true}},
	FormatNV12: {{0, 0, 1, false}, {1, 0, 2, true}, {1, 1, 2, true}},
}

// ComponentViews returns one view per color channel, in R, G, B[, A]
// order for RGB formats and Y, U, V[, A] order for YUV formats. Chroma
// views of 4:2:0 formats are half resolution. It returns nil for formats
// whose channels are not byte addressable (the 5:6:5 layouts).
func (bd BitmapData) ComponentViews() []PlaneView {
	comps := componentTable[bd.Format.NonPremultiplied()]
	if comps == nil {
		return nil
	}
	views := make([]PlaneView, len(comps))
	bd.fillComponentViews(views, comps)
	return views
}

// fillComponentViews writes the views described by comps into views.
func (bd BitmapData) fillComponentViews(views []PlaneView, comps []component) {
	bd.FillDefaultValues()
	for i, c := range comps {
		p := bd.Planes[c.plane]
		v := PlaneView{
			SampleStride: c.step,
			Stride:       p.Stride,
			Width:        bd.Width,
			Height:       bd.Height,
			Ref:          p.Ref,
		}
		if c.half {
			v.Width /= 2
			v.Height /= 2
		}
		if c.offset < len(p.Data) {
			v.Data = p.Data[c.offset:]
		}
		views[i] = v
	}
}

// chromaLayout locates the U and V samples of a 4:2:0 format.
type chromaLayout struct {
	uPlane, uOffset int
	vPlane, vOffset int
	step            int
}

// chromaLayoutOf returns the chroma arrangement of a 4:2:0 format.
func chromaLayoutOf(f Format) chromaLayout {
	comps := componentTable[f]
	u, v := comps[1], comps[2]
	return chromaLayout{
		uPlane: u.plane, uOffset: u.offset,
		vPlane: v.plane, vOffset: v.offset,
		step: u.step,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
