package pixconv

import "errors"

// Common errors for bitmap operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive,
	// or odd for a 4:2:0 format.
	ErrInvalidDimensions = errors.New("pixconv: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("pixconv: invalid format")

	// ErrOutOfBounds is returned when pixel coordinates are outside the
	// bitmap.
	ErrOutOfBounds = errors.New("pixconv: coordinates out of bounds")

	// ErrUnsupportedFormat is returned by per-pixel writes to formats that
	// have no per-pixel representation (the 4:2:0 layouts).
	ErrUnsupportedFormat = errors.New("pixconv: operation not supported for format")
)

// Bitmap is an image that owns its pixel memory.
//
// All planes live in one Memory block, tightly packed in plane order.
// The block is shared with every BitmapData returned by BitmapData, and
// returned to its pool by Release.
//
// Thread safety: Bitmap is safe for concurrent reads. Writes (SetPixel,
// Fill, conversions into it) require external synchronization.
type Bitmap struct {
	data BitmapData
	mem  *Memory
}

// NewBitmap allocates a zeroed bitmap.
// Returns an error if dimensions are invalid or format is unknown.
func NewBitmap(width, height int, format Format) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if format.IsYUV420() && (width%2 != 0 || height%2 != 0) {
		return nil, ErrInvalidDimensions
	}

	mem := NewMemory(format.ImageSize(width, height))
	b := &Bitmap{
		data: BitmapData{Width: width, Height: height, Format: format},
		mem:  mem,
	}
	b.data.Planes[0] = Plane{Data: mem.Bytes(), Ref: mem}
	b.data.FillDefaultValues()
	return b, nil
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int {
	return b.data.Width
}

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int {
	return b.data.Height
}

// Format returns the pixel format.
func (b *Bitmap) Format() Format {
	return b.data.Format
}

// Data returns the raw bytes of all planes.
func (b *Bitmap) Data() []byte {
	return b.mem.Bytes()
}

// BitmapData returns a descriptor of the bitmap's memory, suitable as the
// source or destination of a conversion.
func (b *Bitmap) BitmapData() BitmapData {
	return b.data
}

// PixelAt returns the straight-alpha color at (x, y).
// Returns the zero Color if coordinates are out of bounds.
func (b *Bitmap) PixelAt(x, y int) Color {
	if !b.contains(x, y) {
		return Color{}
	}
	bd := &b.data
	if bd.Format.IsYUV420() {
		lay := chromaLayoutOf(bd.Format)
		c := x / 2 * lay.step
		s := yuva{
			Y: bd.planeRow(0, y)[x],
			U: bd.planeRow(lay.uPlane, y/2)[lay.uOffset+c],
			V: bd.planeRow(lay.vPlane, y/2)[lay.vOffset+c],
			A: 255,
		}
		return yuvaToColor(s)
	}
	return DecodePixel(bd.Format, bd.rowCursor(y).Advance(bd.Format, x))
}

// SetPixel stores a straight-alpha color at (x, y).
// Returns ErrOutOfBounds if coordinates are outside the bitmap and
// ErrUnsupportedFormat for 4:2:0 formats.
func (b *Bitmap) SetPixel(x, y int, c Color) error {
	if !b.contains(x, y) {
		return ErrOutOfBounds
	}
	bd := &b.data
	if bd.Format.IsYUV420() {
		return ErrUnsupportedFormat
	}
	EncodePixel(bd.Format, bd.rowCursor(y).Advance(bd.Format, x), c)
	return nil
}

func (b *Bitmap) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.data.Width && y < b.data.Height
}

// Fill sets every pixel to c. 4:2:0 bitmaps are filled block row by block
// row, so each chroma sample receives the color's own chroma.
func (b *Bitmap) Fill(c Color) {
	rows := 1
	if b.data.Format.IsYUV420() {
		rows = 2
	}
	width := b.data.Width
	colors := make([]Color, width*rows)
	for i := range colors {
		colors[i] = c
	}
	var src BitmapData
	src.SetFromColors(width, rows, colors, 0)

	for y := 0; y < b.data.Height; y += rows {
		Convert(b.data.Sub(0, y, width, rows), src)
	}
}

// Clear zeroes all pixel bytes.
func (b *Bitmap) Clear() {
	clear(b.mem.Bytes())
}

// Clone creates a deep copy of the bitmap in fresh memory.
func (b *Bitmap) Clone() *Bitmap {
	out, _ := NewBitmap(b.data.Width, b.data.Height, b.data.Format)
	copy(out.mem.Bytes(), b.mem.Bytes())
	return out
}

// ConvertTo returns a new bitmap holding this bitmap's pixels in format f.
// 4:2:0 targets require even dimensions.
func (b *Bitmap) ConvertTo(f Format) (*Bitmap, error) {
	out, err := NewBitmap(b.data.Width, b.data.Height, f)
	if err != nil {
		return nil, err
	}
	Convert(out.data, b.data)
	return out, nil
}

// Release drops the bitmap's reference to its memory. The bitmap and any
// BitmapData obtained from it must not be used afterwards, unless that
// BitmapData was retained.
func (b *Bitmap) Release() {
	b.data.Release()
}
