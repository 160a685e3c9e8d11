package pixconv

import "image"

// FromImage describes the pixels of a standard library image without
// copying them. Supported types:
//   - *image.RGBA as FormatRGBAPA
//   - *image.NRGBA as FormatRGBA
//   - *image.Gray as FormatGray8
//   - *image.YCbCr with 4:2:0 subsampling as FormatI420, and with 4:4:4
//     as FormatYUV444Planar
//
// The second result is false for any other image, and for a 4:2:0 image
// whose bounds start on an odd coordinate.
func FromImage(img image.Image) (BitmapData, bool) {
	r := img.Bounds()
	bd := BitmapData{Width: r.Dx(), Height: r.Dy()}

	switch m := img.(type) {
	case *image.RGBA:
		bd.Format = FormatRGBAPA
		bd.Planes[0] = Plane{Data: m.Pix[m.PixOffset(r.Min.X, r.Min.Y):], Stride: m.Stride}
	case *image.NRGBA:
		bd.Format = FormatRGBA
		bd.Planes[0] = Plane{Data: m.Pix[m.PixOffset(r.Min.X, r.Min.Y):], Stride: m.Stride}
	case *image.Gray:
		bd.Format = FormatGray8
		bd.Planes[0] = Plane{Data: m.Pix[m.PixOffset(r.Min.X, r.Min.Y):], Stride: m.Stride}
	case *image.YCbCr:
		switch m.SubsampleRatio {
		case image.YCbCrSubsampleRatio420:
			if r.Min.X%2 != 0 || r.Min.Y%2 != 0 {
				return BitmapData{}, false
			}
			bd.Format = FormatI420
		case image.YCbCrSubsampleRatio444:
			bd.Format = FormatYUV444Planar
		default:
			return BitmapData{}, false
		}
		yo, co := m.YOffset(r.Min.X, r.Min.Y), m.COffset(r.Min.X, r.Min.Y)
		bd.Planes[0] = Plane{Data: m.Y[yo:], Stride: m.YStride}
		bd.Planes[1] = Plane{Data: m.Cb[co:], Stride: m.CStride}
		bd.Planes[2] = Plane{Data: m.Cr[co:], Stride: m.CStride}
	default:
		return BitmapData{}, false
	}
	return bd, true
}

// ToImage converts src into a new standard library image: *image.Gray for
// FormatGray8, *image.NRGBA for everything else.
func ToImage(src BitmapData) image.Image {
	rect := image.Rect(0, 0, max(src.Width, 0), max(src.Height, 0))

	if src.Format == FormatGray8 {
		gray := image.NewGray(rect)
		dst := BitmapData{Width: src.Width, Height: src.Height, Format: FormatGray8}
		dst.Planes[0] = Plane{Data: gray.Pix, Stride: gray.Stride}
		Convert(dst, src)
		return gray
	}

	nrgba := image.NewNRGBA(rect)
	dst := BitmapData{Width: src.Width, Height: src.Height, Format: FormatRGBA}
	dst.Planes[0] = Plane{Data: nrgba.Pix, Stride: nrgba.Stride}
	Convert(dst, src)
	return nrgba
}
