package pixconv

// Convert converts the pixels of src into dst. It is ConvertAlpha with
// AlphaPlain.
func Convert(dst, src BitmapData) {
	ConvertAlpha(dst, src, AlphaPlain)
}

// ConvertAlpha converts the overlapping region of src and dst (the
// smaller of the two widths and heights) from src's format into dst's,
// honoring each side's plane strides.
//
// The path is chosen in this order:
//  1. both sides 4:2:0: plane reshuffle, verbatim copy if identical
//  2. destination 4:2:0: 2x2 block subsampling of the decoded source
//  3. source 4:2:0: nearest chroma upsampling into the destination codec
//  4. identical formats with AlphaPlain: verbatim copy; otherwise decode
//     each row to Colors, apply the alpha transform and re-encode
//
// An explicit AlphaPremultiply or AlphaUnpremultiply always runs the
// transform, even when src and dst share a format. Empty regions, unknown
// formats and odd dimensions at a 4:2:0 endpoint are silent no-ops.
//
// src and dst must not overlap in memory.
func ConvertAlpha(dst, src BitmapData, mode AlphaMode) {
	width := min(dst.Width, src.Width)
	height := min(dst.Height, src.Height)
	if width <= 0 || height <= 0 {
		logSkip("empty region", dst.Format, src.Format, width, height)
		return
	}
	if !src.Format.IsValid() || !dst.Format.IsValid() {
		logSkip("unknown format", dst.Format, src.Format, width, height)
		return
	}
	src420, dst420 := src.Format.IsYUV420(), dst.Format.IsYUV420()
	if (src420 || dst420) && (width%2 != 0 || height%2 != 0) {
		logSkip("odd dimensions at 4:2:0 endpoint", dst.Format, src.Format, width, height)
		return
	}

	src.FillDefaultValues()
	dst.FillDefaultValues()
	op := resolveAlphaOp(dst.Format, src.Format, mode)

	switch {
	case src420 && dst420:
		reshuffle420(&dst, &src, width, height)
	case dst420:
		subsample420(&dst, &src, width, height, op)
	case src420:
		upsample420(&dst, &src, width, height, op)
	case src.Format == dst.Format && mode == AlphaPlain:
		copyPlanes(&dst, &src, width, height)
	default:
		convertRows(&dst, &src, width, height, op)
	}
}

// copyPlanes copies a width x height region of identical formats plane by
// plane. A plane whose strides both equal its packed row size is copied
// in one call.
func copyPlanes(dst, src *BitmapData, width, height int) {
	f := src.Format
	for i := range f.PlaneCount() {
		rowBytes := f.RowBytes(i, width)
		rows := f.PlaneRows(i, height)
		sp, dp := src.Planes[i], dst.Planes[i]
		if sp.Stride == rowBytes && dp.Stride == rowBytes {
			n := rowBytes * rows
			copy(dp.Data[:n], sp.Data[:n])
			continue
		}
		for y := range rows {
			copy(dst.planeRow(i, y)[:rowBytes], src.planeRow(i, y)[:rowBytes])
		}
	}
}

// convertRows decodes and re-encodes a region row by row.
func convertRows(dst, src *BitmapData, width, height int, op alphaOp) {
	dec, enc := layoutCodec(src.Format), layoutCodec(dst.Format)
	for y := range height {
		convertRun(width, enc, dst.Format, dst.rowCursor(y), dec, src.Format, src.rowCursor(y), op)
	}
}

// ReadColors converts src into straight-alpha colors. stride is the
// distance between rows of dst in colors; zero means src.Width.
func ReadColors(dst []Color, stride int, src BitmapData) {
	var bd BitmapData
	bd.SetFromColors(src.Width, src.Height, dst, stride)
	Convert(bd, src)
}

// WriteColors converts straight-alpha colors into dst. stride is the
// distance between rows of src in colors; zero means dst.Width.
func WriteColors(dst BitmapData, src []Color, stride int) {
	var bd BitmapData
	bd.SetFromColors(dst.Width, dst.Height, src, stride)
	Convert(dst, bd)
}
