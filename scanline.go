package pixconv

// scratchPixels is the run length converted per decode/encode pass.
// It is even so 2x2 chroma blocks never straddle two passes.
const scratchPixels = 256

// ConvertPixels converts count consecutive pixels from src to dst.
// It is ConvertPixelsAlpha with AlphaPlain.
func ConvertPixels(count int, dstFormat Format, dst Cursor, srcFormat Format, src Cursor) {
	ConvertPixelsAlpha(count, dstFormat, dst, srcFormat, src, AlphaPlain)
}

// ConvertPixelsAlpha converts count consecutive pixels from src to dst
// with an explicit alpha mode.
//
// Identical formats with AlphaPlain are copied verbatim. 4:2:0 formats
// have no per-pixel representation; runs involving them are no-ops, as
// are runs involving unknown formats.
func ConvertPixelsAlpha(count int, dstFormat Format, dst Cursor, srcFormat Format, src Cursor, mode AlphaMode) {
	if count <= 0 {
		return
	}
	dec, enc := layoutCodec(srcFormat), layoutCodec(dstFormat)
	if dec == nil || enc == nil {
		logSkip("no per-pixel codec", dstFormat, srcFormat, count, 1)
		return
	}
	if srcFormat == dstFormat && mode == AlphaPlain {
		copyRun(count, dstFormat, dst, src)
		return
	}
	convertRun(count, enc, dstFormat, dst, dec, srcFormat, src, resolveAlphaOp(dstFormat, srcFormat, mode))
}

// copyRun copies count pixels of format f plane by plane.
func copyRun(count int, f Format, dst, src Cursor) {
	if !f.IsPlanar() {
		n := count * f.BytesPerPixel()
		copy(dst[0][:n], src[0][:n])
		return
	}
	n := count * f.BytesPerSample()
	for i := range f.PlaneCount() {
		copy(dst[i][:n], src[i][:n])
	}
}

// convertRun decodes src into a fixed scratch buffer, applies op and
// encodes into dst, scratchPixels pixels at a time.
func convertRun(count int, enc pixelCodec, dstFormat Format, dst Cursor, dec pixelCodec, srcFormat Format, src Cursor, op alphaOp) {
	var scratch [scratchPixels]Color
	for count > 0 {
		n := min(count, scratchPixels)
		px := scratch[:n]
		dec.decode(px, src)
		applyAlpha(px, op)
		enc.encode(dst, px)
		count -= n
		if count > 0 {
			src = src.Advance(srcFormat, n)
			dst = dst.Advance(dstFormat, n)
		}
	}
}
