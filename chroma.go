package pixconv

// The 4:2:0 sampler. Each 2x2 block of pixels shares one U and one V
// sample; the four arrangements (I420, YV12, NV21, NV12) differ only in
// where those samples live, described by chromaLayout.

// yuvReader produces Y'CbCr samples for a run of source pixels, using the
// source's native samples when it is a YUV layout and no alpha transform
// is pending.
type yuvReader struct {
	codec  pixelCodec
	native yuvCodec
	op     alphaOp
	colors [scratchPixels]Color
}

func newYUVReader(f Format, op alphaOp) *yuvReader {
	r := &yuvReader{codec: layoutCodec(f), op: op}
	if yc, ok := r.codec.(yuvCodec); ok && op == alphaNone {
		r.native = yc
	}
	return r
}

func (r *yuvReader) read(dst []yuva, src Cursor) {
	if r.native != nil {
		r.native.decodeYUV(dst, src)
		return
	}
	px := r.colors[:len(dst)]
	r.codec.decode(px, src)
	applyAlpha(px, r.op)
	for i, c := range px {
		dst[i] = colorToYUVA(c)
	}
}

// yuvWriter is the encoding counterpart of yuvReader.
type yuvWriter struct {
	codec  pixelCodec
	native yuvCodec
	op     alphaOp
	colors [scratchPixels]Color
}

func newYUVWriter(f Format, op alphaOp) *yuvWriter {
	w := &yuvWriter{codec: layoutCodec(f), op: op}
	if yc, ok := w.codec.(yuvCodec); ok && op == alphaNone {
		w.native = yc
	}
	return w
}

func (w *yuvWriter) write(dst Cursor, src []yuva) {
	if w.native != nil {
		w.native.encodeYUV(dst, src)
		return
	}
	px := w.colors[:len(src)]
	for i, s := range src {
		px[i] = yuvaToColor(s)
	}
	applyAlpha(px, w.op)
	w.codec.encode(dst, px)
}

// subsample420 encodes a full-resolution src into the 4:2:0 dst.
// Luma is kept per pixel; each chroma sample is the mean of its 2x2
// block, (sum+2) >> 2. width and height must be even.
func subsample420(dst, src *BitmapData, width, height int, op alphaOp) {
	lay := chromaLayoutOf(dst.Format)
	r := newYUVReader(src.Format, op)
	var rows [2][scratchPixels]yuva

	for y := 0; y < height; y += 2 {
		y0, y1 := dst.planeRow(0, y), dst.planeRow(0, y+1)
		uRow := dst.planeRow(lay.uPlane, y/2)[lay.uOffset:]
		vRow := dst.planeRow(lay.vPlane, y/2)[lay.vOffset:]
		s0, s1 := src.rowCursor(y), src.rowCursor(y+1)

		for x := 0; x < width; x += scratchPixels {
			n := min(scratchPixels, width-x)
			top, bottom := rows[0][:n], rows[1][:n]
			r.read(top, s0)
			r.read(bottom, s1)

			for i := range n {
				y0[x+i] = top[i].Y
				y1[x+i] = bottom[i].Y
			}
			for i := 0; i < n; i += 2 {
				u := int32(top[i].U) + int32(top[i+1].U) + int32(bottom[i].U) + int32(bottom[i+1].U)
				v := int32(top[i].V) + int32(top[i+1].V) + int32(bottom[i].V) + int32(bottom[i+1].V)
				c := (x + i) / 2 * lay.step
				uRow[c] = clamp8((u + 2) >> 2)
				vRow[c] = clamp8((v + 2) >> 2)
			}

			if x+n < width {
				s0 = s0.Advance(src.Format, n)
				s1 = s1.Advance(src.Format, n)
			}
		}
	}
}

// upsample420 decodes the 4:2:0 src into a full-resolution dst. Every
// pixel of a 2x2 block takes that block's chroma sample unchanged.
func upsample420(dst, src *BitmapData, width, height int, op alphaOp) {
	lay := chromaLayoutOf(src.Format)
	w := newYUVWriter(dst.Format, op)
	var samples [scratchPixels]yuva

	for y := range height {
		yRow := src.planeRow(0, y)
		uRow := src.planeRow(lay.uPlane, y/2)[lay.uOffset:]
		vRow := src.planeRow(lay.vPlane, y/2)[lay.vOffset:]
		d := dst.rowCursor(y)

		for x := 0; x < width; x += scratchPixels {
			n := min(scratchPixels, width-x)
			s := samples[:n]
			for i := range s {
				c := (x + i) / 2 * lay.step
				s[i] = yuva{Y: yRow[x+i], U: uRow[c], V: vRow[c], A: 255}
			}
			w.write(d, s)

			if x+n < width {
				d = d.Advance(dst.Format, n)
			}
		}
	}
}

// reshuffle420 moves samples between two 4:2:0 arrangements. All four
// share the same subsampling, so this is a pure copy of the Y, U and V
// components with no arithmetic.
func reshuffle420(dst, src *BitmapData, width, height int) {
	if dst.Format == src.Format {
		copyPlanes(dst, src, width, height)
		return
	}
	var sv, dv [3]PlaneView
	src.fillComponentViews(sv[:], componentTable[src.Format])
	dst.fillComponentViews(dv[:], componentTable[dst.Format])

	copyView(dv[0], sv[0], width, height)
	copyView(dv[1], sv[1], width/2, height/2)
	copyView(dv[2], sv[2], width/2, height/2)
}

// copyView copies a width x height block of samples between two views.
func copyView(dst, src PlaneView, width, height int) {
	for y := range height {
		d, s := dst.Row(y), src.Row(y)
		if dst.SampleStride == 1 && src.SampleStride == 1 {
			copy(d[:width], s[:width])
			continue
		}
		for x := range width {
			d[x*dst.SampleStride] = s[x*src.SampleStride]
		}
	}
}
