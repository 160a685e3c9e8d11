package pixconv

import (
	"runtime"

	"github.com/gogpu/pixconv/internal/parallel"
)

// ConvertParallel converts src into dst like ConvertAlpha, splitting the
// region into horizontal bands converted concurrently on a shared worker
// pool. Bands never share rows (or, for 4:2:0 formats, chroma rows), so
// the result is byte-identical to a single ConvertAlpha call.
//
// ConvertParallel returns when every band is done.
func ConvertParallel(dst, src BitmapData, opts ...ParallelOption) {
	o := defaultParallelOptions()
	for _, opt := range opts {
		opt(&o)
	}

	width := min(dst.Width, src.Width)
	height := min(dst.Height, src.Height)
	align := 1
	if src.Format.IsYUV420() || dst.Format.IsYUV420() {
		align = 2
	}
	workers := o.workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	bands := parallel.SplitRows(height, o.bandRows, workers, align)
	if len(bands) <= 1 || width <= 0 || !src.Format.IsValid() || !dst.Format.IsValid() ||
		width%align != 0 || height%align != 0 {
		ConvertAlpha(dst, src, o.mode)
		return
	}

	jobs := make([]func(), len(bands))
	for i, b := range bands {
		d := dst.Sub(0, b.Y, width, b.Height)
		s := src.Sub(0, b.Y, width, b.Height)
		jobs[i] = func() {
			ConvertAlpha(d, s, o.mode)
		}
	}
	Logger().Debug("pixconv: parallel conversion",
		"src", src.Format, "dst", dst.Format, "bands", len(bands))
	parallel.Default().ExecuteAll(jobs)
}
