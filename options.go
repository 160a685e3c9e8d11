package pixconv

// ParallelOption configures ConvertParallel.
//
// Example:
//
//	pixconv.ConvertParallel(dst, src,
//		pixconv.WithBandRows(64),
//		pixconv.WithAlphaMode(pixconv.AlphaPremultiply))
type ParallelOption func(*parallelOptions)

// parallelOptions holds the configuration of one ConvertParallel call.
type parallelOptions struct {
	workers  int
	bandRows int
	mode     AlphaMode
}

// defaultParallelOptions returns the options used when none are given.
func defaultParallelOptions() parallelOptions {
	return parallelOptions{
		workers:  0, // GOMAXPROCS
		bandRows: 0, // derived from workers
		mode:     AlphaPlain,
	}
}

// WithWorkers sets how many bands the region is split into when no band
// height is given. 1 converts on the calling goroutine. Values below 1
// select GOMAXPROCS.
func WithWorkers(n int) ParallelOption {
	return func(o *parallelOptions) {
		o.workers = n
	}
}

// WithBandRows sets the height of each band in rows. For 4:2:0 formats it
// is rounded up to an even count.
func WithBandRows(n int) ParallelOption {
	return func(o *parallelOptions) {
		o.bandRows = n
	}
}

// WithAlphaMode sets the alpha mode applied to every band.
func WithAlphaMode(m AlphaMode) ParallelOption {
	return func(o *parallelOptions) {
		o.mode = m
	}
}
