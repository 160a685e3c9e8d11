package imageio

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixconv"
)

// Interpolation selects the resampling filter of Resize.
type Interpolation uint8

const (
	// InterpNearest selects the closest source pixel.
	InterpNearest Interpolation = iota
	// InterpApproxBilinear is a fast approximation of bilinear filtering.
	InterpApproxBilinear
	// InterpBilinear is bilinear filtering.
	InterpBilinear
	// InterpCatmullRom is bicubic Catmull-Rom filtering.
	InterpCatmullRom
)

// String returns the interpolation name.
func (i Interpolation) String() string {
	switch i {
	case InterpNearest:
		return "Nearest"
	case InterpApproxBilinear:
		return "ApproxBilinear"
	case InterpBilinear:
		return "Bilinear"
	case InterpCatmullRom:
		return "CatmullRom"
	default:
		return "Unknown"
	}
}

func (i Interpolation) interpolator() draw.Interpolator {
	switch i {
	case InterpApproxBilinear:
		return draw.ApproxBiLinear
	case InterpBilinear:
		return draw.BiLinear
	case InterpCatmullRom:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Resize scales src to width x height and returns the result in src's
// format. Filtering runs on straight RGBA; 4:2:0 results require even
// dimensions.
func Resize(src pixconv.BitmapData, width, height int, interp Interpolation) (*pixconv.Bitmap, error) {
	if src.Width <= 0 || src.Height <= 0 {
		return nil, ErrEmptyData
	}
	out, err := pixconv.NewBitmap(width, height, src.Format)
	if err != nil {
		return nil, err
	}

	in := pixconv.ToImage(src)
	scaled := image.NewNRGBA(image.Rect(0, 0, width, height))
	interp.interpolator().Scale(scaled, scaled.Bounds(), in, in.Bounds(), draw.Src, nil)

	bd, _ := pixconv.FromImage(scaled)
	pixconv.Convert(out.BitmapData(), bd)
	return out, nil
}
