// Package imageio reads and writes image files as pixconv bitmaps.
//
// Decoding supports PNG, JPEG, BMP, TIFF and WebP; encoding supports
// PNG, JPEG, BMP and TIFF. Decoded images keep the closest pixconv format
// of their in-memory representation: JPEG files with 4:2:0 chroma become
// FormatI420 bitmaps, paletted and 16-bit images become FormatRGBA.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // registers the WebP decoder

	"github.com/gogpu/pixconv"
)

// I/O errors.
var (
	// ErrUnsupportedKind is returned when a file format cannot be encoded
	// or is not recognized.
	ErrUnsupportedKind = errors.New("imageio: unsupported image kind")

	// ErrEmptyData is returned for empty input data or an empty image.
	ErrEmptyData = errors.New("imageio: empty data")
)

// Options configures Encode.
type Options struct {
	// Quality is the JPEG quality, 1 to 100. Zero selects
	// jpeg.DefaultQuality.
	Quality int

	// Compression is the TIFF compression scheme. The encoder supports
	// tiff.Uncompressed and tiff.Deflate.
	Compression tiff.CompressionType
}

func (o *Options) quality() int {
	if o == nil || o.Quality == 0 {
		return jpeg.DefaultQuality
	}
	return min(max(o.Quality, 1), 100)
}

func (o *Options) tiffOptions() *tiff.Options {
	if o == nil {
		return &tiff.Options{Compression: tiff.Deflate}
	}
	return &tiff.Options{Compression: o.Compression}
}

// Load decodes the image file at path.
func Load(path string) (*pixconv.Bitmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if fi, err := f.Stat(); err == nil && fi.Size() == 0 {
		return nil, fmt.Errorf("imageio: %s: %w", path, ErrEmptyData)
	}
	b, _, err := Decode(f)
	return b, err
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (*pixconv.Bitmap, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting its kind. The second
// result is the kind name reported by image.Decode ("png", "jpeg", ...).
func Decode(r io.Reader) (*pixconv.Bitmap, string, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	b, err := FromImage(img)
	if err != nil {
		return nil, "", err
	}
	pixconv.Logger().Debug("imageio: decoded",
		"kind", name, "format", b.Format(), "width", b.Width(), "height", b.Height())
	return b, name, nil
}

// FromImage copies a standard library image into a new bitmap. Images
// pixconv can describe directly keep their layout; anything else is
// drawn into straight RGBA first.
func FromImage(img image.Image) (*pixconv.Bitmap, error) {
	r := img.Bounds()
	if r.Empty() {
		return nil, ErrEmptyData
	}

	src, ok := pixconv.FromImage(img)
	if ok && src.Format.IsYUV420() && (src.Width%2 != 0 || src.Height%2 != 0) {
		ok = false
	}
	if !ok {
		nrgba := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Copy(nrgba, image.Point{}, img, r, draw.Src, nil)
		src, _ = pixconv.FromImage(nrgba)
	}

	b, err := pixconv.NewBitmap(src.Width, src.Height, src.Format)
	if err != nil {
		return nil, fmt.Errorf("imageio: allocate %v bitmap: %w", src.Format, err)
	}
	pixconv.Convert(b.BitmapData(), src)
	return b, nil
}

// Encode writes src to w as kind.
func Encode(w io.Writer, src pixconv.BitmapData, kind Kind, opts *Options) error {
	if src.Width <= 0 || src.Height <= 0 {
		return ErrEmptyData
	}
	if !kind.CanEncode() {
		return fmt.Errorf("imageio: encode %s: %w", kind, ErrUnsupportedKind)
	}

	img := pixconv.ToImage(src)
	var err error
	switch kind {
	case KindPNG:
		err = png.Encode(w, img)
	case KindJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: opts.quality()})
	case KindBMP:
		err = bmp.Encode(w, img)
	case KindTIFF:
		err = tiff.Encode(w, img, opts.tiffOptions())
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", kind, err)
	}
	return nil
}

// Save writes src to the file at path, choosing the kind from the file
// extension.
func Save(path string, src pixconv.BitmapData, opts *Options) error {
	kind := KindFromPath(path)
	if !kind.CanEncode() {
		return fmt.Errorf("imageio: save %s: %w", filepath.Base(path), ErrUnsupportedKind)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := Encode(f, src, kind, opts); err != nil {
		_ = f.Close()
		pixconv.Logger().Warn("imageio: save failed", "path", path, "err", err)
		return err
	}
	return f.Close()
}
