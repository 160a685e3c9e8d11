// Command pixconv converts image files and raw pixel dumps between pixel
// formats.
//
// Examples:
//
//	# Re-encode a PNG as TIFF, passing the pixels through NV12 on the way
//	pixconv -in photo.png -out photo.tiff -via NV12
//
//	# Dump the pixels of a JPEG as raw RGB565LE
//	pixconv -in photo.jpg -raw-out photo.rgb565 -raw-format RGB565LE
//
//	# Turn a raw I420 frame into a PNG
//	pixconv -raw-in frame.yuv -raw-format I420 -width 640 -height 480 -out frame.png
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pixconv"
	"github.com/gogpu/pixconv/imageio"
)

func main() {
	var (
		in        = flag.String("in", "", "input image file")
		rawIn     = flag.String("raw-in", "", "input raw pixel file")
		out       = flag.String("out", "", "output image file")
		rawOut    = flag.String("raw-out", "", "output raw pixel file")
		rawFormat = flag.String("raw-format", "RGBA", "pixel format of raw input and output")
		via       = flag.String("via", "", "intermediate pixel format")
		width     = flag.Int("width", 0, "raw input width, or resize width")
		height    = flag.Int("height", 0, "raw input height, or resize height")
		quality   = flag.Int("quality", 0, "JPEG quality (1-100)")
		list      = flag.Bool("list", false, "list pixel formats and their frame sizes at -width x -height, then exit")
		verbose   = flag.Bool("v", false, "log conversion details")
	)
	flag.Parse()

	if *verbose {
		pixconv.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *list {
		listFormats(*width, *height)
		return
	}

	rf, ok := pixconv.ParseFormat(*rawFormat)
	if !ok {
		log.Fatalf("unknown pixel format %q", *rawFormat)
	}

	var (
		img *pixconv.Bitmap
		err error
	)
	switch {
	case *in != "":
		img, err = imageio.Load(*in)
		if err == nil && *width > 0 && *height > 0 {
			resized, rerr := imageio.Resize(img.BitmapData(), *width, *height, imageio.InterpCatmullRom)
			img.Release()
			img, err = resized, rerr
		}
	case *rawIn != "":
		img, err = loadRaw(*rawIn, rf, *width, *height)
	default:
		log.Fatal("one of -in or -raw-in is required")
	}
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	defer func() { img.Release() }()

	if *via != "" {
		vf, ok := pixconv.ParseFormat(*via)
		if !ok {
			log.Fatalf("unknown pixel format %q", *via)
		}
		img = roundTrip(img, vf)
	}

	if *out != "" {
		if err := imageio.Save(*out, img.BitmapData(), &imageio.Options{Quality: *quality}); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Saved %s (%dx%d)\n", *out, img.Width(), img.Height())
	}
	if *rawOut != "" {
		if err := saveRaw(*rawOut, img, rf); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Saved %s (%dx%d %v)\n", *rawOut, img.Width(), img.Height(), rf)
	}
}

// listFormats prints every format with the size of one frame. Sizes use
// digit grouping, so a 1080p RGBA frame reads 8,294,400 bytes.
func listFormats(width, height int) {
	if width <= 0 || height <= 0 {
		width, height = 1920, 1080
	}
	p := message.NewPrinter(language.English)
	fmt.Printf("frame size %dx%d\n", width, height)
	for _, f := range pixconv.Formats() {
		p.Printf("%-16s planes=%d bpp=%-2d alpha=%-5t premultiplied=%-5t %12d bytes\n",
			f.String(), f.PlaneCount(), f.BitsPerPixel(), f.HasAlpha(), f.IsPremultiplied(),
			f.ImageSize(width, height))
	}
}

// roundTrip converts img to f and back, releasing img.
func roundTrip(img *pixconv.Bitmap, f pixconv.Format) *pixconv.Bitmap {
	mid, err := img.ConvertTo(f)
	if err != nil {
		log.Fatalf("Failed to convert to %v: %v", f, err)
	}
	defer mid.Release()

	back, err := mid.ConvertTo(img.Format())
	if err != nil {
		log.Fatalf("Failed to convert from %v: %v", f, err)
	}
	img.Release()
	return back
}

func loadRaw(path string, f pixconv.Format, width, height int) (*pixconv.Bitmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if need := f.ImageSize(width, height); len(data) < need {
		return nil, fmt.Errorf("%s: %d bytes, %dx%d %v needs %d", path, len(data), width, height, f, need)
	}

	b, err := pixconv.NewBitmap(width, height, f)
	if err != nil {
		return nil, err
	}
	src := pixconv.BitmapData{Width: width, Height: height, Format: f}
	src.Planes[0].Data = data
	pixconv.ConvertParallel(b.BitmapData(), src)
	return b, nil
}

func saveRaw(path string, img *pixconv.Bitmap, f pixconv.Format) error {
	dst, err := img.ConvertTo(f)
	if err != nil {
		return err
	}
	defer dst.Release()
	return os.WriteFile(path, dst.Data(), 0o600)
}
