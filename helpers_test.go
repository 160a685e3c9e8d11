package pixconv

import "math/rand/v2"

// newBitmapData returns tightly packed, zeroed bitmap data with all planes
// in one buffer.
func newBitmapData(f Format, width, height int) BitmapData {
	bd := BitmapData{Width: width, Height: height, Format: f}
	bd.Planes[0].Data = make([]byte, f.ImageSize(width, height))
	bd.FillDefaultValues()
	return bd
}

// randomBitmapData is newBitmapData filled with reproducible noise.
func randomBitmapData(f Format, width, height int, seed uint64) BitmapData {
	bd := newBitmapData(f, width, height)
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	for i := range bd.Planes[0].Data {
		bd.Planes[0].Data[i] = byte(rng.Uint32())
	}
	return bd
}

// paintColors writes fn(x, y) to every pixel of bd.
func paintColors(bd BitmapData, fn func(x, y int) Color) {
	colors := make([]Color, bd.Width*bd.Height)
	for y := range bd.Height {
		for x := range bd.Width {
			colors[y*bd.Width+x] = fn(x, y)
		}
	}
	WriteColors(bd, colors, 0)
}

// readAll returns the pixels of bd as straight colors.
func readAll(bd BitmapData) []Color {
	colors := make([]Color, bd.Width*bd.Height)
	ReadColors(colors, 0, bd)
	return colors
}

// palette holds colors that survive every format round trip exactly,
// except for the 5:6:5 and gray layouts.
var palette = []Color{Black, White, Red, Green, Blue, RGB(255, 255, 0), RGB(0, 255, 255), RGB(255, 0, 255)}
