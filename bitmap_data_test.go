package pixconv

import "testing"

// countingRef records Retain and Release calls.
type countingRef struct {
	retains, releases int
}

func (r *countingRef) Retain()  { r.retains++ }
func (r *countingRef) Release() { r.releases++ }

// sequence returns n bytes counting up from zero.
func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestFillDefaultValues(t *testing.T) {
	t.Run("strides", func(t *testing.T) {
		bd := BitmapData{Width: 5, Height: 2, Format: FormatRGB}
		bd.Planes[0].Data = make([]byte, 30)
		bd.FillDefaultValues()
		if bd.Planes[0].Stride != 15 {
			t.Errorf("Stride = %d, want 15", bd.Planes[0].Stride)
		}
	})

	t.Run("NV12 single buffer", func(t *testing.T) {
		buf := sequence(12)
		bd := BitmapData{Width: 4, Height: 2, Format: FormatNV12}
		bd.Planes[0].Data = buf
		bd.FillDefaultValues()
		if got := bd.Planes[1].Data; len(got) != 4 || got[0] != 8 {
			t.Errorf("chroma plane = %v, want buf[8:]", got)
		}
		if bd.Planes[0].Stride != 4 || bd.Planes[1].Stride != 4 {
			t.Errorf("strides = %d, %d, want 4, 4", bd.Planes[0].Stride, bd.Planes[1].Stride)
		}
	})

	t.Run("I420 padded luma", func(t *testing.T) {
		buf := sequence(16)
		bd := BitmapData{Width: 4, Height: 2, Format: FormatI420}
		bd.Planes[0] = Plane{Data: buf, Stride: 6}
		bd.FillDefaultValues()
		if bd.Planes[1].Data[0] != 12 || bd.Planes[2].Data[0] != 14 {
			t.Errorf("chroma planes start at %d, %d, want 12, 14", bd.Planes[1].Data[0], bd.Planes[2].Data[0])
		}
	})

	t.Run("short buffer", func(t *testing.T) {
		bd := BitmapData{Width: 4, Height: 2, Format: FormatNV12}
		bd.Planes[0].Data = make([]byte, 6)
		bd.FillDefaultValues()
		if bd.Planes[1].Data != nil {
			t.Error("chroma plane set from a buffer too short for luma")
		}
	})

	t.Run("explicit planes kept", func(t *testing.T) {
		chroma := make([]byte, 4)
		bd := BitmapData{Width: 4, Height: 2, Format: FormatNV12}
		bd.Planes[0].Data = make([]byte, 12)
		bd.Planes[1].Data = chroma
		bd.FillDefaultValues()
		if &bd.Planes[1].Data[0] != &chroma[0] {
			t.Error("explicit chroma plane replaced")
		}
	})
}

func TestTotalSize(t *testing.T) {
	tests := []struct {
		name string
		bd   BitmapData
		want int
	}{
		{"NV12 packed", BitmapData{Width: 4, Height: 2, Format: FormatNV12}, 12},
		{"RGBA bottom-up", BitmapData{Width: 3, Height: 2, Format: FormatRGBA, Planes: [MaxPlanes]Plane{{Stride: -16}}}, 32},
		{"NV12 padded luma", BitmapData{Width: 4, Height: 2, Format: FormatNV12, Planes: [MaxPlanes]Plane{{Stride: 8}}}, 20},
		{"RGB planar", BitmapData{Width: 2, Height: 2, Format: FormatRGBPlanar}, 12},
		{"empty", BitmapData{Width: 0, Height: 2, Format: FormatRGBA}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bd.TotalSize(); got != tt.want {
				t.Errorf("TotalSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSub(t *testing.T) {
	t.Run("packed", func(t *testing.T) {
		ref := &countingRef{}
		bd := BitmapData{Width: 4, Height: 3, Format: FormatRGBA}
		bd.Planes[0] = Plane{Data: sequence(48), Ref: ref}
		sub := bd.Sub(1, 1, 2, 2)
		if sub.Width != 2 || sub.Height != 2 || sub.Format != FormatRGBA {
			t.Fatalf("Sub = %dx%d %v", sub.Width, sub.Height, sub.Format)
		}
		if sub.Planes[0].Data[0] != 20 || sub.Planes[0].Stride != 16 {
			t.Errorf("Sub starts at %d stride %d, want 20 stride 16", sub.Planes[0].Data[0], sub.Planes[0].Stride)
		}
		if sub.Planes[0].Ref != ref {
			t.Error("Sub dropped the plane reference")
		}
	})

	t.Run("bottom-up", func(t *testing.T) {
		bd := BitmapData{Width: 2, Height: 3, Format: FormatRGBA}
		bd.Planes[0] = Plane{Data: sequence(24), Stride: -8}
		sub := bd.Sub(0, 0, 2, 2)
		for y := range 2 {
			if got, want := sub.planeRow(0, y)[0], bd.planeRow(0, y)[0]; got != want {
				t.Errorf("row %d starts with %d, want %d", y, got, want)
			}
		}
	})

	t.Run("I420", func(t *testing.T) {
		bd := BitmapData{Width: 4, Height: 4, Format: FormatI420}
		bd.Planes[0].Data = sequence(24)
		sub := bd.Sub(2, 2, 2, 2)
		want := []byte{10, 19, 23}
		for i, w := range want {
			if got := sub.Planes[i].Data[0]; got != w {
				t.Errorf("plane %d starts at %d, want %d", i, got, w)
			}
		}
	})

	rejects := []struct {
		name       string
		format     Format
		x, y, w, h int
	}{
		{"odd 4:2:0 origin", FormatI420, 1, 0, 2, 2},
		{"past right edge", FormatRGBA, 3, 0, 2, 1},
		{"past bottom edge", FormatRGBA, 0, 3, 1, 2},
		{"negative origin", FormatRGBA, -1, 0, 1, 1},
		{"empty", FormatRGBA, 0, 0, 0, 1},
	}
	for _, tt := range rejects {
		t.Run(tt.name, func(t *testing.T) {
			bd := newBitmapData(tt.format, 4, 4)
			if sub := bd.Sub(tt.x, tt.y, tt.w, tt.h); sub.Format != FormatNone || sub.Planes[0].Data != nil {
				t.Errorf("Sub(%d, %d, %d, %d) = %+v, want zero", tt.x, tt.y, tt.w, tt.h, sub)
			}
		})
	}
}

func TestPlaneViews(t *testing.T) {
	tests := []struct {
		format  Format
		strides []int
		widths  []int
		heights []int
	}{
		{FormatRGBA, []int{4}, []int{4}, []int{2}},
		{FormatRGB565LE, []int{2}, []int{4}, []int{2}},
		{FormatRGBPlanar, []int{1, 1, 1}, []int{4, 4, 4}, []int{2, 2, 2}},
		{FormatNV12, []int{1, 2}, []int{4, 2}, []int{2, 1}},
		{FormatI420, []int{1, 1, 1}, []int{4, 2, 2}, []int{2, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			views := newBitmapData(tt.format, 4, 2).PlaneViews()
			if len(views) != len(tt.strides) {
				t.Fatalf("len = %d, want %d", len(views), len(tt.strides))
			}
			for i, v := range views {
				if v.SampleStride != tt.strides[i] || v.Width != tt.widths[i] || v.Height != tt.heights[i] {
					t.Errorf("view %d: step %d %dx%d, want step %d %dx%d",
						i, v.SampleStride, v.Width, v.Height, tt.strides[i], tt.widths[i], tt.heights[i])
				}
			}
		})
	}
}

func TestComponentViews(t *testing.T) {
	t.Run("BGRA", func(t *testing.T) {
		bd := BitmapData{Width: 2, Height: 1, Format: FormatBGRAPA}
		bd.Planes[0].Data = sequence(8)
		views := bd.ComponentViews()
		if len(views) != 4 {
			t.Fatalf("len = %d, want 4", len(views))
		}
		// R, G, B, A of pixel 1
		for i, want := range []byte{6, 5, 4, 7} {
			if got := views[i].At(1, 0); got != want {
				t.Errorf("component %d = %d, want %d", i, got, want)
			}
		}
	})

	t.Run("NV21", func(t *testing.T) {
		bd := BitmapData{Width: 4, Height: 2, Format: FormatNV21}
		bd.Planes[0].Data = sequence(12)
		views := bd.ComponentViews()
		u, v := views[1], views[2]
		if u.Width != 2 || u.Height != 1 || u.SampleStride != 2 {
			t.Errorf("U view %dx%d step %d, want 2x1 step 2", u.Width, u.Height, u.SampleStride)
		}
		if u.At(0, 0) != 9 || v.At(0, 0) != 8 || u.At(1, 0) != 11 {
			t.Errorf("U/V samples = %d, %d, %d, want 9, 8, 11", u.At(0, 0), v.At(0, 0), u.At(1, 0))
		}
	})

	t.Run("YV12", func(t *testing.T) {
		bd := newBitmapData(FormatYV12, 4, 2)
		bd.ComponentViews()[1].Set(1, 0, 9)
		if bd.Planes[0].Data[8+2+1] != 9 {
			t.Error("YV12 U is not the third plane")
		}
	})

	t.Run("565", func(t *testing.T) {
		if views := newBitmapData(FormatRGB565BE, 2, 2).ComponentViews(); views != nil {
			t.Errorf("ComponentViews() = %v, want nil", views)
		}
	})
}

func TestPlaneViewBottomUp(t *testing.T) {
	v := PlaneView{Data: []byte{1, 2, 3, 4, 5, 6}, SampleStride: 1, Stride: -3, Width: 3, Height: 2}
	if got := v.At(0, 0); got != 4 {
		t.Errorf("At(0, 0) = %d, want 4", got)
	}
	if got := v.At(2, 1); got != 3 {
		t.Errorf("At(2, 1) = %d, want 3", got)
	}
	v.Set(1, 0, 9)
	if v.Data[4] != 9 {
		t.Errorf("Set(1, 0) wrote %v", v.Data)
	}
	if got := v.Row(1)[0]; got != 1 {
		t.Errorf("Row(1)[0] = %d, want 1", got)
	}
}

func TestBitmapDataReferences(t *testing.T) {
	a, b := &countingRef{}, &countingRef{}
	bd := BitmapData{Width: 2, Height: 2, Format: FormatI420}
	bd.Planes[0].Ref = a
	bd.Planes[2].Ref = b

	bd.Retain()
	bd.Retain()
	bd.Release()
	if a.retains != 2 || a.releases != 1 || b.retains != 2 || b.releases != 1 {
		t.Errorf("refs = %+v, %+v", *a, *b)
	}
}

func TestSetFromColors(t *testing.T) {
	colors := make([]Color, 12)
	var bd BitmapData
	bd.SetFromColors(3, 2, colors, 6)
	if bd.Format != FormatBGRA || bd.Planes[0].Stride != 24 {
		t.Errorf("SetFromColors = %v stride %d", bd.Format, bd.Planes[0].Stride)
	}
	bd.Planes[0].Data[4*6+2] = 200
	if colors[6].R != 200 {
		t.Error("colors not aliased")
	}

	bd.SetFromColors(3, 2, colors, 0)
	if bd.Planes[0].Stride != 12 {
		t.Errorf("zero stride gave %d, want 12", bd.Planes[0].Stride)
	}
}
