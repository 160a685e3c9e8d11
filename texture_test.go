package pixconv

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestTextureFormat(t *testing.T) {
	tests := []struct {
		format Format
		want   gputypes.TextureFormat
	}{
		{FormatRGBA, gputypes.TextureFormatRGBA8Unorm},
		{FormatRGBAPA, gputypes.TextureFormatRGBA8Unorm},
		{FormatBGRA, gputypes.TextureFormatBGRA8Unorm},
		{FormatBGRAPA, gputypes.TextureFormatBGRA8Unorm},
		{FormatGray8, gputypes.TextureFormatR8Unorm},
		{FormatARGB, gputypes.TextureFormatUndefined},
		{FormatRGB, gputypes.TextureFormatUndefined},
		{FormatNV12, gputypes.TextureFormatUndefined},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.TextureFormat(); got != tt.want {
				t.Errorf("TextureFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatForTexture(t *testing.T) {
	tests := []struct {
		tf   gputypes.TextureFormat
		want Format
	}{
		{gputypes.TextureFormatRGBA8Unorm, FormatRGBA},
		{gputypes.TextureFormatRGBA8UnormSrgb, FormatRGBA},
		{gputypes.TextureFormatBGRA8Unorm, FormatBGRA},
		{gputypes.TextureFormatBGRA8UnormSrgb, FormatBGRA},
		{gputypes.TextureFormatR8Unorm, FormatGray8},
		{gputypes.TextureFormatUndefined, FormatNone},
	}
	for _, tt := range tests {
		if got := FormatForTexture(tt.tf); got != tt.want {
			t.Errorf("FormatForTexture(%v) = %v, want %v", tt.tf, got, tt.want)
		}
	}
}

func TestTextureFormatRoundTrip(t *testing.T) {
	for _, f := range Formats() {
		tf := f.TextureFormat()
		if tf == gputypes.TextureFormatUndefined {
			continue
		}
		if back := FormatForTexture(tf); back != f.NonPremultiplied() {
			t.Errorf("%v -> %v -> %v", f, tf, back)
		}
	}
}

func TestTextureExtent(t *testing.T) {
	bd := BitmapData{Width: 640, Height: 480, Format: FormatBGRA}
	ext := bd.TextureExtent()
	if ext.Width != 640 || ext.Height != 480 || ext.DepthOrArrayLayers != 1 {
		t.Errorf("TextureExtent() = %+v", ext)
	}
	if ext := (BitmapData{Width: -1}).TextureExtent(); ext.Width != 0 {
		t.Errorf("negative width gave %d", ext.Width)
	}
}
