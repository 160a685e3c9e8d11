package pixconv

import "github.com/gogpu/gputypes"

// TextureFormat returns the GPU texture format whose texel layout matches
// f byte for byte, or gputypes.TextureFormatUndefined if there is none.
// Texture formats carry no premultiplication flag, so a PA format maps to
// the same texture format as its straight twin.
func (f Format) TextureFormat() gputypes.TextureFormat {
	switch f.NonPremultiplied() {
	case FormatRGBA:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatBGRA:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatGray8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// FormatForTexture returns the straight-alpha format laid out like tf.
// sRGB variants share the layout of their linear counterparts. It returns
// FormatNone for texture formats with no byte-compatible Format.
func FormatForTexture(tf gputypes.TextureFormat) Format {
	switch tf {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb:
		return FormatRGBA
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		return FormatBGRA
	case gputypes.TextureFormatR8Unorm:
		return FormatGray8
	default:
		return FormatNone
	}
}

// TextureExtent returns the 2D texture size of bd.
func (bd BitmapData) TextureExtent() gputypes.Extent3D {
	return gputypes.NewExtent2D(uint32(max(bd.Width, 0)), uint32(max(bd.Height, 0)))
}
