// Package graphics provides the color type and blend utilities consumed by
// interaction-feedback animation.
package graphics

import (
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// Mix blends base toward overlay by the given ratio.
//
// Each channel, alpha included, is interpolated independently as
// base*(1-ratio) + overlay*ratio and clamped to the valid range. Ratio 0
// returns base, ratio 1 returns overlay. Widget theming calls Mix with an
// animation's progress as the ratio to paint hover and press transitions.
func Mix(base, overlay Color, ratio float64) Color {
	br, bg, bb, ba := base.RGBAF()
	or, og, ob, oa := overlay.RGBAF()
	self := 1.0 - ratio
	return Color(
		uint32(channelByte(ba*self+oa*ratio))<<24 |
			uint32(channelByte(br*self+or*ratio))<<16 |
			uint32(channelByte(bg*self+og*ratio))<<8 |
			uint32(channelByte(bb*self+ob*ratio)))
}

// Lerp linearly interpolates between two scalars.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ColorByName looks up an SVG 1.1 color name ("steelblue", "white", ...).
// Lookup is case-insensitive. The second result reports whether the name
// is known.
func ColorByName(name string) (Color, bool) {
	rgba, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return 0, false
	}
	return RGBA8(rgba.R, rgba.G, rgba.B, rgba.A), true
}

// channelByte converts a normalized channel to a byte with clamping and rounding.
func channelByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * maxByte))
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
