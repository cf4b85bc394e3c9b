package glabs

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Colours used across the labs, RGBA in [0,1].
var (
	Red        = mgl64.Vec4{1.0, 0.0, 0.0, 1.0}
	Green      = mgl64.Vec4{0.0, 1.0, 0.0, 1.0}
	Blue       = mgl64.Vec4{0.0, 0.0, 1.0, 1.0}
	LightRed   = mgl64.Vec4{1.0, 0.5, 0.5, 1.0}
	LightGreen = mgl64.Vec4{0.5, 1.0, 0.5, 1.0}
	LightBlue  = mgl64.Vec4{0.5, 0.5, 1.0, 1.0}
	White      = mgl64.Vec4{1.0, 1.0, 1.0, 1.0}
	Black      = mgl64.Vec4{0.0, 0.0, 0.0, 1.0}
	Yellow     = mgl64.Vec4{1.0, 1.0, 0.0, 1.0}
	Cyan       = mgl64.Vec4{0.0, 1.0, 1.0, 1.0}
	Magenta    = mgl64.Vec4{1.0, 0.0, 1.0, 1.0}
)

// ToRGBA converts a [0,1] colour to 8-bit, clamping out of range channels.
func ToRGBA(c mgl64.Vec4) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c[0])*255 + 0.5),
		G: uint8(clamp01(c[1])*255 + 0.5),
		B: uint8(clamp01(c[2])*255 + 0.5),
		A: uint8(clamp01(c[3])*255 + 0.5),
	}
}

// mulColor multiplies two colours channel by channel.
func mulColor(a, b mgl64.Vec4) mgl64.Vec4 {
	return mgl64.Vec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}
