// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the map and the
// search overlay.
type MapColors struct {
	BackgroundColor color.RGBA
	PassableColor   color.RGBA
	ImpassableColor color.RGBA
	EntryColor      color.RGBA
	ExitColor       color.RGBA
	OpenColor       color.RGBA
	ClosedColor     color.RGBA
	PathColor       color.RGBA
	CurrentColor    color.RGBA
	GuideLineColor  color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LerpColor performs linear interpolation between two colors.
func LerpColor(c1, c2 color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(float64(c1.R)*(1-t) + float64(c2.R)*t),
		G: uint8(float64(c1.G)*(1-t) + float64(c2.G)*t),
		B: uint8(float64(c1.B)*(1-t) + float64(c2.B)*t),
		A: uint8(float64(c1.A)*(1-t) + float64(c2.A)*t),
	}
}

// Lighten raises each channel by the given amount, clamping at white.
func Lighten(c color.RGBA, amount int) color.RGBA {
	clamp := func(v int) uint8 {
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return color.RGBA{
		R: clamp(int(c.R) + amount),
		G: clamp(int(c.G) + amount),
		B: clamp(int(c.B) + amount),
		A: 255,
	}
}
