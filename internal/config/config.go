// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	HexSize      = 19.0
	MapRadius    = 13

	// StepsPerTick is how many search expansions the 2D viewer performs per
	// update while animating.
	StepsPerTick = 2

	ClickDebounceTime = 100 // milliseconds

	FontPath = "assets/fonts/label.ttf"
	FontSize = 10
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PassableColor   = color.RGBA{70, 100, 120, 220}
	ImpassableColor = color.RGBA{150, 70, 70, 220}
	EntryColor      = color.RGBA{0, 255, 0, 255}
	ExitColor       = color.RGBA{255, 0, 0, 255}
	OpenColor       = color.RGBA{80, 160, 255, 160}
	ClosedColor     = color.RGBA{40, 55, 70, 200}
	PathColor       = color.RGBA{255, 215, 0, 230}
	CurrentColor    = color.RGBA{255, 255, 255, 200}
	GuideLineColor  = color.RGBA{255, 255, 0, 90}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	StrokeWidth     = 2.0
)
