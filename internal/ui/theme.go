package ui

import "image/color"

const (
	glyphsToPreload = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789.,:/$()- "

	pathWidth   = 3.0
	markerR     = 7.5
	tickLength  = 6.0
	labelOffset = 15.0
)

var (
	backgroundColor = color.RGBA{25, 25, 25, 255}
	plotColor       = color.RGBA{50, 50, 50, 255}
	axisColor       = color.RGBA{200, 200, 200, 255}
	textColor       = color.RGBA{255, 255, 255, 255}
	mutedColor      = color.RGBA{150, 150, 150, 255}
	titleColor      = color.RGBA{93, 105, 113, 255}
	controlColor    = color.RGBA{60, 60, 60, 255}
	hoverColor      = color.RGBA{80, 80, 80, 255}
	accentColor     = color.RGBA{0, 200, 255, 255}
	markerColor     = color.RGBA{255, 255, 0, 255}
	errorColor      = color.RGBA{255, 0, 0, 255}
)
