// Package gui is the graphical etris front end. It runs one engine inside
// ebiten's update loop, one engine tick per Update.
package gui

import (
	"image/color"

	"github.com/vovakirdan/tui-etris/internal/etris"
)

var (
	backdrop = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	hudFill  = color.RGBA{R: 28, G: 28, B: 36, A: 255}
)

var palette = [etris.NumCells]color.RGBA{
	etris.Background: {R: 0, G: 0, B: 0, A: 255},
	etris.Border:     {R: 96, G: 96, B: 104, A: 255},
	etris.Highlight:  {R: 255, G: 255, B: 255, A: 255},
	etris.ColorI:     {R: 0, G: 224, B: 224, A: 255},
	etris.ColorZ:     {R: 224, G: 32, B: 32, A: 255},
	etris.ColorS:     {R: 32, G: 208, B: 64, A: 255},
	etris.ColorO:     {R: 232, G: 216, B: 32, A: 255},
	etris.ColorT:     {R: 176, G: 48, B: 208, A: 255},
	etris.ColorJ:     {R: 48, G: 80, B: 232, A: 255},
	etris.ColorL:     {R: 240, G: 144, B: 24, A: 255},
}

// CellColor returns the fill color for an engine cell. Unknown values draw as
// background.
func CellColor(c etris.Cell) color.RGBA {
	if int(c) >= len(palette) {
		return palette[etris.Background]
	}
	return palette[c]
}
