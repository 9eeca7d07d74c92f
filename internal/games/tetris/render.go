package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-etris/internal/core"
	"github.com/vovakirdan/tui-etris/internal/etris"
)

const (
	cellWidth = 2 // screen columns per block
	hudGap    = 2
	hudWidth  = 14
)

// palette maps engine cells to screen colors.
var palette = [etris.NumCells]core.Color{
	etris.Background: core.ColorDefault,
	etris.Border:     core.ColorGray,
	etris.Highlight:  core.ColorBrightWhite,
	etris.ColorI:     core.ColorCyan,
	etris.ColorZ:     core.ColorRed,
	etris.ColorS:     core.ColorGreen,
	etris.ColorO:     core.ColorYellow,
	etris.ColorT:     core.ColorMagenta,
	etris.ColorJ:     core.ColorBlue,
	etris.ColorL:     core.ColorOrange,
}

// CellColor returns the screen color for an engine cell.
func CellColor(c etris.Cell) core.Color {
	if int(c) >= len(palette) {
		return core.ColorDefault
	}
	return palette[c]
}

// Render draws the field, HUD and banners centered on the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, "Cannot start: "+g.err.Error())
		return
	}

	fieldW := g.cols * cellWidth
	totalW := fieldW + hudGap + hudWidth
	totalH := g.rows

	bounds := dst.Bounds()
	if !bounds.Fits(totalW, totalH) {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "Terminal too small")
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Need %dx%d", totalW, totalH))
		return
	}

	field, hud := bounds.Centered(totalW, totalH).SplitX(fieldW, hudGap)
	g.renderField(dst, field.X, field.Y)
	g.renderHUD(dst, hud.X, hud.Y)

	switch {
	case g.gameOver:
		renderBanner(dst, field, "GAME OVER", "R: new game")
	case g.paused:
		renderBanner(dst, field, "PAUSED", "P: resume")
	}
}

func (g *Game) renderField(dst *core.Screen, ox, oy int) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			c := g.blocks[y*g.cols+x]
			r := blockGlyph
			if c == etris.Background {
				r = ' '
			}
			sx := ox + x*cellWidth
			for i := 0; i < cellWidth; i++ {
				dst.SetWithColor(sx+i, oy+y, r, CellColor(c))
			}
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	dst.DrawTextWithColor(x, y, g.Title(), core.ColorBrightWhite)

	rows := []struct {
		label string
		value int
	}{
		{"Score", g.score},
		{"Lines", g.lines},
		{"Figures", g.figures},
	}
	for i, r := range rows {
		dst.DrawTextWithColor(x, y+2+i*2, r.label, core.ColorGray)
		dst.DrawText(x, y+3+i*2, fmt.Sprintf("%d", r.value))
	}

	if !showPreview || g.engine == nil {
		return
	}

	py := y + 9
	if py+5 > y+g.rows {
		return
	}
	dst.DrawTextWithColor(x, py, "Next", core.ColorGray)
	next := etris.TemplateAt(g.engine.NextTemplate())
	for _, b := range next.Blocks[0] {
		sx := x + b.X*cellWidth
		for i := 0; i < cellWidth; i++ {
			dst.SetWithColor(sx+i, py+1+b.Y, blockGlyph, CellColor(next.Color))
		}
	}
}

// renderBanner draws a two-line message box centered over r.
func renderBanner(dst *core.Screen, r core.Rect, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	box := r.Centered(min(w, r.W), 4)

	dst.DrawRect(box, ' ')
	dst.DrawBoxWithColor(box, core.ColorBrightWhite)
	dst.DrawTextWithColor(box.X+(box.W-len(line1))/2, box.Y+1, line1, core.ColorBrightRed)
	dst.DrawText(box.X+(box.W-len(line2))/2, box.Y+2, line2)
}
