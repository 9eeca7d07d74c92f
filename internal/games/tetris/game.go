// Package tetris adapts the etris engine to the platform's registry.Game
// interface. Each variant owns one engine whose draw hook paints a block
// buffer and whose score hook feeds the HUD.
package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-etris/internal/core"
	"github.com/vovakirdan/tui-etris/internal/etris"
	"github.com/vovakirdan/tui-etris/internal/registry"
)

// Variant describes one registered board shape.
type Variant struct {
	ID          string
	Title       string
	Width       int
	Height      int
	Border      int
	Description string
}

// Package-level display settings, applied by the CLI before games start.
var (
	board       = Variant{ID: "etris", Title: "Etris", Width: 10, Height: 20, Border: 1}
	blockGlyph  = '█'
	showPreview = true
)

// SetBoard sets the board used by the "etris" variant.
func SetBoard(width, height, border int) {
	board.Width, board.Height, board.Border = width, height, border
}

// SetGlyph sets the character drawn (twice) for every block.
func SetGlyph(r rune) {
	blockGlyph = r
}

// SetShowPreview toggles the next-figure box in the HUD.
func SetShowPreview(show bool) {
	showPreview = show
}

// Variants returns the registered board shapes, the configurable board first.
func Variants() []Variant {
	main := board
	main.Description = fmt.Sprintf("Classic %dx%d field", main.Width, main.Height)
	return []Variant{
		main,
		{ID: "etris_mini", Title: "Etris Mini", Width: 6, Height: 14, Border: 1, Description: "Narrow 6x14 field"},
		{ID: "etris_wide", Title: "Etris Wide", Width: 16, Height: 20, Border: 1, Description: "Wide 16x20 field"},
	}
}

func init() {
	for _, v := range Variants() {
		id := v.ID
		registry.Register(id, func() registry.Game {
			return New(id)
		})
	}
}

// engineActions maps platform actions to engine input codes.
var engineActions = map[core.Action]etris.Action{
	core.ActionLeft:   etris.ActionLeft,
	core.ActionRight:  etris.ActionRight,
	core.ActionRotate: etris.ActionRotate,
	core.ActionDrop:   etris.ActionDrop,
	core.ActionStep:   etris.ActionTick,
}

// Game is one playable etris variant.
type Game struct {
	id     string
	engine *etris.Engine
	err    error // set when the engine rejected the board

	// Block buffer kept current by the draw hook, cols*rows row-major.
	blocks []etris.Cell
	cols   int
	rows   int

	score   int
	lines   int
	figures int

	frame     uint64
	frameTime time.Duration
	acc       time.Duration

	gameOver bool
	paused   bool
}

// New creates a game for the given variant ID. Unknown IDs fall back to the
// configurable board.
func New(id string) *Game {
	return &Game{id: id}
}

func (g *Game) variant() Variant {
	for _, v := range Variants() {
		if v.ID == g.id {
			return v
		}
	}
	return Variants()[0]
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant().ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant().Title
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	return g.variant().Description
}

// Reset starts a new game, creating the engine on first use.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frameTime = time.Second / time.Duration(tickRate)
	g.acc = 0
	g.frame = 0
	g.gameOver = false
	g.paused = false

	if g.engine != nil {
		g.engine.Reset()
		return
	}

	v := g.variant()
	g.cols = v.Width + 2*v.Border
	g.rows = v.Height + v.Border
	if v.Width > 0 && v.Height > 0 && v.Border >= 0 && g.cols*g.rows <= etris.MaxCells {
		g.blocks = make([]etris.Cell, g.cols*g.rows)
	}

	g.engine, g.err = etris.New(v.Width, v.Height, v.Border, g.drawBlock, g.updateScore)
	if g.err != nil {
		g.gameOver = true
	}
}

// Close releases the engine. A closed game reports game over until the next
// Reset.
func (g *Game) Close() error {
	g.engine.Destroy()
	g.engine = nil
	g.gameOver = true
	g.paused = false
	return nil
}

func (g *Game) drawBlock(x, y int, c etris.Cell) {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return
	}
	g.blocks[y*g.cols+x] = c
}

func (g *Game) updateScore(score, lines, figures int) {
	g.score, g.lines, g.figures = score, lines, figures
}

// Step advances the game by one platform frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++
	redraw := false

	if g.err != nil || g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.gameOver {
		g.engine.Reset()
		g.gameOver = false
		g.paused = false
		g.acc = 0
		return core.StepResult{State: g.State(), Redraw: true}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
		redraw = true
	}

	if in.Has(core.ActionRedraw) {
		g.engine.Redraw()
		redraw = true
	}

	if g.gameOver || g.paused {
		return core.StepResult{State: g.State(), Redraw: redraw}
	}

	apply := func(res etris.Result) {
		switch res {
		case etris.OkRedraw:
			redraw = true
		case etris.GameOver:
			g.gameOver = true
			redraw = true
		}
	}

	// Moves apply in the order they were pressed.
	for _, a := range in.Actions {
		if g.gameOver {
			break
		}
		if code, ok := engineActions[a]; ok {
			res, _ := g.engine.Input(code)
			apply(res)
		}
	}

	g.acc += g.frameTime
	for g.acc >= etris.TickInterval && !g.gameOver {
		g.acc -= etris.TickInterval
		apply(g.engine.Tick())
	}

	return core.StepResult{State: g.State(), Redraw: redraw}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Figures:  g.figures,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Engine exposes the underlying engine for front ends that draw it directly.
func (g *Game) Engine() *etris.Engine {
	return g.engine
}

// Err returns the error from engine construction, if any.
func (g *Game) Err() error {
	return g.err
}
