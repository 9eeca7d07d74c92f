package gui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-etris/internal/etris"
	"github.com/vovakirdan/tui-etris/internal/storage"
)

// TPS is the update rate. One Update is one engine tick.
const TPS = int(time.Second / etris.TickInterval)

const hudPad = 10

// Options configures a window.
type Options struct {
	GameID    string // score table key
	Width     int
	Height    int
	Border    int
	BlockSize int
	HUDWidth  int
	Store     *storage.Store // nil disables score saving
	Logger    *log.Logger
}

// Game is an ebiten.Game running one etris engine.
type Game struct {
	opts   Options
	logger *log.Logger
	engine *etris.Engine
	keys   *keyPoller

	// Cells as last reported by the draw hook and the indices not yet
	// painted onto board.
	cells   []etris.Cell
	pending []int
	cols    int
	rows    int
	board   *ebiten.Image

	score   int
	lines   int
	figures int
	hud     string

	paused   bool
	gameOver bool
	saved    bool
}

// New creates the engine for opts. The engine draws its opening frame into
// the cell buffer right away; it reaches the window on the first Draw.
func New(opts Options) (*Game, error) {
	if opts.BlockSize <= 0 {
		opts.BlockSize = 24
	}
	if opts.GameID == "" {
		opts.GameID = "etris"
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "etris-gui"})
	}

	g := &Game{
		opts:   opts,
		logger: logger,
		keys:   newKeyPoller(),
		cols:   opts.Width + 2*opts.Border,
		rows:   opts.Height + opts.Border,
	}
	if opts.Width > 0 && opts.Height > 0 && opts.Border >= 0 && g.cols*g.rows <= etris.MaxCells {
		g.cells = make([]etris.Cell, g.cols*g.rows)
	}
	g.updateScore(0, 0, 0)

	engine, err := etris.New(opts.Width, opts.Height, opts.Border, g.drawBlock, g.updateScore)
	if err != nil {
		return nil, err
	}
	g.engine = engine
	logger.Info("game started", "field", fmt.Sprintf("%dx%d", opts.Width, opts.Height), "border", opts.Border)
	return g, nil
}

func (g *Game) drawBlock(x, y int, c etris.Cell) {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return
	}
	i := y*g.cols + x
	g.cells[i] = c
	g.pending = append(g.pending, i)
}

func (g *Game) updateScore(score, lines, figures int) {
	g.score, g.lines, g.figures = score, lines, figures
	g.hud = fmt.Sprintf("SCORE   %d\nLINES   %d\nFIGURES %d", score, lines, figures)
}

// Update reads the keyboard and advances the engine by one tick.
func (g *Game) Update() error {
	return g.apply(g.keys.poll(ebiten.IsKeyPressed))
}

// apply runs one update's worth of commands followed by the tick.
func (g *Game) apply(cmds []command) error {
	for _, c := range cmds {
		switch c {
		case cmdQuit:
			g.Close()
			return ebiten.Termination
		case cmdNewGame:
			if g.gameOver {
				g.engine.Reset()
				g.gameOver = false
				g.paused = false
				g.saved = false
				g.logger.Info("new game")
			}
		case cmdPause:
			if !g.gameOver {
				g.paused = !g.paused
			}
		case cmdRedraw:
			g.engine.Redraw()
		}
	}

	if g.gameOver || g.paused {
		return nil
	}

	for _, c := range cmds {
		var res etris.Result
		switch c {
		case cmdLeft:
			res = g.engine.MoveLeft()
		case cmdRight:
			res = g.engine.MoveRight()
		case cmdRotate:
			res = g.engine.Rotate()
		case cmdDrop:
			res = g.engine.Drop()
		case cmdTick:
			res = g.engine.Tick()
		default:
			continue
		}
		if res == etris.GameOver {
			g.finish()
			return nil
		}
	}

	if g.engine.Tick() == etris.GameOver {
		g.finish()
	}
	return nil
}

func (g *Game) finish() {
	g.gameOver = true
	if g.saved {
		return
	}
	g.saved = true
	g.logger.Info("game over", "score", g.score, "lines", g.lines, "figures", g.figures)

	if g.opts.Store == nil || g.score <= 0 {
		return
	}
	if _, err := g.opts.Store.SaveScore(g.opts.GameID, g.score, g.lines, g.figures); err != nil {
		g.logger.Warn("could not save score", "error", err)
	}
}

// Draw paints pending blocks onto the board image and composes the window.
func (g *Game) Draw(screen *ebiten.Image) {
	bs := g.opts.BlockSize
	if g.board == nil {
		g.board = ebiten.NewImage(g.cols*bs, g.rows*bs)
		g.pending = g.pending[:0]
		for i := range g.cells {
			g.pending = append(g.pending, i)
		}
	}
	for _, i := range g.pending {
		x, y := i%g.cols, i/g.cols
		vector.FillRect(g.board, float32(x*bs), float32(y*bs), float32(bs), float32(bs), CellColor(g.cells[i]), false)
	}
	g.pending = g.pending[:0]

	screen.Fill(backdrop)
	screen.DrawImage(g.board, &ebiten.DrawImageOptions{})

	hudX := g.cols * bs
	if g.opts.HUDWidth > 0 {
		vector.FillRect(screen, float32(hudX), 0, float32(g.opts.HUDWidth), float32(g.rows*bs), hudFill, false)
		ebitenutil.DebugPrintAt(screen, g.HUDText(), hudX+hudPad, hudPad)
	}
}

// Layout keeps the logical screen at the field plus HUD size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.ScreenSize()
}

// ScreenSize is the logical window size in pixels.
func (g *Game) ScreenSize() (int, int) {
	return g.cols*g.opts.BlockSize + g.opts.HUDWidth, g.rows * g.opts.BlockSize
}

// HUDText is the text drawn right of the field.
func (g *Game) HUDText() string {
	var b strings.Builder
	b.WriteString("ETRIS\n\n")
	b.WriteString(g.hud)
	b.WriteString("\n\n")
	switch {
	case g.gameOver:
		b.WriteString("GAME OVER\nN: new game")
	case g.paused:
		b.WriteString("PAUSED\nP: resume")
	default:
		b.WriteString("ARROWS move\nSPACE tick\nP pause\nESC quit")
	}
	return b.String()
}

// Close releases the engine. Later updates see a finished game.
func (g *Game) Close() {
	g.engine.Destroy()
	g.gameOver = true
}

// Run opens a window and plays until the player quits or closes it.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}
	defer g.Close()

	w, h := g.ScreenSize()
	ebiten.SetWindowTitle("Etris")
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(TPS)
	return ebiten.RunGame(g)
}
