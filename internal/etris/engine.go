// Package etris is an embeddable falling-block puzzle engine.
//
// The engine owns the playfield, figure geometry, collision, line-clear
// animation timing and scoring. It draws nothing itself: every visible change
// is reported through a DrawBlockFunc and every score change through an
// UpdateScoreFunc supplied to New. A driver calls Tick on a fixed cadence
// (TickInterval) and the movement methods on input events.
//
// An Engine is not safe for concurrent use; callers serialize access.
package etris

import (
	"fmt"
	"time"
)

// Phase timing in ticks.
const (
	TicksNormal           = 50
	TicksDropping         = 1
	TicksShowingHighlight = 10
	TicksShowingBlank     = 6
	TicksRemoving         = 2
)

// Scoring.
const (
	ScorePerLineMultiplier = 5
	ScorePerFigure         = 5
	ScorePerDroppedRow     = 1
)

// TickInterval is the cadence the timing constants were tuned for.
const TickInterval = 10 * time.Millisecond

// Result is the outcome of one engine call.
type Result int

const (
	Ok       Result = iota // nothing visible changed
	OkRedraw               // cells were redrawn; present a new frame
	GameOver               // the game has ended
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	switch r {
	case Ok:
		return "Ok"
	case OkRedraw:
		return "OkRedraw"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Phase is the state machine's current mode.
type Phase int

const (
	PhaseNormal Phase = iota
	PhaseDropping
	PhaseShowingHighlight
	PhaseShowingBlank
	PhaseRemoving
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNormal:
		return "Normal"
	case PhaseDropping:
		return "Dropping"
	case PhaseShowingHighlight:
		return "ShowingHighlight"
	case PhaseShowingBlank:
		return "ShowingBlank"
	case PhaseRemoving:
		return "Removing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Live reports whether the active figure is on the field and controllable.
func (p Phase) Live() bool {
	return p == PhaseNormal || p == PhaseDropping
}

// Action is an input code accepted by Input.
type Action int

const (
	ActionLeft Action = iota + 1
	ActionRight
	ActionRotate
	ActionDrop
	ActionTick
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionDrop:
		return "Drop"
	case ActionTick:
		return "Tick"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Stats are the per-game counters. They only grow until the next Reset.
type Stats struct {
	Figures int // figures spawned
	Lines   int // rows cleared
	Score   int
	Drops   int // forced drops started
}

// LineClearScore returns the points for clearing k rows at once.
func LineClearScore(k int) int {
	return ScorePerLineMultiplier * (2 << k)
}

// Engine is one game instance.
type Engine struct {
	field   *field
	figure  Figure
	pending []int // completed rows awaiting removal, top to bottom
	stats   Stats
	phase   Phase
	ticks   int
	speed   int
	hooks   hooks
}

// New creates an engine for a width x height playfield surrounded by a border
// of the given thickness on the sides and bottom, and starts the first game.
func New(width, height, border int, draw DrawBlockFunc, score UpdateScoreFunc) (*Engine, error) {
	if draw == nil || score == nil {
		return nil, ErrMissingHook
	}
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrFieldTooSmall, width, height, MinWidth, MinHeight)
	}
	if border < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBorder, border)
	}

	f, err := newField(width, height, border)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		field: f,
		hooks: hooks{drawBlock: draw, updateScore: score},
	}
	e.Reset()
	return e, nil
}

// Destroy releases the grid. Later calls report GameOver and draw nothing.
// It is safe on a nil engine and may be called more than once.
func (e *Engine) Destroy() {
	if e == nil {
		return
	}
	e.field = nil
	e.pending = nil
	e.phase = PhaseGameOver
}

// Reset starts a new game: clears the field and stats, spawns the first
// figure, redraws everything and reports the score once.
func (e *Engine) Reset() {
	if e.field == nil {
		return
	}

	e.speed = TicksNormal
	e.stats = Stats{}
	e.pending = nil
	e.field.reset()

	// Round-robin restarts at the first template.
	e.figure = Figure{Index: NumTemplates - 1}
	// No spawn bonus: a reset always reports (0, 0, 1) to the score hook.
	e.spawn(false)

	e.Redraw()
	e.notifyScore()
}

// Redraw reports every grid cell and, while it is live, the active figure.
// It does not change any state.
func (e *Engine) Redraw() {
	if e.field == nil {
		return
	}
	e.field.drawAll(e.hooks.drawBlock)
	if e.phase.Live() {
		e.drawFigure(e.figure.Template().Color)
	}
}

// Tick advances the phase timer by one step.
func (e *Engine) Tick() Result {
	return e.run(ActionTick)
}

// MoveLeft shifts the active figure one column left if it fits.
func (e *Engine) MoveLeft() Result {
	return e.run(ActionLeft)
}

// MoveRight shifts the active figure one column right if it fits.
func (e *Engine) MoveRight() Result {
	return e.run(ActionRight)
}

// Rotate turns the active figure to its next rotation if it fits.
func (e *Engine) Rotate() Result {
	return e.run(ActionRotate)
}

// Drop switches the active figure to free fall.
func (e *Engine) Drop() Result {
	return e.run(ActionDrop)
}

// Input dispatches an action code. Unknown codes leave the engine untouched
// and return ErrInvalidAction.
func (e *Engine) Input(a Action) (Result, error) {
	switch a {
	case ActionLeft, ActionRight, ActionRotate, ActionDrop, ActionTick:
		return e.run(a), nil
	default:
		return Ok, fmt.Errorf("%w: %v", ErrInvalidAction, a)
	}
}

// Stats returns a copy of the current counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Phase returns the current state-machine phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Figure returns the active figure and whether it is live on the field.
func (e *Engine) Figure() (Figure, bool) {
	return e.figure, e.field != nil && e.phase.Live()
}

// NextTemplate returns the catalog index of the figure that spawns next.
func (e *Engine) NextTemplate() int {
	return (e.figure.Index + 1) % NumTemplates
}

// Cell returns the committed grid value at (x, y). The active figure is not
// part of the grid until it is placed. Coordinates outside the grid read as
// Border.
func (e *Engine) Cell(x, y int) Cell {
	if e.field == nil {
		return Border
	}
	return e.field.get(x, y)
}

// Size returns the playable width and height and the border thickness.
func (e *Engine) Size() (width, height, border int) {
	if e.field == nil {
		return 0, 0, 0
	}
	return e.field.width, e.field.height, e.field.border
}

// GridSize returns the full grid dimensions including the border.
func (e *Engine) GridSize() (cols, rows int) {
	if e.field == nil {
		return 0, 0
	}
	return e.field.cols, e.field.rows
}

// PendingRows returns the rows currently being cleared, top to bottom.
func (e *Engine) PendingRows() []int {
	return append([]int(nil), e.pending...)
}

// run applies one action and reports the score if it changed.
func (e *Engine) run(a Action) Result {
	if e.field == nil {
		return GameOver
	}

	score := e.stats.Score
	res := e.input(a)
	if e.stats.Score != score {
		e.notifyScore()
	}
	return res
}

func (e *Engine) input(a Action) Result {
	if e.phase == PhaseGameOver {
		return GameOver
	}

	next := e.figure
	switch a {
	case ActionLeft:
		next.X--
	case ActionRight:
		next.X++
	case ActionRotate:
		next.Rotation = NextRotation(next.Rotation)
	case ActionDrop:
		if e.phase == PhaseNormal {
			e.phase = PhaseDropping
			e.ticks = TicksDropping
			e.stats.Drops++
		}
		return Ok
	case ActionTick:
		return e.tick()
	}

	if !e.phase.Live() || !e.field.fits(next) {
		return Ok
	}
	e.moveTo(next)
	return OkRedraw
}

func (e *Engine) tick() Result {
	e.ticks--
	if e.ticks > 0 {
		return Ok
	}

	switch e.phase {
	case PhaseShowingHighlight:
		e.phase = PhaseShowingBlank
		e.ticks = TicksShowingBlank
		e.field.fillRows(e.pending, Background, e.hooks.drawBlock)
		return OkRedraw

	case PhaseShowingBlank:
		e.field.collapseRows(e.pending)
		e.pending = nil
		e.field.drawAll(e.hooks.drawBlock)
		e.phase = PhaseRemoving
		e.ticks = TicksRemoving
		return OkRedraw

	case PhaseRemoving:
		e.spawn(true)
		return OkRedraw

	case PhaseNormal:
		e.ticks = e.speed
		return e.fall(0)

	case PhaseDropping:
		e.ticks = TicksDropping
		return e.fall(ScorePerDroppedRow)
	}

	return Ok
}

// fall moves the figure one row down, awarding bonus for the row, or places
// it when the row below is blocked.
func (e *Engine) fall(bonus int) Result {
	next := e.figure
	next.Y++
	if e.field.fits(next) {
		e.stats.Score += bonus
		e.moveTo(next)
		return OkRedraw
	}
	return e.place()
}

// place commits the figure and either ends the game, starts the line-clear
// animation or spawns the next figure.
func (e *Engine) place() Result {
	if e.field.commit(e.figure, e.figure.Template().Color) > 0 {
		e.phase = PhaseGameOver
		return GameOver
	}

	rows := e.field.completedRows(e.figure.Y)
	if len(rows) == 0 {
		e.spawn(true)
		return OkRedraw
	}

	e.pending = rows
	e.stats.Lines += len(rows)
	e.stats.Score += LineClearScore(len(rows))
	e.field.fillRows(rows, Highlight, e.hooks.drawBlock)
	e.phase = PhaseShowingHighlight
	e.ticks = TicksShowingHighlight
	return OkRedraw
}

// spawn brings in the next template at the top of the field. The opening
// figure of a game carries no spawn bonus.
func (e *Engine) spawn(bonus bool) {
	n := e.NextTemplate()
	t := catalog[n]

	e.figure = Figure{
		Index: n,
		X:     e.field.width/2 + e.field.border - 2 + t.Spawn.X,
		Y:     t.Spawn.Y - 3,
	}
	e.phase = PhaseNormal
	e.ticks = e.speed

	e.stats.Figures++
	if bonus {
		e.stats.Score += ScorePerFigure
	}

	e.drawFigure(t.Color)
}

func (e *Engine) moveTo(next Figure) {
	e.drawFigure(Background)
	e.figure = next
	e.drawFigure(e.figure.Template().Color)
}

// drawFigure reports the visible blocks of the active figure in color c.
func (e *Engine) drawFigure(c Cell) {
	for _, b := range e.figure.Cells() {
		if b.Y >= 0 {
			e.hooks.drawBlock(b.X, b.Y, c)
		}
	}
}

func (e *Engine) notifyScore() {
	e.hooks.updateScore(e.stats.Score, e.stats.Lines, e.stats.Figures)
}
