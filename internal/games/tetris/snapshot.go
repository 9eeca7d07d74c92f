package tetris

import "github.com/vovakirdan/tui-etris/internal/etris"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frame    uint64
	Score    int
	Lines    int
	Figures  int
	GameOver bool
	Paused   bool
	Engine   etris.Snapshot
	Blocks   []etris.Cell // the rendered block buffer
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Frame:    g.frame,
		Score:    g.score,
		Lines:    g.lines,
		Figures:  g.figures,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Blocks:   append([]etris.Cell(nil), g.blocks...),
	}
	if g.engine != nil {
		s.Engine = g.engine.Snapshot()
	}
	return s
}
