package etris

import "strings"

// Snapshot captures the engine state for determinism testing and debugging.
type Snapshot struct {
	Phase   Phase
	Ticks   int // ticks left in the current phase
	Stats   Stats
	Figure  Figure
	Live    bool
	Pending []int
	Cols    int
	Rows    int
	Cells   []Cell // row-major, Cols*Rows
}

// Snapshot returns a deep copy of the engine state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Phase:   e.phase,
		Ticks:   e.ticks,
		Stats:   e.stats,
		Pending: e.PendingRows(),
	}
	s.Figure, s.Live = e.Figure()
	if e.field == nil {
		return s
	}

	s.Cols, s.Rows = e.field.cols, e.field.rows
	s.Cells = append([]Cell(nil), e.field.cells...)
	return s
}

// At returns the cell at (x, y), or Border outside the captured grid.
func (s Snapshot) At(x, y int) Cell {
	if x < 0 || x >= s.Cols || y < 0 || y >= s.Rows {
		return Border
	}
	return s.Cells[y*s.Cols+x]
}

// String renders the grid with the live figure overlaid:
// '#' border, '.' background, '=' highlight, '@' figure, 'a'..'g' placed colors.
func (s Snapshot) String() string {
	overlay := make(map[Offset]bool, BlocksPerFigure)
	if s.Live {
		for _, b := range s.Figure.Cells() {
			overlay[b] = true
		}
	}

	var sb strings.Builder
	sb.Grow((s.Cols + 1) * s.Rows)
	for y := 0; y < s.Rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Cols; x++ {
			if overlay[Offset{X: x, Y: y}] {
				sb.WriteByte('@')
				continue
			}
			sb.WriteByte(cellGlyph(s.At(x, y)))
		}
	}
	return sb.String()
}

func cellGlyph(c Cell) byte {
	switch c {
	case Background:
		return '.'
	case Border:
		return '#'
	case Highlight:
		return '='
	default:
		return 'a' + byte(c-ColorI)
	}
}
