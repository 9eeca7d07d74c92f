package etris

import "fmt"

// Minimum playable field dimensions.
const (
	MinWidth  = 4
	MinHeight = 4
)

// MaxCells caps the bordered grid size. Larger requests fail with ErrOutOfMemory.
const MaxCells = 1 << 22

// maxRowsPerClear bounds the completed-rows buffer: a figure spans at most
// four rows.
const maxRowsPerClear = 4

// Figure is a placed or candidate figure: template index, rotation and the
// anchor of its 4x4 bounding box in grid coordinates.
type Figure struct {
	Index    int
	Rotation int
	X, Y     int
}

// Template returns the catalog entry the figure was spawned from.
func (f Figure) Template() Template {
	return catalog[f.Index]
}

// Cells returns the absolute grid coordinates of the figure's four blocks.
func (f Figure) Cells() [BlocksPerFigure]Offset {
	var out [BlocksPerFigure]Offset
	for i, b := range catalog[f.Index].Blocks[f.Rotation] {
		out[i] = Offset{X: f.X + b.X, Y: f.Y + b.Y}
	}
	return out
}

// field is the bordered playfield. Cells are stored row-major over the full
// (width + 2*border) x (height + border) rectangle.
type field struct {
	width  int // playable columns
	height int // playable rows
	border int
	cols   int
	rows   int
	cells  []Cell
}

// newField allocates a field and stamps its border and background regions.
func newField(width, height, border int) (*field, error) {
	if width > MaxCells || height > MaxCells || border > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d field with border %d", ErrOutOfMemory, width, height, border)
	}

	cols := width + 2*border
	rows := height + border
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d field with border %d", ErrFieldTooSmall, width, height, border)
	}
	if cols > MaxCells/rows {
		return nil, fmt.Errorf("%w: %dx%d field with border %d", ErrOutOfMemory, width, height, border)
	}

	f := &field{
		width:  width,
		height: height,
		border: border,
		cols:   cols,
		rows:   rows,
		cells:  make([]Cell, cols*rows),
	}
	f.reset()
	return f, nil
}

// reset stamps Border everywhere, then clears the playable rectangle.
func (f *field) reset() {
	for i := range f.cells {
		f.cells[i] = Border
	}
	for y := 0; y < f.height; y++ {
		for x := f.left(); x < f.right(); x++ {
			f.cells[f.index(x, y)] = Background
		}
	}
}

// left is the first playable column.
func (f *field) left() int {
	return f.border
}

// right is one past the last playable column.
func (f *field) right() int {
	return f.width + f.border
}

func (f *field) index(x, y int) int {
	return y*f.cols + x
}

func (f *field) inBounds(x, y int) bool {
	return x >= 0 && x < f.cols && y >= 0 && y < f.rows
}

// get returns the cell at (x, y), or Border outside the grid.
func (f *field) get(x, y int) Cell {
	if !f.inBounds(x, y) {
		return Border
	}
	return f.cells[f.index(x, y)]
}

// fits reports whether fig can occupy its cells: every block inside the
// playable columns, above the bottom, and on Background. Blocks above row 0
// are only checked horizontally.
func (f *field) fits(fig Figure) bool {
	for _, b := range fig.Cells() {
		if b.X < f.left() || b.X >= f.right() || b.Y >= f.height {
			return false
		}
		if b.Y >= 0 && f.cells[f.index(b.X, b.Y)] != Background {
			return false
		}
	}
	return true
}

// commit writes c into every visible block of fig. It returns how many blocks
// landed at or above row 0; a positive count means the stack reached the top.
func (f *field) commit(fig Figure, c Cell) int {
	top := 0
	for _, b := range fig.Cells() {
		if b.Y >= 0 {
			f.cells[f.index(b.X, b.Y)] = c
		}
		if b.Y <= 0 {
			top++
		}
	}
	return top
}

// rowComplete reports whether every playable cell of row y is filled.
func (f *field) rowComplete(y int) bool {
	for x := f.left(); x < f.right(); x++ {
		if f.cells[f.index(x, y)] == Background {
			return false
		}
	}
	return true
}

// completedRows scans the four rows starting at start and returns the
// complete ones, top to bottom.
func (f *field) completedRows(start int) []int {
	end := start + maxRowsPerClear
	if end > f.height {
		end = f.height
	}
	if start < 0 {
		start = 0
	}

	var rows []int
	for y := start; y < end; y++ {
		if f.rowComplete(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// fillRows overwrites the playable cells of rows with c, reporting every
// overwritten cell to draw.
func (f *field) fillRows(rows []int, c Cell, draw DrawBlockFunc) {
	for _, y := range rows {
		for x := f.left(); x < f.right(); x++ {
			f.cells[f.index(x, y)] = c
			draw(x, y, c)
		}
	}
}

// collapseRows removes rows by shifting everything above each of them down
// one row. Rows must be in the order completedRows returned them so that each
// index still names the row it was recorded for.
func (f *field) collapseRows(rows []int) {
	for _, row := range rows {
		for y := row; y > 0; y-- {
			copy(f.cells[f.index(f.left(), y):f.index(f.right(), y)],
				f.cells[f.index(f.left(), y-1):f.index(f.right(), y-1)])
		}
		for x := f.left(); x < f.right(); x++ {
			f.cells[f.index(x, 0)] = Background
		}
	}
}

// drawAll reports every grid cell, border included, to draw.
func (f *field) drawAll(draw DrawBlockFunc) {
	for x := 0; x < f.cols; x++ {
		for y := 0; y < f.rows; y++ {
			draw(x, y, f.cells[f.index(x, y)])
		}
	}
}
