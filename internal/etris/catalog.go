package etris

import "strings"

// Cell is the value stored at one grid coordinate. It doubles as the color
// identifier handed to the draw hook.
type Cell uint8

// Reserved cell values. Figure colors follow at ColorI..ColorL.
const (
	Background Cell = iota
	Border
	Highlight
)

// Figure colors, one per catalog template.
const (
	ColorI Cell = iota + 3
	ColorZ
	ColorS
	ColorO
	ColorT
	ColorJ
	ColorL
)

// NumCells is the number of distinct cell values (background, border,
// highlight and the seven figure colors).
const NumCells = 10

// Rotations is the number of rotation states per template.
const Rotations = 4

// BlocksPerFigure is the number of blocks making up every figure.
const BlocksPerFigure = 4

// Offset is a block position inside a template's 4x4 bounding box.
type Offset struct {
	X, Y int
}

// Template is one immutable figure definition.
type Template struct {
	Name  string
	Color Cell
	// Spawn is added to the default spawn anchor to center asymmetric shapes.
	Spawn  Offset
	Blocks [Rotations][BlocksPerFigure]Offset
}

// NextRotation returns the rotation that follows r (0->1->2->3->0).
func NextRotation(r int) int {
	return (r + 1) % Rotations
}

// Shape renders rotation r as four lines of '#' and '.' characters.
func (t Template) Shape(r int) string {
	var grid [4][4]byte
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}
	for _, b := range t.Blocks[r%Rotations] {
		grid[b.Y][b.X] = '#'
	}

	lines := make([]string, 0, 4)
	for y := range grid {
		lines = append(lines, string(grid[y][:]))
	}
	return strings.Join(lines, "\n")
}

// catalog holds the seven templates in spawn order. Rotation 0 of each, with
// x growing right and y growing down inside the 4x4 box:
//
//	I     Z     S     O     T     J     L
//	..#.  ....  ....  ....  ....  ....  ....
//	..#.  .#..  ..#.  ....  ..#.  ..#.  ..#.
//	..#.  .##.  .##.  .##.  .###  ..#.  ..#.
//	..#.  ..#.  .#..  .##.  ....  .##.  ..##
var catalog = [...]Template{
	{
		Name:  "I",
		Color: ColorI,
		Blocks: [Rotations][BlocksPerFigure]Offset{
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
			{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
			{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		},
	},
	{
		Name:  "Z",
		Color: ColorZ,
		Blocks: [Rotations][BlocksPerFigure]Offset{
			{{1, 1}, {1, 2}, {2, 2}, {2, 3}},
			{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
			{{1, 1}, {1, 2}, {2, 2}, {2, 3}},
			{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		},
	},
	{
		Name:  "S",
		Color: ColorS,
		Blocks: [Rotations][BlocksPerFigure]Offset{
			{{2, 1}, {1, 2}, {2, 2}, {1, 3}},
			{{1, 1}, {2, 1}, {2, 2}, {3, 2}},
			{{2, 1}, {1, 2}, {2, 2}, {1, 3}},
			{{1, 1}, {2, 1}, {2, 2}, {3, 2}},
		},
	},
	{
		Name:  "O",
		Color: ColorO,
		Blocks: [Rotations][BlocksPerFigure]Offset{
			{{1, 2}, {2, 2}, {1, 3}, {2, 3}},
			{{1, 2}, {2, 2}, {1, 3}, {2, 3}},
			{{1, 2}, {2, 2}, {1, 3}, {2, 3}},
			{{1, 2}, {2, 2}, {1, 3}, {2, 3}},
		},
	},
	{
		Name:  "T",
		Color: ColorT,
		Spawn: Offset{0, 1},
		Blocks: [Rotations][BlocksPerFigure]Offset{
			{{2, 1}, {1, 2}, {2, 2}, {3, 2}},
			{{2, 1}, {2, 2}, {3, 2}, {2, 3}},
			{{1, 2}, {2, 2}, {3, 2}, {2, 3}},
			{{2, 1}, {1, 2}, {2, 2}, {2, 3}},
		},
	},
	{
		Name:  "J",
		Color: ColorJ,
		Blocks: [Rotations][BlocksPerFigure]Offset{
			{{2, 1}, {2, 2}, {2, 3}, {1, 3}},
			{{1, 1}, {1, 2}, {2, 2}, {3, 2}},
			{{2, 1}, {3, 1}, {2, 2}, {2, 3}},
			{{1, 2}, {2, 2}, {3, 2}, {3, 3}},
		},
	},
	{
		Name:  "L",
		Color: ColorL,
		Blocks: [Rotations][BlocksPerFigure]Offset{
			{{2, 1}, {2, 2}, {2, 3}, {3, 3}},
			{{1, 2}, {2, 2}, {3, 2}, {1, 3}},
			{{1, 1}, {2, 1}, {2, 2}, {2, 3}},
			{{3, 1}, {1, 2}, {2, 2}, {3, 2}},
		},
	},
}

// NumTemplates is the size of the figure catalog.
const NumTemplates = len(catalog)

// Templates returns a copy of the figure catalog in spawn order.
func Templates() []Template {
	out := make([]Template, NumTemplates)
	copy(out, catalog[:])
	return out
}

// TemplateAt returns the template with index n. It panics if n is out of range.
func TemplateAt(n int) Template {
	return catalog[n]
}
