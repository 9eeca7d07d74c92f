package etris

import "testing"

func TestCatalogOrderAndColors(t *testing.T) {
	names := "IZSOTJL"
	if NumTemplates != len(names) {
		t.Fatalf("NumTemplates = %d, expected %d", NumTemplates, len(names))
	}

	for i, tmpl := range Templates() {
		if tmpl.Name != string(names[i]) {
			t.Errorf("template %d name = %q, expected %q", i, tmpl.Name, string(names[i]))
		}
		if want := ColorI + Cell(i); tmpl.Color != want {
			t.Errorf("template %s color = %d, expected %d", tmpl.Name, tmpl.Color, want)
		}
		if tmpl.Color >= NumCells {
			t.Errorf("template %s color %d out of range", tmpl.Name, tmpl.Color)
		}
	}
}

func TestCatalogRotationsAreTetrominoes(t *testing.T) {
	for _, tmpl := range Templates() {
		for r, blocks := range tmpl.Blocks {
			seen := make(map[Offset]bool, BlocksPerFigure)
			for _, b := range blocks {
				if b.X < 0 || b.X > 3 || b.Y < 0 || b.Y > 3 {
					t.Errorf("%s rotation %d: offset %v outside 4x4 box", tmpl.Name, r, b)
				}
				if seen[b] {
					t.Errorf("%s rotation %d: duplicate offset %v", tmpl.Name, r, b)
				}
				seen[b] = true
			}

			if !connected(blocks) {
				t.Errorf("%s rotation %d is not edge-connected:\n%s", tmpl.Name, r, tmpl.Shape(r))
			}
		}
	}
}

// connected reports whether the blocks form one edge-connected piece.
func connected(blocks [BlocksPerFigure]Offset) bool {
	in := make(map[Offset]bool, len(blocks))
	for _, b := range blocks {
		in[b] = true
	}

	visited := map[Offset]bool{blocks[0]: true}
	queue := []Offset{blocks[0]}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		for _, d := range []Offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := Offset{b.X + d.X, b.Y + d.Y}
			if in[n] && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited) == len(in)
}

func TestNextRotationCycles(t *testing.T) {
	r := 0
	for _, want := range []int{1, 2, 3, 0, 1} {
		r = NextRotation(r)
		if r != want {
			t.Fatalf("NextRotation = %d, expected %d", r, want)
		}
	}
}

func TestTemplateShape(t *testing.T) {
	tests := []struct {
		index    int
		rotation int
		want     string
	}{
		{0, 0, "..#.\n..#.\n..#.\n..#."},
		{0, 1, "....\n####\n....\n...."},
		{3, 2, "....\n....\n.##.\n.##."},
		{4, 0, "....\n..#.\n.###\n...."},
		{6, 0, "....\n..#.\n..#.\n..##"},
	}

	for _, tc := range tests {
		tmpl := TemplateAt(tc.index)
		if got := tmpl.Shape(tc.rotation); got != tc.want {
			t.Errorf("%s.Shape(%d) =\n%s\nexpected\n%s", tmpl.Name, tc.rotation, got, tc.want)
		}
	}
}

func TestTemplatesReturnsCopy(t *testing.T) {
	list := Templates()
	list[0].Color = Border
	list[0].Blocks[0][0] = Offset{3, 3}

	if TemplateAt(0).Color != ColorI {
		t.Error("mutating Templates() result changed the catalog color")
	}
	if TemplateAt(0).Blocks[0][0] != (Offset{2, 0}) {
		t.Error("mutating Templates() result changed the catalog geometry")
	}
}
