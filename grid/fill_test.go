package grid

import "testing"

func TestFill_AroundObstacle(t *testing.T) {
	g := mustGrid(t)(FilledWith(10, 10, '.'))
	g.Set(5, 5, '#')

	if got := g.Fill(0, 0, '+'); got != 99 {
		t.Errorf("Fill() = %d, want 99", got)
	}
	if got := g.Count('+'); got != 99 {
		t.Errorf("Count('+') = %d, want 99", got)
	}
	if got := g.Count('#'); got != 1 {
		t.Errorf("Count('#') = %d, want 1", got)
	}
}

func TestFill_Idempotent(t *testing.T) {
	g := mustGrid(t)(FilledWith(6, 4, '.'))

	if got := g.Fill(2, 2, 'o'); got != 24 {
		t.Errorf("first Fill() = %d, want 24", got)
	}
	if got := g.Fill(2, 2, 'o'); got != 0 {
		t.Errorf("second Fill() = %d, want 0", got)
	}
}

func TestFill_BarrierSplitsRegions(t *testing.T) {
	g := mustGrid(t)(New(3, 3))
	for x := 0; x < 3; x++ {
		g.Set(x, 1, 'X')
	}

	if got := g.Fill(0, 0, '+'); got != 3 {
		t.Errorf("Fill() = %d, want 3", got)
	}

	want := "+++\nXXX\n   \n"
	if got := g.String(); got != want {
		t.Errorf("grid = %q, want %q", got, want)
	}
}

func TestFill_NoDiagonalLeak(t *testing.T) {
	g := mustGrid(t)(Parse(".#\n#."))

	if got := g.Fill(0, 0, '+'); got != 1 {
		t.Errorf("Fill() = %d, want 1", got)
	}
	if r, _ := g.Get(1, 1); r != '.' {
		t.Errorf("diagonal cell = %c, want '.'", r)
	}
}

func TestFill_Examples(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		x, y    int
		fill    rune
		changed int
		want    string
	}{
		{
			name: "Inner block",
			input: "########\n" +
				"#......#\n" +
				"#.####.#\n" +
				"#.####.#\n" +
				"#......#\n" +
				"########",
			x: 2, y: 2, fill: '.',
			changed: 8,
			want: "########\n" +
				"#......#\n" +
				"#......#\n" +
				"#......#\n" +
				"#......#\n" +
				"########\n",
		},
		{
			name:    "Only matching region",
			input:   "#..#\n####",
			x:       1, y: 0, fill: '+',
			changed: 2,
			want:    "#++#\n####\n",
		},
		{
			name:    "Ring",
			input:   "...\n.#.\n...",
			x:       0, y: 0, fill: '~',
			changed: 8,
			want:    "~~~\n~#~\n~~~\n",
		},
		{
			name:    "Single cell",
			input:   "a",
			x:       0, y: 0, fill: 'b',
			changed: 1,
			want:    "b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t)(Parse(tt.input))
			if got := g.Fill(tt.x, tt.y, tt.fill); got != tt.changed {
				t.Errorf("Fill() = %d, want %d", got, tt.changed)
			}
			if got := g.String(); got != tt.want {
				t.Errorf("grid =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestFill_OutOfBounds(t *testing.T) {
	g := mustGrid(t)(New(4, 4))
	before := g.String()

	points := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {200, 0}}
	for _, p := range points {
		if got := g.Fill(p[0], p[1], '+'); got != 0 {
			t.Errorf("Fill(%d,%d) = %d, want 0", p[0], p[1], got)
		}
	}
	if g.String() != before {
		t.Error("out-of-bounds Fill() changed the grid")
	}
}

func TestFill_SameValue(t *testing.T) {
	g := mustGrid(t)(New(5, 5))
	if got := g.Fill(2, 2, DefaultFill); got != 0 {
		t.Errorf("Fill() with current value = %d, want 0", got)
	}
	if got := g.Count(DefaultFill); got != 25 {
		t.Errorf("Count() = %d, want 25", got)
	}
}

func TestFill_CountMatchesChanged(t *testing.T) {
	// Checkerboard-ish maze where regions snake around
	g := mustGrid(t)(Parse(
		".#....\n" +
			".#.##.\n" +
			".#..#.\n" +
			"...##.\n" +
			"####..",
	))
	before := g.Count('.')

	changed := g.Fill(0, 0, 'o')
	if changed != before-g.Count('.') {
		t.Errorf("Fill() = %d, but '.' count dropped by %d", changed, before-g.Count('.'))
	}
	if g.Count('o') != changed {
		t.Errorf("Count('o') = %d, want %d", g.Count('o'), changed)
	}
	if r, _ := g.Get(5, 4); r != 'o' {
		t.Errorf("far corner = %c, want 'o'", r)
	}
}

func TestFill_LargeGrid(t *testing.T) {
	g := mustGrid(t)(New(1000, 1000))
	if got := g.Fill(500, 500, '#'); got != 1000*1000 {
		t.Errorf("Fill() = %d, want %d", got, 1000*1000)
	}
}

func BenchmarkFill(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g, _ := New(256, 256)
		g.Fill(0, 0, '#')
	}
}
