package gamemap

import (
	"errors"
	"strings"
	"testing"

	"gridwalk/internal/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-testutil"
)

func TestBuildMapsDesignCharacters(t *testing.T) {
	g := Build([]string{"#.x"}, DefaultTable())
	cases := []struct {
		x    int
		want Kind
	}{
		{0, Wall},
		{1, Floor},
		{2, Void},
	}
	for _, c := range cases {
		got, err := g.KindAt(geom.C(c.x, 0))
		if err != nil {
			t.Fatalf("KindAt(%d,0): %v", c.x, err)
		}
		if got.Kind != c.want {
			t.Errorf("KindAt(%d,0) = %v; want %v", c.x, got.Kind, c.want)
		}
	}
}

func TestCanWalk(t *testing.T) {
	g := Build([]string{
		"###",
		"#.#",
		"#x",
	}, DefaultTable())
	cases := []struct {
		name string
		c    geom.Coord
		want bool
	}{
		{"floor", geom.C(1, 1), true},
		{"wall", geom.C(0, 0), false},
		{"void", geom.C(1, 2), false},
		{"negative x", geom.C(-1, 1), false},
		{"below last row", geom.C(1, 3), false},
		{"past short row", geom.C(2, 2), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.CanWalk(tc.c); got != tc.want {
				t.Errorf("CanWalk(%v) = %v; want %v", tc.c, got, tc.want)
			}
		})
	}
}

func TestKindAtOutOfBounds(t *testing.T) {
	g := Build([]string{"...", "."}, DefaultTable())
	for _, c := range []geom.Coord{geom.C(3, 0), geom.C(1, 1), geom.C(0, -1), geom.C(0, 2)} {
		_, err := g.KindAt(c)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("KindAt(%v) err = %v; want ErrOutOfBounds", c, err)
		}
		if _, err := g.GlyphAt(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("GlyphAt(%v) err = %v; want ErrOutOfBounds", c, err)
		}
	}
}

func TestRenderRoundTrip(t *testing.T) {
	rows := []string{
		"########",
		"#......#",
		"#..##..#",
		"########",
	}
	got := Build(rows, DefaultTable()).Render()
	want := strings.Join(rows, "\n") + "\n"
	testutil.AssertEqual(t, "render", got, want)
}

func TestRenderMapsUnknownToVoidGlyph(t *testing.T) {
	got := Build([]string{"#xx#", ".."}, DefaultTable()).Render()
	testutil.AssertEqual(t, "render", got, "#  #\n..\n")
}

func TestDimensions(t *testing.T) {
	g := Build([]string{"....", "..", "......"}, DefaultTable())
	testutil.AssertEqual(t, "height", g.Height(), 3)
	testutil.AssertEqual(t, "width", g.Width(), 6)
	testutil.AssertEqual(t, "row 1 length", g.RowLen(1), 2)
	testutil.AssertEqual(t, "row out of range", g.RowLen(9), 0)
}

func TestCustomTable(t *testing.T) {
	table := DefaultTable()
	table.Design['~'] = Floor
	table.Terrain[Floor] = Terrain{Kind: Floor, Tile: Tile{Glyph: ',', Color: tcell.ColorOlive}, Walkable: true}

	g := Build([]string{"~."}, table)
	if !g.CanWalk(geom.C(0, 0)) {
		t.Fatal("'~' should be walkable floor under the custom table")
	}
	testutil.AssertEqual(t, "render", g.Render(), ",,\n")

	// The default table is a fresh value each call.
	if DefaultTable().KindOf('~') != Void {
		t.Fatal("custom table leaked into DefaultTable")
	}
}

func TestCellsVisitsEveryCell(t *testing.T) {
	g := Build([]string{"#.", "."}, DefaultTable())
	var visited []geom.Coord
	g.Cells(func(c geom.Coord, _ Terrain) { visited = append(visited, c) })
	testutil.AssertEqual(t, "visited", len(visited), 3)
	testutil.AssertEqual(t, "last", visited[2], geom.C(0, 1))
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Void, Floor, Wall} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("lava"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
