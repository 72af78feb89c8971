package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/starfield/internal/game"
	"github.com/spacehole-rogue/starfield/internal/world"
)

func newSimSurface(t *testing.T, w, h int) *TermSurface {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return NewTermSurface(screen)
}

func TestTermSurfacePrimitives(t *testing.T) {
	s := newSimSurface(t, 40, 10)
	buf := s.Buffer()
	red := Palette[ColorLightRed]
	gray := Palette[ColorDarkGray]

	s.FillRect(world.RectXYWH(0, 0, 40, 10), Palette[ColorBlack])
	s.DrawText("Sol", world.Pt(2, 1), red)
	for i, want := range "Sol" {
		if c := buf.Get(2+i, 1); c.Glyph != want || c.FG != red {
			t.Fatalf("text cell %d: got=%+v", i, c)
		}
	}

	s.DrawCircle(world.Pt(10.6, 5.2), 0, red)
	if c := buf.Get(10, 5); c.Glyph != '*' || c.FG != red {
		t.Fatalf("star glyph: got=%+v", c)
	}

	s.DrawCircle(world.Pt(20, 5), 1, gray)
	for _, p := range [][2]int{{20, 5}, {19, 5}, {21, 5}, {20, 4}, {20, 6}} {
		if c := buf.Get(p[0], p[1]); c.BG != gray {
			t.Fatalf("disc cell %v: got=%+v", p, c)
		}
	}
	if c := buf.Get(21, 6); c.BG == gray {
		t.Fatal("corner outside radius 1 was shaded")
	}

	s.DrawLine(world.Pt(0, 8), world.Pt(4, 8), gray)
	for x := 0; x <= 4; x++ {
		if c := buf.Get(x, 8); c.Glyph != '.' {
			t.Fatalf("line cell %d: got=%q", x, c.Glyph)
		}
	}
	s.DrawLine(world.Pt(0, 1), world.Pt(6, 1), gray)
	if c := buf.Get(2, 1); c.Glyph != 'S' {
		t.Fatalf("line overwrote text: got=%q", c.Glyph)
	}

	s.Present()
}

func TestTermSurfaceFollowsResize(t *testing.T) {
	s := newSimSurface(t, 40, 10)
	s.Screen.SetSize(60, 20)
	s.Resize()
	if b := s.Buffer(); b.Cols != 60 || b.Rows != 20 {
		t.Fatalf("buffer: got=%dx%d want=60x20", b.Cols, b.Rows)
	}
}

func TestPaintOnTerminal(t *testing.T) {
	s := newSimSurface(t, 80, 24)
	w := world.New()
	sol := &world.Star{ID: w.NextID(), Name: "Sol", Location: world.Pt(0, 0)}
	w.AddStar(sol)
	us := w.NewFaction("us")
	w.Current = us
	w.NewGroup(us, sol)

	v := game.NewViewport(game.ViewportParams{ScreenWidth: 80, ScreenHeight: 24, SidebarWidth: 32, Scale: 20, MinScale: 4})
	c := game.NewController(w, v, game.ControllerParams{
		HoverRadius:   2,
		ZoomIncrement: 2,
		Style:         game.SidebarStyle{RowHeight: 1, Padding: 1, CommsLines: 3},
	})
	Paint(s, CellTheme(), c)

	// Map region is 48x24, so sol sits at (24, 12) and its group one cell right.
	buf := s.Buffer()
	if got := buf.Get(24, 12).Glyph; got != '*' {
		t.Fatalf("sol: got=%q want='*'", got)
	}
	if got := buf.Get(25, 12); got.Glyph != '*' || got.FG != CellTheme().FactionColor(0) {
		t.Fatalf("group marker: got=%+v", got)
	}
	if got := buf.Get(49, 1).Glyph; got != 'c' {
		t.Fatalf("sidebar hint: got=%q want='c'", got)
	}
}

func TestPaintAfterResizeUsesNewSize(t *testing.T) {
	s := newSimSurface(t, 80, 24)
	w := world.New()
	sol := &world.Star{ID: w.NextID(), Name: "Sol", Location: world.Pt(0, 0)}
	w.AddStar(sol)
	w.Current = w.NewFaction("us")

	v := game.NewViewport(game.ViewportParams{ScreenWidth: 80, ScreenHeight: 24, SidebarWidth: 32, Scale: 20, MinScale: 4})
	c := game.NewController(w, v, game.ControllerParams{
		HoverRadius:   2,
		ZoomIncrement: 2,
		Style:         game.SidebarStyle{RowHeight: 1, Padding: 1, CommsLines: 3},
	})
	Paint(s, CellTheme(), c)

	s.Screen.SetSize(120, 40)
	v.Resize(120, 40, 32)
	s.Resize()
	c.Sync()
	Paint(s, CellTheme(), c)

	// Sidebar now starts at x=88; the hint sits one cell in.
	if got, _, _, _ := s.Screen.GetContent(89, 1); got != 'c' {
		t.Fatalf("sidebar hint after resize: got=%q want='c'", got)
	}
	if got, _, _, _ := s.Screen.GetContent(44, 20); got != '*' {
		t.Fatalf("sol after resize: got=%q want='*'", got)
	}
}
