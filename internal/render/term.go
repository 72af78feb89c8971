package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/starfield/internal/world"
)

const (
	starGlyph  = '*'
	routeGlyph = '.'
)

// TermSurface draws into a cell buffer, one cell per screen unit, and
// flushes it to a tcell screen on Present.
type TermSurface struct {
	Screen tcell.Screen
	buf    *CellBuffer
}

func NewTermSurface(screen tcell.Screen) *TermSurface {
	w, h := screen.Size()
	return &TermSurface{Screen: screen, buf: NewCellBuffer(w, h)}
}

// Buffer exposes the frame being drawn.
func (s *TermSurface) Buffer() *CellBuffer { return s.buf }

func (s *TermSurface) FillRect(r world.Rect, c color.Color) {
	bg := rgba(c)
	x0, y0 := cell(r.Min)
	x1, y1 := int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y))
	for y := max(0, y0); y < min(y1, s.buf.Rows); y++ {
		for x := max(0, x0); x < min(x1, s.buf.Cols); x++ {
			s.buf.Set(x, y, Cell{Glyph: ' ', FG: blankCell.FG, BG: bg})
		}
	}
}

// DrawCircle plots a glyph for radii below one cell and otherwise shades the
// background of every cell within radius.
func (s *TermSurface) DrawCircle(center world.Point, radius float64, c color.Color) {
	cx, cy := cell(center)
	if radius < 1 {
		s.buf.Plot(cx, cy, starGlyph, rgba(c))
		return
	}
	r := int(math.Ceil(radius))
	bg := rgba(c)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) <= radius*radius {
				s.buf.Paint(cx+dx, cy+dy, bg)
			}
		}
	}
}

// DrawLine walks the cells between a and b (Bresenham) and dots the empty ones.
func (s *TermSurface) DrawLine(a, b world.Point, c color.Color) {
	fg := rgba(c)
	x0, y0 := cell(a)
	x1, y1 := cell(b)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if s.buf.Get(x0, y0).Glyph == ' ' {
			s.buf.Plot(x0, y0, routeGlyph, fg)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (s *TermSurface) DrawText(text string, pos world.Point, c color.Color) {
	x, y := cell(pos)
	s.buf.WriteString(x, y, text, rgba(c))
}

// Resize matches the buffer to the screen size. Hosts call it after a
// resize event, before painting.
func (s *TermSurface) Resize() {
	if w, h := s.Screen.Size(); w != s.buf.Cols || h != s.buf.Rows {
		s.buf = NewCellBuffer(w, h)
	}
}

// Present copies the buffer to the screen and shows it.
func (s *TermSurface) Present() {
	for y := 0; y < s.buf.Rows; y++ {
		for x := 0; x < s.buf.Cols; x++ {
			c := s.buf.Cells[y*s.buf.Cols+x]
			style := tcell.StyleDefault.Foreground(tcellColor(c.FG)).Background(tcellColor(c.BG))
			s.Screen.SetContent(x, y, c.Glyph, nil, style)
		}
	}
	s.Screen.Show()
}

func cell(p world.Point) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
