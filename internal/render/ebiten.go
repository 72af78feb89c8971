package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/spacehole-rogue/starfield/internal/world"
)

// EbitenSurface draws onto an ebiten image with vector shapes and atlas text.
// Set Target before each Paint.
type EbitenSurface struct {
	Target *ebiten.Image
	Atlas  *FontAtlas
}

func NewEbitenSurface(atlas *FontAtlas) *EbitenSurface {
	return &EbitenSurface{Atlas: atlas}
}

func (s *EbitenSurface) FillRect(r world.Rect, c color.Color) {
	vector.DrawFilledRect(s.Target, float32(r.Min.X), float32(r.Min.Y), float32(r.Width()), float32(r.Height()), c, false)
}

func (s *EbitenSurface) DrawCircle(center world.Point, radius float64, c color.Color) {
	vector.DrawFilledCircle(s.Target, float32(center.X), float32(center.Y), float32(max(radius, 1)), c, true)
}

func (s *EbitenSurface) DrawLine(a, b world.Point, c color.Color) {
	vector.StrokeLine(s.Target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c, true)
}

// DrawText draws a single line with its top-left corner at pos.
func (s *EbitenSurface) DrawText(text string, pos world.Point, c color.Color) {
	var op ebiten.DrawImageOptions
	x := pos.X
	for _, r := range text {
		if r != ' ' {
			op = ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, pos.Y)
			op.ColorScale.ScaleWithColor(c)
			s.Target.DrawImage(s.Atlas.Glyph(r), &op)
		}
		x += GlyphWidth
	}
}

// Present is a no-op; ebiten shows the frame when Draw returns.
func (s *EbitenSurface) Present() {}
