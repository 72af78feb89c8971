package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 7
	GlyphHeight = 13
	AtlasCols   = 16
	AtlasRows   = 6

	firstGlyph = 32
	lastGlyph  = 126
)

// FontAtlas holds printable ASCII rendered from basicfont.Face7x13, white on
// transparent, so draws can tint it with a color scale.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [lastGlyph - firstGlyph + 1]*ebiten.Image
}

// NewFontAtlas renders the atlas. Call once, after the game loop starts.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13
	ascent := face.Ascent

	for code := firstGlyph; code <= lastGlyph; code++ {
		cx, cy := glyphCell(code)
		drawFontGlyph(img, face, cx, cy+ascent, rune(code))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := firstGlyph; code <= lastGlyph; code++ {
		x, y := glyphCell(code)
		rect := image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
		a.glyphs[code-firstGlyph] = eimg.SubImage(rect).(*ebiten.Image)
	}
	return a
}

func glyphCell(code int) (x, y int) {
	i := code - firstGlyph
	return (i % AtlasCols) * GlyphWidth, (i / AtlasCols) * GlyphHeight
}

// Glyph returns the sub-image for r, or '?' for anything outside printable ASCII.
func (a *FontAtlas) Glyph(r rune) *ebiten.Image {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	return a.glyphs[r-firstGlyph]
}

func drawFontGlyph(img *image.NRGBA, face font.Face, x, baseline int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(string(r))
}
