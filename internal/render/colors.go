package render

import (
	"image/color"

	"github.com/spacehole-rogue/starfield/internal/game"
	"github.com/spacehole-rogue/starfield/internal/world"
)

// CGA 16-color palette indices.
const (
	ColorBlack        = 0
	ColorBlue         = 1
	ColorGreen        = 2
	ColorCyan         = 3
	ColorRed          = 4
	ColorMagenta      = 5
	ColorBrown        = 6
	ColorLightGray    = 7
	ColorDarkGray     = 8
	ColorLightBlue    = 9
	ColorLightGreen   = 10
	ColorLightCyan    = 11
	ColorLightRed     = 12
	ColorLightMagenta = 13
	ColorYellow       = 14
	ColorWhite        = 15
)

// Palette contains the classic CGA 16-color palette.
var Palette = [16]color.RGBA{
	{0, 0, 0, 255},       // 0: Black
	{0, 0, 170, 255},     // 1: Blue
	{0, 170, 0, 255},     // 2: Green
	{0, 170, 170, 255},   // 3: Cyan
	{170, 0, 0, 255},     // 4: Red
	{170, 0, 170, 255},   // 5: Magenta
	{170, 85, 0, 255},    // 6: Brown
	{170, 170, 170, 255}, // 7: Light Gray
	{85, 85, 85, 255},    // 8: Dark Gray
	{85, 85, 255, 255},   // 9: Light Blue
	{85, 255, 85, 255},   // 10: Light Green
	{85, 255, 255, 255},  // 11: Light Cyan
	{255, 85, 85, 255},   // 12: Light Red
	{255, 85, 255, 255},  // 13: Light Magenta
	{255, 255, 85, 255},  // 14: Yellow
	{255, 255, 255, 255}, // 15: White
}

// Theme is the colors and marker sizes used by Paint, in screen units.
type Theme struct {
	Void        color.RGBA
	Panel       color.RGBA
	Star        color.RGBA
	Hover       color.RGBA
	Selection   color.RGBA
	Route       color.RGBA
	Preview     color.RGBA
	Text        color.RGBA
	Header      color.RGBA
	Hint        color.RGBA
	Button      color.RGBA
	ButtonHover color.RGBA
	Factions    []color.RGBA // by faction index; wraps

	StarRadius   float64
	GroupRadius  float64
	HoverRadius  float64
	SelectRadius float64
	GroupOffset  world.Point // from the star, per docked group
}

// PixelTheme is sized for the ebiten window.
func PixelTheme() *Theme {
	t := baseTheme()
	t.StarRadius = 2
	t.GroupRadius = 3
	t.HoverRadius = 8
	t.SelectRadius = 11
	t.GroupOffset = world.Pt(7, -7)
	return t
}

// CellTheme is sized for a terminal, one unit per cell. A radius below one
// draws a single glyph.
func CellTheme() *Theme {
	t := baseTheme()
	t.StarRadius = 0
	t.GroupRadius = 0
	t.HoverRadius = 1
	t.SelectRadius = 1.5
	t.GroupOffset = world.Pt(1, 0)
	return t
}

func baseTheme() *Theme {
	return &Theme{
		Void:        Palette[ColorBlack],
		Panel:       color.RGBA{40, 40, 40, 255},
		Star:        Palette[ColorWhite],
		Hover:       color.RGBA{90, 90, 90, 255},
		Selection:   Palette[ColorBlue],
		Route:       Palette[ColorDarkGray],
		Preview:     Palette[ColorLightGray],
		Text:        Palette[ColorLightGray],
		Header:      Palette[ColorWhite],
		Hint:        Palette[ColorDarkGray],
		Button:      Palette[ColorLightCyan],
		ButtonHover: color.RGBA{70, 70, 70, 255},
		Factions:    []color.RGBA{Palette[ColorLightGreen], Palette[ColorLightRed], Palette[ColorYellow], Palette[ColorLightMagenta]},
	}
}

// RowColor picks the text color for a sidebar row.
func (t *Theme) RowColor(r game.Row) color.RGBA {
	switch r.Style {
	case game.RowHeader:
		return t.Header
	case game.RowButton:
		return t.Button
	case game.RowHint:
		return t.Hint
	case game.RowComms:
		return commsColor(r.Priority)
	default:
		return t.Text
	}
}

// FactionColor returns the marker color of the k-th faction.
func (t *Theme) FactionColor(k int) color.RGBA {
	if len(t.Factions) == 0 {
		return t.Star
	}
	return t.Factions[k%len(t.Factions)]
}

func commsColor(p game.MsgPriority) color.RGBA {
	switch p {
	case game.MsgOrder:
		return Palette[ColorLightGreen]
	case game.MsgWarning:
		return Palette[ColorYellow]
	default:
		return Palette[ColorCyan]
	}
}
