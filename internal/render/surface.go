package render

import (
	"image/color"

	"github.com/spacehole-rogue/starfield/internal/world"
)

// Surface is a drawing target in screen coordinates. Circles are filled.
type Surface interface {
	FillRect(r world.Rect, c color.Color)
	DrawCircle(center world.Point, radius float64, c color.Color)
	DrawLine(a, b world.Point, c color.Color)
	DrawText(text string, pos world.Point, c color.Color)
	Present()
}
