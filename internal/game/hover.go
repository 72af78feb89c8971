package game

import (
	"github.com/spacehole-rogue/starfield/internal/world"
)

// NearestStar returns the star whose projected position is closest to p and
// strictly within maxRadius pixels. Points outside region never hover a star.
// Ties keep the first star in world order.
func NearestStar(w *world.World, region world.Rect, p world.Point, maxRadius float64) *world.Star {
	if !region.Contains(p) {
		return nil
	}
	var nearest *world.Star
	best := maxRadius * maxRadius
	for _, s := range w.Stars {
		if d := w.Screen(s).SquareDist(p); d < best {
			best = d
			nearest = s
		}
	}
	return nearest
}

// NearestButton returns the first button containing p.
func NearestButton(p world.Point, buttons []Button) (Button, bool) {
	for _, b := range buttons {
		if b.Rect.Contains(p) {
			return b, true
		}
	}
	return Button{}, false
}
