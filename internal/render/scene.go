package render

import (
	"slices"

	"github.com/spacehole-rogue/starfield/internal/game"
	"github.com/spacehole-rogue/starfield/internal/world"
)

// Paint draws one frame of the controller's state and presents it.
// It only reads state; the same state always paints the same calls.
func Paint(s Surface, t *Theme, c *game.Controller) {
	if c.Page == game.StarDetail {
		s.FillRect(c.Sidebar.Region, t.Void)
		paintRows(s, t, c)
		s.Present()
		return
	}

	w, v := c.World, c.View
	s.FillRect(v.MapRegion, t.Void)

	// Routes for groups already under orders.
	for _, g := range w.Groups() {
		if dest, ok := g.Destination(); ok {
			s.DrawLine(w.Screen(g), v.WorldToScreen(dest.Position()), t.Route)
		}
	}

	if c.Mode == game.ChoosingDestination && c.CommandGroup != nil {
		if target, ok := c.LastMouse(); ok {
			if c.Hovered != nil {
				target = w.Screen(c.Hovered)
			}
			s.DrawLine(w.Screen(c.CommandGroup), target, t.Preview)
		}
	}

	if c.Selected != nil {
		s.DrawCircle(w.Screen(c.Selected), t.SelectRadius, t.Selection)
	}
	if c.Hovered != nil {
		s.DrawCircle(w.Screen(c.Hovered), t.HoverRadius, t.Hover)
	}

	bounds := world.Rect{Max: v.Screen}
	for _, st := range w.Stars {
		if p := w.Screen(st); bounds.Contains(p) {
			s.DrawCircle(p, t.StarRadius, t.Star)
		}
	}
	for k, f := range w.Factions {
		clr := t.FactionColor(k)
		for _, g := range f.Groups {
			s.DrawCircle(groupMarker(w, t, g), t.GroupRadius, clr)
		}
	}

	s.FillRect(c.Sidebar.Region, t.Panel)
	paintRows(s, t, c)
	s.Present()
}

// groupMarker places docked groups beside their star, one offset step per
// position in the dock list, and free groups at their own position.
func groupMarker(w *world.World, t *Theme, g *world.Group) world.Point {
	p := w.Screen(g)
	if star, ok := g.Location().(*world.Star); ok {
		i := slices.Index(star.Docked, g)
		p = p.Add(t.GroupOffset.Scale(float64(i + 1)))
	}
	return p
}

func paintRows(s Surface, t *Theme, c *game.Controller) {
	for _, r := range c.Sidebar.Rows {
		if r.Command != "" && c.HoveredButton != nil && c.HoveredButton.Command == r.Command {
			s.FillRect(r.Rect, t.ButtonHover)
		}
		s.DrawText(r.Text, r.Rect.Min, t.RowColor(r))
	}
}
