package game

import (
	"fmt"

	"github.com/spacehole-rogue/starfield/internal/world"
)

// RowStyle tells the painter how to draw a sidebar row.
type RowStyle uint8

const (
	RowText RowStyle = iota
	RowHeader
	RowButton
	RowHint
	RowComms
)

// Row is one laid-out line of the sidebar. Rows with a Command are buttons.
type Row struct {
	Text     string
	Style    RowStyle
	Command  string
	Rect     world.Rect
	Priority MsgPriority // comms rows only
}

// Button is a clickable sidebar row.
type Button struct {
	Label   string
	Command string
	Rect    world.Rect
}

// Sidebar is the laid-out sidebar (or, on the detail page, the whole screen).
type Sidebar struct {
	Region world.Rect
	Rows   []Row
}

// Buttons returns the clickable rows in layout order.
func (s Sidebar) Buttons() []Button {
	var out []Button
	for _, r := range s.Rows {
		if r.Command != "" {
			out = append(out, Button{Label: r.Text, Command: r.Command, Rect: r.Rect})
		}
	}
	return out
}

// SidebarStyle is the row geometry in screen units.
type SidebarStyle struct {
	RowHeight  float64
	Padding    float64
	CommsLines int
}

type rowSpec struct {
	text    string
	style   RowStyle
	command string
}

func text(format string, args ...any) rowSpec {
	return rowSpec{text: fmt.Sprintf(format, args...)}
}

func header(s string) rowSpec { return rowSpec{text: s, style: RowHeader} }

func hint(s string) rowSpec { return rowSpec{text: s, style: RowHint} }

func button(label string, v Verb, id world.ID) rowSpec {
	return rowSpec{text: label, style: RowButton, command: Command(v, id)}
}

// layoutSidebar derives the sidebar from controller state. It does not
// mutate the controller.
func (c *Controller) layoutSidebar() Sidebar {
	var specs []rowSpec
	region := c.View.SidebarRegion()
	if c.Page == StarDetail {
		region = world.RectXYWH(0, 0, c.View.Screen.X, c.View.Screen.Y)
		specs = c.detailRows()
	} else {
		specs = c.fieldRows()
	}

	sb := Sidebar{Region: region}
	st := c.Style
	x := region.Min.X + st.Padding
	w := max(0, region.Width()-2*st.Padding)
	for i, spec := range specs {
		y := region.Min.Y + st.Padding + float64(i)*st.RowHeight
		sb.Rows = append(sb.Rows, Row{
			Text:    spec.text,
			Style:   spec.style,
			Command: spec.command,
			Rect:    world.RectXYWH(x, y, w, st.RowHeight),
		})
	}

	if c.Page == StarField {
		recent := c.Log.Recent(st.CommsLines)
		top := region.Max.Y - st.Padding - float64(len(recent))*st.RowHeight
		for i, m := range recent {
			sb.Rows = append(sb.Rows, Row{
				Text:     m.Text,
				Style:    RowComms,
				Priority: m.Priority,
				Rect:     world.RectXYWH(x, top+float64(i)*st.RowHeight, w, st.RowHeight),
			})
		}
	}
	return sb
}

func (c *Controller) fieldRows() []rowSpec {
	if c.Mode == ChoosingDestination {
		return c.choosingRows()
	}
	if c.Focus != nil {
		return c.focusRows(c.Focus)
	}
	if s := c.Selected; s != nil {
		if len(s.Docked) == 0 {
			return starRows(s)
		}
		specs := []rowSpec{button(s.DisplayName(), VerbFocus, s.ID)}
		for _, g := range s.Docked {
			specs = append(specs, button(g.DisplayName(), VerbFocus, g.ID))
		}
		return specs
	}
	return []rowSpec{hint("click a star to select it")}
}

func (c *Controller) choosingRows() []rowSpec {
	g := c.CommandGroup
	if g == nil {
		return nil
	}
	if s := c.Hovered; s != nil {
		return []rowSpec{
			header(s.DisplayName()),
			text("location %v", s.Location.Round(3)),
			text("distance %.3f", g.Position().Dist(s.Location)),
		}
	}
	return []rowSpec{
		header("destination for " + g.DisplayName()),
		hint("click a star or open space"),
		hint("esc cancels"),
	}
}

func (c *Controller) focusRows(o world.Object) []rowSpec {
	switch f := o.(type) {
	case *world.Star:
		specs := starRows(f)
		return append(specs, button("details", VerbDetail, f.ID))
	case *world.Group:
		specs := groupRows(f)
		if c.World.Owns(f) {
			specs = append(specs,
				button("move group", VerbMoveGroup, f.ID),
				button("manage group", VerbManageGroup, f.ID),
			)
		}
		return specs
	default:
		return []rowSpec{header(o.DisplayName())}
	}
}

// detailRows is the full-screen page for the focus object.
func (c *Controller) detailRows() []rowSpec {
	var specs []rowSpec
	switch f := c.Focus.(type) {
	case *world.Star:
		specs = starRows(f)
		specs = append(specs, text("%d docked group(s)", len(f.Docked)))
		for _, g := range f.Docked {
			specs = append(specs, text("  %s", g.DisplayName()))
		}
	case *world.Group:
		specs = groupRows(f)
		specs = append(specs, text("faction %s", f.Faction.DisplayName()))
		if dest, ok := f.Destination(); ok {
			specs = append(specs, text("distance %.3f", f.Position().Dist(dest.Position())))
		}
	case nil:
		specs = append(specs, header("nothing focused"))
	default:
		specs = append(specs, header(f.DisplayName()))
	}
	return append(specs, hint("click anywhere to return"))
}

func starRows(s *world.Star) []rowSpec {
	return []rowSpec{
		header(s.DisplayName()),
		text("location %v", s.Location.Round(3)),
	}
}

func groupRows(g *world.Group) []rowSpec {
	specs := []rowSpec{
		header(g.DisplayName()),
		text("%s", world.DescribePlace(g.Location())),
	}
	if dest, ok := g.Destination(); ok {
		specs = append(specs, text("bound for %s", describeDestination(dest)))
	}
	return specs
}

func describeDestination(p world.Place) string {
	switch d := p.(type) {
	case *world.Star:
		return d.Name
	case world.Point:
		return d.Round(3).String()
	default:
		return "nowhere"
	}
}
