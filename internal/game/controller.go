package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spacehole-rogue/starfield/internal/logs"
	"github.com/spacehole-rogue/starfield/internal/world"
)

// Page is the top-level screen the controller is showing.
type Page uint8

const (
	StarField Page = iota
	StarDetail
)

func (p Page) Name() string {
	switch p {
	case StarField:
		return "star field"
	case StarDetail:
		return "star detail"
	default:
		return "unknown"
	}
}

// CommandMode is the multi-step command in progress, if any.
type CommandMode uint8

const (
	Idle CommandMode = iota
	ChoosingDestination
)

func (m CommandMode) Name() string {
	switch m {
	case Idle:
		return "idle"
	case ChoosingDestination:
		return "choosing destination"
	default:
		return "unknown"
	}
}

// Order is a destination assignment made through the controller.
type Order struct {
	Group       *world.Group
	Destination world.Place
	Distance    float64 // world units from the group's position
}

// ControllerParams tunes a new controller.
type ControllerParams struct {
	HoverRadius   float64 // pixels
	ZoomIncrement float64
	Style         SidebarStyle
	Log           *MessageLog
}

// Controller is the interaction state machine. Every event handler returns
// whether visible state changed, so the host knows to redraw.
type Controller struct {
	World *world.World
	View  *Viewport

	Page          Page
	Mode          CommandMode
	Hovered       *world.Star
	Selected      *world.Star
	Focus         world.Object // *world.Star or *world.Group
	CommandGroup  *world.Group
	HoveredButton *Button
	Sidebar       Sidebar

	HoverRadius   float64
	ZoomIncrement float64
	Style         SidebarStyle
	Log           *MessageLog

	// OnOrder, if set, is called after a destination is assigned.
	OnOrder func(Order)

	lastMouse world.Point
	hasMouse  bool
}

// NewController creates a controller on the star field with nothing selected.
func NewController(w *world.World, v *Viewport, p ControllerParams) *Controller {
	c := &Controller{
		World:         w,
		View:          v,
		HoverRadius:   p.HoverRadius,
		ZoomIncrement: p.ZoomIncrement,
		Style:         p.Style,
		Log:           p.Log,
	}
	c.Sync()
	return c
}

// LastMouse returns the last cursor position seen, if any.
func (c *Controller) LastMouse() (world.Point, bool) {
	return c.lastMouse, c.hasMouse
}

// Sync re-projects the world and rebuilds the sidebar. Hosts call it after
// changing the viewport or controller tuning directly.
func (c *Controller) Sync() {
	c.View.Project(c.World)
	c.refresh()
}

// MouseMove updates hover state for the cursor at p.
func (c *Controller) MouseMove(p world.Point) bool {
	c.lastMouse = p
	c.hasMouse = true
	if c.Page != StarField {
		return false
	}
	changed := c.hoverAt(p)
	// The destination preview follows the cursor.
	if c.Mode == ChoosingDestination {
		changed = true
	}
	if changed {
		c.Sidebar = c.layoutSidebar()
	}
	return changed
}

// hoverAt updates the hovered button, or when no button is under p, the
// hovered star.
func (c *Controller) hoverAt(p world.Point) bool {
	if b, ok := NearestButton(p, c.Sidebar.Buttons()); ok {
		changed := c.HoveredButton == nil || *c.HoveredButton != b
		c.HoveredButton = &b
		return changed
	}
	changed := c.HoveredButton != nil
	c.HoveredButton = nil
	if s := NearestStar(c.World, c.View.MapRegion, p, c.HoverRadius); s != c.Hovered {
		c.Hovered = s
		changed = true
	}
	return changed
}

// Click handles a primary-button click at the last cursor position.
func (c *Controller) Click() bool {
	if c.Page == StarDetail {
		c.Page = StarField
		c.refresh()
		return true
	}

	switch {
	case c.HoveredButton != nil:
		c.dispatch(c.HoveredButton.Command)
	case c.Mode == ChoosingDestination:
		c.chooseDestination()
	case c.Hovered != nil:
		c.Selected = c.Hovered
		c.Focus = nil
	default:
		c.Selected = nil
		c.Focus = nil
	}
	c.refresh()
	return true
}

// Drag pans the view by a screen-space delta.
func (c *Controller) Drag(delta world.Point) bool {
	if delta == (world.Point{}) {
		return false
	}
	c.View.PanBy(delta)
	c.View.Project(c.World)
	c.refresh()
	return true
}

// Zoom steps the viewport scale. Hover follows whatever is now under the
// cursor.
func (c *Controller) Zoom(dir ZoomDir) bool {
	if !c.View.Zoom(dir, c.ZoomIncrement) {
		return false
	}
	c.View.Project(c.World)
	c.refresh()
	return true
}

// Cancel abandons the pending command, or leaves the detail page. It
// reports false when there was nothing to cancel.
func (c *Controller) Cancel() bool {
	switch {
	case c.Mode == ChoosingDestination:
		if g := c.CommandGroup; g != nil {
			c.Log.Add("order for "+g.DisplayName()+" cancelled", MsgWarning)
		}
		c.endCommand()
	case c.Page == StarDetail:
		c.Page = StarField
	default:
		return false
	}
	c.refresh()
	return true
}

func (c *Controller) dispatch(cmd string) {
	verb, id, err := ParseCommand(cmd)
	if err != nil {
		logs.DPanic("sidebar command", zap.String("command", cmd), zap.Error(err))
		return
	}
	obj, ok := c.World.Lookup(id)
	if !ok {
		logs.DPanic("sidebar command names unknown object", zap.String("command", cmd))
		return
	}

	switch verb {
	case VerbFocus:
		c.Focus = obj
		c.endCommand()
	case VerbDetail:
		c.Focus = obj
		c.endCommand()
		c.Page = StarDetail
	case VerbMoveGroup, VerbManageGroup:
		g, ok := obj.(*world.Group)
		if !ok {
			logs.DPanic("group command on non-group", zap.String("command", cmd))
			return
		}
		if verb == VerbManageGroup {
			c.Focus = g
			c.endCommand()
			c.Page = StarDetail
			return
		}
		c.CommandGroup = g
		c.Mode = ChoosingDestination
		logs.Debug("choosing destination", zap.String("group", g.DisplayName()))
	}
}

func (c *Controller) chooseDestination() {
	g := c.CommandGroup
	defer c.endCommand()
	if g == nil {
		logs.DPanic("choosing destination without a group")
		return
	}

	var dest world.Place = c.View.ScreenToWorld(c.lastMouse)
	if c.Hovered != nil {
		dest = c.Hovered
	}
	if err := c.World.SetDestination(g, dest); err != nil {
		logs.DPanic("destination rejected", zap.Error(err))
		return
	}

	order := Order{Group: g, Destination: dest, Distance: g.Position().Dist(dest.Position())}
	logs.Info("order issued",
		zap.String("group", g.DisplayName()),
		zap.String("destination", describeDestination(dest)),
		zap.Float64("distance", order.Distance))
	c.Log.Add(fmt.Sprintf("%s bound for %s", g.DisplayName(), describeDestination(dest)), MsgOrder)
	if c.OnOrder != nil {
		c.OnOrder(order)
	}
}

func (c *Controller) endCommand() {
	c.Mode = Idle
	c.CommandGroup = nil
}

// refresh rebuilds the sidebar and re-runs hover against it, since the
// buttons under the cursor may have changed.
func (c *Controller) refresh() {
	c.Sidebar = c.layoutSidebar()
	if c.Page != StarField {
		c.HoveredButton = nil
		c.Hovered = nil
		return
	}
	if c.hasMouse && c.hoverAt(c.lastMouse) {
		c.Sidebar = c.layoutSidebar()
	}
}
