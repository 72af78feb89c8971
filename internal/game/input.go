package game

import (
	"github.com/spacehole-rogue/starfield/internal/world"
)

// PointerState is the primary button's click/drag state.
type PointerState uint8

const (
	PointerUp PointerState = iota
	PointerDown
	PointerDragging
)

// Pointer tells clicks from drags. A press that moves more than DeadZone
// pixels before release becomes a drag and never produces a click.
type Pointer struct {
	State    PointerState
	DeadZone float64

	pressAt world.Point
	last    world.Point
}

// Press records a primary-button press at p.
func (p *Pointer) Press(at world.Point) {
	p.State = PointerDown
	p.pressAt = at
	p.last = at
}

// Move returns the pan delta since the previous move, and whether the
// pointer is dragging.
func (p *Pointer) Move(at world.Point) (world.Point, bool) {
	switch p.State {
	case PointerDown:
		if at.SquareDist(p.pressAt) <= p.DeadZone*p.DeadZone {
			return world.Point{}, false
		}
		p.State = PointerDragging
	case PointerDragging:
	default:
		return world.Point{}, false
	}
	delta := at.Sub(p.last)
	p.last = at
	return delta, true
}

// Release ends the press and reports whether it was a click.
func (p *Pointer) Release() bool {
	click := p.State == PointerDown
	p.State = PointerUp
	return click
}

// EventKind is the kind of a raw pointer event from a host.
type EventKind uint8

const (
	EventMove EventKind = iota
	EventDown
	EventUp
	EventWheel
)

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	ButtonPrimary MouseButton = iota
	ButtonSecondary
	ButtonMiddle
)

// RawEvent is a host-neutral pointer event in screen coordinates.
type RawEvent struct {
	Kind   EventKind
	Pos    world.Point
	Button MouseButton
	WheelY float64 // positive zooms in
}

// Input feeds raw host events through the pointer state machine into the controller.
type Input struct {
	Pointer    Pointer
	Controller *Controller
}

// NewInput creates an input boundary for c.
func NewInput(c *Controller, deadZone float64) *Input {
	return &Input{Controller: c, Pointer: Pointer{DeadZone: deadZone}}
}

// Dispatch handles one event and reports whether a redraw is needed.
func (in *Input) Dispatch(ev RawEvent) bool {
	c := in.Controller
	switch ev.Kind {
	case EventMove:
		changed := c.MouseMove(ev.Pos)
		if delta, dragging := in.Pointer.Move(ev.Pos); dragging {
			changed = c.Drag(delta) || changed
		}
		return changed
	case EventDown:
		if ev.Button != ButtonPrimary {
			return false
		}
		changed := c.MouseMove(ev.Pos)
		in.Pointer.Press(ev.Pos)
		return changed
	case EventUp:
		if ev.Button != ButtonPrimary {
			return false
		}
		if in.Pointer.Release() {
			return c.Click()
		}
		return false
	case EventWheel:
		switch {
		case ev.WheelY > 0:
			return c.Zoom(ZoomIn)
		case ev.WheelY < 0:
			return c.Zoom(ZoomOut)
		}
	}
	return false
}
