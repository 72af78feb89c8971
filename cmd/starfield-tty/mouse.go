package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/starfield/internal/game"
	"github.com/spacehole-rogue/starfield/internal/world"
)

var buttonMap = []struct {
	mask tcell.ButtonMask
	btn  game.MouseButton
}{
	{tcell.Button1, game.ButtonPrimary},
	{tcell.Button2, game.ButtonSecondary},
	{tcell.Button3, game.ButtonMiddle},
}

// mouseTracker turns tcell's button-state mouse reports into edge events.
type mouseTracker struct {
	pos     world.Point
	seen    bool
	buttons tcell.ButtonMask
}

func (m *mouseTracker) translate(ev *tcell.EventMouse) []game.RawEvent {
	x, y := ev.Position()
	pos := world.Pt(float64(x), float64(y))
	now := ev.Buttons()

	var out []game.RawEvent
	if !m.seen || pos != m.pos {
		out = append(out, game.RawEvent{Kind: game.EventMove, Pos: pos})
		m.pos, m.seen = pos, true
	}
	for _, b := range buttonMap {
		was, is := m.buttons&b.mask != 0, now&b.mask != 0
		switch {
		case is && !was:
			out = append(out, game.RawEvent{Kind: game.EventDown, Pos: pos, Button: b.btn})
		case was && !is:
			out = append(out, game.RawEvent{Kind: game.EventUp, Pos: pos, Button: b.btn})
		}
	}
	switch {
	case now&tcell.WheelUp != 0:
		out = append(out, game.RawEvent{Kind: game.EventWheel, Pos: pos, WheelY: 1})
	case now&tcell.WheelDown != 0:
		out = append(out, game.RawEvent{Kind: game.EventWheel, Pos: pos, WheelY: -1})
	}
	m.buttons = now & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	return out
}
