package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/starfield/internal/app"
	"github.com/spacehole-rogue/starfield/internal/config"
	"github.com/spacehole-rogue/starfield/internal/game"
)

func newTestHost(t *testing.T) *host {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := &config.Config{
		Galaxy: config.GalaxyConfig{
			Seed:          7,
			Stars:         30,
			MinSeparation: 0.012,
			MaxRetries:    5,
			Factions:      []config.FactionConfig{{Name: "us", Groups: 1}},
		},
		Term: config.TermConfig{InitialScale: 10, ZoomIncrement: 2, HoverRadius: 2, SidebarWidth: 32},
	}
	w, _, err := app.BuildWorld(cfg.Galaxy)
	if err != nil {
		t.Fatal(err)
	}
	return newHost(screen, &app.Session{Config: cfg, World: w})
}

func TestHostLayout(t *testing.T) {
	h := newTestHost(t)
	v := h.ctrl.View
	if v.MapRegion.Width() != 48 || v.MapRegion.Height() != 24 {
		t.Fatalf("map region: got=%v", v.MapRegion)
	}

	h.screen.(tcell.SimulationScreen).SetSize(100, 30)
	if !h.handle(tcell.NewEventResize(100, 30)) {
		t.Fatal("resize ended the session")
	}
	if v.MapRegion.Width() != 68 || v.MapRegion.Height() != 30 {
		t.Fatalf("after resize: got=%v", v.MapRegion)
	}
	if got, _, _, _ := h.screen.GetContent(69, 1); got != 'c' {
		t.Fatalf("sidebar hint after resize: got=%q want='c'", got)
	}
}

func TestHostKeys(t *testing.T) {
	h := newTestHost(t)
	if h.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if h.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Fatal("ctrl-c should quit")
	}

	h.ctrl.Focus = h.ctrl.World.Stars[0]
	h.ctrl.Page = game.StarDetail
	if !h.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape on the detail page should go back, not quit")
	}
	if h.ctrl.Page != game.StarField {
		t.Fatalf("page: got=%v", h.ctrl.Page.Name())
	}
	if h.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape with nothing to cancel should quit")
	}
}

func TestHostZoomsOnWheel(t *testing.T) {
	h := newTestHost(t)
	before := h.ctrl.View.Scale
	h.handle(tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone))
	h.handle(tcell.NewEventMouse(10, 10, tcell.WheelUp, tcell.ModNone))
	if got := h.ctrl.View.Scale; got != before+2 {
		t.Fatalf("scale: got=%v want=%v", got, before+2)
	}
}
