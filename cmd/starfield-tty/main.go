package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/spacehole-rogue/starfield/internal/app"
	"github.com/spacehole-rogue/starfield/internal/game"
	"github.com/spacehole-rogue/starfield/internal/logs"
	"github.com/spacehole-rogue/starfield/internal/render"
	"github.com/spacehole-rogue/starfield/internal/sound"
)

const (
	commsMax   = 32
	commsLines = 4
)

type host struct {
	screen  tcell.Screen
	session *app.Session
	ctrl    *game.Controller
	input   *game.Input
	surface *render.TermSurface
	theme   *render.Theme
	mouse   mouseTracker
	cue     *sound.Cue
	sidebar int
}

func newHost(screen tcell.Screen, s *app.Session) *host {
	term := s.Config.Term
	w, h := screen.Size()
	view := game.NewViewport(game.ViewportParams{
		ScreenWidth:  float64(w),
		ScreenHeight: float64(h),
		SidebarWidth: float64(term.SidebarWidth),
		Scale:        term.InitialScale,
		MinScale:     term.ZoomIncrement,
	})
	ctrl := game.NewController(s.World, view, game.ControllerParams{
		HoverRadius:   term.HoverRadius,
		ZoomIncrement: term.ZoomIncrement,
		Style:         game.SidebarStyle{RowHeight: 1, Padding: 1, CommsLines: commsLines},
		Log:           game.NewMessageLog(commsMax, term.SidebarWidth-2),
	})
	ctrl.Log.Add(fmt.Sprintf("%d stars charted", len(s.World.Stars)), game.MsgInfo)

	hst := &host{
		screen:  screen,
		session: s,
		ctrl:    ctrl,
		input:   game.NewInput(ctrl, 0),
		surface: render.NewTermSurface(screen),
		theme:   render.CellTheme(),
		cue:     sound.NewCue(),
		sidebar: term.SidebarWidth,
	}
	ctrl.OnOrder = func(o game.Order) {
		if err := hst.cue.Order(o.Distance); err != nil {
			logs.Warn("order cue", zap.Error(err))
		}
	}
	return hst
}

func (h *host) draw() {
	render.Paint(h.surface, h.theme, h.ctrl)
	h.session.Publish(h.ctrl)
}

// handle processes one terminal event. It returns false when the host should exit.
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		w, ht := h.screen.Size()
		h.ctrl.View.Resize(float64(w), float64(ht), float64(h.sidebar))
		h.surface.Resize()
		h.ctrl.Sync()
		h.draw()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyEscape:
			if !h.ctrl.Cancel() {
				return false
			}
			h.draw()
		}
	case *tcell.EventMouse:
		changed := false
		for _, raw := range h.mouse.translate(ev) {
			changed = h.input.Dispatch(raw) || changed
		}
		if changed {
			h.draw()
		}
	case nil:
		// PollEvent returns nil once the screen is finalized.
		return false
	}
	return true
}

func (h *host) run(ctx context.Context) {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			events <- ev
			if ev == nil {
				return
			}
		}
	}()

	h.draw()
	for {
		select {
		case <-ctx.Done():
			return
		case cfg := <-h.session.Reloads():
			t := cfg.Term
			app.Tune(h.ctrl, t.HoverRadius, t.ZoomIncrement, t.ZoomIncrement, 0)
			h.draw()
		case ev := <-events:
			if !h.handle(ev) {
				return
			}
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := app.Start(ctx, "starfield-tty", os.Args[1:], app.Options{QuietLog: true})
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logs.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		logs.Fatal("create screen", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		logs.Fatal("init screen", zap.Error(err))
	}
	screen.EnableMouse()

	h := newHost(screen, s)
	// Audio is optional; a missing device only costs the order chirp.
	if err := h.cue.Init(); err != nil {
		logs.Warn("audio unavailable", zap.Error(err))
	}
	h.run(ctx)

	h.cue.Close()
	screen.Fini()
	logs.Info("bye", zap.Uint64("seed", s.Seed))
}
