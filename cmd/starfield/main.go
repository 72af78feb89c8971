package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/spacehole-rogue/starfield/internal/app"
	"github.com/spacehole-rogue/starfield/internal/game"
	"github.com/spacehole-rogue/starfield/internal/logs"
	"github.com/spacehole-rogue/starfield/internal/render"
	"github.com/spacehole-rogue/starfield/internal/world"
)

const (
	commsMax   = 32 // lines kept in the comms log
	commsLines = 6  // lines shown under the sidebar
)

// Game is the Ebitengine game struct. It owns the window and translates
// ebiten input into host-neutral pointer events.
type Game struct {
	session *app.Session
	ctrl    *game.Controller
	input   *game.Input
	surface *render.EbitenSurface
	theme   *render.Theme

	width, height int
	cursor        world.Point
	cursorSeen    bool
}

func NewGame(s *app.Session) *Game {
	cfg := s.Config
	view := game.NewViewport(game.ViewportParams{
		ScreenWidth:  float64(cfg.Window.Width),
		ScreenHeight: float64(cfg.Window.Height),
		SidebarWidth: float64(cfg.Window.SidebarWidth),
		Scale:        cfg.View.InitialScale,
		MinScale:     cfg.View.MinScale,
		MaxScale:     cfg.View.MaxScale,
	})
	theme := render.PixelTheme()
	commsWidth := int((float64(cfg.Window.SidebarWidth) - 2*cfg.View.Padding) / render.GlyphWidth)
	ctrl := game.NewController(s.World, view, game.ControllerParams{
		HoverRadius:   cfg.View.HoverRadius,
		ZoomIncrement: cfg.View.ZoomIncrement,
		Style: game.SidebarStyle{
			RowHeight:  cfg.View.RowHeight,
			Padding:    cfg.View.Padding,
			CommsLines: commsLines,
		},
		Log: game.NewMessageLog(commsMax, commsWidth),
	})
	ctrl.Log.Add(fmt.Sprintf("%d stars charted", len(s.World.Stars)), game.MsgInfo)

	g := &Game{
		session: s,
		ctrl:    ctrl,
		input:   game.NewInput(ctrl, cfg.View.DragDeadZone),
		surface: render.NewEbitenSurface(render.NewFontAtlas()),
		theme:   theme,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
	s.Publish(ctrl)
	return g
}

func (g *Game) Update() error {
	changed := g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if !g.ctrl.Cancel() {
			return ebiten.Termination
		}
		changed = true
	}

	mx, my := ebiten.CursorPosition()
	pos := world.Pt(float64(mx), float64(my))
	if !g.cursorSeen || pos != g.cursor {
		g.cursor, g.cursorSeen = pos, true
		changed = g.input.Dispatch(game.RawEvent{Kind: game.EventMove, Pos: pos}) || changed
	}
	for _, b := range []struct {
		eb   ebiten.MouseButton
		game game.MouseButton
	}{
		{ebiten.MouseButtonLeft, game.ButtonPrimary},
		{ebiten.MouseButtonRight, game.ButtonSecondary},
		{ebiten.MouseButtonMiddle, game.ButtonMiddle},
	} {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			changed = g.input.Dispatch(game.RawEvent{Kind: game.EventDown, Pos: pos, Button: b.game}) || changed
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			changed = g.input.Dispatch(game.RawEvent{Kind: game.EventUp, Pos: pos, Button: b.game}) || changed
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		changed = g.input.Dispatch(game.RawEvent{Kind: game.EventWheel, Pos: pos, WheelY: wy}) || changed
	}

	if changed {
		g.session.Publish(g.ctrl)
	}
	return nil
}

func (g *Game) applyReloads() bool {
	select {
	case cfg := <-g.session.Reloads():
		v := cfg.View
		app.Tune(g.ctrl, v.HoverRadius, v.ZoomIncrement, v.MinScale, v.MaxScale)
		g.input.Pointer.DeadZone = v.DragDeadZone
		return true
	default:
		return false
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target = screen
	render.Paint(g.surface, g.theme, g.ctrl)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := app.Start(ctx, "starfield", os.Args[1:], app.Options{})
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logs.Sync()

	ebiten.SetWindowSize(s.Config.Window.Width, s.Config.Window.Height)
	ebiten.SetWindowTitle(s.Config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(s)); err != nil {
		logs.Fatal("run game", zap.Error(err))
	}
	logs.Info("bye", zap.Uint64("seed", s.Seed))
}
