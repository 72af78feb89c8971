package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/spacehole-rogue/starfield/assets"
	"github.com/spacehole-rogue/starfield/internal/config"
	"github.com/spacehole-rogue/starfield/internal/debug"
	"github.com/spacehole-rogue/starfield/internal/game"
	"github.com/spacehole-rogue/starfield/internal/logs"
	"github.com/spacehole-rogue/starfield/internal/world"
)

const defaultNames = "names/default.yaml"

// Session is everything a host needs besides its own screen: config, the
// generated world, and the optional inspector.
type Session struct {
	Config     *config.Config
	ConfigPath string
	Seed       uint64
	World      *world.World

	publisher *debug.Publisher
	reloads   chan *config.Config
}

// Options adjusts Start for a particular host.
type Options struct {
	// QuietLog keeps log output off stderr.
	QuietLog bool
}

// Start parses flags, loads config, sets up logging, builds the world, and
// launches the inspector and config watcher. The inspector stops with ctx;
// the watcher runs for the life of the process. A --help request returns
// pflag.ErrHelp after printing usage.
func Start(ctx context.Context, name string, args []string, opts Options) (*Session, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	config.Flags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg, path, err := config.Load("", fs)
	if err != nil {
		return nil, err
	}
	cfg.Log.Quiet = cfg.Log.Quiet || opts.QuietLog
	if err := logs.Init(name, cfg.Log); err != nil {
		return nil, fmt.Errorf("init logs: %w", err)
	}
	if path == "" {
		logs.Info("no config file found, using defaults")
	} else {
		logs.Info("config loaded", zap.String("path", path))
	}

	s := &Session{
		Config:     cfg,
		ConfigPath: path,
		reloads:    make(chan *config.Config, 1),
	}
	if s.World, s.Seed, err = BuildWorld(cfg.Galaxy); err != nil {
		return nil, err
	}

	if cfg.Debug.Enabled {
		s.publisher = &debug.Publisher{}
		go func() {
			if err := debug.Serve(ctx, cfg.Debug.Addr, debug.Routes(s.publisher), cfg.Debug.ReadTimeout); err != nil {
				logs.Error("debug inspector", zap.Error(err))
			}
		}()
	}
	if path != "" {
		err := config.Watch(path, s.queueReload, func(err error) {
			logs.Warn("config reload rejected", zap.Error(err))
		})
		if err != nil {
			logs.Warn("config watch disabled", zap.Error(err))
		}
	}
	return s, nil
}

// BuildWorld generates a world from the galaxy config. A zero seed is
// replaced with one from the clock; the seed used is returned.
func BuildWorld(g config.GalaxyConfig) (*world.World, uint64, error) {
	policy, err := loadNames(g.NamesFile)
	if err != nil {
		return nil, 0, err
	}
	seed := g.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>16|1))

	params := world.Params{
		Galaxy: world.GalaxyParams{
			Count:         g.Stars,
			MinSeparation: g.MinSeparation,
			MaxRetries:    g.MaxRetries,
		},
	}
	for _, f := range g.Factions {
		params.Factions = append(params.Factions, world.FactionSpec{Name: f.Name, Groups: f.Groups})
	}
	w, err := world.Build(params, rng, world.NewNameGen(policy, rng))
	if err != nil {
		return nil, seed, fmt.Errorf("seed %d: %w", seed, err)
	}
	logs.Info("world built",
		zap.Uint64("seed", seed),
		zap.Int("stars", len(w.Stars)),
		zap.Int("factions", len(w.Factions)))
	return w, seed, nil
}

func loadNames(path string) (*world.NamePolicy, error) {
	if path != "" {
		return world.LoadNamePolicyFile(path)
	}
	data, err := assets.Names.ReadFile(defaultNames)
	if err != nil {
		return nil, fmt.Errorf("embedded name policy: %w", err)
	}
	return world.LoadNamePolicy(data)
}

// queueReload keeps only the newest pending config.
func (s *Session) queueReload(cfg *config.Config) {
	for {
		select {
		case s.reloads <- cfg:
			return
		default:
		}
		select {
		case <-s.reloads:
		default:
		}
	}
}

// Reloads delivers configs re-read after the file changed.
func (s *Session) Reloads() <-chan *config.Config {
	return s.reloads
}

// Publish hands the controller state to the inspector, if it runs.
func (s *Session) Publish(c *game.Controller) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(game.Capture(c))
}

// Tune applies live-reloadable settings to a running controller.
func Tune(c *game.Controller, hoverRadius, zoomIncrement, minScale, maxScale float64) {
	c.HoverRadius = hoverRadius
	c.ZoomIncrement = zoomIncrement
	c.View.MinScale = minScale
	c.View.MaxScale = maxScale
	c.Sync()
	logs.Info("view settings reloaded",
		zap.Float64("hover_radius", hoverRadius),
		zap.Float64("zoom_increment", zoomIncrement))
}
