package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 900)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Starfield")
	v.SetDefault("window.sidebar_width", 260)

	v.SetDefault("galaxy.seed", 0)
	v.SetDefault("galaxy.stars", 100)
	v.SetDefault("galaxy.min_separation", 0.012)
	v.SetDefault("galaxy.max_retries", 5)
	v.SetDefault("galaxy.names_file", "")
	v.SetDefault("galaxy.factions", []map[string]any{
		{"name": "us", "groups": 1},
		{"name": "them", "groups": 1},
	})

	v.SetDefault("view.initial_scale", 250.0)
	v.SetDefault("view.min_scale", 50.0)
	v.SetDefault("view.max_scale", 4000.0)
	v.SetDefault("view.zoom_increment", 10.0)
	v.SetDefault("view.hover_radius", 10.0)
	v.SetDefault("view.drag_dead_zone", 0.0)
	v.SetDefault("view.row_height", 16.0)
	v.SetDefault("view.padding", 8.0)

	v.SetDefault("term.initial_scale", 20.0)
	v.SetDefault("term.zoom_increment", 2.0)
	v.SetDefault("term.hover_radius", 2.0)
	v.SetDefault("term.sidebar_width", 32)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)

	v.SetDefault("debug.enabled", false)
	v.SetDefault("debug.addr", "127.0.0.1:7070")
	v.SetDefault("debug.read_timeout", 5*time.Second)
}

// Validate rejects configurations the world or viewport cannot run with.
func (c *Config) Validate() error {
	g := c.Galaxy
	switch {
	case g.Stars < 0:
		return fmt.Errorf("galaxy.stars %d must not be negative", g.Stars)
	case g.MinSeparation < 0:
		return fmt.Errorf("galaxy.min_separation %v must not be negative", g.MinSeparation)
	case g.MaxRetries < 0:
		return fmt.Errorf("galaxy.max_retries %d must not be negative", g.MaxRetries)
	case len(g.Factions) == 0:
		return errors.New("galaxy.factions must name at least the player faction")
	}
	for i, f := range g.Factions {
		if f.Name == "" || f.Groups < 0 {
			return fmt.Errorf("galaxy.factions[%d] needs a name and a non-negative group count", i)
		}
	}
	if err := c.View.validate(); err != nil {
		return err
	}
	if c.Term.InitialScale <= 0 || c.Term.ZoomIncrement <= 0 {
		return errors.New("term scale and zoom_increment must be positive")
	}
	if c.Window.SidebarWidth >= c.Window.Width {
		return fmt.Errorf("window.sidebar_width %d leaves no room for the map", c.Window.SidebarWidth)
	}
	return nil
}

func (v ViewConfig) validate() error {
	switch {
	case v.MinScale <= 0:
		return fmt.Errorf("view.min_scale %v must be positive", v.MinScale)
	case v.InitialScale < v.MinScale:
		return fmt.Errorf("view.initial_scale %v below min_scale %v", v.InitialScale, v.MinScale)
	case v.MaxScale != 0 && v.MaxScale < v.InitialScale:
		return fmt.Errorf("view.max_scale %v below initial_scale %v", v.MaxScale, v.InitialScale)
	case v.ZoomIncrement <= 0:
		return fmt.Errorf("view.zoom_increment %v must be positive", v.ZoomIncrement)
	case v.HoverRadius <= 0:
		return fmt.Errorf("view.hover_radius %v must be positive", v.HoverRadius)
	case v.DragDeadZone < 0:
		return fmt.Errorf("view.drag_dead_zone %v must not be negative", v.DragDeadZone)
	}
	return nil
}
