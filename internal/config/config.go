package config

import "time"

// Config is the full runtime configuration.
type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Galaxy GalaxyConfig `mapstructure:"galaxy"`
	View   ViewConfig   `mapstructure:"view"`
	Term   TermConfig   `mapstructure:"term"`
	Log    LogConfig    `mapstructure:"log"`
	Debug  DebugConfig  `mapstructure:"debug"`
}

type WindowConfig struct {
	Width        int    `mapstructure:"width"`
	Height       int    `mapstructure:"height"`
	Title        string `mapstructure:"title"`
	SidebarWidth int    `mapstructure:"sidebar_width"`
}

// GalaxyConfig controls world generation. Seed 0 means "pick one from the clock".
type GalaxyConfig struct {
	Seed          uint64          `mapstructure:"seed"`
	Stars         int             `mapstructure:"stars"`
	MinSeparation float64         `mapstructure:"min_separation"`
	MaxRetries    int             `mapstructure:"max_retries"`
	NamesFile     string          `mapstructure:"names_file"`
	Factions      []FactionConfig `mapstructure:"factions"`
}

type FactionConfig struct {
	Name   string `mapstructure:"name"`
	Groups int    `mapstructure:"groups"`
}

// ViewConfig is the pixel-space tuning of the ebiten host.
// Everything here except row_height and padding is live-reloadable.
type ViewConfig struct {
	InitialScale  float64 `mapstructure:"initial_scale"`
	MinScale      float64 `mapstructure:"min_scale"`
	MaxScale      float64 `mapstructure:"max_scale"` // 0 = unbounded
	ZoomIncrement float64 `mapstructure:"zoom_increment"`
	HoverRadius   float64 `mapstructure:"hover_radius"`
	DragDeadZone  float64 `mapstructure:"drag_dead_zone"`
	RowHeight     float64 `mapstructure:"row_height"`
	Padding       float64 `mapstructure:"padding"`
}

// TermConfig is the cell-space tuning of the terminal host.
type TermConfig struct {
	InitialScale  float64 `mapstructure:"initial_scale"`
	ZoomIncrement float64 `mapstructure:"zoom_increment"`
	HoverRadius   float64 `mapstructure:"hover_radius"`
	SidebarWidth  int     `mapstructure:"sidebar_width"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
	Dev        bool   `mapstructure:"dev"`
	Quiet      bool   `mapstructure:"quiet"` // no console output, file only
}

type DebugConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Addr        string        `mapstructure:"addr"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
}
