package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultConfigRelPath = "configs/starfield.yml"

// Flags registers the command-line overrides on fs.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to config file (default: search upward for "+defaultConfigRelPath+")")
	fs.Uint64("seed", 0, "galaxy seed (0 = random)")
	fs.Int("stars", 0, "number of stars to generate")
}

// Load reads the configuration. Without an explicit path it searches upward
// from the working directory for configs/starfield.yml and falls back to the
// built-in defaults when none is found. fs may be nil.
// The returned path is the file actually read, or "" for pure defaults.
func Load(path string, fs *pflag.FlagSet) (*Config, string, error) {
	v := newViper()
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			path = f.Value.String()
		}
		if err := bindFlags(v, fs); err != nil {
			return nil, "", err
		}
	}

	if path == "" {
		curDir, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("working directory: %w", err)
		}
		path = findConfigUpward(curDir)
	} else if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, "", fmt.Errorf("config path %q: %w", path, err)
		}
		path = abs
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// Watch re-reads path on every change and hands the decoded config to fn.
// fn runs on the watcher goroutine; callers forward it to their own loop.
// Decode failures go to onErr and leave the previous config in place.
func Watch(path string, fn func(*Config), onErr func(error)) error {
	if path == "" {
		return errors.New("watch: no config file")
	}
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := decode(v)
		if err != nil {
			if onErr != nil {
				onErr(err)
			}
			return
		}
		fn(cfg)
	})
	v.WatchConfig()
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	return v
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range map[string]string{
		"galaxy.seed":  "seed",
		"galaxy.stars": "stars",
	} {
		f := fs.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func findConfigUpward(startDir string) string {
	dir := startDir
	for {
		candidate := filepath.Join(dir, defaultConfigRelPath)
		if fileExist(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
