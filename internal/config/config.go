// Package config loads chunkview settings from defaults, an optional config
// file, a .env file, CHUNKVIEW_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CHUNKVIEW_MAP_SEED.
const EnvPrefix = "CHUNKVIEW"

// Window defaults.
const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
	DefaultWindowTitle  = "chunkview"
)

// Map defaults.
const (
	DefaultChunksX   = 16
	DefaultChunksY   = 16
	DefaultChunkSize = 16
	DefaultSeed      = 1
)

// Camera defaults. Zoom is the vertical reciprocal half extent.
const (
	DefaultZoom        = 1.0 / 8
	DefaultMinZoom     = 1.0 / 512
	DefaultMaxZoom     = 1.0
	DefaultPanSpeed    = 1.5  // view half extents per second
	DefaultZoomRate    = 1.4  // e-folds per second
	DefaultRotateSpeed = 90.0 // degrees per second
)

// Atlas defaults.
const DefaultAtlasTiles = 8

type Config struct {
	Window Window `mapstructure:"window"`
	Map    Map    `mapstructure:"map"`
	Camera Camera `mapstructure:"camera"`
	Atlas  Atlas  `mapstructure:"atlas"`
	Log    Log    `mapstructure:"log"`
	Debug  bool   `mapstructure:"debug"`
	Audio  bool   `mapstructure:"audio"`
}

type Window struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	VSync  bool   `mapstructure:"vsync"`
}

type Map struct {
	ChunksX   int `mapstructure:"chunks_x"`
	ChunksY   int `mapstructure:"chunks_y"`
	ChunkSize int `mapstructure:"chunk_size"`
	// Seed 0 selects the checker pattern instead of noise.
	Seed int64 `mapstructure:"seed"`
}

type Camera struct {
	Zoom        float64 `mapstructure:"zoom"`
	MinZoom     float64 `mapstructure:"min_zoom"`
	MaxZoom     float64 `mapstructure:"max_zoom"`
	PanSpeed    float64 `mapstructure:"pan_speed"`
	ZoomRate    float64 `mapstructure:"zoom_rate"`
	RotateSpeed float64 `mapstructure:"rotate_speed"`
}

type Atlas struct {
	// Path to a PNG atlas; empty generates one.
	Path string `mapstructure:"path"`
	// Tiles is the number of entries in a generated atlas.
	Tiles int `mapstructure:"tiles"`
}

type Log struct {
	Level      string `mapstructure:"level"`
	JSON       bool   `mapstructure:"json"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", DefaultWindowWidth)
	v.SetDefault("window.height", DefaultWindowHeight)
	v.SetDefault("window.title", DefaultWindowTitle)
	v.SetDefault("window.vsync", true)

	v.SetDefault("map.chunks_x", DefaultChunksX)
	v.SetDefault("map.chunks_y", DefaultChunksY)
	v.SetDefault("map.chunk_size", DefaultChunkSize)
	v.SetDefault("map.seed", DefaultSeed)

	v.SetDefault("camera.zoom", DefaultZoom)
	v.SetDefault("camera.min_zoom", DefaultMinZoom)
	v.SetDefault("camera.max_zoom", DefaultMaxZoom)
	v.SetDefault("camera.pan_speed", DefaultPanSpeed)
	v.SetDefault("camera.zoom_rate", DefaultZoomRate)
	v.SetDefault("camera.rotate_speed", DefaultRotateSpeed)

	v.SetDefault("atlas.path", "")
	v.SetDefault("atlas.tiles", DefaultAtlasTiles)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetDefault("debug", false)
	v.SetDefault("audio", true)
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"width":       "window.width",
	"height":      "window.height",
	"chunks-x":    "map.chunks_x",
	"chunks-y":    "map.chunks_y",
	"chunk-size":  "map.chunk_size",
	"seed":        "map.seed",
	"zoom":        "camera.zoom",
	"atlas":       "atlas.path",
	"atlas-tiles": "atlas.tiles",
	"log-level":   "log.level",
	"log-file":    "log.file",
	"debug":       "debug",
	"audio":       "audio",
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "config file (yaml, toml or json)")
	fs.String("env-file", ".env", "dotenv file loaded before reading the environment")
	fs.Int("width", DefaultWindowWidth, "window width in pixels")
	fs.Int("height", DefaultWindowHeight, "window height in pixels")
	fs.Int("chunks-x", DefaultChunksX, "map width in chunks")
	fs.Int("chunks-y", DefaultChunksY, "map height in chunks")
	fs.Int("chunk-size", DefaultChunkSize, "chunk edge length in tiles")
	fs.Int64("seed", DefaultSeed, "world generation seed (0 = checker pattern)")
	fs.Float64("zoom", DefaultZoom, "initial camera zoom")
	fs.String("atlas", "", "PNG tile atlas (empty = generated)")
	fs.Int("atlas-tiles", DefaultAtlasTiles, "entries in a generated atlas")
	fs.String("log-level", "info", "log level")
	fs.String("log-file", "", "rotating log file")
	fs.Bool("debug", false, "start with the chunk overlay enabled")
	fs.Bool("audio", true, "enable audio cues")
	return fs
}

// Load builds the configuration from args (without the program name).
func Load(args []string) (Config, error) {
	var cfg Config

	fs := newFlagSet("chunkview")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("parse flags: %w", err)
	}

	envFile, _ := fs.GetString("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && fs.Changed("env-file") {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return cfg, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate reports every setting the renderer cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Map.ChunksX <= 0 || c.Map.ChunksY <= 0 {
		errs = append(errs, fmt.Errorf("map size %dx%d chunks must be positive", c.Map.ChunksX, c.Map.ChunksY))
	}
	if c.Map.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("chunk size %d must be positive", c.Map.ChunkSize))
	}
	if c.Camera.MinZoom <= 0 || c.Camera.MaxZoom < c.Camera.MinZoom {
		errs = append(errs, fmt.Errorf("zoom limits [%g, %g] must be positive and ordered", c.Camera.MinZoom, c.Camera.MaxZoom))
	}
	if c.Camera.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("zoom %g must be positive", c.Camera.Zoom))
	}
	if c.Atlas.Path == "" && (c.Atlas.Tiles <= 0 || c.Atlas.Tiles > math.MaxUint16) {
		errs = append(errs, fmt.Errorf("atlas tiles %d must be in [1, %d]", c.Atlas.Tiles, math.MaxUint16))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
