package main

import (
	"flag"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/caarlos0/env/v11"
)

// config holds the settings shared by every subcommand. Environment
// variables provide the defaults; flags override them.
type config struct {
	Dir        string     `env:"PROCTEX_DIR"        envDefault:"."`
	Out        string     `env:"PROCTEX_OUT"        envDefault:"."`
	Width      int        `env:"PROCTEX_WIDTH"      envDefault:"256"`
	Height     int        `env:"PROCTEX_HEIGHT"     envDefault:"256"`
	Brightness float64    `env:"PROCTEX_BRIGHTNESS" envDefault:"1.0"`
	Alpha      bool       `env:"PROCTEX_ALPHA"`
	Small      bool       `env:"PROCTEX_SMALL"`
	Workers    int        `env:"PROCTEX_WORKERS"`
	LogLevel   slog.Level `env:"PROCTEX_LOG_LEVEL"  envDefault:"WARN"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return cfg, nil
}

// bind registers flags for cfg on fs, using the current values as defaults.
func (cfg *config) bind(fs *flag.FlagSet) {
	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory holding <id>.ptx definitions")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "output directory for PNG files")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "image width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "image height")
	fs.Float64Var(&cfg.Brightness, "brightness", cfg.Brightness, "brightness exponent")
	fs.BoolVar(&cfg.Alpha, "alpha", cfg.Alpha, "write ARGB images")
	fs.BoolVar(&cfg.Small, "small", cfg.Small, "render referenced textures at reduced size")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of render workers")
	fs.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (DEBUG, INFO, WARN, ERROR)")
}

func (cfg *config) validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Brightness <= 0 {
		return fmt.Errorf("invalid brightness %g", cfg.Brightness)
	}
	return nil
}
