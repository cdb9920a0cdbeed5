package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SOFASPIN"

// Config is the merged result of defaults, config file, env and flags.
type Config struct {
	Log     Log     `mapstructure:"log"`
	Display Display `mapstructure:"display"`
	TUI     TUI     `mapstructure:"tui"`
}

type Log struct {
	Format string `mapstructure:"format"`
	Debug  bool   `mapstructure:"debug"`
	File   string `mapstructure:"file"`
}

// Display configures the status screen loop.
type Display struct {
	StatusFile  string        `mapstructure:"statusFile"`
	Rows        int           `mapstructure:"rows"`
	Cols        int           `mapstructure:"cols"`
	Interval    time.Duration `mapstructure:"interval"`
	ReinitEvery int           `mapstructure:"reinitEvery"`
	SpinnerRow  int           `mapstructure:"spinnerRow"`
	Watch       bool          `mapstructure:"watch"`
}

type TUI struct {
	Interval time.Duration `mapstructure:"interval"`
	Mouse    bool          `mapstructure:"mouse"`
}

var ErrInvalid = errors.New("invalid config")

// DefaultDir is where config.yaml is looked up when no file is given.
func DefaultDir() string {
	return filepath.Join(xdg.ConfigHome, "sofaspin")
}

// Loader reads configuration through its own viper instance.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader returns a loader. An empty configFile means the default
// location, where a missing file is not an error.
func NewLoader(configFile string) *Loader {
	l := &Loader{v: viper.New(), configFile: configFile}
	l.setDefaults()
	return l
}

func (l *Loader) setDefaults() {
	l.v.SetDefault("log.format", "text")
	l.v.SetDefault("log.debug", false)
	l.v.SetDefault("log.file", "")

	l.v.SetDefault("display.statusFile", "/var/run/sofa_status")
	l.v.SetDefault("display.rows", 8)
	l.v.SetDefault("display.cols", 20)
	l.v.SetDefault("display.interval", 50*time.Millisecond)
	l.v.SetDefault("display.reinitEvery", 1200)
	l.v.SetDefault("display.spinnerRow", -1)
	l.v.SetDefault("display.watch", true)

	l.v.SetDefault("tui.interval", 80*time.Millisecond)
	l.v.SetDefault("tui.mouse", false)
}

// BindFlag makes a command line flag override key when it is set.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("binding %s: flag not defined", key)
	}
	if err := l.v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("binding %s: %w", key, err)
	}
	return nil
}

// Load merges every source and validates the result.
func (l *Loader) Load() (*Config, error) {
	l.v.SetEnvPrefix(envPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	l.v.AutomaticEnv()

	l.v.SetConfigType("yaml")
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", l.configFile, err)
		}
	} else {
		l.v.AddConfigPath(DefaultDir())
		l.v.SetConfigName("config")
		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UsedFile returns the config file that was read, if any.
func (l *Loader) UsedFile() string {
	return l.v.ConfigFileUsed()
}

// Validate checks values that would make the display or TUI misbehave.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (valid: text, json)", ErrInvalid, c.Log.Format)
	}
	d := c.Display
	if d.Rows <= 0 || d.Cols <= 0 {
		return fmt.Errorf("%w: display size %dx%d", ErrInvalid, d.Rows, d.Cols)
	}
	if d.Interval <= 0 {
		return fmt.Errorf("%w: display.interval must be positive", ErrInvalid)
	}
	if d.ReinitEvery < 0 {
		return fmt.Errorf("%w: display.reinitEvery must not be negative", ErrInvalid)
	}
	if d.SpinnerRow >= d.Rows {
		return fmt.Errorf("%w: display.spinnerRow %d outside %d rows", ErrInvalid, d.SpinnerRow, d.Rows)
	}
	if c.TUI.Interval <= 0 {
		return fmt.Errorf("%w: tui.interval must be positive", ErrInvalid)
	}
	return nil
}
