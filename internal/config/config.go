package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Leave a Tip"`
	}

	Tip struct {
		Minimum int   `envconfig:"TIP_MINIMUM" default:"15"`
		Presets []int `envconfig:"TIP_PRESETS" default:"15,20,25"`
	}

	Shake struct {
		Duration time.Duration `envconfig:"SHAKE_DURATION" default:"400ms"`
		Travel   int           `envconfig:"SHAKE_TRAVEL" default:"3"`
		Count    int           `envconfig:"SHAKE_COUNT" default:"3"`
	}

	UI struct {
		AltScreen bool `envconfig:"UI_ALT_SCREEN" default:"true"`
	}

	Log struct {
		File  string `envconfig:"LOG_FILE"`
		Level string `envconfig:"LOG_LEVEL" default:"info"`
	}
}

// SlogLevel maps Log.Level onto a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	return lvl, nil
}

func (c *Config) Validate() error {
	if len(c.Tip.Presets) == 0 {
		return errors.New("at least one tip preset is required")
	}

	for _, p := range c.Tip.Presets {
		if p <= 0 {
			return fmt.Errorf("tip preset %d must be positive", p)
		}
	}

	if c.Shake.Duration <= 0 {
		return fmt.Errorf("shake duration %s must be positive", c.Shake.Duration)
	}

	if c.Shake.Travel <= 0 || c.Shake.Count <= 0 {
		return fmt.Errorf("shake travel (%d) and count (%d) must be positive", c.Shake.Travel, c.Shake.Count)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
