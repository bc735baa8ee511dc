package util

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds runtime settings and flags.
type Config struct {
	Theme       string        `env:"THEME" envDefault:"catppuccin"`
	Notation    string        `env:"NOTATION" envDefault:"unicode"` // unicode|ascii
	LogFile     string        `env:"LOG_FILE"`
	LogJSONFile string        `env:"LOG_JSON_FILE"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"` // debug|info|warn|error
	SettleDelay time.Duration `env:"SETTLE_DELAY" envDefault:"200ms"`
	Mouse       bool          `env:"MOUSE" envDefault:"true"`
}

const envPrefix = "OCTODIAL_"

var (
	themes    = []string{"catppuccin", "dracula", "gruvbox", "solarized_dark"}
	notations = []string{"unicode", "ascii"}
	levels    = []string{"debug", "info", "warn", "error"}
)

// LoadConfig reads OCTODIAL_* environment variables on top of the defaults.
func LoadConfig() (Config, error) {
	return LoadConfigFrom(nil)
}

// LoadConfigFrom is LoadConfig over an explicit environment; a nil map means the process environment.
func LoadConfigFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix, Environment: environ}); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// Validate rejects values the UI cannot honour.
func (c Config) Validate() error {
	if !oneOf(themes, c.Theme) {
		return errors.Errorf("unknown theme %q (want one of %s)", c.Theme, strings.Join(themes, ", "))
	}
	if !oneOf(notations, c.Notation) {
		return errors.Errorf("unknown notation %q (want one of %s)", c.Notation, strings.Join(notations, ", "))
	}
	if !oneOf(levels, c.LogLevel) {
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.SettleDelay < 0 {
		return errors.Errorf("settle delay must not be negative, got %s", c.SettleDelay)
	}
	return nil
}

func oneOf(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
