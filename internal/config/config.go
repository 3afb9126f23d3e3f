// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/jeandeaual/go-locale"
)

const DefaultSoundFile = "/usr/share/sounds/freedesktop/stereo/complete.oga"

// Config holds every environment tunable of the application.
type Config struct {
	LogLevel  string `env:"SAMTALSSTOD_LOG_LEVEL" envDefault:"info"`
	JSONLogs  bool   `env:"SAMTALSSTOD_JSON_LOGS" envDefault:"false"`
	Locale    string `env:"SAMTALSSTOD_LOCALE"`
	Sound     bool   `env:"SAMTALSSTOD_SOUND" envDefault:"true"`
	SoundFile string `env:"SAMTALSSTOD_SOUND_FILE" envDefault:"/usr/share/sounds/freedesktop/stereo/complete.oga"`
}

// Default returns the configuration used when the environment is empty or invalid.
func Default() Config {
	return Config{
		LogLevel:  "info",
		Sound:     true,
		SoundFile: DefaultSoundFile,
	}
}

// Load parses the environment. On error the defaults are returned alongside it,
// with the locale still resolved so a bad unrelated variable does not switch language.
func Load() (Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	if err != nil {
		err = fmt.Errorf("parse env: %w", err)
		cfg = Default()
		var override struct {
			Locale string `env:"SAMTALSSTOD_LOCALE"`
		}
		if env.Parse(&override) == nil {
			cfg.Locale = override.Locale
		}
	}
	cfg.Locale = strings.TrimSpace(cfg.Locale)
	if cfg.Locale == "" {
		cfg.Locale = SystemLocale()
	}
	return cfg, err
}

// SystemLocale returns the user's preferred locale as reported by the OS, or
// an empty string when it cannot be determined.
func SystemLocale() string {
	loc, err := locale.GetLocale()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(loc)
}
