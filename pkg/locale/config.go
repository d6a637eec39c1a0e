package locale

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the file and environment form of Settings. Empty fields keep the Settings defaults.
type Config struct {
	// DefaultLocale is a tag accepted by Parse, e.g. "de_DE". Empty means detect from the host.
	DefaultLocale string `yaml:"default_locale" env:"LOCALE_DEFAULT"`
	Encoding      string `yaml:"encoding" env:"LOCALE_ENCODING"`
	TextDirection string `yaml:"text_direction" env:"LOCALE_TEXT_DIRECTION"`
}

// LoadConfig reads the YAML file at path, if path is not empty, and then applies
// any LOCALE_* environment variables on top of it.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// NewSettingsFromConfig builds Settings from cfg. Options are applied before the config,
// so a configured default locale takes precedence over WithDefaultLocale.
func NewSettingsFromConfig(cfg Config, opts ...Option) (*Settings, error) {
	s := NewSettings(opts...)

	if cfg.DefaultLocale != "" {
		s.SetDefaultLocale(Parse(cfg.DefaultLocale))
	}

	if cfg.Encoding != "" {
		if err := s.SetEncoding(cfg.Encoding); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if cfg.TextDirection != "" {
		dir := TextDirection(strings.ToUpper(strings.TrimSpace(cfg.TextDirection)))
		if dir != LeftToRight && dir != RightToLeft {
			return nil, fmt.Errorf("%w: text direction %q", ErrInvalidConfig, cfg.TextDirection)
		}
		s.SetTextDirection(dir)
	}

	return s, nil
}
