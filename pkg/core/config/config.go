package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	cterror "github.com/msto63/caretaker/foundation/core/error"
	"github.com/msto63/caretaker/foundation/core/log"
	"github.com/msto63/caretaker/foundation/utils/randx"
	"github.com/msto63/caretaker/foundation/utils/stringx"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "CARETAKER_CONFIG"

// Config holds the complete application configuration
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Locale string       `toml:"locale" yaml:"locale"`
	Random RandomConfig `toml:"random" yaml:"random"`
}

// LogConfig holds console logger settings
type LogConfig struct {
	Timestamp bool   `toml:"timestamp" yaml:"timestamp"`
	Color     string `toml:"color" yaml:"color"`
	Width     int    `toml:"width" yaml:"width"`
	Output    string `toml:"output" yaml:"output"`
}

// RandomConfig holds randomness settings
type RandomConfig struct {
	// Seed makes draws reproducible; 0 uses the process source
	Seed uint64 `toml:"seed" yaml:"seed"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, cterror.New(fmt.Sprintf("config file not found: %s", path)).
			WithCode(cterror.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, cterror.Wrap(err, "failed to read config").WithCode(cterror.CodeConfigError)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, cterror.Wrap(err, "failed to parse config").WithCode(cterror.CodeConfigError)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, cterror.Wrap(err, "failed to parse config").WithCode(cterror.CodeConfigError)
		}
	}

	// Apply defaults
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the CARETAKER_CONFIG environment
// variable or the default locations. Without any file the defaults are used.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		// Try default locations
		home, _ := os.UserHomeDir()
		defaultPaths := []string{
			"./caretaker.toml",
			"./caretaker.yaml",
			filepath.Join(home, ".config/caretaker/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Log.Color == "" {
		c.Log.Color = "auto"
	}
	if c.Log.Width == 0 {
		c.Log.Width = log.DefaultWidth
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	if _, err := log.ParseColorMode(c.Log.Color); err != nil {
		return cterror.Wrap(err, "invalid log.color").WithCode(cterror.CodeInvalidConfig)
	}

	switch c.Log.Output {
	case "stdout", "stderr":
	default:
		return cterror.New(fmt.Sprintf("invalid log.output: %q (want stdout or stderr)", c.Log.Output)).
			WithCode(cterror.CodeInvalidConfig)
	}

	if c.Log.Width < 0 {
		return cterror.New("log.width must not be negative").
			WithCode(cterror.CodeInvalidConfig).
			WithDetail("width", c.Log.Width)
	}

	if !isNeutralLocale(c.Locale) && c.LocaleTag() == language.Und {
		return cterror.New(fmt.Sprintf("invalid locale: %q", c.Locale)).
			WithCode(cterror.CodeInvalidConfig)
	}
	return nil
}

// LoggerConfig converts the log section into a logger configuration
func (c *Config) LoggerConfig() log.Config {
	color, _ := log.ParseColorMode(c.Log.Color)

	var out io.Writer = os.Stdout
	if c.Log.Output == "stderr" {
		out = os.Stderr
	}

	return log.Config{
		Output:    out,
		Color:     color,
		Timestamp: c.Log.Timestamp,
		Width:     c.Log.Width,
	}
}

// LocaleTag returns the configured locale, or the process locale when unset
func (c *Config) LocaleTag() language.Tag {
	if stringx.IsBlank(c.Locale) {
		return stringx.CurrentLocale()
	}
	return stringx.ParseLocale(c.Locale)
}

// Source returns the randomness source for the configured seed
func (c *Config) Source() randx.Source {
	if c.Random.Seed == 0 {
		return randx.Default()
	}
	return randx.NewSeeded(c.Random.Seed)
}

// isNeutralLocale reports whether value deliberately selects no language.
// Codeset and modifier suffixes are ignored, so "C.UTF-8" is neutral.
func isNeutralLocale(value string) bool {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	switch value {
	case "", "C", "POSIX", "und":
		return true
	}
	return false
}
