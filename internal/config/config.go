package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/viper"

	"github.com/jask/countdial/internal/dial"
)

// Config holds application configuration.
type Config struct {
	Dial    DialConfig
	Journal JournalConfig
	Sound   SoundConfig
	UI      UIConfig
	Log     LogConfig
}

// DialConfig selects the dial flavour and its starting value.
type DialConfig struct {
	Variant string
	// Sensitivity overrides the variant's drag feel when positive.
	Sensitivity    float64
	InitialSeconds int `mapstructure:"initial_seconds"`
}

// JournalConfig holds sqlite settings for the session journal.
type JournalConfig struct {
	Enabled bool
	Path    string
}

// SoundConfig controls the expiry chime.
type SoundConfig struct {
	Enabled bool
	Volume  float64
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// CellAspect is terminal cell height divided by width.
	CellAspect float64 `mapstructure:"cell_aspect"`
	FPS        int
	Timezone   string
}

// LogConfig points the debug log somewhere while the TUI owns the terminal.
type LogConfig struct {
	File string
}

var (
	ErrUnknownVariant = errors.New("unknown dial variant")
	ErrInvalidSeconds = errors.New("initial seconds out of range")
	ErrInvalidValue   = errors.New("invalid config value")
)

func defaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "countdial", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix COUNTDIAL_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("dial.variant", dial.VariantOffekt)
	v.SetDefault("dial.sensitivity", 0)
	v.SetDefault("dial.initial_seconds", dial.DefaultSeconds)
	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "countdial", "countdial.db"))
	v.SetDefault("sound.enabled", false)
	v.SetDefault("sound.volume", 0.6)
	v.SetDefault("ui.cell_aspect", 2.0)
	v.SetDefault("ui.fps", 30)
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("COUNTDIAL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Dir(defaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("COUNTDIAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate checks values the dial cannot clamp on its own.
func Validate(c Config) error {
	if _, ok := dial.Lookup(c.Dial.Variant); !ok {
		if s := Suggest(c.Dial.Variant, dial.VariantNames()); s != "" {
			return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownVariant, c.Dial.Variant, s)
		}
		return fmt.Errorf("%w %q (have %s)", ErrUnknownVariant, c.Dial.Variant, strings.Join(dial.VariantNames(), ", "))
	}
	if c.Dial.InitialSeconds < 0 || c.Dial.InitialSeconds > dial.MaxSeconds {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidSeconds, c.Dial.InitialSeconds, dial.MaxSeconds)
	}
	if c.Dial.Sensitivity < 0 {
		return fmt.Errorf("%w: dial.sensitivity %v", ErrInvalidValue, c.Dial.Sensitivity)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("%w: sound.volume %v", ErrInvalidValue, c.Sound.Volume)
	}
	if c.UI.FPS < 1 || c.UI.FPS > 120 {
		return fmt.Errorf("%w: ui.fps %d", ErrInvalidValue, c.UI.FPS)
	}
	if c.UI.CellAspect <= 0 {
		return fmt.Errorf("%w: ui.cell_aspect %v", ErrInvalidValue, c.UI.CellAspect)
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		return fmt.Errorf("%w: journal.path is empty", ErrInvalidValue)
	}
	return nil
}

// Suggest returns the closest candidate to name, or "" when nothing is close.
func Suggest(name string, candidates []string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(best)/3) {
		return ""
	}
	return best
}

// Variant resolves the configured dial variant, applying the sensitivity override.
func (c Config) Variant() dial.Variant {
	v, ok := dial.Lookup(c.Dial.Variant)
	if !ok {
		v = dial.Offekt()
	}
	if c.Dial.Sensitivity > 0 {
		v.Sensitivity = c.Dial.Sensitivity
	}
	return v
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("COUNTDIAL_CONFIG")
	if path == "" {
		path = defaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("dial.variant", cfg.Dial.Variant)
	v.Set("dial.sensitivity", cfg.Dial.Sensitivity)
	v.Set("dial.initial_seconds", cfg.Dial.InitialSeconds)
	v.Set("journal.enabled", cfg.Journal.Enabled)
	v.Set("journal.path", cfg.Journal.Path)
	v.Set("sound.enabled", cfg.Sound.Enabled)
	v.Set("sound.volume", cfg.Sound.Volume)
	v.Set("ui.cell_aspect", cfg.UI.CellAspect)
	v.Set("ui.fps", cfg.UI.FPS)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
