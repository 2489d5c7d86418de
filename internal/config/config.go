package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/cmdpattern/core"
	"github.com/jask/cmdpattern/internal/logging"
)

// EnvConfig names the variable that points at an explicit config file.
const EnvConfig = "CMDPATTERN_CONFIG"

// Config holds application configuration.
type Config struct {
	UI   UIConfig            `mapstructure:"ui"`
	Log  LogConfig           `mapstructure:"log"`
	Keys map[string][]string `mapstructure:"keys"`
}

// UIConfig holds presentation settings and the initial model values.
type UIConfig struct {
	InputText  string  `mapstructure:"input_text"`
	Counter    float64 `mapstructure:"counter"`
	SliderMin  float64 `mapstructure:"slider_min"`
	SliderMax  float64 `mapstructure:"slider_max"`
	SliderStep float64 `mapstructure:"slider_step"`
	AltScreen  bool    `mapstructure:"alt_screen"`
	Dark       bool    `mapstructure:"dark"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
	File        string `mapstructure:"file"`
}

// Load reads configuration from file and env. Env var overrides use prefix CMDPATTERN_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	if cfgPath := os.Getenv(EnvConfig); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "cmdpattern"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CMDPATTERN")
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
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the configuration Load produces with no file and no env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.input_text", core.DefaultInputText)
	v.SetDefault("ui.counter", core.DefaultCounter)
	v.SetDefault("ui.slider_min", 0.0)
	v.SetDefault("ui.slider_max", 10.0)
	v.SetDefault("ui.slider_step", 0.1)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.dark", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("log.file", logging.DefaultLogFile())
	v.SetDefault("keys", map[string][]string{})
}

// Validate reports settings the UI cannot work with.
func (c Config) Validate() error {
	if c.UI.SliderMin >= c.UI.SliderMax {
		return fmt.Errorf("ui.slider_min (%g) must be below ui.slider_max (%g)", c.UI.SliderMin, c.UI.SliderMax)
	}
	if c.UI.SliderStep <= 0 {
		return fmt.Errorf("ui.slider_step must be positive, got %g", c.UI.SliderStep)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Logging converts the log section into a logger configuration.
func (c Config) Logging() logging.Config {
	out := logging.DefaultConfig()
	out.Level = c.Log.Level
	out.Development = c.Log.Development
	if c.Log.File != "" {
		out.OutputPaths = []string{c.Log.File}
	}
	return out
}

// InitialState builds the model the session starts with.
func (c Config) InitialState() core.State {
	st := core.NewState()
	st.InputText = c.UI.InputText
	st.Counter = c.UI.Counter
	return st
}
