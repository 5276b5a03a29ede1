package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"titlefix/tags"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	configDirName  = ".titlefix"
	configFileName = "config"
	envPrefix      = "TITLEFIX"
)

type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Color    bool   `mapstructure:"color"`

	DryRun     bool     `mapstructure:"dry_run"`
	Recursive  bool     `mapstructure:"recursive"`
	Extensions []string `mapstructure:"extensions"`

	ExtraMinorWords []string `mapstructure:"extra_minor_words"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		Color:      true,
		Extensions: slices.Clone(tags.SupportedExtensions),
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("color", def.Color)
	v.SetDefault("dry_run", def.DryRun)
	v.SetDefault("recursive", def.Recursive)
	v.SetDefault("extensions", def.Extensions)
	v.SetDefault("extra_minor_words", def.ExtraMinorWords)
	return v
}

// LoadConfig reads cfgFile when given, otherwise ~/.titlefix/config.yaml.
// Only a missing default config file is tolerated.
func LoadConfig(cfgFile string) (*Config, error) {
	v := newViper()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("failed to find home directory: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, configDirName))
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Extensions = normalizeExtensions(config.Extensions)

	if err := ValidateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func SaveConfig(config *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to find home directory: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.Set("log_level", config.LogLevel)
	v.Set("color", config.Color)
	v.Set("dry_run", config.DryRun)
	v.Set("recursive", config.Recursive)
	v.Set("extensions", config.Extensions)
	v.Set("extra_minor_words", config.ExtraMinorWords)

	return v.WriteConfig()
}

func GetConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName+".yaml"), nil
}

func CreateDefaultConfig() (string, error) {
	path, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config already exists: %s", path)
	}
	return path, SaveConfig(DefaultConfig())
}

func ValidateConfig(config *Config) error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	found := false
	for _, level := range validLogLevels {
		if config.LogLevel == level {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("invalid log level: %s", config.LogLevel)
	}

	if len(config.Extensions) == 0 {
		return fmt.Errorf("at least one file extension must be configured")
	}
	for _, ext := range config.Extensions {
		if !slices.Contains(tags.SupportedExtensions, ext) {
			return fmt.Errorf("unsupported extension: %s", ext)
		}
	}

	return nil
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
