package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/tipowerup/tiext-setup/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by Load.
const (
	KeyLogLevel    = "log_level"
	KeyInteractive = "interactive"
	KeyVendor      = "vendor"
)

// Interactive modes.
const (
	InteractiveAuto   = "auto"
	InteractiveAlways = "always"
	InteractiveNever  = "never"
)

// Settings holds the resolved runtime settings.
type Settings struct {
	LogLevel    string
	Interactive string
	Vendor      string
}

// Dir returns the user config directory for the wizard.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, branding.CLIName())
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+branding.CLIName())
	}
	return filepath.Join(home, ".config", branding.CLIName())
}

// FilePath returns the full path to the optional config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads settings from the environment and, when present, the config file.
// A missing config file is not an error.
func Load() (*Settings, error) {
	return load(FilePath())
}

func load(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyInteractive, InteractiveAuto)
	v.SetDefault(KeyVendor, "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	s := &Settings{
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		Interactive: strings.ToLower(strings.TrimSpace(v.GetString(KeyInteractive))),
		Vendor:      strings.TrimSpace(v.GetString(KeyVendor)),
	}

	if err := checkInteractive(s.Interactive); err != nil {
		return nil, err
	}

	return s, nil
}

func checkInteractive(mode string) error {
	switch mode {
	case InteractiveAuto, InteractiveAlways, InteractiveNever:
		return nil
	}
	return fmt.Errorf("invalid %s value %q: want auto, always or never",
		branding.EnvVar(KeyInteractive), mode)
}

// Keys returns the config keys in display order.
func Keys() []string {
	return []string{KeyLogLevel, KeyInteractive, KeyVendor}
}

// Get returns the resolved value of key.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case KeyLogLevel:
		return s.LogLevel, nil
	case KeyInteractive:
		return s.Interactive, nil
	case KeyVendor:
		return s.Vendor, nil
	}
	return "", unknownKey(key)
}

// Set writes a key-value pair to the config file, creating it when needed.
func Set(key, value string) error {
	return set(FilePath(), key, value)
}

func set(path, key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case KeyLogLevel, KeyVendor:
	case KeyInteractive:
		value = strings.ToLower(value)
		if err := checkInteractive(value); err != nil {
			return err
		}
	default:
		return unknownKey(key)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	v.Set(key, value)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown config key %q: want one of %s", key, strings.Join(Keys(), ", "))
}
