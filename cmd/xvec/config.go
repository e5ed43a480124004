package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings that apply to every command.
type Config struct {
	Type     string `mapstructure:"type"`
	Unit     string `mapstructure:"unit"`
	Lang     string `mapstructure:"lang"`
	LogLevel string `mapstructure:"log_level"`

	// File is the configuration file that was read, if any.
	File string `mapstructure:"-"`
}

func init() {
	addFlags(pflag.CommandLine)
}

func addFlags(f *pflag.FlagSet) {
	f.String("type", "float64", "Component type used for tuples and scalars")
	f.String("unit", "deg", "Unit for printed angles (deg, rad, or pi)")
	f.String("lang", "en", "Language tag used to format numbers")
	f.String("log-level", "warn", "Minimum level of log messages")
	f.String("config", "", "Path to the configuration file")

	// Flags end at the command name so that negative components such
	// as "-1,2" are not mistaken for flags.
	f.SetInterspersed(false)

	normalizeFunc := f.GetNormalizeFunc()
	f.SetNormalizeFunc(func(fs *pflag.FlagSet, name string) pflag.NormalizedName {
		result := normalizeFunc(fs, name)
		name = strings.ReplaceAll(string(result), "-", "_")
		return pflag.NormalizedName(name)
	})
}

// loadConfig parses args into f and merges the result with the
// environment, a configuration file, and the defaults, in that order
// of precedence.
func loadConfig(f *pflag.FlagSet, args []string) (Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("type", "float64")
	v.SetDefault("unit", "deg")
	v.SetDefault("lang", "en")
	v.SetDefault("log_level", "warn")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := f.Parse(args); err != nil {
		return Config{}, err
	}
	if err := v.BindPFlags(f); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	v.SetEnvPrefix("XVEC")
	v.AutomaticEnv()

	configFile := v.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("xvec")
		v.SetConfigType("yaml")
		for _, p := range configPaths() {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	return cfg, nil
}

// configPaths returns the directories searched for xvec.yaml when no
// file is named explicitly.
func configPaths() []string {
	paths := []string{"."}

	v, ok := os.LookupEnv("XDG_CONFIG_HOME")
	if !ok || !filepath.IsAbs(v) {
		home, err := os.UserHomeDir()
		if err != nil {
			return paths
		}
		v = filepath.Join(home, ".config")
	}

	return append(paths, filepath.Join(v, "xvec"))
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: l,
	})), nil
}
