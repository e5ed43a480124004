package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func newTestFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	f := pflag.NewFlagSet("xvec", pflag.ContinueOnError)
	f.SetOutput(io.Discard)
	addFlags(f)
	return f
}

func TestLoadConfigDefaults(t *testing.T) {
	f := newTestFlags(t)
	cfg, err := loadConfig(f, []string{"magnitude", "3,4"})
	require.Nil(t, err)
	require.Equal(t, Config{Type: "float64", Unit: "deg", Lang: "en", LogLevel: "warn"}, cfg)
	require.Equal(t, []string{"magnitude", "3,4"}, f.Args())
}

func TestLoadConfigFlags(t *testing.T) {
	f := newTestFlags(t)
	cfg, err := loadConfig(f, []string{"--type", "int", "--log-level", "debug", "between", "-1,2", "3,4"})
	require.Nil(t, err)
	require.Equal(t, "int", cfg.Type)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"between", "-1,2", "3,4"}, f.Args())
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("XVEC_UNIT", "rad")
	t.Setenv("XVEC_TYPE", "int")
	t.Setenv("XVEC_LOG_LEVEL", "error")

	f := newTestFlags(t)
	cfg, err := loadConfig(f, []string{"--type", "float32", "heading", "1,1"})
	require.Nil(t, err)
	require.Equal(t, "rad", cfg.Unit)
	require.Equal(t, "error", cfg.LogLevel)
	require.Equal(t, "float32", cfg.Type, "flags take precedence over the environment")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xvec.yaml")
	err := os.WriteFile(path, []byte("type: uint16\nunit: pi\nlang: de\n"), 0o644)
	require.Nil(t, err)

	f := newTestFlags(t)
	cfg, err := loadConfig(f, []string{"--config", path, "--unit", "rad", "rank", "int", "uint"})
	require.Nil(t, err)
	require.Equal(t, "uint16", cfg.Type)
	require.Equal(t, "rad", cfg.Unit)
	require.Equal(t, "de", cfg.Lang)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, path, cfg.File)
}

func TestLoadConfigSearch(t *testing.T) {
	f := newTestFlags(t)

	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "xvec")
	require.Nil(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "xvec.yaml")
	require.Nil(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

	cfg, err := loadConfig(f, nil)
	require.Nil(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, path, cfg.File)
}

func TestConfigPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Setenv("XDG_CONFIG_HOME", "/etc/xdg")
	require.Equal(t, []string{".", "/etc/xdg/xvec"}, configPaths())

	t.Setenv("XDG_CONFIG_HOME", "relative")
	require.Equal(t, []string{".", filepath.Join(home, ".config", "xvec")}, configPaths())
}

func TestLoadConfigMissingFile(t *testing.T) {
	f := newTestFlags(t)
	_, err := loadConfig(f, []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	require.NotNil(t, err)
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(io.Discard, "debug")
	require.Nil(t, err)
	require.True(t, l.Enabled(context.Background(), slog.LevelDebug))

	l, err = newLogger(io.Discard, "warn")
	require.Nil(t, err)
	require.False(t, l.Enabled(context.Background(), slog.LevelInfo))

	_, err = newLogger(io.Discard, "loud")
	require.NotNil(t, err)
}
