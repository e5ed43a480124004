// Command xvec evaluates point, vector, and angle expressions from
// the command line.
//
// Usage:
//
//	xvec [flags] command [arguments]
//
// Every setting can also be given in the environment with an XVEC_
// prefix, such as XVEC_TYPE=int, or in an xvec.yaml file in the
// current directory or in $XDG_CONFIG_HOME/xvec (by default
// $HOME/.config/xvec).
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %v [flags] command [arguments]\n\n", os.Args[0])
		usage(os.Stderr)
		fmt.Fprintln(os.Stderr, "\nFlags:")
		pflag.PrintDefaults()
	}

	cfg, err := loadConfig(pflag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	if cfg.File != "" {
		slog.Info("configuration loaded", "file", cfg.File)
	} else {
		slog.Info("using defaults and command line/environment options")
	}

	e, err := newEnv(cfg, os.Stdin, os.Stdout, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := e.run(pflag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			pflag.Usage()
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
