// Copyright 2019 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides utilities for managing shellbridge's
// configuration using command line flags and environment variables.
package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shellbridge/shellbridge/bridge"
	"github.com/shellbridge/shellbridge/window"
)

const (
	WindowNormal    = "normal"
	WindowMinimized = "minimized"
	WindowNone      = "none"

	defaultHost = "127.0.0.1"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	Host     string `validate:"required"`
	Port     uint   `validate:"lte=65535"`
	AddrFile string
	LogLevel slog.Level

	allowedOrigins []string
	opener         string
	window         string
}

func nopConverter(s string) (string, error) {
	return s, nil
}

// envVarOrDefault retrieves an environment variable value and converts it to type T,
// or returns the default value if the environment variable is not set.
// Returns an error if the environment variable is set but cannot be converted.
func envVarOrDefault[T string | uint](key string, defaultValue T, convert func(string) (T, error)) (T, error) {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		converted, err := convert(val)
		if err != nil {
			return defaultValue, fmt.Errorf("invalid value for environment variable %s=%q: %w", key, val, err)
		}
		return converted, nil
	}
	return defaultValue, nil
}

// Load parses the given arguments list and return a config object (and/or an
// error in case of failures).
func Load(args []string) (Config, error) {
	var cfg Config
	var allowedOrigins string
	var logLevel string

	parseUint := func(s string) (uint, error) {
		val, err := strconv.ParseUint(s, 10, 32)
		return uint(val), err
	}

	envPort, err := envVarOrDefault("SHELLBRIDGE_PORT", uint(0), parseUint)
	if err != nil {
		return cfg, err
	}

	// nopConverter never returns an error, so we can safely ignore the error value.
	host, _ := envVarOrDefault("SHELLBRIDGE_HOST", defaultHost, nopConverter)
	origins, _ := envVarOrDefault("SHELLBRIDGE_ALLOWED_ORIGINS", "", nopConverter)
	addrFile, _ := envVarOrDefault("SHELLBRIDGE_ADDR_FILE", "", nopConverter)
	opener, _ := envVarOrDefault("SHELLBRIDGE_OPENER", "", nopConverter)
	initialWindow, _ := envVarOrDefault("SHELLBRIDGE_WINDOW", WindowNormal, nopConverter)
	logLevelDefault, _ := envVarOrDefault("SHELLBRIDGE_LOG_LEVEL", "info", nopConverter)

	fs := flag.NewFlagSet("shellbridge", flag.ContinueOnError)
	fs.StringVar(&cfg.Host, "host", host, "host to bind the command bridge to")
	fs.UintVar(&cfg.Port, "port", envPort, "port to bind the command bridge to, 0 picks a free port")
	fs.StringVar(&allowedOrigins, "allowed-origins", origins, "comma separated list of webview origins allowed to call the bridge")
	fs.StringVar(&cfg.AddrFile, "addr-file", addrFile, "if not empty, the bridge URL is written to this file once the server is listening")
	fs.StringVar(&cfg.opener, "opener", opener, "program used to open folders, defaults to the platform file manager")
	fs.StringVar(&cfg.window, "window", initialWindow, "initial state of the headless main window: normal, minimized or none")
	fs.StringVar(&logLevel, "log-level", logLevelDefault, "level for logging. Options: debug, info, warn, and error")

	err = fs.Parse(args)
	if err != nil {
		return cfg, err
	}

	levels := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
	}
	if level, ok := levels[logLevel]; ok {
		cfg.LogLevel = level
	} else {
		return cfg, fmt.Errorf("invalid log level %q", logLevel)
	}

	if allowedOrigins != "" {
		for _, origin := range strings.Split(allowedOrigins, ",") {
			cfg.allowedOrigins = append(cfg.allowedOrigins, strings.TrimSpace(origin))
		}
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validate.Var(c.window, "oneof=normal minimized none"); err != nil {
		return fmt.Errorf(`invalid window %q, must be one of "%s", "%s" or "%s"`, c.window, WindowNormal, WindowMinimized, WindowNone)
	}
	if err := validate.Var(c.allowedOrigins, "dive,required,url|eq=*"); err != nil {
		return fmt.Errorf("invalid allowed origins %v: %w", c.allowedOrigins, err)
	}
	return nil
}

// NewRuntime creates the headless window runtime, with the main window in
// the configured initial state.
func (c *Config) NewRuntime(exitFunc func(int)) *window.MemoryRuntime {
	rt := window.NewMemoryRuntime(exitFunc)
	switch c.window {
	case WindowNormal:
		rt.AddWindow(window.MainLabel, window.NormalState)
	case WindowMinimized:
		state := window.NormalState
		state.Minimized = true
		state.Visible = false
		rt.AddWindow(window.MainLabel, state)
	}
	return rt
}

func (c *Config) ToBridgeOptions(logger *slog.Logger, rt window.Runtime) bridge.Options {
	return bridge.Options{
		Host:           c.Host,
		Port:           uint16(c.Port),
		AllowedOrigins: c.allowedOrigins,
		OpenerProgram:  c.opener,
		Runtime:        rt,
		Logger:         logger,
		Writer:         &slogWriter{logger: logger, level: slog.LevelInfo},
	}
}
