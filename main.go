// Copyright 2019 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shellbridge/shellbridge/bridge"
	"github.com/shellbridge/shellbridge/internal/config"
	"github.com/shellbridge/shellbridge/window"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	rt := cfg.NewRuntime(os.Exit)
	window.NormalizeStartup(rt, logger)

	server, err := bridge.NewServerWithOptions(cfg.ToBridgeOptions(logger, rt))
	if err != nil {
		logger.Error("couldn't start the bridge", "error", err)
		os.Exit(1)
	}
	defer server.Stop()

	if cfg.AddrFile != "" {
		if err := writeAddrFile(cfg.AddrFile, server.URL()); err != nil {
			logger.Error("couldn't write the address file", "path", cfg.AddrFile, "error", err)
			server.Stop()
			os.Exit(1)
		}
		defer os.Remove(cfg.AddrFile)
	}

	logger.Info("bridge started", "url", server.URL())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	<-ch
}
