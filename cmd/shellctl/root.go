// Copyright 2026 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		url      string
		addrFile string
	)
	root := &cobra.Command{
		Use:           "shellctl",
		Short:         "Invoke shellbridge commands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&url, "url", os.Getenv("SHELLBRIDGE_URL"), "URL of the bridge")
	root.PersistentFlags().StringVar(&addrFile, "addr-file", os.Getenv("SHELLBRIDGE_ADDR_FILE"), "read the URL of the bridge from this file")

	connect := func() (*client, error) {
		base, err := resolveURL(url, addrFile)
		if err != nil {
			return nil, err
		}
		return newClient(base), nil
	}

	root.AddCommand(&cobra.Command{
		Use:   "commands",
		Short: "List the commands exposed by the bridge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := connect()
			if err != nil {
				return err
			}
			names, err := c.commands(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "invoke <command> [key=value...]",
		Short: "Invoke a command and print its JSON result",
		Example: `  shellctl invoke set_file_readonly filePath=notes.txt readonly=true
  shellctl invoke toggle_fullscreen`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdArgs, err := parseArgs(args[1:])
			if err != nil {
				return err
			}
			c, err := connect()
			if err != nil {
				return err
			}
			result, err := c.invoke(cmd.Context(), args[0], cmdArgs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(string(result)))
			return nil
		},
	})
	return root
}

func resolveURL(url, addrFile string) (string, error) {
	if url != "" {
		return strings.TrimRight(url, "/"), nil
	}
	if addrFile == "" {
		return "", errors.New("missing bridge URL, use --url or --addr-file")
	}
	data, err := os.ReadFile(addrFile)
	if err != nil {
		return "", fmt.Errorf("failed to read address file: %w", err)
	}
	return strings.TrimRight(strings.TrimSpace(string(data)), "/"), nil
}

// parseArgs turns key=value pairs into command arguments. true and false
// are sent as booleans, everything else as strings.
func parseArgs(pairs []string) (map[string]any, error) {
	args := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q, expected key=value", pair)
		}
		switch value {
		case "true":
			args[key] = true
		case "false":
			args[key] = false
		default:
			args[key] = value
		}
	}
	return args, nil
}
