//go:build !windows

package main

import "github.com/google/renameio/v2"

// writeAddrFile atomically replaces path with the bridge URL, so a host
// polling for the file never reads a partial address.
func writeAddrFile(path, url string) error {
	return renameio.WriteFile(path, []byte(url+"\n"), 0o600)
}
