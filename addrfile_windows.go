package main

import (
	"os"
	"path/filepath"
)

// renameio doesn't support Windows, where os.Rename already replaces the
// destination with MoveFileEx.
func writeAddrFile(path, url string) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if _, err := f.WriteString(url + "\n"); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
