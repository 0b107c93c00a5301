// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

// DirPerm is the mode used when creating a data directory.
const DirPerm os.FileMode = 0o755

// EnsureDir creates dir, including parents, if it does not exist. When reset
// is true and dir exists, it and everything under it is removed first, leaving
// an empty directory behind.
func EnsureDir(dir string, reset bool) error {
	if _, err := os.Stat(dir); err == nil {
		if !reset {
			return nil
		}
		log.Debugf("resetting data directory %s", dir)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to reset data directory: %w", err)
		}
	}

	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// EntryPath returns the path where the cached file name would live beneath
// dir. It also returns true if a file currently exists at that path.
func EntryPath(dir, name string) (string, bool) {
	p := filepath.Join(dir, name)
	if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
		return p, true
	}
	return p, false
}
