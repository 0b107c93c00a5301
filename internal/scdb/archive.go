// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scdb

import (
	"archive/zip"
	"fmt"
	"io"
)

// OpenFirstEntry opens entry 0 of the zip archive in r. The SCDB archives
// carry exactly one CSV, so the entry name is not checked.
func OpenFirstEntry(r io.ReaderAt, size int64) (io.ReadCloser, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}

	if len(zr.File) == 0 {
		return nil, fmt.Errorf("%w: archive has no entries", ErrArchive)
	}

	rc, err := zr.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", ErrArchive, zr.File[0].Name, err)
	}
	return rc, nil
}
