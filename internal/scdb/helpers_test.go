// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package scdb

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// zipEntry is one file to place in a test archive.
type zipEntry struct {
	Name string
	Body string
}

// buildZip returns an in-memory archive holding entries in order.
func buildZip(t *testing.T, entries ...zipEntry) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		require.NoError(t, err)
		_, err = w.Write([]byte(e.Body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func casesZip(t *testing.T, csv string) []byte {
	t.Helper()
	return buildZip(t, zipEntry{Name: "SCDB_2021_01_justiceCentered_Citation.csv", Body: csv})
}

func termYears(terms []*Term) []uint32 {
	years := make([]uint32, 0, len(terms))
	for _, t := range terms {
		years = append(years, t.Year)
	}
	return years
}

func caseIDs(t *Term) []string {
	ids := make([]string, 0, len(t.Cases))
	for _, c := range t.Cases {
		ids = append(ids, c.ID)
	}
	return ids
}
