// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scdb

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/apex/log"
)

// ReadTerms reads the zip archive in r and groups its CSV rows by term.
func ReadTerms(r io.ReaderAt, size int64) ([]*Term, error) {
	rc, err := OpenFirstEntry(r, size)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return ReadTermsCSV(rc)
}

// ReadTermsCSV groups the rows of an uncompressed CSV stream by term. Nothing
// is returned unless every row parses.
func ReadTermsCSV(r io.Reader) ([]*Term, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading csv header: %w", io.ErrUnexpectedEOF)
	} else if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	fields, err := ResolveFields(header)
	if err != nil {
		return nil, err
	}
	log.Debugf("fields: %+v", fields)

	terms := NewTermTable()

	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("reading csv row %d: %w", row, err)
		}

		_, t, err := terms.Resolve(fields, record, row)
		if err != nil {
			return nil, err
		}

		c, err := ParseCase(fields, record, row)
		if err != nil {
			return nil, err
		}
		t.Cases = append(t.Cases, c)
	}

	log.Debugf("read %d terms", terms.Len())
	return terms.Terms(), nil
}
