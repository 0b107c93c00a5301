// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scdb

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is matched by every *MissingColumnError.
	ErrMissingColumn = errors.New("missing column")
	// ErrArchive wraps anything wrong with the zip container itself.
	ErrArchive = errors.New("invalid archive")
	// ErrHTTPStatus is matched by every *StatusError.
	ErrHTTPStatus = errors.New("unexpected http status")
	// ErrUnsupportedScheme is returned for a cases URL we cannot fetch.
	ErrUnsupportedScheme = errors.New("unsupported url scheme")
)

// MissingColumnError reports a required column absent from the CSV header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s column missing", e.Column)
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// ParseError reports a cell that could not be converted. Row is the 1-based
// record number, not counting the header.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: %s is not valid (%q): %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StatusError is returned when the cases URL answers with anything but 200.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http status %d from %s", e.StatusCode, e.URL)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}
