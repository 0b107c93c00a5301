// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scdb

import (
	"strconv"
	"strings"
)

// Term is one court term and the cases decided in it, in file order.
type Term struct {
	Year  uint32 `json:"year" yaml:"year"`
	Cases []Case `json:"cases" yaml:"cases"`
}

// TermTable groups terms by year and remembers the order in which each year
// was first seen.
type TermTable struct {
	byYear map[uint32]*Term
	order  []*Term
}

// NewTermTable returns an empty table.
func NewTermTable() *TermTable {
	return &TermTable{byYear: map[uint32]*Term{}}
}

// Get returns the term for year, creating it on first sighting. The second
// return value is true when the term was created by this call.
func (tt *TermTable) Get(year uint32) (*Term, bool) {
	if t, ok := tt.byYear[year]; ok {
		return t, false
	}
	t := &Term{Year: year}
	tt.byYear[year] = t
	tt.order = append(tt.order, t)
	return t, true
}

// Len is the number of distinct years seen.
func (tt *TermTable) Len() int {
	return len(tt.order)
}

// Terms returns the terms in first-seen order.
func (tt *TermTable) Terms() []*Term {
	out := make([]*Term, len(tt.order))
	copy(out, tt.order)
	return out
}

// Resolve parses the term column of record and returns the year with its
// term, creating the term if this is the first record for that year. row is
// only used for error reporting.
func (tt *TermTable) Resolve(f Fields, record []string, row int) (uint32, *Term, error) {
	raw, err := cell(record, f.Term, ColumnTerm, row)
	if err != nil {
		return 0, nil, err
	}

	year, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, nil, &ParseError{Row: row, Column: ColumnTerm, Value: raw, Err: err}
	}

	t, _ := tt.Get(uint32(year))
	return uint32(year), t, nil
}

// cell returns record[i] decoded lossily as UTF-8.
func cell(record []string, i int, column string, row int) (string, error) {
	if i < 0 || i >= len(record) {
		return "", &ParseError{Row: row, Column: column, Err: errShortRecord}
	}
	return strings.ToValidUTF8(record[i], "\uFFFD"), nil
}
