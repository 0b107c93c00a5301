// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scdb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var errShortRecord = errors.New("record has too few columns")

// Case is a single row of the dataset.
type Case struct {
	ID            string    `json:"id" yaml:"id"`
	Name          string    `json:"name" yaml:"name"`
	MajorityVotes uint8     `json:"majority-votes" yaml:"majority-votes"`
	MinorityVotes uint8     `json:"minority-votes" yaml:"minority-votes"`
	DecisionDate  time.Time `json:"decision-date,omitzero" yaml:"decision-date,omitempty"`
}

// ParseCase builds a Case from record. Columns the header did not carry leave
// their field at the zero value, as do empty vote counts.
func ParseCase(f Fields, record []string, row int) (Case, error) {
	var c Case
	var err error

	if f.CaseID != notPresent {
		if c.ID, err = cell(record, f.CaseID, ColumnCaseID, row); err != nil {
			return Case{}, err
		}
	}

	if f.CaseName != notPresent {
		if c.Name, err = cell(record, f.CaseName, ColumnCaseName, row); err != nil {
			return Case{}, err
		}
	}

	if c.MajorityVotes, err = voteCount(record, f.MajVotes, ColumnMajVotes, row); err != nil {
		return Case{}, err
	}

	if c.MinorityVotes, err = voteCount(record, f.MinVotes, ColumnMinVotes, row); err != nil {
		return Case{}, err
	}

	if f.DateDecision != notPresent {
		v, err := cell(record, f.DateDecision, ColumnDateDecision, row)
		if err != nil {
			return Case{}, err
		}
		if v != "" {
			if c.DecisionDate, err = parseDate(v); err != nil {
				return Case{}, &ParseError{Row: row, Column: ColumnDateDecision, Value: v, Err: err}
			}
		}
	}

	return c, nil
}

func voteCount(record []string, i int, column string, row int) (uint8, error) {
	if i == notPresent {
		return 0, nil
	}

	v, err := cell(record, i, column, row)
	if err != nil || v == "" {
		return 0, err
	}

	n, err := strconv.ParseUint(v, 10, 8)
	if err != nil {
		return 0, &ParseError{Row: row, Column: column, Value: v, Err: err}
	}
	return uint8(n), nil
}

// parseDate reads the M/D/YYYY form used by the dataset.
func parseDate(v string) (time.Time, error) {
	parts := strings.SplitN(v, "/", 3)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date: %s", v)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date: %s", v)
		}
		nums[i] = n
	}

	if nums[0] < 1 || nums[0] > 12 || nums[1] < 1 || nums[1] > 31 {
		return time.Time{}, fmt.Errorf("invalid date: %s", v)
	}

	return time.Date(nums[2], time.Month(nums[0]), nums[1], 0, 0, 0, 0, time.UTC), nil
}
