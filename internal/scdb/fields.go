// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scdb

// Column names used from the SCDB CSV header.
const (
	ColumnTerm         = "term"
	ColumnCaseID       = "caseId"
	ColumnCaseName     = "caseName"
	ColumnMajVotes     = "majVotes"
	ColumnMinVotes     = "minVotes"
	ColumnDateDecision = "dateDecision"
)

// notPresent marks an optional column that the header does not carry.
const notPresent = -1

// Fields holds the zero-based position of each column in a parse session.
// Term is always resolved. The rest are optional and hold notPresent when the
// header lacks them.
type Fields struct {
	Term         int
	CaseID       int
	CaseName     int
	MajVotes     int
	MinVotes     int
	DateDecision int
}

// ResolveFields maps the header row to column positions. It fails with a
// *MissingColumnError when a required column is absent. When a name repeats,
// the last occurrence wins.
func ResolveFields(header []string) (Fields, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	optional := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		return notPresent
	}

	term, ok := index[ColumnTerm]
	if !ok {
		return Fields{}, &MissingColumnError{Column: ColumnTerm}
	}

	return Fields{
		Term:         term,
		CaseID:       optional(ColumnCaseID),
		CaseName:     optional(ColumnCaseName),
		MajVotes:     optional(ColumnMajVotes),
		MinVotes:     optional(ColumnMinVotes),
		DateDecision: optional(ColumnDateDecision),
	}, nil
}
