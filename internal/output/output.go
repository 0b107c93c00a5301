// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/staranto/scdbgo/internal/config"
	"github.com/staranto/scdbgo/internal/scdb"
)

// Formats accepted by Emit. Raw is the Go debug form of the term slice.
const (
	FormatRaw  = "raw"
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every valid format, default first.
var Formats = []string{FormatRaw, FormatText, FormatJSON, FormatYAML}

// ErrQueryFormat is returned when a query is combined with a non-JSON format.
var ErrQueryFormat = errors.New("query requires json output")

// Options control how Emit renders.
type Options struct {
	Format string
	// Query is a gjson path applied to the JSON document.
	Query  string
	Titles bool
	Color  bool
}

// Emit writes terms to w in the requested format.
func Emit(w io.Writer, terms []*scdb.Term, o Options) error {
	if o.Query != "" && o.Format != FormatJSON {
		return ErrQueryFormat
	}

	switch o.Format {
	case FormatRaw, "":
		_, err := fmt.Fprintf(w, "%+v\n", values(terms))
		return err
	case FormatJSON:
		return emitJSON(w, terms, o.Query)
	case FormatYAML:
		b, err := yaml.Marshal(values(terms))
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	case FormatText:
		return TableWriter(w, terms, o)
	default:
		return fmt.Errorf("unknown output format %q", o.Format)
	}
}

func emitJSON(w io.Writer, terms []*scdb.Term, query string) error {
	b, err := json.Marshal(values(terms))
	if err != nil {
		return fmt.Errorf("failed to marshal json: %w", err)
	}

	if query != "" {
		res := gjson.GetBytes(b, query)
		if !res.Exists() {
			return fmt.Errorf("query %q matched nothing", query)
		}
		log.Debugf("query %q: %s", query, res.Type)
		b = []byte(res.Raw)
	}

	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// TableWriter renders one row per term: year, number of cases, and the
// first and last case ids in file order.
func TableWriter(w io.Writer, terms []*scdb.Term, o Options) error {
	if len(terms) == 0 {
		return nil
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if o.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 1)

	rows := make([][]string, 0, len(terms))
	for _, t := range terms {
		first, last := "-", "-"
		if n := len(t.Cases); n > 0 {
			first = orDash(t.Cases[0].ID)
			last = orDash(t.Cases[n-1].ID)
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(t.Year), 10),
			strconv.Itoa(len(t.Cases)),
			first,
			last,
		})
	}

	tbl := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Rows(rows...)

	if o.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		tbl = tbl.Headers("year", "cases", "first", "last").BorderHeader(false)
	}

	_, err := fmt.Fprintln(w, tbl.String())
	return err
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

func values(terms []*scdb.Term) []scdb.Term {
	out := make([]scdb.Term, 0, len(terms))
	for _, t := range terms {
		out = append(out, *t)
	}
	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
