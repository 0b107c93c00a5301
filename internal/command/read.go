// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/scdbgo/internal/cacheutil"
	"github.com/staranto/scdbgo/internal/output"
	"github.com/staranto/scdbgo/internal/scdb"
)

// ReadCommandAction prepares the data directory, reads the terms (fetching
// the archive on a cache miss) and prints them.
func ReadCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	dataDir := cmd.String("data-dir")
	if err := cacheutil.EnsureDir(dataDir, cmd.Bool("reset-data")); err != nil {
		return err
	}

	client := scdb.NewClient(
		scdb.WithDataDir(dataDir),
		scdb.WithCasesURL(cmd.String("scotusdb-cases-url")),
	)

	terms, err := client.ReadTerms(ctx)
	if err != nil {
		return err
	}
	log.WithField("terms", len(terms)).Debugf("read %s", client.CachePath())

	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}

	return output.Emit(w, terms, output.Options{
		Format: cmd.String("output"),
		Query:  cmd.String("query"),
		Titles: cmd.Bool("titles"),
		Color:  useColor(cmd),
	})
}

// useColor honors --color/--no-color and otherwise colors only a terminal.
func useColor(cmd *cli.Command) bool {
	if cmd.IsSet("color") {
		return cmd.Bool("color")
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
