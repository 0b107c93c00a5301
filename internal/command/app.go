// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"os"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/scdbgo/internal/config"
	"github.com/staranto/scdbgo/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The config file is optional. Without one, flags fall back to env and
	// their defaults.
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("config: %v", err)
	}

	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:      "scdb",
		Usage:     "Supreme Court Database terms",
		UsageText: `scdb [options]`,
		Metadata: map[string]any{
			"meta": m,
		},
		EnableShellCompletion: true,
		Flags:                 NewFlags(m),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := ReadCommandValidator(ctx, cmd); err != nil {
				return err
			}
			return ReadCommandAction(ctx, cmd)
		},
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil {
		return meta.Meta{}
	}
	root := cmd.Root()
	if root == nil || root.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := root.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
