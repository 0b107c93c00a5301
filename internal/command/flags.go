// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/scdbgo/internal/meta"
	"github.com/staranto/scdbgo/internal/output"
	"github.com/staranto/scdbgo/internal/scdb"
)

// NewFlags builds the flag set. Values are taken, in order, from the command
// line, the environment, the config file and finally the default.
func NewFlags(m meta.Meta) []cli.Flag {
	src := altsrc.StringSourcer(m.Config.Source)

	return []cli.Flag{
		&cli.StringFlag{
			Name:    "data-dir",
			Aliases: []string{"d"},
			Usage:   "directory where the downloaded archive is kept",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SCDB_DATA_DIR"),
				yaml.YAML("data_dir", src),
			),
			Value: scdb.DefaultDataDir,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, NotEmptyValidator)
			},
		},
		&cli.StringFlag{
			Name:    "scotusdb-cases-url",
			Aliases: []string{"s"},
			Usage:   "where to download the SCDB cases archive from (http, https or s3)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SCDB_CASES_URL"),
				yaml.YAML("scotusdb_cases_url", src),
			),
			Value: scdb.DefaultCasesURL,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, NotEmptyValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "reset-data",
			Aliases:     []string{"r"},
			Usage:       "remove and recreate the data directory before reading",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SCDB_OUTPUT"),
				yaml.YAML("output", src),
			),
			Value: output.FormatRaw,
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "query",
			Aliases: []string{"q"},
			Usage:   "gjson path applied to json output",
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output (default when stdout is a terminal)",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("color", src),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("titles", src),
			),
		},
		&cli.BoolFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "scdb version info",
			HideDefault: true,
		},
	}
}
