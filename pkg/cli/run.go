// gamedefs
// Copyright (c) 2026 The gamedefs Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of gamedefs.
//
// gamedefs is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gamedefs is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gamedefs.  If not, see <http://www.gnu.org/licenses/>.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/variantsgg/gamedefs/pkg/export"
	"github.com/variantsgg/gamedefs/pkg/gamedefs"
	"github.com/variantsgg/gamedefs/pkg/games"
	"github.com/variantsgg/gamedefs/pkg/variants"
)

// Run executes one gamedefs command and returns the process exit code.
func Run(args []string, env *Env) int {
	flags := SetupFlags(env.Stderr)
	if code, done := flags.Pre(args, env.Stdout); done {
		return code
	}

	cfg, err := flags.Setup(env)
	if err != nil {
		_, _ = fmt.Fprintf(env.Stderr, "Error: %s\n", err)
		return ExitError
	}

	defs, err := gamedefs.Load(cfg, gamedefs.Options{Language: *flags.Lang})
	if err != nil {
		log.Error().Err(err).Msg("error loading definitions")
		_, _ = fmt.Fprintf(env.Stderr, "Error: %s\n", err)
		return ExitError
	}

	switch {
	case *flags.Check:
		printSummary(env.Stdout, defs)
	case flags.isFlagPassed("variant"):
		err = printVariant(env.Stdout, defs, *flags.Variant)
	case *flags.List || flags.isFlagPassed("category"):
		err = printList(env.Stdout, defs, *flags.Category)
	case flags.isFlagPassed("export"):
		format := *flags.Export
		if format == "" {
			format = cfg.ExportFormat()
		}
		err = runExport(env.Stdout, defs, format)
	default:
		printSummary(env.Stdout, defs)
	}

	if err != nil {
		_, _ = fmt.Fprintf(env.Stderr, "Error: %s\n", err)
		return ExitError
	}
	return ExitOK
}

func printVariant(w io.Writer, defs *gamedefs.Defs, name string) error {
	v, err := defs.Variants.Lookup(name)
	if err != nil {
		return err
	}

	tags := make([]string, 0, len(v.Tags))
	for _, tag := range v.Tags {
		tags = append(tags, string(tag))
	}

	rows := [][2]string{
		{"id", v.ID},
		{"category", string(v.Category)},
		{"display name", defs.Variants.DisplayName(v.ID)},
		{"label", defs.VariantLabel(v.ID)},
		{"icon", v.Icon},
		{"alternate name", v.AlternateName},
		{"translation key", v.TranslationKey},
		{"tags", strings.Join(tags, " ")},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		_, _ = fmt.Fprintf(w, "%-16s %s\n", row[0]+":", row[1])
	}
	return nil
}

func printList(w io.Writer, defs *gamedefs.Defs, category string) error {
	cats := defs.Variants.Categories()
	if category != "" {
		cats = []variants.Category{variants.Category(strings.ToLower(category))}
	}

	for _, cat := range cats {
		ids, err := defs.Variants.VariantsIn(cat)
		if err != nil {
			return err
		}
		for _, id := range ids {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", id, cat, defs.VariantLabel(id))
		}
	}
	return nil
}

func runExport(w io.Writer, defs *gamedefs.Defs, name string) error {
	format, err := export.ParseFormat(name)
	if err != nil {
		return err
	}
	return export.Render(w, export.NewSnapshot(defs), format)
}

func printSummary(w io.Writer, defs *gamedefs.Defs) {
	_, _ = fmt.Fprintf(w, "ok: %d variants in %d categories, %d game statuses, %d trophies\n",
		defs.Variants.Len(),
		len(defs.Variants.Categories()),
		len(games.AllStatuses()),
		len(defs.Trophies),
	)
}
