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

// Package gamedefs builds every definition table once at startup and hands
// them out as a single read-only Defs value.
package gamedefs

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/variantsgg/gamedefs/pkg/config"
	"github.com/variantsgg/gamedefs/pkg/games"
	"github.com/variantsgg/gamedefs/pkg/i18n"
	"github.com/variantsgg/gamedefs/pkg/tournaments"
	"github.com/variantsgg/gamedefs/pkg/variants"
)

// Trophy is a catalog trophy with its asset resolved to a URL.
type Trophy struct {
	Code  string
	Label string
	Asset string
	URL   string
}

// Defs is the validated set of definitions. It is never modified after
// Load returns and can be shared freely.
type Defs struct {
	Variants *variants.Registry
	Catalog  *i18n.Catalog
	Printer  *i18n.Printer
	Trophies []Trophy
}

// Options adjust what Load builds. The zero value loads the built-in
// tables.
type Options struct {
	// Tables replaces the built-in variant tables when set.
	Tables *variants.Tables
	// Language overrides the configured default language when set.
	Language string
}

// Load builds and checks every table. Any error means the definitions are
// unusable and the caller should not start.
func Load(cfg *config.Instance, opts Options) (*Defs, error) {
	tables := variants.DefaultTables()
	if opts.Tables != nil {
		tables = *opts.Tables
	}

	reg, err := variants.Build(tables)
	if err != nil {
		return nil, fmt.Errorf("variant tables: %w", err)
	}

	if err := games.ValidateStatuses(); err != nil {
		return nil, fmt.Errorf("game statuses: %w", err)
	}

	if err := tournaments.Validate(); err != nil {
		return nil, fmt.Errorf("tournament tables: %w", err)
	}

	cat, err := i18n.NewCatalog(reg)
	if err != nil {
		return nil, fmt.Errorf("message catalog: %w", err)
	}

	lang := opts.Language
	if lang == "" {
		lang = cfg.DefaultLanguage()
	}
	printer, err := cat.Printer(lang)
	if err != nil {
		return nil, fmt.Errorf("default language: %w", err)
	}

	trophies, err := resolveTrophies(cfg)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("variants", reg.Len()).
		Int("trophies", len(trophies)).
		Str("language", printer.Language().String()).
		Msg("loaded game definitions")

	return &Defs{
		Variants: reg,
		Catalog:  cat,
		Printer:  printer,
		Trophies: trophies,
	}, nil
}

func resolveTrophies(cfg *config.Instance) ([]Trophy, error) {
	catalog := tournaments.Trophies()
	out := make([]Trophy, 0, len(catalog))
	for _, t := range catalog {
		u, err := cfg.StaticURL(t.Asset)
		if err != nil {
			return nil, fmt.Errorf("trophy %s: %w", t.Code, err)
		}
		out = append(out, Trophy{
			Code:  t.Code,
			Label: t.Label,
			Asset: t.Asset,
			URL:   u,
		})
	}
	return out, nil
}

// Trophy looks up a resolved trophy by code.
func (d *Defs) Trophy(code string) (Trophy, error) {
	t, err := tournaments.GetTrophy(code)
	if err != nil {
		return Trophy{}, err
	}
	for _, resolved := range d.Trophies {
		if resolved.Code == t.Code {
			return resolved, nil
		}
	}
	return Trophy{}, fmt.Errorf("trophy %s was not resolved", code)
}

// VariantLabel is the variant's name in the loaded language.
func (d *Defs) VariantLabel(id string) string {
	return i18n.VariantLabel(d.Variants, d.Printer, id)
}
