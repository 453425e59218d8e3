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

package export

import (
	"github.com/variantsgg/gamedefs/pkg/config"
	"github.com/variantsgg/gamedefs/pkg/gamedefs"
	"github.com/variantsgg/gamedefs/pkg/games"
	"github.com/variantsgg/gamedefs/pkg/tournaments"
)

type Snapshot struct {
	Version            string      `json:"version" yaml:"version" toml:"version"`
	Language           string      `json:"language" yaml:"language" toml:"language"`
	Variants           []Variant   `json:"variants" yaml:"variants" toml:"variants"`
	Categories         []Category  `json:"categories" yaml:"categories" toml:"categories"`
	Statuses           []Status    `json:"statuses" yaml:"statuses" toml:"statuses"`
	GameTypes          []Code      `json:"gameTypes" yaml:"game_types" toml:"game_types"`
	WorkTypes          []Code      `json:"workTypes" yaml:"work_types" toml:"work_types"`
	Pairings           []Code      `json:"pairings" yaml:"pairings" toml:"pairings"`
	Frequencies        []Frequency `json:"frequencies" yaml:"frequencies" toml:"frequencies"`
	TournamentStatuses []Code      `json:"tournamentStatuses" yaml:"tournament_statuses" toml:"tournament_statuses"`
	Trophies           []Trophy    `json:"trophies" yaml:"trophies" toml:"trophies"`
}

type Variant struct {
	ID             string   `json:"id" yaml:"id" toml:"id"`
	Category       string   `json:"category" yaml:"category" toml:"category"`
	DisplayName    string   `json:"displayName" yaml:"display_name" toml:"display_name"`
	Label          string   `json:"label" yaml:"label" toml:"label"`
	Icon           string   `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`
	AlternateName  string   `json:"alternateName,omitempty" yaml:"alternate_name,omitempty" toml:"alternate_name,omitempty"`
	TranslationKey string   `json:"translationKey,omitempty" yaml:"translation_key,omitempty" toml:"translation_key,omitempty"`
	Tags           []string `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty"`
}

type Category struct {
	ID       string   `json:"id" yaml:"id" toml:"id"`
	Variants []string `json:"variants" yaml:"variants" toml:"variants"`
}

type Status struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	Label  string `json:"label" yaml:"label" toml:"label"`
	Code   int    `json:"code" yaml:"code" toml:"code"`
	Losing bool   `json:"losing" yaml:"losing" toml:"losing"`
}

// Code is an integer enumeration value and its label.
type Code struct {
	Label string `json:"label" yaml:"label" toml:"label"`
	Code  int    `json:"code" yaml:"code" toml:"code"`
}

type Frequency struct {
	Code  string `json:"code" yaml:"code" toml:"code"`
	Label string `json:"label" yaml:"label" toml:"label"`
}

type Trophy struct {
	Code  string `json:"code" yaml:"code" toml:"code"`
	Label string `json:"label" yaml:"label" toml:"label"`
	Asset string `json:"asset" yaml:"asset" toml:"asset"`
	URL   string `json:"url" yaml:"url" toml:"url"`
}

// NewSnapshot copies the definitions into plain export records. Labels are
// translated into the language defs was loaded with.
func NewSnapshot(defs *gamedefs.Defs) *Snapshot {
	s := &Snapshot{
		Version:  config.AppVersion,
		Language: defs.Printer.Language().String(),
	}
	tr := defs.Printer

	for _, v := range defs.Variants.Variants() {
		var tags []string
		for _, tag := range v.Tags {
			tags = append(tags, string(tag))
		}
		s.Variants = append(s.Variants, Variant{
			ID:             v.ID,
			Category:       string(v.Category),
			DisplayName:    defs.Variants.DisplayName(v.ID),
			Label:          defs.VariantLabel(v.ID),
			Icon:           v.Icon,
			AlternateName:  v.AlternateName,
			TranslationKey: v.TranslationKey,
			Tags:           tags,
		})
	}

	for _, cat := range defs.Variants.Categories() {
		// Categories come from the registry, so the lookup cannot miss.
		ids, _ := defs.Variants.VariantsIn(cat)
		s.Categories = append(s.Categories, Category{ID: string(cat), Variants: ids})
	}

	for _, code := range games.AllStatuses() {
		label, _ := games.StatusLabel(code)
		s.Statuses = append(s.Statuses, Status{
			Code:   int(code),
			Name:   code.String(),
			Label:  tr.Translate(label),
			Losing: code.IsLosing(),
		})
	}

	for _, typ := range games.Types() {
		label, _ := games.TypeLabel(typ)
		s.GameTypes = append(s.GameTypes, Code{Code: int(typ), Label: tr.Translate(label)})
	}

	for _, w := range games.WorkTypes() {
		label, _ := games.WorkTypeLabel(w)
		s.WorkTypes = append(s.WorkTypes, Code{Code: int(w), Label: tr.Translate(label)})
	}

	for _, p := range tournaments.Pairings() {
		label, _ := tournaments.PairingLabel(p)
		s.Pairings = append(s.Pairings, Code{Code: int(p), Label: tr.Translate(label)})
	}

	for _, f := range tournaments.Frequencies() {
		label, _ := tournaments.FrequencyLabel(f)
		s.Frequencies = append(s.Frequencies, Frequency{Code: string(f), Label: tr.Translate(label)})
	}

	for _, st := range tournaments.Statuses() {
		label, _ := tournaments.StatusLabel(st)
		s.TournamentStatuses = append(s.TournamentStatuses, Code{Code: int(st), Label: tr.Translate(label)})
	}

	for _, t := range defs.Trophies {
		s.Trophies = append(s.Trophies, Trophy{
			Code:  t.Code,
			Label: tr.Translate(t.Label),
			Asset: t.Asset,
			URL:   t.URL,
		})
	}

	return s
}
