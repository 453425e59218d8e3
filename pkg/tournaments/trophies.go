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

package tournaments

import (
	"fmt"
	"path"
	"strings"

	"github.com/variantsgg/gamedefs/pkg/lookup"
)

// Trophy is a badge shown on a player profile. Asset is relative to the
// static asset root; the asset server resolves it.
type Trophy struct {
	Code  string `json:"code" yaml:"code" toml:"code"`
	Asset string `json:"asset" yaml:"asset" toml:"asset"`
	Label string `json:"label" yaml:"label" toml:"label"`
}

// trophies is in display order.
var trophies = []Trophy{
	{Code: "top1", Asset: "images/trophy/Big-Gold-Cup.png", Label: "Champion!"},
	{Code: "top10", Asset: "images/trophy/Big-Silver-Cup.png", Label: "Top 10!"},
	{Code: "top50", Asset: "images/trophy/Fancy-Gold-Cup.png", Label: "Top 50!"},
	{Code: "top100", Asset: "images/trophy/Gold-Cup.png", Label: "Top 100!"},
	{Code: "shield", Asset: "images/trophy/shield-gold.png", Label: "Shield"},
	// Custom trophies for past championships.
	{Code: "acwc19", Asset: "images/trophy/acwc19.png", Label: "World Champion 2019"},
	{Code: "3wc21", Asset: "images/trophy/3wc21.png", Label: "World Champion 2021"},
}

// Trophies returns the trophy catalog in display order.
func Trophies() []Trophy {
	out := make([]Trophy, len(trophies))
	copy(out, trophies)
	return out
}

// GetTrophy looks up a trophy by its code.
func GetTrophy(code string) (Trophy, error) {
	for _, t := range trophies {
		if t.Code == code {
			return t, nil
		}
	}
	return Trophy{}, lookup.NotFound("trophy", code)
}

func validateTrophies(ts []Trophy) error {
	seen := make(map[string]bool, len(ts))
	for _, t := range ts {
		if t.Code == "" || t.Label == "" {
			return fmt.Errorf("%w: trophy %q needs a code and a label", ErrInvalidEnumeration, t.Code)
		}
		if seen[t.Code] {
			return fmt.Errorf("%w: trophy %q listed twice", ErrInvalidEnumeration, t.Code)
		}
		seen[t.Code] = true
		if strings.HasPrefix(t.Asset, "/") || path.Clean(t.Asset) != t.Asset || path.Ext(t.Asset) == "" {
			return fmt.Errorf("%w: trophy %q has a malformed asset path %q",
				ErrInvalidEnumeration, t.Code, t.Asset)
		}
	}
	return nil
}
