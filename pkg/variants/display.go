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

package variants

import "strings"

// displayNameOverrides are labels for IDs whose plain upper-casing reads wrong.
// Keys need not be in the catalog: DisplayName accepts any string.
var displayNameOverrides = map[string]string{
	VariantSeirawan:      "S-CHESS",
	VariantSeirawan960:   "S-CHESS960",
	VariantShouse:        "S-HOUSE",
	VariantCambodian:     "OUK CHAKTRANG",
	VariantOrdamirror:    "ORDA MIRROR",
	VariantGorogoroPlus:  "GOROGORO+",
	VariantKyotoshogi:    "KYOTO SHOGI",
	VariantToriShogi:     "TORI SHOGI",
	"duck":               "DUCK CHESS",
	VariantKingOfTheHill: "KING OF THE HILL",
	Variant3Check:        "THREE-CHECK",
}

// DisplayName returns the UI label of a variant ID. An override wins,
// otherwise the ID is upper-cased unchanged. It never fails, including for IDs
// outside the catalog.
func DisplayName(id string) string {
	if name, ok := displayNameOverrides[id]; ok {
		return name
	}
	return strings.ToUpper(id)
}

// DisplayNameOverride returns the hand-picked label for id, if it has one.
func DisplayNameOverride(id string) (string, bool) {
	name, ok := displayNameOverrides[id]
	return name, ok
}
