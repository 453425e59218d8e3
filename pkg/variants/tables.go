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

// CategoryDef is one entry of the category partition. Variant order is the
// lobby display order.
type CategoryDef struct {
	ID       Category
	Variants []string
}

// Tables are the hand-authored inputs of Build. Every map is keyed by variant
// ID and every key must appear in Categories.
type Tables struct {
	// AlternateNames are the external (PGN) names used when a game is played
	// from a randomized 960-style start position.
	AlternateNames map[string]string
	Icons          map[string]string
	// TranslationKeys are message keys for the translation catalog, not
	// final labels.
	TranslationKeys map[string]string
	Tags            map[Tag][]string
	Categories      []CategoryDef
}

const (
	iconHill = "🏳️"
	iconKing = "♔"
)

// DefaultTables returns a fresh copy of the platform's variant tables.
func DefaultTables() Tables {
	return Tables{
		Categories: []CategoryDef{
			{
				ID: CategoryChess,
				Variants: []string{
					VariantChess,
					VariantCrazyhouse,
					VariantAtomic,
					VariantKingOfTheHill,
					Variant3Check,
					VariantRacingKings,
					VariantAntichess,
					VariantAntichess960,
					VariantLosers,
					VariantLosers960,
					VariantAntiAntichess,
					VariantAntiAntichess960,
					VariantAntiatomic,
					VariantAntiatomic960,
					VariantAntihouse,
					VariantAntihouse960,
					VariantAntipawns,
					VariantCoffee3Check,
					VariantCoffee3Check960,
					VariantCoffeerace,
					VariantCoffeehouse,
					VariantCoffeehouse960,
					VariantCoffeehill,
					VariantCoffeehill960,
					VariantAntiplacement,
					VariantAntihoppelpoppel,
					VariantAntichak,
					VariantAntisynochess,
					VariantAntiempire,
					VariantAntiorda,
					VariantAntishinobi,
					VariantAntigrandhouse,
					VariantAtomicGiveawayHill,
					VariantAtomicGiveawayHill960,
				},
			},
			{
				ID: CategoryFairy,
				Variants: []string{
					VariantAnticapablanca,
					VariantAnticapablanca960,
					VariantCapablanca,
					VariantCapablanca960,
					VariantCapahouse,
					VariantCapahouse960,
					VariantSeirawan,
					VariantSeirawan960,
					VariantShouse,
					VariantGrand,
					VariantGrandhouse,
					VariantShako,
					VariantShogun,
					VariantAntishogun,
					VariantHoppelpoppel,
					VariantMansindam,
				},
			},
			{
				ID: CategoryArmy,
				Variants: []string{
					VariantOrda,
					VariantSynochess,
					VariantShinobi,
					VariantEmpire,
					VariantOrdamirror,
					VariantChak,
					VariantChennis,
					VariantShinobiPlus,
					VariantSpartan,
				},
			},
			{
				ID: CategoryMakruk,
				Variants: []string{
					VariantMakruk,
					VariantMakpong,
					VariantCambodian,
					VariantSittuyin,
					VariantAsean,
				},
			},
			{
				ID: CategoryShogi,
				Variants: []string{
					VariantShogi,
					VariantMinishogi,
					VariantKyotoshogi,
					VariantDobutsu,
					VariantGorogoroPlus,
					VariantToriShogi,
					VariantAntishogi,
					VariantAntiminishogi,
				},
			},
			{
				ID: CategoryXiangqi,
				Variants: []string{
					VariantXiangqi,
					VariantManchu,
					VariantJanggi,
					VariantMinixiangqi,
				},
			},
		},

		Icons: map[string]string{
			VariantKingOfTheHill:         iconHill,
			VariantRacingKings:           iconKing,
			VariantAntichess:             iconKing,
			VariantAntichess960:          iconKing,
			VariantLosers:                iconKing,
			VariantLosers960:             iconKing,
			VariantAntiminishogi:         iconKing,
			VariantCoffeerace:            iconKing,
			VariantAntiorda:              iconKing,
			VariantCoffee3Check:          iconKing,
			VariantCoffee3Check960:       iconKing,
			VariantAntiAntichess:         iconKing,
			VariantAntiAntichess960:      iconKing,
			VariantAntiatomic:            iconKing,
			VariantAntiatomic960:         iconKing,
			VariantAntishogi:             iconKing,
			VariantAntiempire:            iconKing,
			VariantAntishinobi:           iconKing,
			VariantAntihouse:             iconKing,
			VariantAntihouse960:          iconKing,
			VariantAntishogun:            iconKing,
			VariantAnticapablanca:        iconKing,
			VariantAnticapablanca960:     iconKing,
			VariantAntipawns:             iconKing,
			VariantAntisynochess:         iconKing,
			VariantCoffeehouse:           iconKing,
			VariantCoffeehouse960:        iconKing,
			VariantCoffeehill:            iconKing,
			VariantCoffeehill960:         iconKing,
			VariantAntiplacement:         iconKing,
			VariantAntihoppelpoppel:      iconKing,
			VariantAntichak:              iconKing,
			VariantAntigrandhouse:        iconKing,
			VariantAtomicGiveawayHill:    iconKing,
			VariantAtomicGiveawayHill960: iconKing,
		},

		// Crazyhouse, atomic, king of the hill and three-check use the
		// lichess spelling so their PGNs import there unchanged.
		AlternateNames: map[string]string{
			VariantChess:              "Chess960",
			VariantCapablanca:         "Caparandom",
			VariantCapahouse:          "Capahouse960",
			VariantCrazyhouse:         "Crazyhouse",
			VariantAtomic:             "Atomic",
			VariantKingOfTheHill:      "King of the Hill",
			Variant3Check:             "Three-check",
			VariantAntichess:          "Antichess960",
			VariantLosers:             "Losers960",
			VariantCoffee3Check:       "Coffee_3check960",
			VariantCoffeerace:         "Coffeerace960",
			VariantAntiplacement:      "Antiplacement960",
			VariantAntiAntichess:      "Anti_antichess960",
			VariantAntiatomic:         "Antiatomic960",
			VariantAntihouse:          "Antihouse960",
			VariantAntipawns:          "Antipawns960",
			VariantCoffeehouse:        "Coffeehouse960",
			VariantCoffeehill:         "Coffeehill960",
			VariantAnticapablanca:     "Anticapablanca960",
			VariantAtomicGiveawayHill: "Atomic_giveaway_hill960",
		},

		TranslationKeys: map[string]string{
			VariantAntichess:        "Antichess",
			VariantAntichess960:     "Antichess960",
			VariantLosers:           "Losers",
			VariantLosers960:        "Losers960",
			VariantAntiAntichess:    "Anti-Antichess",
			VariantAntiAntichess960: "Anti-Antichess960",
			VariantAntiatomic:       "Antiatomic",
			VariantAntiatomic960:    "Antiatomic960",
			VariantAntihouse:        "Antihouse",
			VariantAntihouse960:     "Antihouse960",
			VariantAntipawns:        "Antipawns",
			VariantCoffee3Check:     "Coffee-3Check",
			VariantCoffee3Check960:  "Coffee-3Check960",
			VariantCoffeerace:       "Coffeerace",
			VariantCoffeehouse:      "Coffeehouse",
			VariantCoffeehouse960:   "Coffeehouse960",
			VariantCoffeehill:       "Coffeehill",
			VariantCoffeehill960:    "Coffeehill960",
			VariantAntiplacement:    "Antiplacement",
			VariantAntihoppelpoppel: "Antihoppelpoppel",
			VariantAnticapablanca:   "Anticapablanca",
			VariantAntichak:         "Antichak",
			VariantAntisynochess:    "Antisynochess",
			VariantAntiempire:       "Antiempire",
			VariantAntiorda:         "Antiorda",
			VariantAntishinobi:      "Antishinobi",
		},

		Tags: map[Tag][]string{
			TagGrand: {
				VariantXiangqi,
				VariantManchu,
				VariantGrand,
				VariantGrandhouse,
				VariantShako,
				VariantJanggi,
			},
			TagAntichess: {
				VariantAntichess,
				VariantAntichess960,
				VariantLosers,
				VariantLosers960,
				VariantAntiAntichess,
				VariantAntiAntichess960,
				VariantAntiatomic,
				VariantAntiatomic960,
				VariantAntihouse,
				VariantAntihouse960,
				VariantAntipawns,
				VariantCoffeerace,
			},
		},
	}
}
