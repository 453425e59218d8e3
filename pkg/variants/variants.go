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

// The variant catalog lists every ruleset the platform can host, grouped into
// the categories shown in the lobby. This is the reference list of variant IDs
// used by the game engine, the tournament scheduler and the import/export
// code. The catalog is authored as data in DefaultTables and turned into an
// immutable Registry by Build.

// Category is a top-level display group of variants.
type Category string

const (
	CategoryChess   Category = "chess"
	CategoryFairy   Category = "fairy"
	CategoryArmy    Category = "army"
	CategoryMakruk  Category = "makruk"
	CategoryShogi   Category = "shogi"
	CategoryXiangqi Category = "xiangqi"
)

// knownCategories is the set of category IDs a table may use.
var knownCategories = map[Category]bool{
	CategoryChess:   true,
	CategoryFairy:   true,
	CategoryArmy:    true,
	CategoryMakruk:  true,
	CategoryShogi:   true,
	CategoryXiangqi: true,
}

// Tag names a cross-cutting family of variants.
type Tag string

const (
	// TagGrand marks variants played on a board with 10 or more ranks.
	TagGrand Tag = "grand"
	// TagAntichess marks the capture-obligatory "lose all your pieces" family.
	TagAntichess Tag = "antichess"
)

// Variant is one resolved row of the registry.
type Variant struct {
	ID             string   `json:"id" yaml:"id" toml:"id" validate:"required,max=32,variantid"`
	Category       Category `json:"category" yaml:"category" toml:"category" validate:"required,category"`
	Icon           string   `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`
	AlternateName  string   `json:"alternateName,omitempty" yaml:"alternateName,omitempty" toml:"alternate_name,omitempty" validate:"omitempty,printascii"`
	TranslationKey string   `json:"translationKey,omitempty" yaml:"translationKey,omitempty" toml:"translation_key,omitempty"`
	Tags           []Tag    `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty"`
}

// HasTag reports whether the variant belongs to the given family.
func (v Variant) HasTag(tag Tag) bool {
	for _, t := range v.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Chess
const (
	VariantChess                 = "chess"
	VariantCrazyhouse            = "crazyhouse"
	VariantAtomic                = "atomic"
	VariantKingOfTheHill         = "kingofthehill"
	Variant3Check                = "3check"
	VariantRacingKings           = "racingkings"
	VariantAntichess             = "antichess"
	VariantAntichess960          = "antichess960"
	VariantLosers                = "losers"
	VariantLosers960             = "losers960"
	VariantAntiAntichess         = "anti_antichess"
	VariantAntiAntichess960      = "anti_antichess960"
	VariantAntiatomic            = "antiatomic"
	VariantAntiatomic960         = "antiatomic960"
	VariantAntihouse             = "antihouse"
	VariantAntihouse960          = "antihouse960"
	VariantAntipawns             = "antipawns"
	VariantCoffee3Check          = "coffee_3check"
	VariantCoffee3Check960       = "coffee_3check960"
	VariantCoffeerace            = "coffeerace"
	VariantCoffeehouse           = "coffeehouse"
	VariantCoffeehouse960        = "coffeehouse960"
	VariantCoffeehill            = "coffeehill"
	VariantCoffeehill960         = "coffeehill960"
	VariantAntiplacement         = "antiplacement"
	VariantAntihoppelpoppel      = "antihoppelpoppel"
	VariantAntichak              = "antichak"
	VariantAntisynochess         = "antisynochess"
	VariantAntiempire            = "antiempire"
	VariantAntiorda              = "antiorda"
	VariantAntishinobi           = "antishinobi"
	VariantAntigrandhouse        = "antigrandhouse"
	VariantAtomicGiveawayHill    = "atomic_giveaway_hill"
	VariantAtomicGiveawayHill960 = "atomic_giveaway_hill960"
)

// Fairy
const (
	VariantAnticapablanca    = "anticapablanca"
	VariantAnticapablanca960 = "anticapablanca960"
	VariantCapablanca        = "capablanca"
	VariantCapablanca960     = "capablanca960"
	VariantCapahouse         = "capahouse"
	VariantCapahouse960      = "capahouse960"
	VariantSeirawan          = "seirawan"
	VariantSeirawan960       = "seirawan960"
	VariantShouse            = "shouse"
	VariantGrand             = "grand"
	VariantGrandhouse        = "grandhouse"
	VariantShako             = "shako"
	VariantShogun            = "shogun"
	VariantAntishogun        = "antishogun"
	VariantHoppelpoppel      = "hoppelpoppel"
	VariantMansindam         = "mansindam"
)

// Army
const (
	VariantOrda        = "orda"
	VariantSynochess   = "synochess"
	VariantShinobi     = "shinobi"
	VariantEmpire      = "empire"
	VariantOrdamirror  = "ordamirror"
	VariantChak        = "chak"
	VariantChennis     = "chennis"
	VariantShinobiPlus = "shinobiplus"
	VariantSpartan     = "spartan"
)

// Makruk
const (
	VariantMakruk    = "makruk"
	VariantMakpong   = "makpong"
	VariantCambodian = "cambodian"
	VariantSittuyin  = "sittuyin"
	VariantAsean     = "asean"
)

// Shogi
const (
	VariantShogi         = "shogi"
	VariantMinishogi     = "minishogi"
	VariantKyotoshogi    = "kyotoshogi"
	VariantDobutsu       = "dobutsu"
	VariantGorogoroPlus  = "gorogoroplus"
	VariantToriShogi     = "torishogi"
	VariantAntishogi     = "antishogi"
	VariantAntiminishogi = "antiminishogi"
)

// Xiangqi
const (
	VariantXiangqi     = "xiangqi"
	VariantManchu      = "manchu"
	VariantJanggi      = "janggi"
	VariantMinixiangqi = "minixiangqi"
)

// ConservativeCapablancaFEN is the Capablanca start position with the archbishop
// and chancellor in the corners, used for rated Capablanca games.
const ConservativeCapablancaFEN = "arnbqkbnrc/pppppppppp/10/10/10/10/PPPPPPPPPP/ARNBQKBNRC w KQkq - 0 1"
