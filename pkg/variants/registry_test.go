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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantsgg/gamedefs/pkg/lookup"
)

func smallTables() Tables {
	return Tables{
		Categories: []CategoryDef{
			{ID: CategoryChess, Variants: []string{"antichess", "losers"}},
			{ID: CategoryFairy, Variants: []string{"capablanca"}},
		},
	}
}

func TestBuildRoundTrip(t *testing.T) {
	t.Parallel()

	reg, err := Build(smallTables())
	require.NoError(t, err)

	cat, err := reg.CategoryOf("losers")
	require.NoError(t, err)
	assert.Equal(t, CategoryChess, cat)

	cat, err = reg.CategoryOf("capablanca")
	require.NoError(t, err)
	assert.Equal(t, CategoryFairy, cat)

	_, err = reg.CategoryOf("unknown")
	require.ErrorIs(t, err, lookup.ErrNotFound)

	assert.Equal(t, []string{"antichess", "losers", "capablanca"}, reg.IDs())
	assert.Equal(t, []Category{CategoryChess, CategoryFairy}, reg.Categories())
	assert.Equal(t, 3, reg.Len())
}

//nolint:funlen // Table-driven test with many test cases
func TestBuildRejectsInconsistentTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mutate  func(*Tables)
		name    string
		problem string
	}{
		{
			name: "variant in two categories",
			mutate: func(tb *Tables) {
				tb.Categories[1].Variants = append(tb.Categories[1].Variants, "losers")
			},
			problem: `variant "losers" is listed in both "chess" and "fairy"`,
		},
		{
			name: "variant twice in one category",
			mutate: func(tb *Tables) {
				tb.Categories[0].Variants = append(tb.Categories[0].Variants, "antichess")
			},
			problem: `variant "antichess" is listed twice in category "chess"`,
		},
		{
			name: "category listed twice",
			mutate: func(tb *Tables) {
				tb.Categories = append(tb.Categories, CategoryDef{ID: CategoryChess})
			},
			problem: `category "chess" is listed twice`,
		},
		{
			name: "unknown category",
			mutate: func(tb *Tables) {
				tb.Categories = append(tb.Categories, CategoryDef{ID: "checkers", Variants: []string{"draughts"}})
			},
			problem: `unknown category "checkers"`,
		},
		{
			name: "orphan icon",
			mutate: func(tb *Tables) {
				tb.Icons = map[string]string{"racingkings": "♔"}
			},
			problem: `icon table references unknown variant "racingkings"`,
		},
		{
			name: "orphan alternate name",
			mutate: func(tb *Tables) {
				tb.AlternateNames = map[string]string{"chess": "Chess960"}
			},
			problem: `alternate name table references unknown variant "chess"`,
		},
		{
			name: "orphan translation key",
			mutate: func(tb *Tables) {
				tb.TranslationKeys = map[string]string{"coffeerace": "Coffeerace"}
			},
			problem: `translation key table references unknown variant "coffeerace"`,
		},
		{
			name: "empty icon",
			mutate: func(tb *Tables) {
				tb.Icons = map[string]string{"losers": ""}
			},
			problem: `icon table has an empty value for variant "losers"`,
		},
		{
			name: "orphan tag member",
			mutate: func(tb *Tables) {
				tb.Tags = map[Tag][]string{TagGrand: {"xiangqi"}}
			},
			problem: `tag "grand" references unknown variant "xiangqi"`,
		},
		{
			name: "shared alternate name",
			mutate: func(tb *Tables) {
				tb.AlternateNames = map[string]string{"antichess": "Giveaway", "losers": "giveaway"}
			},
			problem: `alternate name "giveaway" is used by both "antichess" and "losers"`,
		},
		{
			name: "malformed id",
			mutate: func(tb *Tables) {
				tb.Categories[1].Variants = append(tb.Categories[1].Variants, "Grand House")
			},
			problem: `variant "Grand House": field ID fails "variantid" (value "Grand House")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tables := smallTables()
			tt.mutate(&tables)

			reg, err := Build(tables)
			require.Error(t, err)
			assert.Nil(t, reg)
			require.ErrorIs(t, err, ErrInvalidTables)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, cfgErr.Problems, tt.problem)
		})
	}
}

func TestBuildReportsEveryProblem(t *testing.T) {
	t.Parallel()

	tables := smallTables()
	tables.Categories[1].Variants = append(tables.Categories[1].Variants, "losers")
	tables.Icons = map[string]string{"shogi": "♔", "xiangqi": "♔"}

	_, err := Build(tables)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Len(t, cfgErr.Problems, 3)
	assert.Contains(t, err.Error(), "3 problems")
}

func TestMustBuildPanics(t *testing.T) {
	t.Parallel()

	tables := smallTables()
	tables.Icons = map[string]string{"nope": "♔"}

	assert.Panics(t, func() { MustBuild(tables) })
	assert.NotPanics(t, func() { MustBuild(DefaultTables()) })
}

func TestBuildCopiesInput(t *testing.T) {
	t.Parallel()

	tables := smallTables()
	reg, err := Build(tables)
	require.NoError(t, err)

	tables.Categories[0].Variants[0] = "mutated"
	ids, err := reg.VariantsIn(CategoryChess)
	require.NoError(t, err)
	assert.Equal(t, []string{"antichess", "losers"}, ids)

	ids[0] = "mutated"
	again, err := reg.VariantsIn(CategoryChess)
	require.NoError(t, err)
	assert.Equal(t, "antichess", again[0])
}

func TestMetadataLookups(t *testing.T) {
	t.Parallel()

	reg := MustBuild(DefaultTables())

	icon, ok := reg.Icon(VariantKingOfTheHill)
	assert.True(t, ok)
	assert.Equal(t, "🏳️", icon)

	_, ok = reg.Icon(VariantShogi)
	assert.False(t, ok, "shogi has no icon")
	_, ok = reg.Icon("unknown")
	assert.False(t, ok)

	alt, ok := reg.AlternateName(VariantCapablanca)
	assert.True(t, ok)
	assert.Equal(t, "Caparandom", alt)
	_, ok = reg.AlternateName(VariantXiangqi)
	assert.False(t, ok)

	key, ok := reg.TranslationKey(VariantAntiAntichess)
	assert.True(t, ok)
	assert.Equal(t, "Anti-Antichess", key)
	_, ok = reg.TranslationKey(VariantMakruk)
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	reg := MustBuild(DefaultTables())

	tests := []struct {
		query string
		want  string
	}{
		{query: "antichess", want: VariantAntichess},
		{query: "ANTICHESS", want: VariantAntichess},
		{query: "  Shogi ", want: VariantShogi},
		{query: "ＳＨＯＧＩ", want: VariantShogi},
		// The 960 name of antichess is also the ID of antichess960.
		{query: "Antichess960", want: VariantAntichess960},
		{query: "Caparandom", want: VariantCapablanca},
		{query: "king of the hill", want: VariantKingOfTheHill},
		{query: "Three-check", want: Variant3Check},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			v, err := reg.Lookup(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.ID)
		})
	}

	_, err := reg.Lookup("antichez")
	var lookupErr *lookup.Error
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "variant", lookupErr.Kind)
	require.NotEmpty(t, lookupErr.Suggestions)
	assert.Equal(t, VariantAntichess, lookupErr.Suggestions[0])
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	reg := MustBuild(DefaultTables())

	assert.Empty(t, reg.Suggest("", 3))
	assert.Empty(t, reg.Suggest("antichess", 0))
	assert.Empty(t, reg.Suggest("zzzzzzzz", 3))
	assert.LessOrEqual(t, len(reg.Suggest("anti", 3)), 3)
	assert.NotContains(t, reg.Suggest("shogi", 3), "shogi", "exact match is not a suggestion")
}

func TestSuggestCaseMismatchRanksFirst(t *testing.T) {
	t.Parallel()

	reg := MustBuild(DefaultTables())

	tests := []struct {
		query string
		want  string
	}{
		{query: "Chess", want: VariantChess},
		{query: "SHOGI", want: VariantShogi},
		{query: "Shogi", want: VariantShogi},
		{query: "ｃｈｅｓｓ", want: VariantChess},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()

			got := reg.Suggest(tt.query, 3)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.want, got[0])

			_, err := reg.CategoryOf(tt.query)
			var lookupErr *lookup.Error
			require.ErrorAs(t, err, &lookupErr)
			require.NotEmpty(t, lookupErr.Suggestions)
			assert.Equal(t, tt.want, lookupErr.Suggestions[0])
		})
	}
}

func TestTags(t *testing.T) {
	t.Parallel()

	reg := MustBuild(DefaultTables())

	assert.True(t, reg.IsGrand(VariantXiangqi))
	assert.True(t, reg.IsGrand(VariantShako))
	assert.False(t, reg.IsGrand(VariantChess))
	assert.False(t, reg.IsGrand("unknown"))

	assert.Equal(t, []string{
		VariantXiangqi, VariantManchu, VariantGrand, VariantGrandhouse, VariantShako, VariantJanggi,
	}, reg.Tagged(TagGrand))
	assert.Len(t, reg.Tagged(TagAntichess), 12)
	assert.True(t, reg.HasTag(VariantCoffeerace, TagAntichess))

	v, err := reg.Variant(VariantJanggi)
	require.NoError(t, err)
	assert.Equal(t, []Tag{TagGrand}, v.Tags)
}

func TestVariantsIn(t *testing.T) {
	t.Parallel()

	reg := MustBuild(DefaultTables())

	ids, err := reg.VariantsIn(CategoryXiangqi)
	require.NoError(t, err)
	assert.Equal(t, []string{VariantXiangqi, VariantManchu, VariantJanggi, VariantMinixiangqi}, ids)

	_, err = reg.VariantsIn("checkers")
	require.ErrorIs(t, err, lookup.ErrNotFound)

	assert.Equal(t, []Category{
		CategoryChess, CategoryFairy, CategoryArmy, CategoryMakruk, CategoryShogi, CategoryXiangqi,
	}, reg.Categories())
}
