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
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/variantsgg/gamedefs/pkg/lookup"
)

// Registry is the validated, read-only view of a set of Tables. It is never
// modified after Build returns, so it can be shared between goroutines
// without locking.
type Registry struct {
	variants    map[string]Variant
	byID        map[string]string // lower-cased ID -> ID
	byAlternate map[string]string // lower-cased alternate name -> ID
	tagged      map[Tag][]string
	order       []string
	categories  []CategoryDef
}

// Build derives the variant -> category index from the category partition
// and checks that every metadata table agrees with it. All problems are
// reported together in a *ConfigError.
//
//nolint:gocognit,funlen // one pass per table keeps each check next to its message
func Build(t Tables) (*Registry, error) {
	var problems []string

	reg := &Registry{
		variants:    make(map[string]Variant),
		byID:        make(map[string]string),
		byAlternate: make(map[string]string),
		tagged:      make(map[Tag][]string),
		categories:  make([]CategoryDef, 0, len(t.Categories)),
	}

	seenCategories := make(map[Category]bool, len(t.Categories))
	for _, cat := range t.Categories {
		if !knownCategories[cat.ID] {
			problems = append(problems, fmt.Sprintf("unknown category %q", cat.ID))
			continue
		}
		if seenCategories[cat.ID] {
			problems = append(problems, fmt.Sprintf("category %q is listed twice", cat.ID))
			continue
		}
		seenCategories[cat.ID] = true
		reg.categories = append(reg.categories, CategoryDef{
			ID:       cat.ID,
			Variants: slices.Clone(cat.Variants),
		})

		for _, id := range cat.Variants {
			if existing, ok := reg.variants[id]; ok {
				if existing.Category == cat.ID {
					problems = append(problems, fmt.Sprintf(
						"variant %q is listed twice in category %q", id, cat.ID))
				} else {
					problems = append(problems, fmt.Sprintf(
						"variant %q is listed in both %q and %q", id, existing.Category, cat.ID))
				}
				continue
			}
			reg.variants[id] = Variant{ID: id, Category: cat.ID}
			reg.order = append(reg.order, id)
		}
	}

	attach := func(table string, m map[string]string, set func(*Variant, string)) {
		for _, id := range slices.Sorted(maps.Keys(m)) {
			v, ok := reg.variants[id]
			if !ok {
				problems = append(problems, fmt.Sprintf(
					"%s table references unknown variant %q", table, id))
				continue
			}
			if m[id] == "" {
				problems = append(problems, fmt.Sprintf(
					"%s table has an empty value for variant %q", table, id))
				continue
			}
			set(&v, m[id])
			reg.variants[id] = v
		}
	}
	attach("icon", t.Icons, func(v *Variant, s string) { v.Icon = s })
	attach("alternate name", t.AlternateNames, func(v *Variant, s string) { v.AlternateName = s })
	attach("translation key", t.TranslationKeys, func(v *Variant, s string) { v.TranslationKey = s })

	for _, tag := range slices.Sorted(maps.Keys(t.Tags)) {
		for _, id := range t.Tags[tag] {
			v, ok := reg.variants[id]
			if !ok {
				problems = append(problems, fmt.Sprintf(
					"tag %q references unknown variant %q", tag, id))
				continue
			}
			if v.HasTag(tag) {
				continue
			}
			v.Tags = append(v.Tags, tag)
			reg.variants[id] = v
			reg.tagged[tag] = append(reg.tagged[tag], id)
		}
	}

	for _, id := range reg.order {
		v := reg.variants[id]
		problems = append(problems, validateRow(&v)...)
		reg.byID[strings.ToLower(id)] = id
	}

	// An alternate name may equal another variant's ID (the 960 name of
	// antichess is the ID of antichess960); IDs win in Lookup. Two variants
	// sharing one alternate name would make imports ambiguous.
	for _, id := range reg.order {
		alt := reg.variants[id].AlternateName
		if alt == "" {
			continue
		}
		key := strings.ToLower(alt)
		if other, ok := reg.byAlternate[key]; ok {
			problems = append(problems, fmt.Sprintf(
				"alternate name %q is used by both %q and %q", alt, other, id))
			continue
		}
		reg.byAlternate[key] = id
	}

	if len(problems) > 0 {
		return nil, &ConfigError{Problems: problems}
	}

	log.Debug().
		Int("variants", len(reg.order)).
		Int("categories", len(reg.categories)).
		Msg("built variant registry")

	return reg, nil
}

// MustBuild is like Build but panics on invalid tables.
func MustBuild(t Tables) *Registry {
	reg, err := Build(t)
	if err != nil {
		panic(err)
	}
	return reg
}

// Variant returns the full row for an exact variant ID.
func (r *Registry) Variant(id string) (Variant, error) {
	v, ok := r.variants[id]
	if !ok {
		return Variant{}, r.unknown(id)
	}
	v.Tags = slices.Clone(v.Tags)
	return v, nil
}

// CategoryOf returns the category a variant is listed under.
func (r *Registry) CategoryOf(id string) (Category, error) {
	v, ok := r.variants[id]
	if !ok {
		return "", r.unknown(id)
	}
	return v.Category, nil
}

// Lookup case-insensitively resolves a variant ID or, failing that, an
// alternate name such as the variant tag of an imported PGN.
func (r *Registry) Lookup(name string) (Variant, error) {
	key := normalizeName(name)
	if id, ok := r.byID[key]; ok {
		return r.Variant(id)
	}
	if id, ok := r.byAlternate[key]; ok {
		return r.Variant(id)
	}
	return Variant{}, r.unknown(name)
}

// Has reports whether id is in the catalog.
func (r *Registry) Has(id string) bool {
	_, ok := r.variants[id]
	return ok
}

// DisplayName returns the UI label for id; see the package-level DisplayName.
func (*Registry) DisplayName(id string) string {
	return DisplayName(id)
}

// TranslationKey returns the translation catalog key for id. Callers fall
// back to DisplayName when it is absent.
func (r *Registry) TranslationKey(id string) (string, bool) {
	v, ok := r.variants[id]
	if !ok || v.TranslationKey == "" {
		return "", false
	}
	return v.TranslationKey, true
}

// Icon returns the icon glyph of id, if it has one.
func (r *Registry) Icon(id string) (string, bool) {
	v, ok := r.variants[id]
	if !ok || v.Icon == "" {
		return "", false
	}
	return v.Icon, true
}

// AlternateName returns the external PGN name of id, if it has one.
func (r *Registry) AlternateName(id string) (string, bool) {
	v, ok := r.variants[id]
	if !ok || v.AlternateName == "" {
		return "", false
	}
	return v.AlternateName, true
}

// HasTag reports whether id belongs to the tagged family. Unknown IDs belong
// to no family.
func (r *Registry) HasTag(id string, tag Tag) bool {
	v, ok := r.variants[id]
	return ok && v.HasTag(tag)
}

// IsGrand reports whether id is played on a board with 10 or more ranks.
func (r *Registry) IsGrand(id string) bool {
	return r.HasTag(id, TagGrand)
}

// Tagged returns the IDs of a family in authored order.
func (r *Registry) Tagged(tag Tag) []string {
	return slices.Clone(r.tagged[tag])
}

// IDs returns every variant ID in display order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.order)
}

// Variants returns every variant in display order.
func (r *Registry) Variants() []Variant {
	vs := make([]Variant, 0, len(r.order))
	for _, id := range r.order {
		v := r.variants[id]
		v.Tags = slices.Clone(v.Tags)
		vs = append(vs, v)
	}
	return vs
}

// Len returns the number of variants in the catalog.
func (r *Registry) Len() int {
	return len(r.order)
}

// Categories returns the category IDs in display order.
func (r *Registry) Categories() []Category {
	cats := make([]Category, 0, len(r.categories))
	for _, c := range r.categories {
		cats = append(cats, c.ID)
	}
	return cats
}

// VariantsIn returns the variant IDs of a category in display order.
func (r *Registry) VariantsIn(cat Category) ([]string, error) {
	for _, c := range r.categories {
		if c.ID == cat {
			return slices.Clone(c.Variants), nil
		}
	}
	return nil, lookup.NotFound("category", string(cat))
}

func (r *Registry) unknown(id string) *lookup.Error {
	return lookup.NotFound("variant", id, r.Suggest(id, maxSuggestions)...)
}
