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

package i18n

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/variantsgg/gamedefs/pkg/games"
	"github.com/variantsgg/gamedefs/pkg/lookup"
	"github.com/variantsgg/gamedefs/pkg/tournaments"
	"github.com/variantsgg/gamedefs/pkg/variants"
)

// Translator turns a message key into text for one language.
type Translator interface {
	Translate(key string) string
}

// Catalog is the set of translatable messages. Keys are the English source
// strings.
type Catalog struct {
	builder *catalog.Builder
	keys    map[string]struct{}
}

// NewCatalog registers the English source string of every variant
// translation key and every enumeration label.
func NewCatalog(reg *variants.Registry) (*Catalog, error) {
	c := &Catalog{
		builder: catalog.NewBuilder(catalog.Fallback(language.English)),
		keys:    make(map[string]struct{}),
	}

	var sources []string
	for _, v := range reg.Variants() {
		if v.TranslationKey != "" {
			sources = append(sources, v.TranslationKey)
		}
	}
	for _, s := range games.AllStatuses() {
		sources = append(sources, mustLabel(games.StatusLabel(s)))
	}
	for _, t := range games.Types() {
		sources = append(sources, mustLabel(games.TypeLabel(t)))
	}
	for _, w := range games.WorkTypes() {
		sources = append(sources, mustLabel(games.WorkTypeLabel(w)))
	}
	for _, p := range tournaments.Pairings() {
		sources = append(sources, mustLabel(tournaments.PairingLabel(p)))
	}
	for _, f := range tournaments.Frequencies() {
		sources = append(sources, mustLabel(tournaments.FrequencyLabel(f)))
	}
	for _, s := range tournaments.Statuses() {
		sources = append(sources, mustLabel(tournaments.StatusLabel(s)))
	}
	for _, t := range tournaments.Trophies() {
		sources = append(sources, t.Label)
	}

	for _, src := range sources {
		if _, ok := c.keys[src]; ok {
			continue
		}
		if err := c.builder.SetString(language.English, src, src); err != nil {
			return nil, fmt.Errorf("failed to add source string %q: %w", src, err)
		}
		c.keys[src] = struct{}{}
	}

	log.Debug().Int("messages", len(c.keys)).Msg("built message catalog")
	return c, nil
}

// mustLabel unwraps a label lookup over a code taken from the same
// package's own iteration, which cannot miss.
func mustLabel(label string, err error) string {
	if err != nil {
		panic(err)
	}
	return label
}

// Keys returns every message key, sorted.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.keys))
	for k := range c.keys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Has reports whether key is a known message.
func (c *Catalog) Has(key string) bool {
	_, ok := c.keys[key]
	return ok
}

// Set adds the translation of a known message for one language.
func (c *Catalog) Set(code, key, msg string) error {
	tag, err := ParseCode(code)
	if err != nil {
		return err
	}
	if !c.Has(key) {
		return lookup.NotFound("message", key)
	}
	if err := c.builder.SetString(tag, key, msg); err != nil {
		return fmt.Errorf("failed to set %s translation of %q: %w", code, key, err)
	}
	return nil
}

// Printer returns a Translator for the supported language closest to code.
func (c *Catalog) Printer(code string) (*Printer, error) {
	tag, err := Match(code)
	if err != nil {
		return nil, err
	}
	return &Printer{
		p:   message.NewPrinter(tag, message.Catalog(c.builder)),
		tag: tag,
	}, nil
}

// Printer translates messages for a single language.
type Printer struct {
	p   *message.Printer
	tag language.Tag
}

func (p *Printer) Language() language.Tag {
	return p.tag
}

// Translate returns the translation of key, or key itself when there is
// none for the printer's language.
func (p *Printer) Translate(key string) string {
	return p.p.Sprintf(message.Key(key, key))
}

// VariantLabel is the localized name of a variant: its translation key run
// through tr, or the upper-case display name for variants without a key.
func VariantLabel(reg *variants.Registry, tr Translator, id string) string {
	if key, ok := reg.TranslationKey(id); ok {
		return tr.Translate(key)
	}
	return reg.DisplayName(id)
}
