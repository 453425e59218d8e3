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

// Package i18n resolves UI languages and holds the message catalog that
// display labels are translated through. Only the English source strings
// live here; translations are added by whoever loads them.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/variantsgg/gamedefs/pkg/lookup"
)

// Languages are the supported UI languages, spelled the way translation
// files name them.
var Languages = []string{
	"de", "en", "es", "gl_ES", "fr", "hu", "it", "ja", "ko", "nl", "pl", "pt",
	"ru", "th", "tr", "zh_CN", "zh_TW",
}

var (
	supportedTags = mustParseAll(Languages)
	matcher       = language.NewMatcher(supportedTags)
)

// ParseCode turns a translation file code like "zh_TW" into a language tag.
func ParseCode(code string) (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("invalid language code %q: %w", code, err)
	}
	return tag, nil
}

// Match returns the supported language closest to code. Codes that parse
// but have no reasonable match are reported as unknown languages.
func Match(code string) (language.Tag, error) {
	tag, err := ParseCode(code)
	if err != nil {
		return language.Und, lookup.NotFound("language", code)
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, lookup.NotFound("language", code)
	}
	return supportedTags[idx], nil
}

// SupportedTags returns the parsed form of Languages, in the same order.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

func mustParseAll(codes []string) []language.Tag {
	tags := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		tag, err := ParseCode(code)
		if err != nil {
			panic(err)
		}
		tags = append(tags, tag)
	}
	return tags
}
