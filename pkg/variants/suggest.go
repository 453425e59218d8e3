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
	"sort"

	"github.com/hbollon/go-edlib"
)

const (
	maxSuggestions = 3
	// minSimilarity is the Jaro-Winkler score below which a variant is not
	// worth suggesting.
	minSimilarity float32 = 0.85
)

type suggestion struct {
	id         string
	similarity float32
}

// Suggest returns up to limit catalog IDs that look like a misspelling of
// query, best match first. An ID that only differs from query by case or
// width scores highest; query itself is never suggested.
func (r *Registry) Suggest(query string, limit int) []string {
	normalized := normalizeName(query)
	if normalized == "" || limit <= 0 {
		return nil
	}

	var matches []suggestion
	for _, id := range r.order {
		if id == query {
			continue
		}
		similarity := edlib.JaroWinklerSimilarity(normalized, id)
		if similarity >= minSimilarity {
			matches = append(matches, suggestion{id: id, similarity: similarity})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].similarity > matches[j].similarity
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.id)
	}
	return ids
}
