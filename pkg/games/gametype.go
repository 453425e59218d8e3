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

package games

import (
	"strconv"

	"github.com/variantsgg/gamedefs/pkg/lookup"
)

// Type says whether a game affects ratings.
type Type int

const (
	TypeCasual   Type = 0
	TypeRated    Type = 1
	TypeImported Type = 2
)

var typeLabels = map[Type]string{
	TypeCasual:   "Casual",
	TypeRated:    "Rated",
	TypeImported: "Imported",
}

// TypeLabel returns the display label of a game type.
func TypeLabel(t Type) (string, error) {
	label, ok := typeLabels[t]
	if !ok {
		return "", lookup.NotFound("game type", strconv.Itoa(int(t)))
	}
	return label, nil
}

// Types returns every game type in code order.
func Types() []Type {
	return []Type{TypeCasual, TypeRated, TypeImported}
}

// WorkType is the kind of job handed to a remote analysis worker.
type WorkType int

const (
	WorkMove     WorkType = 0
	WorkAnalysis WorkType = 1
)

var workTypeLabels = map[WorkType]string{
	WorkMove:     "Move",
	WorkAnalysis: "Analysis",
}

// WorkTypeLabel returns the display label of a worker job type.
func WorkTypeLabel(w WorkType) (string, error) {
	label, ok := workTypeLabels[w]
	if !ok {
		return "", lookup.NotFound("work type", strconv.Itoa(int(w)))
	}
	return label, nil
}

func WorkTypes() []WorkType {
	return []WorkType{WorkMove, WorkAnalysis}
}

// Lobby and profile limits.
const (
	// MaxChatLines is how many lobby chat lines are kept.
	MaxChatLines = 100
	// HighscoreMinGames is the number of rated games needed to enter a
	// highscore table.
	HighscoreMinGames = 10
	// MaxNamedSpectators is the spectator count above which only the
	// number is shown.
	MaxNamedSpectators = 20
)
