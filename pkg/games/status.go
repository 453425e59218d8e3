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

// Package games defines the classification codes of a single game: its
// status, its type and the lobby limits around it. The codes are decided by
// the game engine; this package only names them.
package games

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/variantsgg/gamedefs/pkg/lookup"
)

// Status is the lifecycle or terminal outcome code of a game. The integer
// values are stored with every game and must not change.
type Status int

const (
	StatusCreated       Status = -2
	StatusStarted       Status = -1
	StatusAborted       Status = 0
	StatusMate          Status = 1
	StatusResign        Status = 2
	StatusStalemate     Status = 3
	StatusTimeout       Status = 4
	StatusDraw          Status = 5
	StatusFlag          Status = 6
	StatusAbandone      Status = 7
	StatusCheat         Status = 8
	StatusByeGame       Status = 9
	StatusInvalidMove   Status = 10
	StatusUnknownFinish Status = 11
	StatusVariantEnd    Status = 12
	StatusClaim         Status = 13
)

// ErrInvalidStatuses is returned by ValidateStatuses.
var ErrInvalidStatuses = errors.New("invalid status table")

type statusDef struct {
	name  string
	label string
	code  Status
}

// statuses is ordered by code.
var statuses = []statusDef{
	{code: StatusCreated, name: "created", label: "Created"},
	{code: StatusStarted, name: "started", label: "Playing"},
	{code: StatusAborted, name: "abort", label: "Aborted"},
	{code: StatusMate, name: "mate", label: "Checkmate"},
	{code: StatusResign, name: "resign", label: "Resignation"},
	{code: StatusStalemate, name: "stalemate", label: "Stalemate"},
	{code: StatusTimeout, name: "timeout", label: "Time out"},
	{code: StatusDraw, name: "draw", label: "Draw"},
	{code: StatusFlag, name: "flag", label: "Time forfeit"},
	{code: StatusAbandone, name: "abandone", label: "Abandoned"},
	{code: StatusCheat, name: "cheat", label: "Cheat detected"},
	{code: StatusByeGame, name: "bye", label: "Bye"},
	{code: StatusInvalidMove, name: "invalidmove", label: "Invalid move"},
	{code: StatusUnknownFinish, name: "unknownfinish", label: "Unknown finish"},
	{code: StatusVariantEnd, name: "variantend", label: "Variant ending"},
	{code: StatusClaim, name: "claim", label: "Claim"},
}

// LosingStatuses are the outcomes counted against the player they happened
// to when tallying results, keyed by status name.
var LosingStatuses = map[string]Status{
	"abandone": StatusAbandone,
	"abort":    StatusAborted,
	"resign":   StatusResign,
	"flag":     StatusFlag,
}

func findStatus(s Status) (statusDef, bool) {
	i := int(s - StatusCreated)
	if i < 0 || i >= len(statuses) || statuses[i].code != s {
		return statusDef{}, false
	}
	return statuses[i], true
}

// String returns the short name of the status, or its number if unknown.
func (s Status) String() string {
	if def, ok := findStatus(s); ok {
		return def.name
	}
	return strconv.Itoa(int(s))
}

// IsLosing reports whether s is one of LosingStatuses.
func (s Status) IsLosing() bool {
	for _, code := range LosingStatuses {
		if code == s {
			return true
		}
	}
	return false
}

// IsFinished reports whether s is a terminal outcome.
func (s Status) IsFinished() bool {
	return s > StatusStarted && s <= StatusClaim
}

// StatusLabel returns the display label of a status code.
func StatusLabel(s Status) (string, error) {
	def, ok := findStatus(s)
	if !ok {
		return "", lookup.NotFound("status", strconv.Itoa(int(s)))
	}
	return def.label, nil
}

// ParseStatus resolves a status by its short name.
func ParseStatus(name string) (Status, error) {
	for _, def := range statuses {
		if def.name == name {
			return def.code, nil
		}
	}
	return 0, lookup.NotFound("status", name)
}

// AllStatuses returns every status code in ascending order.
func AllStatuses() []Status {
	codes := make([]Status, 0, len(statuses))
	for _, def := range statuses {
		codes = append(codes, def.code)
	}
	return codes
}

// ValidateStatuses checks that the codes form one gap-free run, that names and
// labels are unique and that every losing status is a known code.
func ValidateStatuses() error {
	return validateStatuses(statuses, LosingStatuses)
}

func validateStatuses(defs []statusDef, losing map[string]Status) error {
	if len(defs) == 0 {
		return fmt.Errorf("%w: no statuses", ErrInvalidStatuses)
	}

	names := make(map[string]bool, len(defs))
	for i, def := range defs {
		if want := defs[0].code + Status(i); def.code != want {
			return fmt.Errorf("%w: code %d at position %d, want %d",
				ErrInvalidStatuses, def.code, i, want)
		}
		if def.name == "" || def.label == "" {
			return fmt.Errorf("%w: code %d has no name or label", ErrInvalidStatuses, def.code)
		}
		if names[def.name] {
			return fmt.Errorf("%w: name %q used twice", ErrInvalidStatuses, def.name)
		}
		names[def.name] = true
	}

	for name, code := range losing {
		i := slices.IndexFunc(defs, func(d statusDef) bool { return d.code == code })
		if i < 0 {
			return fmt.Errorf("%w: losing status %q has unknown code %d",
				ErrInvalidStatuses, name, code)
		}
		if defs[i].name != name {
			return fmt.Errorf("%w: losing status %q points at %q",
				ErrInvalidStatuses, name, defs[i].name)
		}
	}
	return nil
}
