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

// Package lookup holds the error returned by every registry query that is
// given a key the registry does not know.
package lookup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is matched by every *Error via errors.Is.
var ErrNotFound = errors.New("not found")

// Error reports a query for a key absent from one of the registry tables.
type Error struct {
	Kind        string
	Key         string
	Suggestions []string
}

// NotFound returns an *Error for the given table kind and key.
func NotFound(kind, key string, suggestions ...string) *Error {
	return &Error{Kind: kind, Key: key, Suggestions: suggestions}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("unknown %s: %q", e.Kind, e.Key)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}
	return msg
}

func (*Error) Unwrap() error {
	return ErrNotFound
}
