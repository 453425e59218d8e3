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
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTables is matched by every *ConfigError.
var ErrInvalidTables = errors.New("invalid variant tables")

// ConfigError lists every integrity problem found in a set of Tables. It is
// an authoring defect: the process must not start with it.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("%s: %s", ErrInvalidTables, e.Problems[0])
	}
	return fmt.Sprintf("%s: %d problems: %s",
		ErrInvalidTables, len(e.Problems), strings.Join(e.Problems, "; "))
}

func (*ConfigError) Unwrap() error {
	return ErrInvalidTables
}
