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

package lookup

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected string
		err      *Error
	}{
		{
			name:     "no suggestions",
			err:      NotFound("variant", "unknown"),
			expected: `unknown variant: "unknown"`,
		},
		{
			name:     "with suggestions",
			err:      NotFound("variant", "antichez", "antichess", "antichess960"),
			expected: `unknown variant: "antichez" (did you mean antichess, antichess960?)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("rendering label: %w", NotFound("status", "99"))
	require.ErrorIs(t, err, ErrNotFound)

	var lookupErr *Error
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "status", lookupErr.Kind)
	assert.Equal(t, "99", lookupErr.Key)
	assert.False(t, errors.Is(errors.New("other"), ErrNotFound))
}
