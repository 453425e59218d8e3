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

package tournaments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantsgg/gamedefs/pkg/lookup"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	require.NoError(t, Validate())
}

func TestPairingLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		want    string
		pairing Pairing
	}{
		{pairing: PairingArena, want: "Arena"},
		{pairing: PairingRoundRobin, want: "Round-Robin"},
		{pairing: PairingSwiss, want: "Swiss"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			got, err := PairingLabel(tt.pairing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, p := range []Pairing{-1, 3} {
		_, err := PairingLabel(p)
		require.ErrorIs(t, err, lookup.ErrNotFound)
	}
	assert.Equal(t, []Pairing{PairingArena, PairingRoundRobin, PairingSwiss}, Pairings())
}

func TestFrequencyLabel(t *testing.T) {
	t.Parallel()

	shield, err := FrequencyLabel(FrequencyShield)
	require.NoError(t, err)
	assert.Equal(t, "Shield", shield)

	sea, err := FrequencyLabel(FrequencySEAturday)
	require.NoError(t, err)
	assert.Equal(t, "SEAturday", sea)

	_, err = FrequencyLabel("x")
	require.ErrorIs(t, err, lookup.ErrNotFound)
	_, err = FrequencyLabel("H")
	require.ErrorIs(t, err, lookup.ErrNotFound, "tags are case sensitive")

	all := Frequencies()
	assert.Len(t, all, 8)
	for _, f := range all {
		label, err := FrequencyLabel(f)
		require.NoError(t, err)
		assert.NotEmpty(t, label)
	}
}

func TestTournamentStatusLabel(t *testing.T) {
	t.Parallel()

	label, err := StatusLabel(StatusArchived)
	require.NoError(t, err)
	assert.Equal(t, "Archived", label)

	_, err = StatusLabel(5)
	require.ErrorIs(t, err, lookup.ErrNotFound)

	assert.Equal(t, []Status{
		StatusCreated, StatusStarted, StatusAborted, StatusFinished, StatusArchived,
	}, Statuses())
}

func TestTrophies(t *testing.T) {
	t.Parallel()

	all := Trophies()
	require.Len(t, all, 7)
	assert.Equal(t, "top1", all[0].Code)

	all[0].Label = "changed"
	again, err := GetTrophy("top1")
	require.NoError(t, err)
	assert.Equal(t, "Champion!", again.Label)
	assert.Equal(t, "images/trophy/Big-Gold-Cup.png", again.Asset)

	_, err = GetTrophy("top5")
	require.ErrorIs(t, err, lookup.ErrNotFound)
}

func TestValidateTrophiesRejectsBadCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		trophies []Trophy
	}{
		{name: "missing label", trophies: []Trophy{{Code: "a", Asset: "a.png"}}},
		{name: "duplicate code", trophies: []Trophy{
			{Code: "a", Asset: "a.png", Label: "A"},
			{Code: "a", Asset: "b.png", Label: "B"},
		}},
		{name: "absolute asset", trophies: []Trophy{{Code: "a", Asset: "/a.png", Label: "A"}}},
		{name: "unclean asset", trophies: []Trophy{{Code: "a", Asset: "images/../a.png", Label: "A"}}},
		{name: "no extension", trophies: []Trophy{{Code: "a", Asset: "images/a", Label: "A"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, validateTrophies(tt.trophies), ErrInvalidEnumeration)
		})
	}
}
