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

// Package tournaments names the codes a tournament scheduler stores: pairing
// systems, recurrence frequencies and tournament statuses. It also holds the
// trophy catalog awarded to tournament winners.
package tournaments

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/variantsgg/gamedefs/pkg/lookup"
)

// Scheduling limits.
const (
	// ScheduleMaxDays is how far ahead scheduled tournaments are created.
	ScheduleMaxDays = 7
	// SpotlightsMax is the number of tournaments highlighted in the lobby.
	SpotlightsMax = 3
)

// ErrInvalidEnumeration is returned by Validate.
var ErrInvalidEnumeration = errors.New("invalid tournament enumeration")

// Pairing is the pairing algorithm of a tournament.
type Pairing int

const (
	PairingArena      Pairing = 0
	PairingRoundRobin Pairing = 1
	PairingSwiss      Pairing = 2
)

var pairingLabels = []string{
	PairingArena:      "Arena",
	PairingRoundRobin: "Round-Robin",
	PairingSwiss:      "Swiss",
}

// PairingLabel returns the display name of a pairing system.
func PairingLabel(p Pairing) (string, error) {
	if p < 0 || int(p) >= len(pairingLabels) {
		return "", lookup.NotFound("pairing system", strconv.Itoa(int(p)))
	}
	return pairingLabels[p], nil
}

// Pairings returns every pairing system in code order.
func Pairings() []Pairing {
	ps := make([]Pairing, len(pairingLabels))
	for i := range pairingLabels {
		ps[i] = Pairing(i)
	}
	return ps
}

// Frequency is the one-character recurrence tag of a scheduled tournament.
type Frequency string

const (
	FrequencyHourly    Frequency = "h"
	FrequencyDaily     Frequency = "d"
	FrequencyWeekly    Frequency = "w"
	FrequencyMonthly   Frequency = "m"
	FrequencyYearly    Frequency = "y"
	FrequencyMarathon  Frequency = "a"
	FrequencyShield    Frequency = "s"
	FrequencySEAturday Frequency = "S"
)

type frequencyDef struct {
	code  Frequency
	label string
}

var frequencies = []frequencyDef{
	{code: FrequencyHourly, label: "Hourly"},
	{code: FrequencyDaily, label: "Daily"},
	{code: FrequencyWeekly, label: "Weekly"},
	{code: FrequencyMonthly, label: "Monthly"},
	{code: FrequencyYearly, label: "Yearly"},
	{code: FrequencyMarathon, label: "Marathon"},
	{code: FrequencyShield, label: "Shield"},
	{code: FrequencySEAturday, label: "SEAturday"},
}

// FrequencyLabel returns the display name of a frequency tag. Tags are case
// sensitive: "s" is Shield, "S" is SEAturday.
func FrequencyLabel(f Frequency) (string, error) {
	for _, def := range frequencies {
		if def.code == f {
			return def.label, nil
		}
	}
	return "", lookup.NotFound("frequency", string(f))
}

// Frequencies returns every frequency tag in display order.
func Frequencies() []Frequency {
	fs := make([]Frequency, 0, len(frequencies))
	for _, def := range frequencies {
		fs = append(fs, def.code)
	}
	return fs
}

// Status is the lifecycle state of a tournament.
type Status int

const (
	StatusCreated  Status = 0
	StatusStarted  Status = 1
	StatusAborted  Status = 2
	StatusFinished Status = 3
	StatusArchived Status = 4
)

var statusLabels = []string{
	StatusCreated:  "Created",
	StatusStarted:  "Started",
	StatusAborted:  "Aborted",
	StatusFinished: "Finished",
	StatusArchived: "Archived",
}

// StatusLabel returns the display name of a tournament status.
func StatusLabel(s Status) (string, error) {
	if s < 0 || int(s) >= len(statusLabels) {
		return "", lookup.NotFound("tournament status", strconv.Itoa(int(s)))
	}
	return statusLabels[s], nil
}

// Statuses returns every tournament status in code order.
func Statuses() []Status {
	ss := make([]Status, len(statusLabels))
	for i := range statusLabels {
		ss[i] = Status(i)
	}
	return ss
}

// Validate checks that frequency tags are single characters used once and
// that every label is set.
func Validate() error {
	seen := make(map[Frequency]bool, len(frequencies))
	for _, def := range frequencies {
		if len(def.code) != 1 {
			return fmt.Errorf("%w: frequency %q is not one character", ErrInvalidEnumeration, def.code)
		}
		if seen[def.code] {
			return fmt.Errorf("%w: frequency %q used twice", ErrInvalidEnumeration, def.code)
		}
		if def.label == "" {
			return fmt.Errorf("%w: frequency %q has no label", ErrInvalidEnumeration, def.code)
		}
		seen[def.code] = true
	}
	for i, label := range pairingLabels {
		if label == "" {
			return fmt.Errorf("%w: pairing system %d has no label", ErrInvalidEnumeration, i)
		}
	}
	for i, label := range statusLabels {
		if label == "" {
			return fmt.Errorf("%w: tournament status %d has no label", ErrInvalidEnumeration, i)
		}
	}
	return validateTrophies(trophies)
}
