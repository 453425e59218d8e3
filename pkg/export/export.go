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

// Package export writes a snapshot of the loaded definitions in a
// machine-readable format, for clients that cannot link this module.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/variantsgg/gamedefs/pkg/config"
	"github.com/variantsgg/gamedefs/pkg/lookup"
)

type Format string

const (
	FormatJSON Format = config.FormatJSON
	FormatYAML Format = config.FormatYAML
	FormatTOML Format = config.FormatTOML
	// FormatCSV covers the variant table only.
	FormatCSV Format = config.FormatCSV
)

var formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatCSV}

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	return "", lookup.NotFound("export format", s)
}

// Render writes the snapshot to w.
func Render(w io.Writer, s *Snapshot, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(s); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
	case FormatCSV:
		rows := make([]*variantRow, 0, len(s.Variants))
		for i := range s.Variants {
			rows = append(rows, newVariantRow(&s.Variants[i]))
		}
		if err := gocsv.Marshal(rows, w); err != nil {
			return fmt.Errorf("failed to encode csv: %w", err)
		}
	default:
		return lookup.NotFound("export format", string(format))
	}
	return nil
}

// variantRow flattens a Variant for CSV, where tags are space separated.
type variantRow struct {
	ID             string `csv:"id"`
	Category       string `csv:"category"`
	DisplayName    string `csv:"display_name"`
	Label          string `csv:"label"`
	Icon           string `csv:"icon"`
	AlternateName  string `csv:"alternate_name"`
	TranslationKey string `csv:"translation_key"`
	Tags           string `csv:"tags"`
}

func newVariantRow(v *Variant) *variantRow {
	return &variantRow{
		ID:             v.ID,
		Category:       v.Category,
		DisplayName:    v.DisplayName,
		Label:          v.Label,
		Icon:           v.Icon,
		AlternateName:  v.AlternateName,
		TranslationKey: v.TranslationKey,
		Tags:           strings.Join(v.Tags, " "),
	}
}
