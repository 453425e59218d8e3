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

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = 1
	CfgEnv        = "GAMEDEFS_CFG"
)

// Export formats accepted by the export.format setting.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatCSV  = "csv"
)

var ErrSchemaMismatch = errors.New("schema version mismatch")

type Values struct {
	Assets       Assets `toml:"assets"`
	I18n         I18n   `toml:"i18n"`
	Export       Export `toml:"export"`
	ConfigSchema int    `toml:"config_schema"`
	DebugLogging bool   `toml:"debug_logging"`
}

type Assets struct {
	// StaticURL is the base the static asset server publishes under. It may
	// be absolute ("https://cdn.example.org/static") or rooted ("/static").
	StaticURL string `toml:"static_url" validate:"required,uri"`
}

type I18n struct {
	DefaultLanguage string `toml:"default_language" validate:"required,max=16"`
}

type Export struct {
	Format string `toml:"format" validate:"required,oneof=json yaml toml csv"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Assets: Assets{
		StaticURL: "/static",
	},
	I18n: I18n{
		DefaultLanguage: "en",
	},
	Export: Export{
		Format: FormatJSON,
	},
}

// Instance is a loaded config file. The current values are swapped as a
// whole on Load and never modified in place.
type Instance struct {
	fs       afero.Fs
	vals     atomic.Pointer[Values]
	cfgPath  string
	defaults Values
}

// NewConfig opens the config file in configDir, or the file named by the
// GAMEDEFS_CFG environment variable when it is set.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(fs afero.Fs, configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	return Open(fs, cfgPath, defaults)
}

// Open loads the config file at cfgPath, writing the defaults to it first
// if it doesn't exist yet.
//
//nolint:gocritic // config struct copied for immutability
func Open(fs afero.Fs, cfgPath string, defaults Values) (*Instance, error) {
	if cfgPath == "" {
		return nil, errors.New("config path not set")
	}

	cfg := &Instance{
		fs:       fs,
		cfgPath:  cfgPath,
		defaults: defaults,
	}
	initial := defaults
	cfg.vals.Store(&initial)

	exists, err := afero.Exists(fs, cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if !exists {
		log.Info().Str("path", cfgPath).Msg("saving new default config to disk")

		err := fs.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err = cfg.Load()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads the config file again and replaces the current values. On
// error the previous values stay in place.
func (c *Instance) Load() error {
	data, err := afero.ReadFile(c.fs, c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return ErrSchemaMismatch
	}

	err = Validate(&newVals)
	if err != nil {
		return err
	}

	if trimmed := strings.TrimSuffix(newVals.Assets.StaticURL, "/"); trimmed != "" {
		newVals.Assets.StaticURL = trimmed
	}
	c.vals.Store(&newVals)

	return nil
}

// Save writes the current values to the config file.
func (c *Instance) Save() error {
	vals := *c.vals.Load()
	vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(c.fs, c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks values against their field rules.
func Validate(vals *Values) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(vals)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("invalid config value for %s: fails %q (value %q)",
			fe.Namespace(), fe.Tag(), fmt.Sprint(fe.Value()))
	}
	return fmt.Errorf("invalid config: %w", err)
}

func (c *Instance) Path() string {
	return c.cfgPath
}

// Values returns a copy of the current values.
func (c *Instance) Values() Values {
	return *c.vals.Load()
}

func (c *Instance) DebugLogging() bool {
	return c.vals.Load().DebugLogging
}

// SetDebugLogging updates the setting and the global log level. The change
// is kept in memory until Save.
func (c *Instance) SetDebugLogging(enabled bool) {
	c.update(func(v *Values) { v.DebugLogging = enabled })
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func (c *Instance) DefaultLanguage() string {
	return c.vals.Load().I18n.DefaultLanguage
}

func (c *Instance) ExportFormat() string {
	return c.vals.Load().Export.Format
}

// StaticURL resolves an asset path relative to the static asset root.
func (c *Instance) StaticURL(assetPath string) (string, error) {
	base := c.vals.Load().Assets.StaticURL
	if assetPath == "" {
		return "", errors.New("empty asset path")
	}
	if strings.HasPrefix(assetPath, "/") {
		return "", fmt.Errorf("asset path must be relative: %s", assetPath)
	}

	joined, err := url.JoinPath(base, assetPath)
	if err != nil {
		return "", fmt.Errorf("failed to join static url %s: %w", base, err)
	}
	return joined, nil
}

// update copies the current values, applies fn and swaps the copy in.
func (c *Instance) update(fn func(*Values)) {
	for {
		old := c.vals.Load()
		next := *old
		fn(&next)
		if c.vals.CompareAndSwap(old, &next) {
			return
		}
	}
}
