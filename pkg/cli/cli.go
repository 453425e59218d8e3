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

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/variantsgg/gamedefs/pkg/config"
	"github.com/variantsgg/gamedefs/pkg/helpers"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Env is everything a run touches outside its arguments.
type Env struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
	// ConfigDir holds the config file unless -config or GAMEDEFS_CFG say
	// otherwise.
	ConfigDir string
	// LogDir receives the rotated log file. Empty disables file logging.
	LogDir string
}

type Flags struct {
	set      *flag.FlagSet
	Config   *string
	Variant  *string
	Category *string
	Export   *string
	Lang     *string
	Check    *bool
	List     *bool
	Debug    *bool
	Version  *bool
}

// SetupFlags defines all flags on a new flag set reporting to stderr.
func SetupFlags(stderr io.Writer) *Flags {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	return &Flags{
		set: fs,
		Config: fs.String(
			"config",
			"",
			"path to the config file",
		),
		Check: fs.Bool(
			"check",
			false,
			"validate all definition tables and print a summary",
		),
		Variant: fs.String(
			"variant",
			"",
			"print the definition of a variant by ID or alternate name",
		),
		List: fs.Bool(
			"list",
			false,
			"list variants in display order",
		),
		Category: fs.String(
			"category",
			"",
			"only list variants of this category",
		),
		Export: fs.String(
			"export",
			"",
			"write all definitions as json, yaml, toml or csv (default from config)",
		),
		Lang: fs.String(
			"lang",
			"",
			"language for translated labels (default from config)",
		),
		Debug: fs.Bool(
			"debug",
			false,
			"log debug output to stderr",
		),
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
	}
}

func (f *Flags) isFlagPassed(name string) bool {
	found := false
	f.set.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Pre parses args and handles flags that need no setup. done reports that
// the run is over and code is its exit code.
func (f *Flags) Pre(args []string, stdout io.Writer) (code int, done bool) {
	if err := f.set.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK, true
		}
		return ExitUsage, true
	}

	if f.set.NArg() > 0 {
		_, _ = fmt.Fprintf(f.set.Output(), "unexpected arguments: %v\n", f.set.Args())
		f.set.Usage()
		return ExitUsage, true
	}

	if *f.Version {
		_, _ = fmt.Fprintf(stdout, "gamedefs v%s\n", config.AppVersion)
		return ExitOK, true
	}

	return ExitOK, false
}

// Setup initializes logging and loads the config file.
func (f *Flags) Setup(env *Env) (*config.Instance, error) {
	var writers []io.Writer
	if *f.Debug {
		writers = append(writers, zerolog.ConsoleWriter{Out: env.Stderr})
	}

	if env.LogDir != "" {
		if err := helpers.InitLogging(env.LogDir, writers); err != nil {
			return nil, fmt.Errorf("error initializing logging: %w", err)
		}
	} else if len(writers) > 0 {
		log.Logger = log.Output(io.MultiWriter(writers...)).With().Timestamp().Logger()
	}

	var (
		cfg *config.Instance
		err error
	)
	if *f.Config != "" {
		cfg, err = config.Open(env.Fs, *f.Config, config.BaseDefaults)
	} else {
		cfg, err = config.NewConfig(env.Fs, env.ConfigDir, config.BaseDefaults)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if *f.Debug || cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return cfg, nil
}
