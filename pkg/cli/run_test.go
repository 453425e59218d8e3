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
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantsgg/gamedefs/pkg/config"
)

type testRun struct {
	fs     afero.Fs
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func (r *testRun) run(args ...string) int {
	return Run(args, &Env{
		Fs:        r.fs,
		Stdout:    &r.stdout,
		Stderr:    &r.stderr,
		ConfigDir: "/config",
	})
}

func newTestRun() *testRun {
	return &testRun{fs: afero.NewMemMapFs()}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	r := newTestRun()
	assert.Equal(t, ExitOK, r.run("-version"))
	assert.Equal(t, "gamedefs v"+config.AppVersion+"\n", r.stdout.String())
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown_flag", args: []string{"-nope"}},
		{name: "positional_argument", args: []string{"chess"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := newTestRun()
			assert.Equal(t, ExitUsage, r.run(tt.args...))
			assert.NotEmpty(t, r.stderr.String())
		})
	}

	r := newTestRun()
	assert.Equal(t, ExitOK, r.run("-h"))
}

func TestRun_DefaultSummary(t *testing.T) {
	t.Parallel()

	r := newTestRun()
	require.Equal(t, ExitOK, r.run(), r.stderr.String())
	assert.True(t, strings.HasPrefix(r.stdout.String(), "ok: "), r.stdout.String())
	assert.Contains(t, r.stdout.String(), "in 6 categories, 16 game statuses, 7 trophies")

	exists, err := afero.Exists(r.fs, "/config/"+config.CfgFile)
	require.NoError(t, err)
	assert.True(t, exists, "first run should write the default config")

	check := newTestRun()
	require.Equal(t, ExitOK, check.run("-check"))
	assert.Equal(t, r.stdout.String(), check.stdout.String())
}

func TestRun_Variant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		contains []string
	}{
		{
			name:     "by_id",
			query:    "antichess",
			contains: []string{"id:              antichess\n", "Antichess960", "tags:"},
		},
		{
			name:     "by_alternate_name",
			query:    "Caparandom",
			contains: []string{"id:              capablanca\n", "category:        fairy\n"},
		},
		{
			name:     "display_override",
			query:    "KingOfTheHill",
			contains: []string{"display name:    KING OF THE HILL\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := newTestRun()
			require.Equal(t, ExitOK, r.run("-variant", tt.query), r.stderr.String())
			for _, want := range tt.contains {
				assert.Contains(t, r.stdout.String(), want)
			}
		})
	}
}

func TestRun_UnknownVariantSuggests(t *testing.T) {
	t.Parallel()

	r := newTestRun()
	assert.Equal(t, ExitError, r.run("-variant", "antichesss"))
	assert.Contains(t, r.stderr.String(), `unknown variant: "antichesss"`)
	assert.Contains(t, r.stderr.String(), "did you mean antichess")
	assert.Empty(t, r.stdout.String())
}

func TestRun_List(t *testing.T) {
	t.Parallel()

	r := newTestRun()
	require.Equal(t, ExitOK, r.run("-list"))
	lines := strings.Split(strings.TrimSpace(r.stdout.String()), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "chess\tchess\t"), lines[0])

	shogi := newTestRun()
	require.Equal(t, ExitOK, shogi.run("-list", "-category", "Shogi"))
	assert.Contains(t, shogi.stdout.String(), "minishogi\tshogi\tMINISHOGI\n")
	assert.NotContains(t, shogi.stdout.String(), "\tchess\t")

	bad := newTestRun()
	assert.Equal(t, ExitError, bad.run("-category", "checkers"))
	assert.Contains(t, bad.stderr.String(), `unknown category: "checkers"`)
}

func TestRun_Export(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   []string
		prefix string
	}{
		{name: "config_default_json", args: []string{"-export", ""}, prefix: "{\n"},
		{name: "yaml", args: []string{"-export", "yaml"}, prefix: "version: "},
		{name: "csv", args: []string{"-export", "csv"}, prefix: "id,category,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := newTestRun()
			require.Equal(t, ExitOK, r.run(tt.args...), r.stderr.String())
			assert.True(t, strings.HasPrefix(r.stdout.String(), tt.prefix),
				"output starts with %q", r.stdout.String()[:min(20, r.stdout.Len())])
		})
	}

	r := newTestRun()
	assert.Equal(t, ExitError, r.run("-export", "xml"))
	assert.Contains(t, r.stderr.String(), `unknown export format: "xml"`)
}

func TestRun_ConfigErrors(t *testing.T) {
	t.Parallel()

	r := newTestRun()
	require.NoError(t, afero.WriteFile(r.fs, "/other/gamedefs.toml", []byte("config_schema = 7\n"), 0o600))
	assert.Equal(t, ExitError, r.run("-config", "/other/gamedefs.toml"))
	assert.Contains(t, r.stderr.String(), "error loading config")

	lang := newTestRun()
	assert.Equal(t, ExitError, lang.run("-lang", "sv"))
	assert.Contains(t, lang.stderr.String(), `unknown language: "sv"`)
}

func TestRun_DebugLogsToStderr(t *testing.T) {
	// Not parallel: -debug replaces the global logger.
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })

	r := newTestRun()
	require.Equal(t, ExitOK, r.run("-debug", "-check"))
	assert.Contains(t, r.stderr.String(), "built variant registry")
}
