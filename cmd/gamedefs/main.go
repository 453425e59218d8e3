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

package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/variantsgg/gamedefs/pkg/cli"
	"github.com/variantsgg/gamedefs/pkg/helpers"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], &cli.Env{
		Fs:        afero.NewOsFs(),
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		ConfigDir: helpers.ConfigDir(),
		LogDir:    helpers.LogDir(),
	}))
}
