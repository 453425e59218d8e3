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

package helpers

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"

	"github.com/variantsgg/gamedefs/pkg/config"
)

var (
	userDirOnce        sync.Once
	userDirCache       string
	userDirCacheExists bool
)

// HasUserDir checks if a "user" directory exists next to the executable
// and returns true and the absolute path to it. When it exists, config and
// logs are kept there for a portable install. The result is cached after
// the first call.
func HasUserDir() (string, bool) {
	userDirOnce.Do(func() {
		exePath := os.Getenv(config.AppEnv)
		if exePath == "" {
			var err error
			exePath, err = os.Executable()
			if err != nil {
				return
			}
		}
		userDirCache, userDirCacheExists = findUserDir(exePath)
	})

	return userDirCache, userDirCacheExists
}

func findUserDir(exePath string) (string, bool) {
	userDir := filepath.Join(filepath.Dir(exePath), config.UserDir)

	info, err := os.Stat(userDir)
	if err != nil || !info.IsDir() {
		return "", false
	}

	return userDir, true
}

// ConfigDir is the directory the config file lives in.
func ConfigDir() string {
	if v, ok := HasUserDir(); ok {
		return v
	}
	return filepath.Join(xdg.ConfigHome, config.AppName)
}

// LogDir is the directory rotated log files are written to.
func LogDir() string {
	if v, ok := HasUserDir(); ok {
		return filepath.Join(v, config.LogsDir)
	}
	return filepath.Join(xdg.DataHome, config.AppName, config.LogsDir)
}
