// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"runtime"
)

const goosWindows = "windows"

type osDirectoryProvider struct {
	goos string
}

// NewOSDirectoryProvider returns the host OS base directory: the per-user
// local data directory (%LOCALAPPDATA%) on Windows and the per-user config
// directory everywhere else.
func NewOSDirectoryProvider() DirectoryProvider {
	return &osDirectoryProvider{goos: runtime.GOOS}
}

func (p *osDirectoryProvider) BaseDir() (string, error) {
	lookup := os.UserConfigDir
	if p.goos == goosWindows {
		lookup = os.UserCacheDir
	}

	dir, err := lookup()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoBaseDirectory, err)
	}
	if dir == "" {
		return "", ErrNoBaseDirectory
	}

	return dir, nil
}

type staticDirectoryProvider struct {
	dir string
}

// NewStaticDirectoryProvider always returns dir. It backs the base directory
// override.
func NewStaticDirectoryProvider(dir string) DirectoryProvider {
	return &staticDirectoryProvider{dir: dir}
}

func (p *staticDirectoryProvider) BaseDir() (string, error) {
	if p.dir == "" {
		return "", ErrNoBaseDirectory
	}
	return p.dir, nil
}
