// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/MKhiriev/go-id-keeper/models"
)

const idFileName = "machineid"

var recordSuffix = []string{"User", "globalStorage", "storage.json"}

type pathResolver struct {
	dirs    DirectoryProvider
	appName string
	goos    string
}

// NewPathResolver builds a resolver for the install layouts of appName
// (e.g. "Cursor") on the current OS.
func NewPathResolver(dirs DirectoryProvider, appName string) PathResolver {
	return newPathResolver(dirs, appName, runtime.GOOS)
}

func newPathResolver(dirs DirectoryProvider, appName, goos string) *pathResolver {
	return &pathResolver{
		dirs:    dirs,
		appName: appName,
		goos:    goos,
	}
}

func (r *pathResolver) Resolve(kind models.ArtifactKind) (string, error) {
	candidates, err := r.Candidates(kind)
	if err != nil {
		return "", err
	}

	for _, candidate := range candidates {
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return candidates[0], nil
}

// Candidates returns the install roots joined with the artifact suffix.
// The canonical layout always comes first.
func (r *pathResolver) Candidates(kind models.ArtifactKind) ([]string, error) {
	var suffix []string
	switch kind {
	case models.ArtifactIDFile:
		suffix = []string{idFileName}
	case models.ArtifactStorageRecord:
		suffix = recordSuffix
	default:
		return nil, fmt.Errorf("unsupported artifact kind %s", kind)
	}

	base, err := r.dirs.BaseDir()
	if err != nil {
		return nil, err
	}

	roots := r.installRoots(base)
	candidates := make([]string, 0, len(roots))
	for _, root := range roots {
		candidates = append(candidates, filepath.Join(append([]string{root}, suffix...)...))
	}

	return candidates, nil
}

func (r *pathResolver) installRoots(base string) []string {
	lower := strings.ToLower(r.appName)

	if r.goos == goosWindows {
		return []string{
			filepath.Join(base, "Programs", lower),
			filepath.Join(base, lower),
		}
	}

	return []string{
		filepath.Join(base, r.appName),
		filepath.Join(base, "."+lower),
	}
}
