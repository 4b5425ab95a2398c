// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package musicroom

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// resolveRoot turns the environment value into an absolute directory path
// with forward slashes and a trailing slash.
func resolveRoot(lookup func(string) (string, bool), name string) (string, error) {
	raw, ok := lookup(name)
	if !ok || strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: environment variable %s is not set", ErrMissingRoot, name)
	}

	expanded, err := homedir.Expand(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMissingRoot, name, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMissingRoot, name, err)
	}

	root := filepath.ToSlash(abs)
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}
	return root, nil
}

// resolve returns value unchanged when it is absolute and joined to root
// otherwise.
func resolve(root, value string) string {
	if value == "" {
		return root
	}
	if filepath.IsAbs(filepath.FromSlash(value)) || filepath.VolumeName(value) != "" {
		return filepath.ToSlash(value)
	}
	return root + filepath.ToSlash(value)
}
