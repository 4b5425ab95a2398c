// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package confstore

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// Load parses the configuration file at path.
func Load(fs afero.Fs, path string) (map[string]string, []Warning, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	values, warnings, err := Parse(f)
	if err != nil {
		return nil, warnings, fmt.Errorf("%s: %w", path, err)
	}
	return values, warnings, nil
}

// Save replaces the configuration file at path with values.
// It returns the keys that could not be encoded.
func Save(fs afero.Fs, path string, values map[string]string, h Header) ([]string, error) {
	var buf bytes.Buffer
	dropped, err := Serialize(&buf, values, h)
	if err != nil {
		return dropped, err
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), 0o644); err != nil {
		return dropped, fmt.Errorf("%s: %w", path, err)
	}
	return dropped, nil
}

// Exists reports whether a configuration file is present at path.
func Exists(fs afero.Fs, path string) (bool, error) {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s: is a directory", path)
	}
	return true, nil
}
