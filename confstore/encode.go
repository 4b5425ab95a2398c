// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package confstore

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnencodable is returned for values the file format cannot hold.
var ErrUnencodable = errors.New("value cannot be encoded")

// Delimiters are the quoting characters in priority order.
var Delimiters = []byte{'"', '\'', '|', '/'}

// Delimiter returns the first delimiter that does not occur in value.
func Delimiter(value string) (byte, error) {
	if strings.ContainsAny(value, "\r\n\x1a") {
		return 0, fmt.Errorf("%w: line break or EOF character in value", ErrUnencodable)
	}
	for _, d := range Delimiters {
		if strings.IndexByte(value, d) < 0 {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: value contains every delimiter %q", ErrUnencodable, string(Delimiters))
}

// Encode returns value wrapped in its delimiter.
func Encode(value string) (string, error) {
	d, err := Delimiter(value)
	if err != nil {
		return "", err
	}
	return string(d) + value + string(d), nil
}
