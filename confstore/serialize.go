// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package confstore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"
)

// Header is written as a comment block at the top of the file.
// It is for people reading the file; Parse ignores it.
type Header struct {
	Program   string
	Generated time.Time
}

// Serialize writes values to w in sorted key order. Entries that cannot be
// encoded are left out; their keys are returned so callers can warn.
func Serialize(w io.Writer, values map[string]string, h Header) ([]string, error) {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %s configuration\n", h.Program)
	fmt.Fprintf(bw, "# generated %s by %s\n", h.Generated.UTC().Format(time.RFC3339), h.Program)
	fmt.Fprintln(bw, "#")
	fmt.Fprintln(bw, "# values are wrapped in the first of \" ' | / that they do not contain")
	fmt.Fprintln(bw)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var dropped []string
	for _, k := range keys {
		encoded, err := Encode(values[k])
		if err != nil {
			if !errors.Is(err, ErrUnencodable) {
				return dropped, err
			}
			dropped = append(dropped, k)
			continue
		}
		fmt.Fprintf(bw, "%s=%s\n", k, encoded)
	}

	if err := bw.Flush(); err != nil {
		return dropped, err
	}
	return dropped, nil
}
