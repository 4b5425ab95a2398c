// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package confstore

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Warning describes a line that Parse skipped.
type Warning struct {
	Line   int
	Text   string
	Reason string
}

var (
	reSkip = regexp.MustCompile(`^\s*(#.*)?$`)

	// reEntry holds one pattern per delimiter, in Delimiters order, followed
	// by the unquoted fallback.
	reEntry = []*regexp.Regexp{
		regexp.MustCompile(`^\s*([^\s=#]+)\s*=\s*"(.*)"\s*$`),
		regexp.MustCompile(`^\s*([^\s=#]+)\s*=\s*'(.*)'\s*$`),
		regexp.MustCompile(`^\s*([^\s=#]+)\s*=\s*\|(.*)\|\s*$`),
		regexp.MustCompile(`^\s*([^\s=#]+)\s*=\s*/(.*)/\s*$`),
		regexp.MustCompile(`^\s*([^\s=#]+)\s*=\s*(.*?)\s*$`),
	}
)

// Parse reads entries from r. Lines that match no entry form are reported
// as warnings and skipped. Only read errors are returned as errors.
func Parse(r io.Reader) (map[string]string, []Warning, error) {
	values := make(map[string]string)
	var warnings []Warning

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.ReplaceAll(scanner.Text(), "\x1a", "")
		line = strings.TrimSuffix(line, "\r")
		if reSkip.MatchString(line) {
			continue
		}

		key, value, ok := parseEntry(line)
		if !ok {
			warnings = append(warnings, Warning{Line: lineNo, Text: line, Reason: "unparseable entry"})
			continue
		}
		if _, dup := values[key]; dup {
			warnings = append(warnings, Warning{Line: lineNo, Text: line, Reason: "duplicate key " + key})
		}
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("line %d: %w", lineNo+1, err)
	}

	return values, warnings, nil
}

// parseEntry tries each entry form in priority order.
func parseEntry(line string) (key, value string, ok bool) {
	for _, re := range reEntry {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}
