// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package confstore reads and writes the room configuration file.
//
// The file holds one key=value entry per line. Values are wrapped in the
// first delimiter, in the order " ' | /, that does not occur in the value.
// There is no escaping: a value that contains all four delimiters cannot be
// written, and Serialize drops it with a warning.
//
//	# comment lines start with '#'
//	room_name="My Library"
//	quote='he said "hi"'
//	motto=|it's "fine"|
//	odd=/a"b'c|d/
//	legacy=bareword remainder of line
//
// This package is the only place that knows the delimiter policy.
package confstore
