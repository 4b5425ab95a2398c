// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package confstore_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdhender/musicroom/confstore"
)

var testHeader = confstore.Header{
	Program:   "musicroom test",
	Generated: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

func TestParse_Scenario(t *testing.T) {
	values, warnings, err := confstore.Parse(strings.NewReader("version=\"0.40\"\nroom_name='My Library'\n"))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, map[string]string{"version": "0.40", "room_name": "My Library"}, values)
}

func TestParse_AllForms(t *testing.T) {
	input := strings.Join([]string{
		"# comment",
		"",
		"   ",
		`a="value with ' excluded"`,
		`b='value with " excluded'`,
		`c=|value with " and ' excluded|`,
		`d=/value with "'| excluded/`,
		`e=bareword remainder of line  `,
		`  f  =  "spaced"  `,
		`g=""`,
		"h=\"ctrl\"\x1a",
		"i='crlf'\r",
	}, "\n")

	values, warnings, err := confstore.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, map[string]string{
		"a": `value with ' excluded`,
		"b": `value with " excluded`,
		"c": `value with " and ' excluded`,
		"d": `value with "'| excluded`,
		"e": "bareword remainder of line",
		"f": "spaced",
		"g": "",
		"h": "ctrl",
		"i": "crlf",
	}, values)
}

func TestParse_MalformedLinesAreWarnings(t *testing.T) {
	input := "version=\"0.40\"\nthis line has no equals sign\n=\"no key\"\nroom_name=\"ok\"\n"

	values, warnings, err := confstore.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Equal(t, 2, warnings[0].Line)
	assert.Equal(t, 3, warnings[1].Line)
	assert.Equal(t, "this line has no equals sign", warnings[0].Text)
	assert.Equal(t, "unparseable entry", warnings[0].Reason)
	assert.Equal(t, map[string]string{"version": "0.40", "room_name": "ok"}, values)
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	values, warnings, err := confstore.Parse(strings.NewReader("k=\"one\"\nk=\"two\"\n"))
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Reason, "duplicate")
	assert.Equal(t, "two", values["k"])
}

func TestDelimiter_Priority(t *testing.T) {
	tests := []struct {
		value string
		want  byte
	}{
		{"plain", '"'},
		{`has "double"`, '\''},
		{`has "double" and 'single'`, '|'},
		{`has "'| all but slash`, '/'},
		{"a/b|c'd", '"'},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := confstore.Delimiter(tt.value)
			require.NoError(t, err)
			assert.Equal(t, string(tt.want), string(got))
		})
	}
}

func TestEncode_AllDelimitersFails(t *testing.T) {
	_, err := confstore.Encode(`a"b'c|d/e`)
	assert.ErrorIs(t, err, confstore.ErrUnencodable)

	_, err = confstore.Encode("two\nlines")
	assert.ErrorIs(t, err, confstore.ErrUnencodable)
}

func TestRoundTrip(t *testing.T) {
	values := map[string]string{
		"empty":    "",
		"spaces":   "  leading and trailing  ",
		"double":   `"quoted"`,
		"single":   `it's`,
		"both":     `it's "quoted"`,
		"three":    `"'|`,
		"slashy":   "/usr/local/music/",
		"hash":     "# not a comment",
		"equals":   "a=b=c",
		"truthy":   "TRUE",
		"unicode":  "Motörhead – Ace of Spades",
		"pipes":    "a|b|c",
		"slashpair": `/"x"/`,
	}

	var buf bytes.Buffer
	dropped, err := confstore.Serialize(&buf, values, testHeader)
	require.NoError(t, err)
	assert.Empty(t, dropped)

	got, warnings, err := confstore.Parse(&buf)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, values, got)
}

func TestSerialize_DropsUnencodable(t *testing.T) {
	values := map[string]string{
		"good": "fine",
		"bad":  `a"b'c|d/e`,
	}

	var buf bytes.Buffer
	dropped, err := confstore.Serialize(&buf, values, testHeader)
	require.NoError(t, err)
	assert.Equal(t, []string{"bad"}, dropped)

	got, _, err := confstore.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"good": "fine"}, got)
}

func TestSerialize_Golden(t *testing.T) {
	values := map[string]string{
		"version":   "0.40",
		"room_name": "My Library",
		"quote":     `say "hi"`,
		"motto":     `it's "fine"`,
		"odd":       `a"b'c|d`,
		"bad":       `a"b'c|d/e`,
	}

	var buf bytes.Buffer
	_, err := confstore.Serialize(&buf, values, testHeader)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "serialize", buf.Bytes())
}

func TestSaveLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/room", 0o755))

	exists, err := confstore.Exists(fs, "/room/musicroom.conf")
	require.NoError(t, err)
	assert.False(t, exists)

	values := map[string]string{"version": "0.40", "room_name": "My Library"}
	dropped, err := confstore.Save(fs, "/room/musicroom.conf", values, testHeader)
	require.NoError(t, err)
	assert.Empty(t, dropped)

	exists, err = confstore.Exists(fs, "/room/musicroom.conf")
	require.NoError(t, err)
	assert.True(t, exists)

	got, warnings, err := confstore.Load(fs, "/room/musicroom.conf")
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, values, got)

	// Save rewrites the whole file.
	_, err = confstore.Save(fs, "/room/musicroom.conf", map[string]string{"version": "0.40"}, testHeader)
	require.NoError(t, err)
	got, _, err = confstore.Load(fs, "/room/musicroom.conf")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"version": "0.40"}, got)
}

func TestLoad_Missing(t *testing.T) {
	_, _, err := confstore.Load(afero.NewMemMapFs(), "/nowhere/musicroom.conf")
	assert.Error(t, err)
}

func TestExists_Directory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/room/musicroom.conf", 0o755))

	_, err := confstore.Exists(fs, "/room/musicroom.conf")
	assert.Error(t, err)
}
