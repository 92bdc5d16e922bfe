package dex

import (
	"testing"

	"github.com/gnames/gnpokedex/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlavor(t *testing.T) {
	d := newDex(t)

	res := d.Flavor(1, en)
	assert.Equal(t, []FlavorEntry{
		{
			Version:     "red",
			VersionName: "Red",
			Text:        "A strange seed was planted on its back at birth.",
		},
		{
			Version:     "blue",
			VersionName: "Blue",
			Text:        "It can go for days without eating a single morsel.",
		},
	}, res)

	// no version names in French, identifiers are capitalized
	res = d.Flavor(1, fr)
	require.Len(t, res, 1)
	assert.Equal(t, "Red", res[0].VersionName)
	assert.Equal(t, "Au matin de sa vie, la graine sur son dos.", res[0].Text)
}

func TestFlavorTruncation(t *testing.T) {
	d := newDex(t)

	// three texts refer to two versions
	res := d.Flavor(132, en)
	assert.Equal(t, []FlavorEntry{
		{Version: "red", VersionName: "Red", Text: "Text A"},
		{Version: "blue", VersionName: "Blue", Text: "Text B"},
	}, res)

	// unknown version 99 is skipped, its text is kept
	res = d.Flavor(151, en)
	assert.Equal(t, []FlavorEntry{
		{Version: "yellow", VersionName: "Yellow", Text: "Lost text"},
	}, res)
}

func TestFlavorEmpty(t *testing.T) {
	d := newDex(t)

	res := d.Flavor(132, fr)
	assert.NotNil(t, res)
	assert.Empty(t, res)

	res = d.Flavor(99999, en)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestFlavorForVersion(t *testing.T) {
	d := newDex(t)

	tests := []struct {
		name    string
		species int
		version string
		want    string
		isErr   bool
	}{
		{"by identifier", 132, "blue", "Text C", false},
		{"by id", 132, "1", "Text A", false},
		{"case insensitive", 1, "RED", "A strange seed was planted on its back at birth.", false},
		{"no text", 132, "yellow", "", true},
		{"unknown version", 132, "gold", "", true},
		{"unknown version id", 132, "99", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := d.FlavorForVersion(tt.species, en, tt.version)
			if tt.isErr {
				require.Error(t, err)
				assert.True(t, errcode.Is(err, errcode.NotFoundError))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Text)
		})
	}
}

func TestNormalizeFlavor(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"newline", "a\nb", "a b"},
		{"crlf is one run", "a\r\nb", "a b"},
		{"form feed", "a\fb", "a b"},
		{"vertical tab", "a\vb", "a b"},
		{"unicode breaks", "a\u2028\u2029b\u0085c", "a b c"},
		{"trimmed", "\n a \n", "a"},
		{"spaces kept", "a  b", "a  b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeFlavor(tt.input))
		})
	}
}
