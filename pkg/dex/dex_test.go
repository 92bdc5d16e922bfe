package dex

import (
	"strconv"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnpokedex/internal/iotesting"
	"github.com/gnames/gnpokedex/pkg/corpus"
	"github.com/gnames/gnpokedex/pkg/errcode"
	"github.com/gnames/gnpokedex/pkg/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	en = iotesting.English
	fr = iotesting.French
	de = iotesting.German
	ja = iotesting.Japanese
)

func newDex(t *testing.T) *dex {
	t.Helper()
	return newDexFrom(t, iotesting.Tables())
}

func newDexFrom(t *testing.T, tbl *corpus.Tables) *dex {
	t.Helper()
	idx, err := index.New(tbl)
	require.NoError(t, err)
	return New(idx, iotesting.Config()).(*dex)
}

func speciesIDs(entries []ChainEntry) []int {
	res := make([]int, len(entries))
	for i := range entries {
		res[i] = entries[i].SpeciesID
	}
	return res
}

func TestResolve(t *testing.T) {
	d := newDex(t)

	tests := []struct {
		name       string
		identifier string
		form       string
		wantID     int
	}{
		{"dex number", "1", "", 1},
		{"dex number with spaces", " 3 ", "", 3},
		{"identifier", "ivysaur", "", 2},
		{"identifier upper case", "IVYSAUR", "", 2},
		{"localized name", "Florizarre", "", 3},
		{"localized name lowest id", "Doppel", "", 11},
		{"default form", "venusaur", "", 3},
		{"explicit form", "venusaur", "venusaur-mega", 10033},
		{"explicit form case", "3", "VENUSAUR-GMAX", 10195},
		{"form identifier", "venusaur-gmax", "", 10195},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, err := d.Resolve(tt.identifier, tt.form)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, form.ID)
		})
	}
}

func TestResolveNotFound(t *testing.T) {
	d := newDex(t)

	tests := []struct {
		name       string
		identifier string
		form       string
	}{
		{"unknown id", "999999", ""},
		{"zero id", "0", ""},
		{"negative id", "-4", ""},
		{"unknown name", "missingno", ""},
		{"empty", "", ""},
		{"unknown form", "venusaur", "venusaur-origin"},
		{"form of other species", "bulbasaur", "venusaur-mega"},
		{"species without forms", "formless", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Resolve(tt.identifier, tt.form)
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, errcode.NotFoundError, gnErr.Code)
		})
	}
}

func TestJoinAttributes(t *testing.T) {
	d := newDex(t)

	form, err := d.Resolve("bulbasaur", "")
	require.NoError(t, err)
	attrs, err := d.JoinAttributes(form, fr)
	require.NoError(t, err)
	assert.Equal(t, []string{"grass", "poison"}, attrs.Types)
	assert.Equal(t, []string{"Plante", "Poison"}, attrs.TypeNames)
	assert.Equal(t, BaseStats{45, 49, 49, 65, 65, 45}, attrs.Stats)
	assert.Equal(t, 318, attrs.Stats.Total())
	assert.Equal(t, []string{"bulbasaur"}, attrs.Forms)

	form, err = d.Resolve("venusaur", "")
	require.NoError(t, err)
	attrs, err = d.JoinAttributes(form, en)
	require.NoError(t, err)
	assert.Equal(t, []string{"venusaur", "venusaur-mega", "venusaur-gmax"}, attrs.Forms)
}

func TestJoinAttributesSlotOrder(t *testing.T) {
	tbl := iotesting.Tables()
	tbl.PokemonTypes = append([]corpus.PokemonType{
		{PokemonID: 1, TypeID: 4, Slot: 2},
		{PokemonID: 1, TypeID: 12, Slot: 1},
	}, tbl.PokemonTypes[2:]...)
	d := newDexFrom(t, tbl)

	form, err := d.Resolve("bulbasaur", "")
	require.NoError(t, err)
	attrs, err := d.JoinAttributes(form, en)
	require.NoError(t, err)
	assert.Equal(t, []string{"grass", "poison"}, attrs.Types)
}

func TestJoinAttributesUnknownType(t *testing.T) {
	d := newDex(t)

	// form 50 has an unknown type and misses the speed stat
	form, ok := d.idx.Form(50)
	require.True(t, ok)
	_, err := d.JoinAttributes(form, en)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.MissingStatError, gnErr.Code)
	assert.Equal(t, []any{"glitchmon", "speed"}, gnErr.Vars)

	tbl := iotesting.Tables()
	tbl.PokemonStats = append(tbl.PokemonStats,
		corpus.PokemonStat{PokemonID: 50, StatID: 6, BaseStat: 6})
	d = newDexFrom(t, tbl)
	attrs, err := d.JoinAttributes(form, en)
	require.NoError(t, err)
	assert.Equal(t, []string{"normal"}, attrs.Types)
	assert.Equal(t, []string{"Normal"}, attrs.TypeNames)
}

func TestFormsDedup(t *testing.T) {
	tbl := iotesting.Tables()
	tbl.Pokemon = append(tbl.Pokemon,
		corpus.Pokemon{ID: 20001, Identifier: "", SpeciesID: 1},
		corpus.Pokemon{ID: 20002, Identifier: "bulbasaur", SpeciesID: 1},
		corpus.Pokemon{ID: 20003, Identifier: "bulbasaur-cap", SpeciesID: 1},
	)
	d := newDexFrom(t, tbl)
	assert.Equal(t, []string{"bulbasaur", "bulbasaur-cap"}, d.formNames(1))
}

func TestBuildChain(t *testing.T) {
	d := newDex(t)

	tests := []struct {
		name    string
		chainID int
		want    []int
	}{
		{"linear line", 1, []int{1, 2, 3}},
		{"siblings in ascending order", 5, []int{10, 11, 20}},
		{"single node", 66, []int{132}},
		{"member without forms omitted", 12, []int{70}},
		{"unreachable members ignored", 13, []int{80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := d.BuildChain(tt.chainID, en)
			require.NoError(t, err)
			assert.Equal(t, tt.want, speciesIDs(res))
		})
	}
}

func TestBuildChainBreadthFirst(t *testing.T) {
	tbl := iotesting.Tables()
	// 201 -> {203, 202}, 202 -> 205, 203 -> 204 -> 206, shuffled rows
	parents := []struct{ id, parent int }{
		{204, 203}, {206, 204}, {203, 201}, {201, 0}, {205, 202}, {202, 201},
	}
	for _, p := range parents {
		sp := corpus.Species{
			ID:               p.id,
			Identifier:       "mon-" + strconv.Itoa(p.id),
			EvolutionChainID: 77,
		}
		if p.parent != 0 {
			sp.EvolvesFromSpeciesID = &p.parent
		}
		tbl.Species = append(tbl.Species, sp)
		tbl.Pokemon = append(tbl.Pokemon, corpus.Pokemon{
			ID:         p.id,
			Identifier: sp.Identifier,
			SpeciesID:  p.id,
		})
	}

	d := newDexFrom(t, tbl)
	res, err := d.BuildChain(77, en)
	require.NoError(t, err)
	assert.Equal(t, []int{201, 202, 203, 205, 204, 206}, speciesIDs(res))
}

func TestBuildChainEntries(t *testing.T) {
	d := newDex(t)

	res, err := d.BuildChain(1, fr)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, ChainEntry{
		Name:      "Bulbizarre",
		Image:     "sprites/1.png",
		DexNumber: 1,
		SpeciesID: 1,
		FormID:    1,
	}, res[0])
	assert.Equal(t, "Herbizarre", res[1].Name)
	assert.Equal(t, "Florizarre", res[2].Name)

	// German names are missing, identifiers are capitalized.
	res, err = d.BuildChain(1, de)
	require.NoError(t, err)
	assert.Equal(t, "Ivysaur", res[1].Name)
}

func TestEvolutionLine(t *testing.T) {
	d := newDex(t)

	tests := []struct {
		name      string
		speciesID int
		want      []int
	}{
		{"middle of a line", 2, []int{1, 2, 3}},
		{"branch", 20, []int{10, 11, 20}},
		{"no chain", 151, []int{151}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := d.EvolutionLine(tt.speciesID, en)
			require.NoError(t, err)
			assert.Equal(t, tt.want, speciesIDs(res))
		})
	}

	_, err := d.EvolutionLine(999999, en)
	assert.True(t, errcode.Is(err, errcode.NotFoundError))
}

func TestBuildChainMalformed(t *testing.T) {
	tbl := iotesting.Tables()
	tbl.Species = append(tbl.Species,
		corpus.Species{ID: 90, Identifier: "loopmon-a",
			EvolvesFromSpeciesID: ptr(91), EvolutionChainID: 20},
		corpus.Species{ID: 91, Identifier: "loopmon-b",
			EvolvesFromSpeciesID: ptr(90), EvolutionChainID: 20},
	)
	d := newDexFrom(t, tbl)

	tests := []struct {
		name    string
		chainID int
		reason  string
	}{
		{"two roots", 9, "chain has 2 roots"},
		{"no root", 20, "chain has no root"},
		{"no members", 777, "chain has no members"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.BuildChain(tt.chainID, en)
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, errcode.MalformedChainError, gnErr.Code)
			assert.Equal(t, []any{tt.chainID, tt.reason}, gnErr.Vars)
		})
	}
}

func TestChainSiblingOrderIgnoresCorpusOrder(t *testing.T) {
	tbl := iotesting.Tables()
	// reverse the species table
	for i, j := 0, len(tbl.Species)-1; i < j; i, j = i+1, j-1 {
		tbl.Species[i], tbl.Species[j] = tbl.Species[j], tbl.Species[i]
	}
	d := newDexFrom(t, tbl)

	res, err := d.BuildChain(5, en)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 20}, speciesIDs(res))
}

func ptr(i int) *int {
	return &i
}
