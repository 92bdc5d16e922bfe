package iocorpus

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnpokedex/pkg/config"
	"github.com/gnames/gnpokedex/pkg/corpus"
	"github.com/gnames/gnpokedex/pkg/dex"
	"github.com/gnames/gnpokedex/pkg/errcode"
	"github.com/gnames/gnpokedex/pkg/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtures = "testdata/csv"

// copyFixtures copies CSV fixtures into a temporary directory, so tests
// can break them.
func copyFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	entries, err := os.ReadDir(fixtures)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(fixtures, e.Name()))
		require.NoError(t, err)
		err = os.WriteFile(filepath.Join(dir, e.Name()), data, 0644)
		require.NoError(t, err)
	}
	return dir
}

func loadCSV(t *testing.T, dir string) (*corpus.Tables, error) {
	t.Helper()
	return NewCSV(dir, 4).Load(context.Background())
}

func TestCSVLoad(t *testing.T) {
	tbl, err := loadCSV(t, fixtures)
	require.NoError(t, err)

	require.Len(t, tbl.Species, 4)
	assert.Equal(t, "bulbasaur", tbl.Species[0].Identifier)
	assert.Nil(t, tbl.Species[0].EvolvesFromSpeciesID)
	require.NotNil(t, tbl.Species[1].EvolvesFromSpeciesID)
	assert.Equal(t, 1, *tbl.Species[1].EvolvesFromSpeciesID)
	assert.Equal(t, 66, tbl.Species[3].EvolutionChainID)

	assert.Len(t, tbl.Pokemon, 5)
	assert.Len(t, tbl.PokemonTypes, 9)
	assert.Len(t, tbl.Types, 3)
	assert.Len(t, tbl.PokemonStats, 30)
	assert.Len(t, tbl.Versions, 3)

	assert.Equal(t, "Seed Pokémon", tbl.SpeciesNames[0].Genus)
	assert.Equal(t, "Métamorph", tbl.SpeciesNames[5].Name)

	require.Len(t, tbl.FlavorTexts, 4)
	assert.Equal(t,
		"A strange seed was\nplanted on its\nback at birth.",
		tbl.FlavorTexts[0].Text,
	)

	require.Len(t, tbl.Languages, 4)
	assert.Equal(t, corpus.Language{
		ID: 1, ISO639: "ja", Identifier: "ja-Hrkt", Official: true, Order: 1,
	}, tbl.Languages[0])
	assert.False(t, tbl.Languages[3].Official)

	assert.Len(t, tbl.LanguageNames, 4)
	assert.Len(t, tbl.TypeNames, 4)
	// optional table without a file
	assert.Nil(t, tbl.VersionNames)
}

func TestCSVToCard(t *testing.T) {
	tbl, err := loadCSV(t, fixtures)
	require.NoError(t, err)
	idx, err := index.New(tbl)
	require.NoError(t, err)

	d := dex.New(idx, config.New())
	card, err := d.Assemble(dex.Query{Identifier: "1", WithFlavor: true})
	require.NoError(t, err)
	assert.Equal(t, "Bulbasaur", card.Name)
	assert.Equal(t, []string{"grass", "poison"}, card.Types)
	assert.Equal(t, 318, card.BaseStats.Total())
	assert.Len(t, card.EvolutionLine, 3)
	require.Len(t, card.Flavor, 2)
	assert.Equal(t, "Red", card.Flavor[0].VersionName)
	assert.Equal(t,
		"A strange seed was planted on its back at birth.",
		card.Flavor[0].Text,
	)

	card, err = d.Assemble(dex.Query{Identifier: "métamorph", LanguageID: 5})
	require.NoError(t, err)
	assert.Equal(t, 132, card.DexNumber)
	assert.Equal(t, "Métamorph", card.Name)
}

func TestCSVErrors(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		data   string
		remove bool
		table  string
	}{
		{
			name:   "missing required table",
			file:   "pokemon_stats.csv",
			remove: true,
			table:  corpus.PokemonStatsTable,
		},
		{
			name:  "missing column",
			file:  "pokemon.csv",
			data:  "id,identifier\n1,bulbasaur\n",
			table: corpus.PokemonTable,
		},
		{
			name:  "bad integer",
			file:  "types.csv",
			data:  "id,identifier\none,normal\n",
			table: corpus.TypesTable,
		},
		{
			name:  "empty file",
			file:  "versions.csv",
			data:  "",
			table: corpus.VersionsTable,
		},
		{
			name:  "bad boolean",
			file:  "languages.csv",
			data:  "id,iso639,identifier,official,order\n9,en,en,maybe,1\n",
			table: corpus.LanguagesTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := copyFixtures(t)
			path := filepath.Join(dir, tt.file)
			if tt.remove {
				require.NoError(t, os.Remove(path))
			} else {
				require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))
			}

			_, err := loadCSV(t, dir)
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, errcode.LoadError, gnErr.Code)
			assert.Equal(t, []any{tt.table}, gnErr.Vars)
		})
	}
}

func TestCSVRequiredTables(t *testing.T) {
	for _, table := range corpus.RequiredTables {
		t.Run(table, func(t *testing.T) {
			dir := copyFixtures(t)
			require.NoError(t, os.Remove(filepath.Join(dir, table+".csv")))
			_, err := loadCSV(t, dir)
			require.Error(t, err)
			assert.True(t, errcode.Is(err, errcode.LoadError))
		})
	}

	// tables of localized labels can be missing
	dir := copyFixtures(t)
	for _, table := range []string{corpus.LanguageNamesTable, corpus.TypeNamesTable} {
		require.NoError(t, os.Remove(filepath.Join(dir, table+".csv")))
	}
	res, err := loadCSV(t, dir)
	require.NoError(t, err)
	assert.Empty(t, res.LanguageNames)
	assert.Empty(t, res.TypeNames)
	assert.NotEmpty(t, res.Species)
}

func TestCSVOpenErrors(t *testing.T) {
	_, err := loadCSV(t, filepath.Join(t.TempDir(), "nowhere"))
	assert.True(t, errcode.Is(err, errcode.CorpusOpenError))

	file := filepath.Join(t.TempDir(), "file.csv")
	require.NoError(t, os.WriteFile(file, []byte("id\n"), 0644))
	_, err = loadCSV(t, file)
	assert.True(t, errcode.Is(err, errcode.CorpusOpenError))
}

func TestNew(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptCorpusPath(fixtures),
		config.OptCorpusFormat("csv"),
	})
	l, err := New(cfg)
	require.NoError(t, err)
	_, ok := l.(*csvSource)
	assert.True(t, ok)

	cfg.Update([]config.Option{config.OptCorpusFormat("sqlite")})
	l, err = New(cfg)
	require.NoError(t, err)
	_, ok = l.(*sqliteLoader)
	assert.True(t, ok)

	cfg.Corpus.Format = "xml"
	_, err = New(cfg)
	assert.True(t, errcode.Is(err, errcode.CorpusOpenError))
}

func TestConvert(t *testing.T) {
	ctx := context.Background()
	tbl, err := loadCSV(t, fixtures)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "pokedex.sqlite")
	require.NoError(t, Convert(ctx, tbl, path))

	res, err := NewSQLite(path, 2).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, tbl, res)

	// existing snapshots are kept
	err = Convert(ctx, tbl, path)
	require.Error(t, err)
	assert.True(t, errcode.Is(err, errcode.ConvertError))
}

func TestConvertKeepsOrder(t *testing.T) {
	ctx := context.Background()
	tbl := &corpus.Tables{
		Species: []corpus.Species{
			{ID: 3, Identifier: "three", EvolutionChainID: 1},
			{ID: 1, Identifier: "one", EvolutionChainID: 1},
		},
		Pokemon: []corpus.Pokemon{
			{ID: 20, Identifier: "mon", SpeciesID: 1},
			{ID: 10, Identifier: "mon-alt", SpeciesID: 1},
		},
		Types: []corpus.Type{
			{ID: 12, Identifier: "grass"},
			{ID: 4, Identifier: "poison"},
		},
	}

	path := filepath.Join(t.TempDir(), "order.sqlite")
	require.NoError(t, Convert(ctx, tbl, path))
	assert.Zero(t, tbl.Pokemon[0].RowOrder)

	res, err := NewSQLite(path, 1).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, tbl.Species, res.Species)
	assert.Equal(t, tbl.Pokemon, res.Pokemon)
	assert.Equal(t, tbl.Types, res.Types)

	idx, err := index.New(res)
	require.NoError(t, err)
	d := dex.New(idx, config.New())
	form, err := d.Resolve("1", "")
	require.NoError(t, err)
	assert.Equal(t, "mon", form.Identifier)
}

func TestSQLiteErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewSQLite(filepath.Join(t.TempDir(), "none.sqlite"), 1).Load(ctx)
	assert.True(t, errcode.Is(err, errcode.CorpusOpenError))

	// a snapshot made by another tool, without most tables
	path := filepath.Join(t.TempDir(), "partial.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE pokemon_species (id INTEGER, identifier TEXT)")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = NewSQLite(path, 1).Load(ctx)
	require.Error(t, err)
	assert.True(t, errcode.Is(err, errcode.LoadError))

	// a converted empty corpus has all tables
	path = filepath.Join(t.TempDir(), "empty.sqlite")
	require.NoError(t, Convert(ctx, &corpus.Tables{}, path))
	res, err := NewSQLite(path, 1).Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.RowCount())
}

