// Package iocorpus reads the Pokédex corpus from a directory of CSV
// files or from a SQLite snapshot, and converts CSV corpora into
// snapshots.
package iocorpus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnpokedex/pkg/config"
	"github.com/gnames/gnpokedex/pkg/corpus"
	"golang.org/x/sync/errgroup"
)

// source gives access to tables of one corpus location.
type source interface {
	// has checks if a table exists.
	has(ctx context.Context, table string) (bool, error)
	// read calls fn for every row of a table in corpus order. Required
	// columns are checked before the first row.
	read(ctx context.Context, table string, fn func(*record) error) error
}

// New creates a corpus loader according to cfg.Corpus.
func New(cfg *config.Config) (corpus.Loader, error) {
	switch cfg.Corpus.Format {
	case "csv":
		return NewCSV(cfg.Corpus.Path, cfg.JobsNumber), nil
	case "sqlite":
		return NewSQLite(cfg.Corpus.Path, cfg.JobsNumber), nil
	default:
		err := fmt.Errorf("unknown corpus format %q", cfg.Corpus.Format)
		return nil, CorpusOpenError(cfg.Corpus.Path, err)
	}
}

// load reads all tables of a source concurrently, at most jobs tables at
// a time.
func load(ctx context.Context, src source, jobs int) (*corpus.Tables, error) {
	start := time.Now()
	res := &corpus.Tables{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))

	g.Go(func() error {
		return readInto(ctx, src, corpus.SpeciesTable, decodeSpecies, &res.Species)
	})
	g.Go(func() error {
		return readInto(ctx, src, corpus.PokemonTable, decodePokemon, &res.Pokemon)
	})
	g.Go(func() error {
		return readInto(ctx, src, corpus.PokemonTypesTable,
			decodePokemonType, &res.PokemonTypes)
	})
	g.Go(func() error {
		return readInto(ctx, src, corpus.TypesTable, decodeType, &res.Types)
	})
	g.Go(func() error {
		return readInto(ctx, src, corpus.PokemonStatsTable,
			decodePokemonStat, &res.PokemonStats)
	})
	g.Go(func() error {
		return readInto(ctx, src, corpus.SpeciesNamesTable,
			decodeSpeciesName, &res.SpeciesNames)
	})
	g.Go(func() error {
		return readInto(ctx, src, corpus.FlavorTextTable,
			decodeFlavorText, &res.FlavorTexts)
	})
	g.Go(func() error {
		return readInto(ctx, src, corpus.VersionsTable, decodeVersion, &res.Versions)
	})
	g.Go(func() error {
		return readInto(ctx, src, corpus.LanguagesTable, decodeLanguage, &res.Languages)
	})
	g.Go(func() error {
		return readInto(ctx, src, corpus.LanguageNamesTable,
			decodeLanguageName, &res.LanguageNames)
	})
	g.Go(func() error {
		return readInto(ctx, src, corpus.TypeNamesTable,
			decodeTypeName, &res.TypeNames)
	})
	g.Go(func() error {
		return readInto(ctx, src, corpus.VersionNamesTable,
			decodeVersionName, &res.VersionNames)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("Corpus loaded",
		"rows", humanize.Comma(int64(res.RowCount())),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return res, nil
}

func readInto[T any](
	ctx context.Context,
	src source,
	table string,
	decode func(*record) (T, error),
	dst *[]T,
) error {
	ok, err := src.has(ctx, table)
	if err != nil {
		return LoadError(table, err)
	}
	if !ok {
		if slices.Contains(corpus.RequiredTables, table) {
			return LoadError(table, errors.New("table is missing"))
		}
		slog.Debug("Optional table is missing", "table", table)
		return nil
	}

	var res []T
	err = src.read(ctx, table, func(r *record) error {
		item, err := decode(r)
		if err != nil {
			return err
		}
		res = append(res, item)
		return nil
	})
	if err != nil {
		return LoadError(table, err)
	}

	*dst = res
	slog.Debug("Table loaded", "table", table, "rows", humanize.Comma(int64(len(res))))
	return nil
}
