package iocorpus

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnpokedex/pkg/corpus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const batchSize = 1_000

// Convert writes the tables into a new SQLite snapshot at path. An
// existing file is never overwritten.
func Convert(ctx context.Context, tables *corpus.Tables, path string) error {
	start := time.Now()
	if _, err := os.Stat(path); err == nil {
		return ConvertError(path, errors.New("file already exists"))
	}

	// the pure Go driver registered by sqlite.go is used for writing too
	dialector := sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: path})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return ConvertError(path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return ConvertError(path, err)
	}
	defer sqlDB.Close()

	if err = db.AutoMigrate(corpus.Models()...); err != nil {
		return ConvertError(path, err)
	}

	bar := pb.Full.Start(tables.RowCount())
	bar.Set("prefix", "Converting corpus: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []func() error{
			func() error { return insert(tx, tables.Species, bar) },
			func() error { return insert(tx, tables.Pokemon, bar) },
			func() error { return insert(tx, tables.PokemonTypes, bar) },
			func() error { return insert(tx, tables.Types, bar) },
			func() error { return insert(tx, tables.PokemonStats, bar) },
			func() error { return insert(tx, tables.SpeciesNames, bar) },
			func() error { return insert(tx, tables.FlavorTexts, bar) },
			func() error { return insert(tx, tables.Versions, bar) },
			func() error { return insert(tx, tables.Languages, bar) },
			func() error { return insert(tx, tables.LanguageNames, bar) },
			func() error { return insert(tx, tables.TypeNames, bar) },
			func() error { return insert(tx, tables.VersionNames, bar) },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ConvertError(path, err)
	}

	slog.Info("Corpus snapshot created",
		"path", path,
		"rows", humanize.Comma(int64(tables.RowCount())),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}

// rowOrderer is implemented by models that keep their position in a
// snapshot.
type rowOrderer interface {
	SetRowOrder(n int)
}

// insert writes rows in batches. Each row gets its position in the
// row_order column, readers sort by it. The caller's rows are not
// modified.
func insert[T any](tx *gorm.DB, rows []T, bar *pb.ProgressBar) error {
	for i := 0; i < len(rows); i += batchSize {
		end := min(i+batchSize, len(rows))
		chunk := slices.Clone(rows[i:end])
		for j := range chunk {
			if r, ok := any(&chunk[j]).(rowOrderer); ok {
				r.SetRowOrder(i + j + 1)
			}
		}
		if err := tx.Create(&chunk).Error; err != nil {
			return err
		}
		bar.Add(len(chunk))
	}
	return nil
}
