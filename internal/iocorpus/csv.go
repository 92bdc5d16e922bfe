package iocorpus

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/gnames/gnpokedex/pkg/corpus"
)

type csvSource struct {
	dir  string
	jobs int
}

// NewCSV creates a loader for a directory with <table>.csv files.
func NewCSV(dir string, jobs int) corpus.Loader {
	return &csvSource{dir: dir, jobs: jobs}
}

func (c *csvSource) Load(ctx context.Context) (*corpus.Tables, error) {
	info, err := os.Stat(c.dir)
	if err != nil {
		return nil, CorpusOpenError(c.dir, err)
	}
	if !info.IsDir() {
		return nil, CorpusOpenError(c.dir, errors.New("not a directory"))
	}
	return load(ctx, c, c.jobs)
}

func (c *csvSource) path(table string) string {
	return filepath.Join(c.dir, table+".csv")
}

func (c *csvSource) has(_ context.Context, table string) (bool, error) {
	_, err := os.Stat(c.path(table))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

func (c *csvSource) read(
	ctx context.Context,
	table string,
	fn func(*record) error,
) error {
	f, err := os.Open(c.path(table))
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if err == io.EOF {
		return errors.New("file has no header")
	}
	if err != nil {
		return err
	}
	cols := newColumns(header)
	if err = checkColumns(cols, columns[table]); err != nil {
		return err
	}

	for n := 1; ; n++ {
		if n%10_000 == 0 {
			if err = ctx.Err(); err != nil {
				return err
			}
		}

		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err = fn(&record{cols: cols, vals: row, row: n}); err != nil {
			return err
		}
	}
}
