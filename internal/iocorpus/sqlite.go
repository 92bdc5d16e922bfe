package iocorpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/gnames/gnpokedex/pkg/corpus"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

type sqliteLoader struct {
	path string
	jobs int
}

// sqliteSource reads tables of an open snapshot.
type sqliteSource struct {
	db *sql.DB
}

// NewSQLite creates a loader for a SQLite snapshot made by Convert or
// by any tool that keeps veekun table and column names.
func NewSQLite(path string, jobs int) corpus.Loader {
	return &sqliteLoader{path: path, jobs: jobs}
}

func (l *sqliteLoader) Load(ctx context.Context) (*corpus.Tables, error) {
	db, err := openSQLite(l.path)
	if err != nil {
		return nil, CorpusOpenError(l.path, err)
	}
	defer db.Close()

	return load(ctx, &sqliteSource{db: db}, l.jobs)
}

func openSQLite(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (s *sqliteSource) has(ctx context.Context, table string) (bool, error) {
	var name string
	q := "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?"
	err := s.db.QueryRowContext(ctx, q, table).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// orderColumn returns the column that keeps corpus order of a table:
// row_order in snapshots made by Convert, rowid in others.
func (s *sqliteSource) orderColumn(ctx context.Context, table string) (string, error) {
	var n int
	q := "SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = 'row_order'"
	if err := s.db.QueryRowContext(ctx, q, table).Scan(&n); err != nil {
		return "", err
	}
	if n > 0 {
		return "row_order", nil
	}
	return "rowid", nil
}

func (s *sqliteSource) read(
	ctx context.Context,
	table string,
	fn func(*record) error,
) error {
	order, err := s.orderColumn(ctx, table)
	if err != nil {
		return err
	}

	// table names come from a fixed list
	q := fmt.Sprintf("SELECT * FROM %q ORDER BY %s", table, order)
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return err
	}
	cols := newColumns(header)
	if err = checkColumns(cols, columns[table]); err != nil {
		return err
	}

	vals := make([]sql.NullString, len(header))
	ptrs := make([]any, len(header))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	for n := 1; rows.Next(); n++ {
		if err = rows.Scan(ptrs...); err != nil {
			return err
		}
		row := make([]string, len(vals))
		for i := range vals {
			row[i] = vals[i].String
		}
		if err = fn(&record{cols: cols, vals: row, row: n}); err != nil {
			return err
		}
	}
	return rows.Err()
}
