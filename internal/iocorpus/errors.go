package iocorpus

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnpokedex/pkg/errcode"
)

// LoadError is returned when a table is missing or malformed.
func LoadError(table string, err error) error {
	msg := "Cannot load corpus table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LoadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: table %s: %w", fn.Name(), table, err),
	}
}

// CorpusOpenError is returned when the corpus location cannot be opened.
func CorpusOpenError(path string, err error) error {
	msg := "Cannot open corpus at <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CorpusOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn.Name(), path, err),
	}
}

// ConvertError is returned when a SQLite snapshot cannot be written.
func ConvertError(path string, err error) error {
	msg := "Cannot write corpus snapshot <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConvertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot convert to %s: %w", fn.Name(), path, err),
	}
}
