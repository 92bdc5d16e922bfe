package iocorpus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gnames/gnlib"
)

// record is one row of a table addressed by column names.
type record struct {
	cols map[string]int
	vals []string
	row  int
}

func newColumns(header []string) map[string]int {
	res := make(map[string]int, len(header))
	for i, h := range header {
		// CSV files saved by some editors start with a byte order mark.
		h = strings.TrimPrefix(h, "\ufeff")
		res[strings.TrimSpace(h)] = i
	}
	return res
}

// checkColumns finds required columns absent from a header.
func checkColumns(cols map[string]int, required []string) error {
	var missing []string
	for _, c := range required {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (r *record) raw(col string) string {
	i, ok := r.cols[col]
	if !ok || i >= len(r.vals) {
		return ""
	}
	return strings.TrimSpace(r.vals[i])
}

func (r *record) str(col string) string {
	return gnlib.FixUtf8(r.raw(col))
}

// text keeps surrounding spaces, flavor texts are normalized later.
func (r *record) text(col string) string {
	i, ok := r.cols[col]
	if !ok || i >= len(r.vals) {
		return ""
	}
	return gnlib.FixUtf8(r.vals[i])
}

func (r *record) int(col string) (int, error) {
	s := r.raw(col)
	res, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("row %d, column %s: %w", r.row, col, err)
	}
	return res, nil
}

// optInt returns 0 for an empty cell.
func (r *record) optInt(col string) (int, error) {
	if r.raw(col) == "" {
		return 0, nil
	}
	return r.int(col)
}

// nullInt returns nil for an empty cell.
func (r *record) nullInt(col string) (*int, error) {
	if r.raw(col) == "" {
		return nil, nil
	}
	res, err := r.int(col)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *record) bool(col string) (bool, error) {
	s := r.raw(col)
	if s == "" {
		return false, nil
	}
	res, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("row %d, column %s: %w", r.row, col, err)
	}
	return res, nil
}

// ints reads several integer columns, stopping at the first error.
func (r *record) ints(cols ...string) ([]int, error) {
	res := make([]int, len(cols))
	for i, c := range cols {
		v, err := r.int(c)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}
