package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table is an in-memory tabular dataset: an ordered set of named columns
// over rows of string cells. Derived numeric columns (computed from raw
// text by the schema package) live alongside the raw cells, and each row
// can carry a stable participant ID assigned once per table.
type Table struct {
	Columns []string
	Rows    [][]string

	derived map[string][]*float64
	ids     []int
}

// New creates a table from a header and rows. Short rows are padded so
// every row has one cell per column.
func New(columns []string, rows [][]string) *Table {
	t := &Table{
		Columns: append([]string(nil), columns...),
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		row := make([]string, len(columns))
		copy(row, r)
		t.Rows = append(t.Rows, row)
	}
	return t
}

// ReadCSV parses a delimited table from r. The first record is the header.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // survey exports are often ragged
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv has no header row")
	}

	return New(records[0], records[1:]), nil
}

// LoadCSV reads a table from a CSV file on disk.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of a named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

// Cell returns the raw cell at (row, column name).
func (t *Table) Cell(row int, column string) (string, bool) {
	if row < 0 || row >= len(t.Rows) {
		return "", false
	}
	i, ok := t.ColumnIndex(column)
	if !ok || i >= len(t.Rows[row]) {
		return "", false
	}
	return t.Rows[row][i], true
}

// Clone returns a deep copy. The schema inferencer works on a clone so the
// loaded table is never mutated in place.
func (t *Table) Clone() *Table {
	out := New(t.Columns, t.Rows)
	if t.derived != nil {
		out.derived = make(map[string][]*float64, len(t.derived))
		for name, vals := range t.derived {
			out.derived[name] = append([]*float64(nil), vals...)
		}
	}
	if t.ids != nil {
		out.ids = append([]int(nil), t.ids...)
	}
	return out
}

// Filter returns a new table containing only the rows for which keep
// reports true. Derived columns and already-assigned IDs follow their rows.
func (t *Table) Filter(keep func(row int) bool) *Table {
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	if t.derived != nil {
		out.derived = make(map[string][]*float64, len(t.derived))
	}
	for i, row := range t.Rows {
		if !keep(i) {
			continue
		}
		out.Rows = append(out.Rows, append([]string(nil), row...))
		for name, vals := range t.derived {
			out.derived[name] = append(out.derived[name], vals[i])
		}
		if t.ids != nil {
			out.ids = append(out.ids, t.ids[i])
		}
	}
	return out
}

// SetDerived attaches a derived numeric column. The slice must have one
// entry per row; nil entries mark values that could not be parsed.
func (t *Table) SetDerived(name string, values []*float64) {
	if t.derived == nil {
		t.derived = make(map[string][]*float64)
	}
	vals := make([]*float64, len(t.Rows))
	copy(vals, values)
	t.derived[name] = vals
}

// HasDerived reports whether a derived column exists.
func (t *Table) HasDerived(name string) bool {
	_, ok := t.derived[name]
	return ok
}

// DerivedAt returns the derived value for a row, or ok=false when the
// column is absent or the value is null.
func (t *Table) DerivedAt(name string, row int) (float64, bool) {
	vals, ok := t.derived[name]
	if !ok || row < 0 || row >= len(vals) || vals[row] == nil {
		return 0, false
	}
	return *vals[row], true
}

// FirstID is the stable ID assigned to the first row of a table.
const FirstID = 1001

// EnsureIDs assigns each row a stable ID (FirstID + row position) the
// first time it is called. Repeated calls are no-ops, so IDs stay fixed
// for the life of the table even if rows are consulted in another order.
func (t *Table) EnsureIDs() {
	if t.ids != nil {
		return
	}
	t.ids = make([]int, len(t.Rows))
	for i := range t.ids {
		t.ids[i] = FirstID + i
	}
}

// IDAt returns the stable ID for a row, assigning IDs if needed.
func (t *Table) IDAt(row int) int {
	t.EnsureIDs()
	if row < 0 || row >= len(t.ids) {
		return 0
	}
	return t.ids[row]
}
