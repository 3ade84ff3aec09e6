package view

import (
	"fmt"
	"reflect"
	"strings"
)

// Column describes one table column. Either AccessorKey (a dotted path into
// the row) or Render resolves the cell; Render wins when both are set.
type Column struct {
	Header      string
	AccessorKey string
	Render      func(row any) string
}

// Table is the shared list renderer every screen composes. It never sorts:
// rows come out in exactly the order the caller loaded them.
type Table struct {
	Columns      []Column
	EmptyMessage string

	rows    []any
	loading bool
}

// TableView is the presentation snapshot handed to the front end.
type TableView struct {
	Headers      []string   `json:"headers"`
	Rows         [][]string `json:"rows"`
	Empty        bool       `json:"empty"`
	EmptyMessage string     `json:"empty_message,omitempty"`
	Loading      bool       `json:"loading"`
	SkeletonRows int        `json:"skeleton_rows,omitempty"`
}

func NewTable(columns []Column, emptyMessage string) *Table {
	return &Table{Columns: columns, EmptyMessage: emptyMessage}
}

// SetRows replaces the loaded data.
func (t *Table) SetRows(rows []any) {
	t.rows = rows
}

// SetLoading flips the loading overlay. Previously loaded rows are kept so a
// fast refetch does not flash an empty table.
func (t *Table) SetLoading(loading bool) {
	t.loading = loading
}

func (t *Table) Rows() []any { return t.rows }

// Snapshot renders the current state. While loading, skeleton rows replace
// cell content but the underlying data stays in place.
func (t *Table) Snapshot() TableView {
	view := TableView{
		Headers: make([]string, len(t.Columns)),
		Loading: t.loading,
	}
	for i, c := range t.Columns {
		view.Headers[i] = c.Header
	}

	if t.loading {
		view.SkeletonRows = 5
		return view
	}

	if len(t.rows) == 0 {
		view.Empty = true
		view.EmptyMessage = t.EmptyMessage
		return view
	}

	view.Rows = make([][]string, 0, len(t.rows))
	for _, row := range t.rows {
		cells := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			cells[i] = t.cell(c, row)
		}
		view.Rows = append(view.Rows, cells)
	}
	return view
}

func (t *Table) cell(c Column, row any) string {
	if c.Render != nil {
		return c.Render(row)
	}
	val, ok := lookupPath(row, c.AccessorKey)
	if !ok || val == nil {
		return ""
	}
	return fmt.Sprintf("%v", val)
}

// lookupPath walks a dotted path through nested maps or exported struct
// fields.
func lookupPath(row any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	current := row
	for _, part := range strings.Split(path, ".") {
		switch v := current.(type) {
		case map[string]any:
			next, ok := v[part]
			if !ok {
				return nil, false
			}
			current = next
		case map[string]string:
			next, ok := v[part]
			if !ok {
				return nil, false
			}
			current = next
		default:
			next, ok := structField(current, part)
			if !ok {
				return nil, false
			}
			current = next
		}
	}
	return current, true
}

func structField(v any, name string) (any, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := strings.Split(field.Tag.Get("json"), ",")[0]
		if tag == name || strings.EqualFold(field.Name, name) {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}
