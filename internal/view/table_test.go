package view

import (
	"fmt"
	"testing"
)

func TestTableRenderOrder(t *testing.T) {
	table := NewTable([]Column{{Header: "ID", AccessorKey: "id"}}, "no rows")
	table.SetRows([]any{
		map[string]any{"id": 1},
		map[string]any{"id": 2},
	})

	view := table.Snapshot()
	if view.Empty {
		t.Fatal("table with rows rendered empty state")
	}
	if len(view.Rows) != 2 || view.Rows[0][0] != "1" || view.Rows[1][0] != "2" {
		t.Errorf("rows out of order: %v", view.Rows)
	}
}

func TestTableEmptyState(t *testing.T) {
	table := NewTable([]Column{{Header: "ID", AccessorKey: "id"}}, "no employees found")
	table.SetRows([]any{})

	view := table.Snapshot()
	if !view.Empty {
		t.Fatal("empty data did not render empty state")
	}
	if view.EmptyMessage != "no employees found" {
		t.Errorf("EmptyMessage = %q", view.EmptyMessage)
	}
}

func TestTableLoadingKeepsData(t *testing.T) {
	table := NewTable([]Column{{Header: "ID", AccessorKey: "id"}}, "empty")
	table.SetRows([]any{map[string]any{"id": 1}})
	table.SetLoading(true)

	view := table.Snapshot()
	if !view.Loading || view.SkeletonRows == 0 {
		t.Error("loading snapshot missing skeleton rows")
	}
	if len(table.Rows()) != 1 {
		t.Error("loading cleared previously loaded rows")
	}

	// Refetch done: the old data is still there to re-render.
	table.SetLoading(false)
	view = table.Snapshot()
	if view.Empty || len(view.Rows) != 1 {
		t.Errorf("data lost across loading toggle: %+v", view)
	}
}

func TestTableDottedAccessorAndRender(t *testing.T) {
	type profile struct {
		City string `json:"city"`
	}
	type employee struct {
		Name    string  `json:"name"`
		Profile profile `json:"profile"`
	}

	table := NewTable([]Column{
		{Header: "Name", AccessorKey: "name"},
		{Header: "City", AccessorKey: "profile.city"},
		{Header: "Badge", Render: func(row any) string {
			return fmt.Sprintf("#%s", row.(employee).Name)
		}},
	}, "empty")
	table.SetRows([]any{employee{Name: "Asha", Profile: profile{City: "Pune"}}})

	view := table.Snapshot()
	want := []string{"Asha", "Pune", "#Asha"}
	for i, cell := range view.Rows[0] {
		if cell != want[i] {
			t.Errorf("cell %d = %q, want %q", i, cell, want[i])
		}
	}
}

func TestTableMissingPathRendersBlank(t *testing.T) {
	table := NewTable([]Column{{Header: "X", AccessorKey: "a.b.c"}}, "empty")
	table.SetRows([]any{map[string]any{"a": map[string]any{}}})

	view := table.Snapshot()
	if view.Rows[0][0] != "" {
		t.Errorf("missing path cell = %q, want empty", view.Rows[0][0])
	}
}
