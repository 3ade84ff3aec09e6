package view

import "testing"

func TestSelectSearchFilters(t *testing.T) {
	sel := NewSelect([]Option{
		{Value: "1", Label: "Alpha"},
		{Value: "2", Label: "Beta"},
	}, "Pick one", true)

	sel.Open()
	sel.TypeSearch("al")

	visible := sel.Visible()
	if len(visible) != 1 || visible[0].Label != "Alpha" {
		t.Errorf("Visible() = %v, want only Alpha", visible)
	}
}

func TestSelectCloseResetsSearchNotValue(t *testing.T) {
	sel := NewSelect([]Option{
		{Value: "1", Label: "Alpha"},
		{Value: "2", Label: "Beta"},
	}, "Pick one", true)

	sel.Open()
	sel.Commit("2")
	sel.TypeSearch("al")
	sel.Close()

	if got := sel.Visible(); len(got) != 2 {
		t.Errorf("search text survived Close(): %v", got)
	}
	if v, ok := sel.Value(); !ok || v != "2" {
		t.Errorf("committed value lost on Close(): %q %v", v, ok)
	}
	if sel.Display() != "Beta" {
		t.Errorf("Display() = %q, want Beta", sel.Display())
	}

	// Reopen: full option list again.
	sel.Open()
	if got := sel.Visible(); len(got) != 2 {
		t.Errorf("reopened select not showing full list: %v", got)
	}
}

func TestSelectNotSearchableIgnoresTyping(t *testing.T) {
	sel := NewSelect([]Option{{Value: "1", Label: "Alpha"}}, "Pick", false)
	sel.Open()
	sel.TypeSearch("zzz")

	if len(sel.Visible()) != 1 {
		t.Error("non-searchable select filtered options")
	}
}

func TestSelectPlaceholder(t *testing.T) {
	sel := NewSelect([]Option{{Value: "1", Label: "Alpha"}}, "Pick one", false)
	if sel.Display() != "Pick one" {
		t.Errorf("Display() = %q, want placeholder", sel.Display())
	}
}
