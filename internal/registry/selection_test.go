package registry

import (
	"slices"
	"testing"
)

func TestToggleIsInvolution(t *testing.T) {
	sel := NewSelection(nil)

	if sel.Has("leave") {
		t.Fatal("fresh selection should be empty")
	}
	sel.Toggle("leave")
	if !sel.Has("leave") {
		t.Fatal("first toggle did not add")
	}
	sel.Toggle("leave")
	if sel.Has("leave") {
		t.Error("second toggle did not restore original state")
	}
}

func TestSelectAllThenClear(t *testing.T) {
	sel := NewSelection(nil)
	sel.Toggle("payroll")

	sel.SelectAll()
	if !slices.Equal(sel.Selected(), Keys()) {
		t.Errorf("SelectAll: got %v, want full registry keys", sel.Selected())
	}

	sel.Clear()
	if len(sel.Selected()) != 0 {
		t.Errorf("Clear left %v selected", sel.Selected())
	}
}

func TestSelectAllHonorsTenantRestriction(t *testing.T) {
	sel := NewSelection([]string{"employees", "leave"})

	sel.SelectAll()
	got := sel.Selected()
	want := []string{"employees", "leave"}
	if !slices.Equal(got, want) {
		t.Errorf("SelectAll under restriction = %v, want %v", got, want)
	}

	// Keys outside the restriction are not toggleable either.
	sel.Toggle("payroll")
	if sel.Has("payroll") {
		t.Error("toggled a module the tenant has not enabled")
	}
}

func TestSetDropsUnofferedKeys(t *testing.T) {
	sel := NewSelection([]string{"employees"})
	sel.Set([]string{"employees", "payroll", "bogus"})

	if !slices.Equal(sel.Selected(), []string{"employees"}) {
		t.Errorf("Set kept unoffered keys: %v", sel.Selected())
	}
}

func TestSelectedOrderFollowsRegistry(t *testing.T) {
	sel := NewSelection(nil)
	sel.Toggle("payroll")
	sel.Toggle("employees")

	if !slices.Equal(sel.Selected(), []string{"employees", "payroll"}) {
		t.Errorf("Selected() = %v, want registry order", sel.Selected())
	}
}
