package registry

import (
	"slices"
	"testing"
)

func TestKeysNoDuplicates(t *testing.T) {
	keys := Keys()

	seen := make(map[string]bool)
	for _, k := range keys {
		if seen[k] {
			t.Errorf("Keys() contains duplicate %q", k)
		}
		seen[k] = true
	}

	// The raw registry carries "timesheet" twice; the derived list must not.
	count := 0
	for _, m := range Modules {
		if m.Key == "timesheet" {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected raw registry to carry timesheet twice, got %d", count)
	}
	if !seen["timesheet"] {
		t.Error("timesheet missing from Keys()")
	}
}

func TestKeysPreserveOrder(t *testing.T) {
	keys := Keys()

	if len(keys) != len(Modules)-1 {
		t.Fatalf("expected %d unique keys, got %d", len(Modules)-1, len(keys))
	}
	if keys[0] != "employees" {
		t.Errorf("first key = %q, want employees", keys[0])
	}
	if !slices.IsSorted([]int{slices.Index(keys, "attendance"), slices.Index(keys, "leave"), slices.Index(keys, "payroll")}) {
		t.Error("derived keys do not preserve registry order")
	}
}

func TestByKey(t *testing.T) {
	m, ok := ByKey("payroll")
	if !ok {
		t.Fatal("payroll not found")
	}
	if m.ShortLabel != "Payroll" {
		t.Errorf("ShortLabel = %q", m.ShortLabel)
	}

	if _, ok := ByKey("missing"); ok {
		t.Error("ByKey on unknown key should report false")
	}
	if Has("missing") {
		t.Error("Has(missing) = true")
	}
}
