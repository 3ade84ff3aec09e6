package employee

import (
	"testing"

	"hrms-console/internal/upstream"
	"hrms-console/internal/view"
)

func TestEmployeeColumnsRender(t *testing.T) {
	table := view.NewTable(employeeColumns(), "empty")
	table.SetRows([]any{
		upstream.Employee{
			FirstName:   "Priya",
			LastName:    "Nair",
			Email:       "priya@acme.test",
			Department:  "Engineering",
			Designation: "Senior Engineer",
			Profile: map[string]any{
				"phone": "+91 98000 00000",
				"address": map[string]any{
					"city": "Bengaluru",
				},
			},
		},
		// No profile at all: the dotted columns must come out blank.
		upstream.Employee{FirstName: "Sam", LastName: "Ortiz", Email: "sam@acme.test"},
	})

	snap := table.Snapshot()
	want := [][]string{
		{"Priya Nair", "priya@acme.test", "Engineering", "Senior Engineer", "Bengaluru", "+91 98000 00000"},
		{"Sam Ortiz", "sam@acme.test", "", "", "", ""},
	}
	for i, row := range want {
		for j, cell := range row {
			if snap.Rows[i][j] != cell {
				t.Errorf("row %d col %d = %q, want %q", i, j, snap.Rows[i][j], cell)
			}
		}
	}
}

func TestValidateEmployee(t *testing.T) {
	ok := upstream.Employee{FirstName: "A", Email: "a@b.test"}
	if err := validateEmployee(ok); err != nil {
		t.Errorf("valid employee rejected: %v", err)
	}
	if err := validateEmployee(upstream.Employee{Email: "a@b.test"}); err == nil {
		t.Error("missing first name accepted")
	}
	if err := validateEmployee(upstream.Employee{FirstName: "A", Email: "nope"}); err == nil {
		t.Error("bad email accepted")
	}
}
