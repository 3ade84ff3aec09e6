package role

import (
	"context"
	"slices"
	"testing"

	"hrms-console/internal/common/errs"
	"hrms-console/internal/registry"
	"hrms-console/internal/upstream"
)

type fakeRoleWriter struct {
	creates int
	updates int
	lastID  string
	last    upstream.RolePayload
	err     error
}

func (f *fakeRoleWriter) CreateRole(ctx context.Context, payload upstream.RolePayload) (*upstream.Role, error) {
	f.creates++
	f.last = payload
	if f.err != nil {
		return nil, f.err
	}
	return &upstream.Role{ID: "new-id", Name: payload.Name}, nil
}

func (f *fakeRoleWriter) UpdateRole(ctx context.Context, id string, payload upstream.RolePayload) (*upstream.Role, error) {
	f.updates++
	f.lastID = id
	f.last = payload
	if f.err != nil {
		return nil, f.err
	}
	return &upstream.Role{ID: id, Name: payload.Name}, nil
}

func TestSubmitRejectsBlankName(t *testing.T) {
	tests := []string{"", "   ", "\t"}

	for _, name := range tests {
		writer := &fakeRoleWriter{}
		editor := NewEditor(writer, nil)
		editor.OpenForCreate()
		editor.SetName(name)

		_, err := editor.Submit(context.Background())
		if !errs.IsValidation(err) {
			t.Errorf("name %q: want ValidationError, got %v", name, err)
		}
		if writer.creates+writer.updates != 0 {
			t.Errorf("name %q: validation failure still called upstream", name)
		}
		if !editor.IsOpen() {
			t.Errorf("name %q: editor closed on validation failure", name)
		}
	}
}

func TestSubmitCreateVsUpdate(t *testing.T) {
	writer := &fakeRoleWriter{}
	editor := NewEditor(writer, nil)

	editor.OpenForCreate()
	editor.SetName("HR Admin")
	if _, err := editor.Submit(context.Background()); err != nil {
		t.Fatalf("create submit: %v", err)
	}
	if writer.creates != 1 || writer.updates != 0 {
		t.Errorf("create path: creates=%d updates=%d", writer.creates, writer.updates)
	}
	if editor.IsOpen() {
		t.Error("editor stayed open after successful submit")
	}

	editor.OpenForEdit(upstream.Role{ID: "r7", Name: "HR Admin"})
	editor.SetName("HR Manager")
	if _, err := editor.Submit(context.Background()); err != nil {
		t.Fatalf("edit submit: %v", err)
	}
	if writer.updates != 1 || writer.creates != 1 {
		t.Errorf("edit path: creates=%d updates=%d, want exactly one update", writer.creates, writer.updates)
	}
	if writer.lastID != "r7" {
		t.Errorf("updated id = %q", writer.lastID)
	}
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	writer := &fakeRoleWriter{err: &upstream.APIError{Status: 409, Message: "duplicate name"}}
	editor := NewEditor(writer, nil)

	editor.OpenForCreate()
	editor.SetName("HR Admin")
	editor.TogglePermission("p1")
	editor.ToggleModule("leave")

	_, err := editor.Submit(context.Background())
	if _, ok := upstream.AsAPIError(err); !ok {
		t.Fatalf("want APIError, got %v", err)
	}
	if !editor.IsOpen() {
		t.Error("editor closed on upstream failure")
	}
	if !editor.HasPermission("p1") || !editor.HasModule("leave") || editor.Name() != "HR Admin" {
		t.Error("draft lost on upstream failure")
	}
}

func TestToggleInvolutionOnDraft(t *testing.T) {
	editor := NewEditor(&fakeRoleWriter{}, nil)
	editor.OpenForCreate()

	editor.TogglePermission("p1")
	editor.TogglePermission("p1")
	if editor.HasPermission("p1") {
		t.Error("double permission toggle did not restore membership")
	}

	editor.ToggleDocument("d1")
	editor.ToggleDocument("d1")
	if editor.HasDocument("d1") {
		t.Error("double document toggle did not restore membership")
	}

	editor.ToggleModule("payroll")
	editor.ToggleModule("payroll")
	if editor.HasModule("payroll") {
		t.Error("double module toggle did not restore membership")
	}
}

func TestSelectAllModulesTenantFiltered(t *testing.T) {
	editor := NewEditor(&fakeRoleWriter{}, []string{"employees", "leave"})
	editor.OpenForCreate()

	editor.SelectAllModules()
	got := editor.SelectedModules()
	if !slices.Equal(got, []string{"employees", "leave"}) {
		t.Errorf("SelectAllModules = %v, want the tenant's two modules only", got)
	}

	editor.DeselectAllModules()
	if len(editor.SelectedModules()) != 0 {
		t.Error("DeselectAllModules left modules selected")
	}
}

func TestSelectAllModulesUnrestricted(t *testing.T) {
	editor := NewEditor(&fakeRoleWriter{}, nil)
	editor.OpenForCreate()
	editor.SelectAllModules()

	if !slices.Equal(editor.SelectedModules(), registry.Keys()) {
		t.Errorf("unrestricted SelectAllModules = %v", editor.SelectedModules())
	}
}

func TestOpenForEditSeedsDraft(t *testing.T) {
	writer := &fakeRoleWriter{}
	editor := NewEditor(writer, nil)

	editor.OpenForEdit(upstream.Role{
		ID:                 "r1",
		Name:               "Payroll Clerk",
		Permissions:        []string{"p2", "p1"},
		AccessibleModules:  []string{"payroll"},
		MandatoryDocuments: []string{"d9"},
	})

	if !editor.IsEditing() || editor.Name() != "Payroll Clerk" {
		t.Fatalf("edit seed wrong: editing=%v name=%q", editor.IsEditing(), editor.Name())
	}

	if _, err := editor.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	// Sets serialize sorted at the boundary.
	if !slices.Equal(writer.last.Permissions, []string{"p1", "p2"}) {
		t.Errorf("payload permissions = %v", writer.last.Permissions)
	}
	if !slices.Equal(writer.last.AccessibleModules, []string{"payroll"}) {
		t.Errorf("payload modules = %v", writer.last.AccessibleModules)
	}
}

func TestGroupPermissions(t *testing.T) {
	perms := []upstream.Permission{
		{ID: "1", Name: "employees:read"},
		{ID: "2", Name: "employees:write"},
		{ID: "3", Name: "leave:approve"},
		{ID: "4", Name: "dashboard"},
	}

	groups := GroupPermissions(perms)
	if len(groups) != 3 {
		t.Fatalf("got %d groups", len(groups))
	}
	if groups[0].Name != "employees" || len(groups[0].Permissions) != 2 {
		t.Errorf("group 0 = %+v", groups[0])
	}
	if groups[2].Name != "Other" || groups[2].Permissions[0].ID != "4" {
		t.Errorf("fallback group = %+v", groups[2])
	}
}
