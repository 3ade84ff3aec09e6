package role

import (
	"context"
	"sort"
	"strings"

	"hrms-console/internal/common/errs"
	"hrms-console/internal/registry"
	"hrms-console/internal/upstream"
)

// RoleWriter is the slice of the upstream API the editor needs.
type RoleWriter interface {
	CreateRole(ctx context.Context, payload upstream.RolePayload) (*upstream.Role, error)
	UpdateRole(ctx context.Context, id string, payload upstream.RolePayload) (*upstream.Role, error)
}

// Editor holds the draft behind the role modal. The draft is ephemeral: it
// lives for one modal session, is discarded on Close, and nothing about it
// is ever persisted console-side.
//
// Set-typed fields are real sets internally, so every toggle is a pure
// involution; they become sorted arrays only in the submitted payload.
type Editor struct {
	api RoleWriter

	open      bool
	editingID string

	name        string
	permissions map[string]struct{}
	documents   map[string]struct{}
	modules     *registry.Selection

	restriction []string
}

// NewEditor builds an editor for an operator whose tenant restricts modules
// to restriction. A nil/empty restriction offers the full registry.
func NewEditor(api RoleWriter, restriction []string) *Editor {
	return &Editor{
		api:         api,
		restriction: restriction,
		modules:     registry.NewSelection(restriction),
		permissions: make(map[string]struct{}),
		documents:   make(map[string]struct{}),
	}
}

// OpenForCreate resets the draft to an empty role.
func (e *Editor) OpenForCreate() {
	e.open = true
	e.editingID = ""
	e.name = ""
	e.permissions = make(map[string]struct{})
	e.documents = make(map[string]struct{})
	e.modules = registry.NewSelection(e.restriction)
}

// OpenForEdit seeds the draft from an existing role.
func (e *Editor) OpenForEdit(role upstream.Role) {
	e.OpenForCreate()
	e.editingID = role.ID
	e.name = role.Name
	for _, id := range role.Permissions {
		e.permissions[id] = struct{}{}
	}
	for _, id := range role.MandatoryDocuments {
		e.documents[id] = struct{}{}
	}
	e.modules.Set(role.AccessibleModules)
}

// Close discards the draft.
func (e *Editor) Close() {
	e.open = false
}

func (e *Editor) IsOpen() bool    { return e.open }
func (e *Editor) IsEditing() bool { return e.editingID != "" }

func (e *Editor) SetName(name string) { e.name = name }
func (e *Editor) Name() string        { return e.name }

// ToggleModule flips membership of a module key in the draft.
func (e *Editor) ToggleModule(key string) {
	e.modules.Toggle(key)
}

// TogglePermission flips membership of a permission ID in the draft.
func (e *Editor) TogglePermission(id string) {
	toggle(e.permissions, id)
}

// ToggleDocument flips membership of a mandatory document type ID.
func (e *Editor) ToggleDocument(id string) {
	toggle(e.documents, id)
}

// SelectAllModules selects every module the acting tenant is offered.
func (e *Editor) SelectAllModules() {
	e.modules.SelectAll()
}

// DeselectAllModules empties the module selection.
func (e *Editor) DeselectAllModules() {
	e.modules.Clear()
}

func (e *Editor) HasModule(key string) bool    { return e.modules.Has(key) }
func (e *Editor) HasPermission(id string) bool { _, ok := e.permissions[id]; return ok }
func (e *Editor) HasDocument(id string) bool   { _, ok := e.documents[id]; return ok }

// SelectedModules returns the chosen module keys in registry order.
func (e *Editor) SelectedModules() []string {
	return e.modules.Selected()
}

// Submit validates the draft and writes it upstream: update when editing,
// create otherwise. On success the editor closes; on failure it stays open
// with the draft intact so the operator can retry.
func (e *Editor) Submit(ctx context.Context) (*upstream.Role, error) {
	if strings.TrimSpace(e.name) == "" {
		return nil, errs.NewValidation("name", "role name is required")
	}

	payload := upstream.RolePayload{
		Name:               e.name,
		Permissions:        sortedKeys(e.permissions),
		AccessibleModules:  e.modules.Selected(),
		MandatoryDocuments: sortedKeys(e.documents),
	}

	var (
		saved *upstream.Role
		err   error
	)
	if e.editingID != "" {
		saved, err = e.api.UpdateRole(ctx, e.editingID, payload)
	} else {
		saved, err = e.api.CreateRole(ctx, payload)
	}
	if err != nil {
		return nil, err
	}

	e.Close()
	return saved, nil
}

func toggle(set map[string]struct{}, key string) {
	if _, ok := set[key]; ok {
		delete(set, key)
	} else {
		set[key] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
