package role

import (
	"strings"

	"hrms-console/internal/upstream"
)

// PermissionGroup is a display bucket of permissions sharing the module
// prefix of their "<module>:<action>" name. Grouping is presentation only
// and never changes which permission IDs a draft stores.
type PermissionGroup struct {
	Name        string                `json:"name"`
	Permissions []upstream.Permission `json:"permissions"`
}

const fallbackGroup = "Other"

// GroupPermissions buckets permissions by the substring before the first
// ":" in their name. Permissions without a ":" land in "Other". Groups keep
// first-appearance order; permissions keep input order within a group.
func GroupPermissions(perms []upstream.Permission) []PermissionGroup {
	index := make(map[string]int)
	groups := make([]PermissionGroup, 0)

	for _, p := range perms {
		name := fallbackGroup
		if i := strings.Index(p.Name, ":"); i > 0 {
			name = p.Name[:i]
		}

		at, ok := index[name]
		if !ok {
			at = len(groups)
			index[name] = at
			groups = append(groups, PermissionGroup{Name: name})
		}
		groups[at].Permissions = append(groups[at].Permissions, p)
	}
	return groups
}

// RoleRequest is the body the console accepts from the browser for role
// create/update. It mirrors the upstream payload shape.
type RoleRequest struct {
	Name               string   `json:"name"`
	Permissions        []string `json:"permissions"`
	AccessibleModules  []string `json:"accessibleModules"`
	MandatoryDocuments []string `json:"mandatoryDocuments"`
}
