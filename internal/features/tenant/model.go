package tenant

import (
	"hrms-console/internal/upstream"
)

// CreateRequest is the field set of the provisioning form. ownerEmail gets a
// local format check before anything leaves the console; the API validates
// again on its side.
type CreateRequest struct {
	CompanyName    string   `json:"companyName" validate:"required"`
	OwnerEmail     string   `json:"ownerEmail" validate:"required,email"`
	Plan           string   `json:"plan" validate:"omitempty,oneof=free basic pro enterprise"`
	Subdomain      string   `json:"subdomain"`
	EnabledModules []string `json:"enabledModules"`
	MaxEmployees   int      `json:"maxEmployees"`
	MaxStorage     int64    `json:"maxStorage"`
}

// EditRequest is the same shape minus ownerEmail, which is immutable after
// creation and rendered disabled in the console.
type EditRequest struct {
	CompanyName    string   `json:"companyName" validate:"required"`
	Plan           string   `json:"plan" validate:"omitempty,oneof=free basic pro enterprise"`
	Subdomain      string   `json:"subdomain"`
	EnabledModules []string `json:"enabledModules"`
	MaxEmployees   int      `json:"maxEmployees"`
	MaxStorage     int64    `json:"maxStorage"`
}

// ToggledStatus returns the status a toggle lands on. Only active and
// suspended participate; trial and expired have their own upstream
// lifecycle the console does not drive.
func ToggledStatus(current upstream.TenantStatus) (upstream.TenantStatus, bool) {
	switch current {
	case upstream.StatusActive:
		return upstream.StatusSuspended, true
	case upstream.StatusSuspended:
		return upstream.StatusActive, true
	default:
		return current, false
	}
}
