package upstream

import "time"

// Permission is a fine-grained capability owned by the HRMS API. Name
// conventionally encodes "<module>:<action>"; the console only displays and
// selects permissions by ID.
type Permission struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Role is a named bundle of permission and module grants.
type Role struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Permissions        []string `json:"permissions"`
	AccessibleModules  []string `json:"accessibleModules"`
	MandatoryDocuments []string `json:"mandatoryDocuments"`
}

// RolePayload is the write shape for create/update role calls.
type RolePayload struct {
	Name               string   `json:"name"`
	Permissions        []string `json:"permissions"`
	AccessibleModules  []string `json:"accessibleModules"`
	MandatoryDocuments []string `json:"mandatoryDocuments"`
}

type TenantPlan string

const (
	PlanFree       TenantPlan = "free"
	PlanBasic      TenantPlan = "basic"
	PlanPro        TenantPlan = "pro"
	PlanEnterprise TenantPlan = "enterprise"
)

type TenantStatus string

const (
	StatusActive    TenantStatus = "active"
	StatusSuspended TenantStatus = "suspended"
	StatusTrial     TenantStatus = "trial"
	StatusExpired   TenantStatus = "expired"
)

// TenantLimits bounds what a tenant may use. EnabledModules is the subset of
// registry keys the tenant's roles may draw from; empty means unrestricted.
type TenantLimits struct {
	EnabledModules []string `json:"enabledModules"`
	MaxEmployees   int      `json:"maxEmployees"`
	MaxStorage     int64    `json:"maxStorage"`
}

type Tenant struct {
	ID          string       `json:"id"`
	CompanyName string       `json:"companyName"`
	OwnerEmail  string       `json:"ownerEmail"`
	Plan        TenantPlan   `json:"plan"`
	Subdomain   string       `json:"subdomain"`
	Status      TenantStatus `json:"status"`
	Limits      TenantLimits `json:"limits"`
	LogoURL     string       `json:"logoUrl,omitempty"`
	FaviconURL  string       `json:"faviconUrl,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// AdminCredentials is returned exactly once, from tenant creation. It must
// never be persisted console-side.
type AdminCredentials struct {
	Email        string `json:"email"`
	TempPassword string `json:"tempPassword"`
}

// TenantUpload is the multipart write shape for tenant create/edit.
// OwnerEmail is ignored on update (immutable upstream).
type TenantUpload struct {
	CompanyName string
	OwnerEmail  string
	Plan        TenantPlan
	Subdomain   string
	Limits      TenantLimits
	Logo        *FilePart
	Favicon     *FilePart
}

// FilePart is one binary part of a multipart request.
type FilePart struct {
	Filename    string
	ContentType string
	Data        []byte
}

type DocumentType struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

type AssetCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Employee struct {
	ID          string         `json:"id"`
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	Email       string         `json:"email"`
	Department  string         `json:"department"`
	Designation string         `json:"designation"`
	RoleID      string         `json:"roleId"`
	Profile     map[string]any `json:"profile,omitempty"`
}

type AttendanceStatus struct {
	ClockedIn   bool       `json:"clockedIn"`
	LastClockIn *time.Time `json:"lastClockIn,omitempty"`
}

type AttendanceRecord struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Date       string     `json:"date"`
	ClockIn    *time.Time `json:"clockIn,omitempty"`
	ClockOut   *time.Time `json:"clockOut,omitempty"`
	Status     string     `json:"status"`
}

type LeaveRequest struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Type       string `json:"type"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
}

type PayrollRecord struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Month        string  `json:"month"`
	GrossPay     float64 `json:"grossPay"`
	Deductions   float64 `json:"deductions"`
	NetPay       float64 `json:"netPay"`
}

// DocumentUpload is one file pushed through the bulk uploader.
type DocumentUpload struct {
	EmployeeID     string
	DocumentTypeID string
	File           FilePart
}
