package tenant

import (
	"context"
	"errors"

	"hrms-console/internal/common/errs"
	"hrms-console/internal/registry"
	"hrms-console/internal/upstream"
	"hrms-console/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrCredentialsPending means the operator tried to dismiss the modal
// without confirming they saved the one-time admin credentials. Losing them
// locks the tenant admin out until a separate reset flow runs.
var ErrCredentialsPending = errors.New("admin credentials have not been acknowledged")

// TenantWriter is the slice of the upstream API the form needs.
type TenantWriter interface {
	CreateTenant(ctx context.Context, upload upstream.TenantUpload) (*upstream.AdminCredentials, error)
	UpdateTenant(ctx context.Context, id string, upload upstream.TenantUpload) (*upstream.Tenant, error)
}

// Form is the create/edit tenant modal. Like the role editor it is
// ephemeral; nothing in here survives the modal session, and the one-time
// admin credentials in particular exist only in this struct until the
// operator acknowledges them.
type Form struct {
	api      TenantWriter
	validate *validator.Validate

	open      bool
	editingID string

	companyName  string
	ownerEmail   string
	plan         upstream.TenantPlan
	subdomain    string
	maxEmployees int
	maxStorage   int64

	modules *registry.Selection

	logo           *upstream.FilePart
	favicon        *upstream.FilePart
	logoPreview    string
	faviconPreview string

	credentials  *upstream.AdminCredentials
	acknowledged bool
}

func NewForm(api TenantWriter) *Form {
	return &Form{
		api:      api,
		validate: validator.New(),
	}
}

// OpenForCreate resets to the provisioning defaults: free plan, every
// registry module enabled.
func (f *Form) OpenForCreate() {
	f.open = true
	f.editingID = ""
	f.companyName = ""
	f.ownerEmail = ""
	f.plan = upstream.PlanFree
	f.subdomain = ""
	f.maxEmployees = 0
	f.maxStorage = 0
	f.modules = registry.NewSelection(nil)
	f.modules.SelectAll()
	f.logo, f.favicon = nil, nil
	f.logoPreview, f.faviconPreview = "", ""
	f.credentials = nil
	f.acknowledged = false
}

// OpenForEdit seeds the form from an existing tenant. The owner email is
// carried for display only; it is never sent on update.
func (f *Form) OpenForEdit(t upstream.Tenant) {
	f.OpenForCreate()
	f.editingID = t.ID
	f.companyName = t.CompanyName
	f.ownerEmail = t.OwnerEmail
	f.plan = t.Plan
	f.subdomain = t.Subdomain
	f.maxEmployees = t.Limits.MaxEmployees
	f.maxStorage = t.Limits.MaxStorage
	if len(t.Limits.EnabledModules) > 0 {
		f.modules.Set(t.Limits.EnabledModules)
	}
}

func (f *Form) IsOpen() bool    { return f.open }
func (f *Form) IsEditing() bool { return f.editingID != "" }

func (f *Form) SetCompanyName(v string) { f.companyName = v }
func (f *Form) SetOwnerEmail(v string)  { f.ownerEmail = v }
func (f *Form) SetSubdomain(v string)   { f.subdomain = v }
func (f *Form) SetPlan(v string)        { f.plan = upstream.TenantPlan(v) }
func (f *Form) SetLimits(maxEmployees int, maxStorage int64) {
	f.maxEmployees = maxEmployees
	f.maxStorage = maxStorage
}

// ToggleModule flips one module in the tenant's enabled set.
func (f *Form) ToggleModule(key string) { f.modules.Toggle(key) }

// SelectAllModules / DeselectAllModules mirror the role editor exactly:
// same selection type, same semantics.
func (f *Form) SelectAllModules()   { f.modules.SelectAll() }
func (f *Form) DeselectAllModules() { f.modules.Clear() }

func (f *Form) EnabledModules() []string { return f.modules.Selected() }

// AttachLogo stages a logo blob and returns a local preview reference. The
// bytes go upstream only at submit.
func (f *Form) AttachLogo(filename, contentType string, data []byte) string {
	f.logo = &upstream.FilePart{Filename: filename, ContentType: contentType, Data: data}
	f.logoPreview = "blob:" + uuid.NewString()
	return f.logoPreview
}

// AttachFavicon stages a favicon blob and returns a local preview reference.
func (f *Form) AttachFavicon(filename, contentType string, data []byte) string {
	f.favicon = &upstream.FilePart{Filename: filename, ContentType: contentType, Data: data}
	f.faviconPreview = "blob:" + uuid.NewString()
	return f.faviconPreview
}

// Submit validates and writes the tenant upstream. On create success the
// one-time admin credentials are held for acknowledgement and returned; on
// edit success it returns nil credentials. Failures keep the form open with
// the draft intact.
func (f *Form) Submit(ctx context.Context) (*upstream.AdminCredentials, error) {
	if err := f.validateDraft(); err != nil {
		return nil, err
	}

	subdomain := f.subdomain
	if subdomain == "" {
		subdomain = utils.Slugify(f.companyName)
	}

	upload := upstream.TenantUpload{
		CompanyName: f.companyName,
		OwnerEmail:  f.ownerEmail,
		Plan:        f.plan,
		Subdomain:   subdomain,
		Limits: upstream.TenantLimits{
			EnabledModules: f.modules.Selected(),
			MaxEmployees:   f.maxEmployees,
			MaxStorage:     f.maxStorage,
		},
		Logo:    f.logo,
		Favicon: f.favicon,
	}

	if f.editingID != "" {
		if _, err := f.api.UpdateTenant(ctx, f.editingID, upload); err != nil {
			return nil, err
		}
		f.open = false
		return nil, nil
	}

	creds, err := f.api.CreateTenant(ctx, upload)
	if err != nil {
		return nil, err
	}

	// The modal stays up: the operator must see and confirm the
	// credentials before it may close.
	f.credentials = creds
	f.acknowledged = false
	return creds, nil
}

// Credentials exposes the pending one-time credentials, if any.
func (f *Form) Credentials() (*upstream.AdminCredentials, bool) {
	if f.credentials == nil {
		return nil, false
	}
	return f.credentials, true
}

// AcknowledgeCredentials records the explicit confirmation and drops the
// credentials from memory. They are not retrievable afterwards.
func (f *Form) AcknowledgeCredentials() {
	f.acknowledged = true
	f.credentials = nil
}

// Close dismisses the modal. It refuses while credentials are displayed and
// unacknowledged.
func (f *Form) Close() error {
	if f.credentials != nil && !f.acknowledged {
		return ErrCredentialsPending
	}
	f.open = false
	return nil
}

func (f *Form) validateDraft() error {
	if f.editingID != "" {
		req := EditRequest{
			CompanyName: f.companyName,
			Plan:        string(f.plan),
			Subdomain:   f.subdomain,
		}
		if err := f.validate.Struct(req); err != nil {
			return errs.NewValidation("", err.Error())
		}
		return nil
	}

	req := CreateRequest{
		CompanyName: f.companyName,
		OwnerEmail:  f.ownerEmail,
		Plan:        string(f.plan),
		Subdomain:   f.subdomain,
	}
	if err := f.validate.Struct(req); err != nil {
		return errs.NewValidation("", err.Error())
	}
	return nil
}
