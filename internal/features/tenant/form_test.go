package tenant

import (
	"context"
	"errors"
	"slices"
	"testing"

	"hrms-console/internal/common/errs"
	"hrms-console/internal/registry"
	"hrms-console/internal/upstream"
)

type fakeTenantWriter struct {
	creates int
	updates int
	lastID  string
	last    upstream.TenantUpload
	err     error
}

func (f *fakeTenantWriter) CreateTenant(ctx context.Context, upload upstream.TenantUpload) (*upstream.AdminCredentials, error) {
	f.creates++
	f.last = upload
	if f.err != nil {
		return nil, f.err
	}
	return &upstream.AdminCredentials{Email: "admin@acme.test", TempPassword: "X7f!"}, nil
}

func (f *fakeTenantWriter) UpdateTenant(ctx context.Context, id string, upload upstream.TenantUpload) (*upstream.Tenant, error) {
	f.updates++
	f.lastID = id
	f.last = upload
	if f.err != nil {
		return nil, f.err
	}
	return &upstream.Tenant{ID: id}, nil
}

func validCreate(writer TenantWriter) *Form {
	form := NewForm(writer)
	form.OpenForCreate()
	form.SetCompanyName("Acme")
	form.SetOwnerEmail("owner@acme.test")
	return form
}

func TestCreateDefaults(t *testing.T) {
	writer := &fakeTenantWriter{}
	form := validCreate(writer)

	if _, err := form.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if writer.last.Plan != upstream.PlanFree {
		t.Errorf("default plan = %q, want free", writer.last.Plan)
	}
	// Enabled modules default to the full (de-duplicated) registry.
	if !slices.Equal(writer.last.Limits.EnabledModules, registry.Keys()) {
		t.Errorf("default modules = %v", writer.last.Limits.EnabledModules)
	}
}

func TestSubdomainDefaultsToCompanySlug(t *testing.T) {
	writer := &fakeTenantWriter{}
	form := validCreate(writer)
	form.SetCompanyName("Acme Corp Ltd.")

	if _, err := form.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if writer.last.Subdomain != "acme-corp-ltd" {
		t.Errorf("subdomain = %q", writer.last.Subdomain)
	}

	// An explicit subdomain wins over the suggestion.
	form = validCreate(writer)
	form.SetSubdomain("acme-hq")
	if _, err := form.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if writer.last.Subdomain != "acme-hq" {
		t.Errorf("subdomain = %q", writer.last.Subdomain)
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Form)
	}{
		{"missing company name", func(f *Form) { f.SetCompanyName("") }},
		{"missing email", func(f *Form) { f.SetOwnerEmail("") }},
		{"malformed email", func(f *Form) { f.SetOwnerEmail("not-an-email") }},
		{"unknown plan", func(f *Form) { f.SetPlan("platinum") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := &fakeTenantWriter{}
			form := validCreate(writer)
			tt.setup(form)

			_, err := form.Submit(context.Background())
			if !errs.IsValidation(err) {
				t.Errorf("want ValidationError, got %v", err)
			}
			if writer.creates != 0 {
				t.Error("invalid draft still reached upstream")
			}
		})
	}
}

func TestCredentialsRequireAcknowledgement(t *testing.T) {
	form := validCreate(&fakeTenantWriter{})

	creds, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if creds.TempPassword != "X7f!" {
		t.Fatalf("creds = %+v", creds)
	}

	if err := form.Close(); !errors.Is(err, ErrCredentialsPending) {
		t.Errorf("Close before ack = %v, want ErrCredentialsPending", err)
	}

	form.AcknowledgeCredentials()
	if err := form.Close(); err != nil {
		t.Errorf("Close after ack = %v", err)
	}

	// Acknowledged credentials are gone for good.
	if _, ok := form.Credentials(); ok {
		t.Error("credentials still retrievable after acknowledgement")
	}
}

func TestCredentialsNotRetrievableAfterReopen(t *testing.T) {
	form := validCreate(&fakeTenantWriter{})
	if _, err := form.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}
	form.AcknowledgeCredentials()

	// Simulates a reload: a fresh modal session has no trace of them.
	form.OpenForCreate()
	if _, ok := form.Credentials(); ok {
		t.Error("credentials survived a new modal session")
	}
}

func TestEditOmitsCredentialsAndEmail(t *testing.T) {
	writer := &fakeTenantWriter{}
	form := NewForm(writer)
	form.OpenForEdit(upstream.Tenant{
		ID:          "t1",
		CompanyName: "Acme",
		OwnerEmail:  "owner@acme.test",
		Plan:        upstream.PlanPro,
		Status:      upstream.StatusActive,
		Limits:      upstream.TenantLimits{EnabledModules: []string{"employees", "leave"}},
	})

	creds, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if creds != nil {
		t.Error("edit produced credentials")
	}
	if writer.updates != 1 || writer.lastID != "t1" {
		t.Errorf("updates=%d lastID=%q", writer.updates, writer.lastID)
	}
	if !slices.Equal(writer.last.Limits.EnabledModules, []string{"employees", "leave"}) {
		t.Errorf("edit modules = %v", writer.last.Limits.EnabledModules)
	}
}

func TestModuletogglesMirrorRoleEditor(t *testing.T) {
	form := validCreate(&fakeTenantWriter{})

	form.DeselectAllModules()
	if len(form.EnabledModules()) != 0 {
		t.Fatal("DeselectAllModules left modules")
	}

	form.ToggleModule("payroll")
	form.ToggleModule("payroll")
	if len(form.EnabledModules()) != 0 {
		t.Error("double toggle did not restore empty set")
	}

	form.SelectAllModules()
	if !slices.Equal(form.EnabledModules(), registry.Keys()) {
		t.Errorf("SelectAllModules = %v", form.EnabledModules())
	}
}

func TestSubmitFailureKeepsFormOpen(t *testing.T) {
	writer := &fakeTenantWriter{err: &upstream.APIError{Status: 502, Message: "provisioning backend down"}}
	form := validCreate(writer)

	_, err := form.Submit(context.Background())
	if _, ok := upstream.AsAPIError(err); !ok {
		t.Fatalf("want APIError, got %v", err)
	}
	if !form.IsOpen() {
		t.Error("form closed on upstream failure")
	}
}

func TestAttachBrandingPreviews(t *testing.T) {
	form := validCreate(&fakeTenantWriter{})

	preview := form.AttachLogo("logo.png", "image/png", []byte{1, 2})
	if preview == "" || preview == form.AttachFavicon("fav.ico", "image/x-icon", []byte{3}) {
		t.Error("previews should be distinct non-empty local refs")
	}
}

func TestToggledStatus(t *testing.T) {
	tests := []struct {
		in   upstream.TenantStatus
		want upstream.TenantStatus
		ok   bool
	}{
		{upstream.StatusActive, upstream.StatusSuspended, true},
		{upstream.StatusSuspended, upstream.StatusActive, true},
		{upstream.StatusTrial, upstream.StatusTrial, false},
		{upstream.StatusExpired, upstream.StatusExpired, false},
	}

	for _, tt := range tests {
		got, ok := ToggledStatus(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ToggledStatus(%s) = %s,%v want %s,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
