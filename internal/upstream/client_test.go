package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrms-console/internal/config"

	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.Handler) API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.Config{UpstreamURL: srv.URL}, zap.NewNop())
}

func TestGetRolesNormalizesBothListShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bare array", `[{"id":"r1","name":"HR Admin"}]`},
		{"data envelope", `{"data":[{"id":"r1","name":"HR Admin"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/roles" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.Write([]byte(tt.body))
			}))

			roles, err := client.GetRoles(context.Background())
			if err != nil {
				t.Fatalf("GetRoles: %v", err)
			}
			if len(roles) != 1 || roles[0].ID != "r1" || roles[0].Name != "HR Admin" {
				t.Errorf("roles = %+v", roles)
			}
		})
	}
}

func TestEmptyEnvelope(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null}`))
	}))

	roles, err := client.GetRoles(context.Background())
	if err != nil {
		t.Fatalf("GetRoles: %v", err)
	}
	if roles == nil || len(roles) != 0 {
		t.Errorf("want empty non-nil slice, got %#v", roles)
	}
}

func TestAPIErrorCarriesStatusAndMessage(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"role name already exists"}`))
	}))

	_, err := client.CreateRole(context.Background(), RolePayload{Name: "HR Admin"})
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("want APIError, got %T %v", err, err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Message != "role name already exists" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestCreateTenantSendsMultipartAndReturnsCredentials(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not multipart: %v", err)
		}
		if got := r.FormValue("companyName"); got != "Acme" {
			t.Errorf("companyName = %q", got)
		}
		if got := r.FormValue("ownerEmail"); got != "owner@acme.test" {
			t.Errorf("ownerEmail = %q", got)
		}
		if got := r.FormValue("limits"); got == "" {
			t.Error("limits part missing")
		}
		if _, _, err := r.FormFile("logo"); err != nil {
			t.Errorf("logo part missing: %v", err)
		}
		w.Write([]byte(`{"admin":{"email":"admin@acme.test","tempPassword":"X7f!"}}`))
	}))

	creds, err := client.CreateTenant(context.Background(), TenantUpload{
		CompanyName: "Acme",
		OwnerEmail:  "owner@acme.test",
		Plan:        PlanFree,
		Limits:      TenantLimits{EnabledModules: []string{"employees"}},
		Logo:        &FilePart{Filename: "logo.png", Data: []byte{1, 2, 3}},
	})
	if err != nil {
		t.Fatalf("CreateTenant: %v", err)
	}
	if creds.Email != "admin@acme.test" || creds.TempPassword != "X7f!" {
		t.Errorf("creds = %+v", creds)
	}
}

func TestUpdateTenantOmitsOwnerEmail(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not multipart: %v", err)
		}
		if _, ok := r.MultipartForm.Value["ownerEmail"]; ok {
			t.Error("ownerEmail must not be sent on update")
		}
		w.Write([]byte(`{"id":"t1","companyName":"Acme"}`))
	}))

	tenant, err := client.UpdateTenant(context.Background(), "t1", TenantUpload{
		CompanyName: "Acme",
		OwnerEmail:  "ignored@acme.test",
		Plan:        PlanPro,
	})
	if err != nil {
		t.Fatalf("UpdateTenant: %v", err)
	}
	if tenant.ID != "t1" {
		t.Errorf("tenant = %+v", tenant)
	}
}

func TestDecodeListRejectsGarbage(t *testing.T) {
	if _, err := decodeList[Role]([]byte(`"nope"`)); err == nil {
		t.Error("want error for non-list body")
	}
}
