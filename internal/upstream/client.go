package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	common_models "hrms-console/internal/common/models"
	"hrms-console/internal/config"
	"hrms-console/pkg/utils"

	"go.uber.org/zap"
)

// API is the full HRMS REST surface the console consumes. Controllers and
// forms depend on narrow slices of it; the fx graph binds *Client.
type API interface {
	GetRoles(ctx context.Context) ([]Role, error)
	CreateRole(ctx context.Context, payload RolePayload) (*Role, error)
	UpdateRole(ctx context.Context, id string, payload RolePayload) (*Role, error)
	DeleteRole(ctx context.Context, id string) error
	GetPermissions(ctx context.Context) ([]Permission, error)

	GetAllTenants(ctx context.Context) ([]Tenant, error)
	GetTenant(ctx context.Context, id string) (*Tenant, error)
	CreateTenant(ctx context.Context, upload TenantUpload) (*AdminCredentials, error)
	UpdateTenant(ctx context.Context, id string, upload TenantUpload) (*Tenant, error)
	UpdateTenantStatus(ctx context.Context, id string, status TenantStatus) error
	DeleteTenant(ctx context.Context, id string) error

	GetDocumentTypes(ctx context.Context) ([]DocumentType, error)
	CreateDocumentType(ctx context.Context, dt DocumentType) (*DocumentType, error)
	UpdateDocumentType(ctx context.Context, id string, dt DocumentType) (*DocumentType, error)
	DeleteDocumentType(ctx context.Context, id string) error
	UploadDocument(ctx context.Context, upload DocumentUpload) error

	GetAssetCategories(ctx context.Context) ([]AssetCategory, error)
	CreateAssetCategory(ctx context.Context, cat AssetCategory) (*AssetCategory, error)
	UpdateAssetCategory(ctx context.Context, id string, cat AssetCategory) (*AssetCategory, error)
	DeleteAssetCategory(ctx context.Context, id string) error

	GetEmployees(ctx context.Context) ([]Employee, error)
	CreateEmployee(ctx context.Context, emp Employee) (*Employee, error)
	UpdateEmployee(ctx context.Context, id string, emp Employee) (*Employee, error)
	DeleteEmployee(ctx context.Context, id string) error

	GetAttendanceStatus(ctx context.Context, employeeID string) (*AttendanceStatus, error)
	ClockIn(ctx context.Context, employeeID string) error
	ClockOut(ctx context.Context, employeeID string) error
	GetAttendanceRecords(ctx context.Context, month string) ([]AttendanceRecord, error)

	GetLeaveRequests(ctx context.Context) ([]LeaveRequest, error)
	CreateLeaveRequest(ctx context.Context, req LeaveRequest) (*LeaveRequest, error)
	UpdateLeaveStatus(ctx context.Context, id string, status string) error

	GetPayrollRecords(ctx context.Context, month string) ([]PayrollRecord, error)
}

// Client is the JSON-over-HTTP implementation of API. There is no retry,
// queueing or backpressure here: a failed call surfaces its error and the
// operator re-triggers the action.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(cfg *config.Config, logger *zap.Logger) API {
	return &Client{
		baseURL: strings.TrimRight(cfg.UpstreamURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	if reqID, ok := ctx.Value(common_models.RequestIDKey).(string); ok && reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}
	if claims, ok := ctx.Value(utils.OperatorClaimsKey).(*utils.OperatorClaims); ok && claims != nil {
		req.Header.Set("X-Actor-ID", claims.OperatorID)
		if claims.TenantID != "" {
			req.Header.Set("X-Tenant-ID", claims.TenantID)
		}
	}
	return req, nil
}

// doJSON executes a JSON request. out may be nil for calls whose body is
// discarded.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.execute(req, out)
}

func (c *Client) execute(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(data, resp.StatusCode)}
		c.logger.Warn("upstream error",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode),
		)
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode upstream response: %w", err)
	}
	return nil
}

// errorMessage digs the human message out of an error body. The API answers
// with {"error": ...} or {"message": ...} depending on the endpoint.
func errorMessage(data []byte, status int) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return http.StatusText(status)
}

// decodeList normalizes the API's two list shapes, a bare JSON array or a
// {"data": [...]} envelope, so no caller ever re-guesses the wrapping.
func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil
	}

	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode list envelope: %w", err)
	}
	if envelope.Data == nil {
		return []T{}, nil
	}
	return envelope.Data, nil
}

// getList fetches and normalizes a list endpoint.
func getList[T any](c *Client, ctx context.Context, path string) ([]T, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := c.execute(req, &raw); err != nil {
		return nil, err
	}
	return decodeList[T](raw)
}

// doMultipart posts fields and file parts as multipart/form-data.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, files map[string]*FilePart, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	}

	for name, file := range files {
		if file == nil {
			continue
		}
		part, err := writer.CreateFormFile(name, file.Filename)
		if err != nil {
			return fmt.Errorf("create part %s: %w", name, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return fmt.Errorf("write part %s: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, method, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.execute(req, out)
}
