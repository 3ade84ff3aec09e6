package upstream

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) GetEmployees(ctx context.Context) ([]Employee, error) {
	return getList[Employee](c, ctx, "/employees")
}

func (c *Client) CreateEmployee(ctx context.Context, emp Employee) (*Employee, error) {
	var created Employee
	if err := c.doJSON(ctx, http.MethodPost, "/employees", emp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, emp Employee) (*Employee, error) {
	var updated Employee
	if err := c.doJSON(ctx, http.MethodPut, "/employees/"+id, emp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/employees/"+id, nil, nil)
}

func (c *Client) GetAttendanceStatus(ctx context.Context, employeeID string) (*AttendanceStatus, error) {
	var status AttendanceStatus
	path := "/attendance/status?employeeId=" + url.QueryEscape(employeeID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) ClockIn(ctx context.Context, employeeID string) error {
	body := map[string]string{"employeeId": employeeID}
	return c.doJSON(ctx, http.MethodPost, "/attendance/clock-in", body, nil)
}

func (c *Client) ClockOut(ctx context.Context, employeeID string) error {
	body := map[string]string{"employeeId": employeeID}
	return c.doJSON(ctx, http.MethodPost, "/attendance/clock-out", body, nil)
}

func (c *Client) GetAttendanceRecords(ctx context.Context, month string) ([]AttendanceRecord, error) {
	return getList[AttendanceRecord](c, ctx, "/attendance?month="+url.QueryEscape(month))
}

func (c *Client) GetLeaveRequests(ctx context.Context) ([]LeaveRequest, error) {
	return getList[LeaveRequest](c, ctx, "/leave")
}

func (c *Client) CreateLeaveRequest(ctx context.Context, req LeaveRequest) (*LeaveRequest, error) {
	var created LeaveRequest
	if err := c.doJSON(ctx, http.MethodPost, "/leave", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateLeaveStatus(ctx context.Context, id string, status string) error {
	body := map[string]string{"status": status}
	return c.doJSON(ctx, http.MethodPatch, "/leave/"+id+"/status", body, nil)
}

func (c *Client) GetPayrollRecords(ctx context.Context, month string) ([]PayrollRecord, error) {
	return getList[PayrollRecord](c, ctx, "/payroll?month="+url.QueryEscape(month))
}
