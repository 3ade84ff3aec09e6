package attendance

import (
	"time"

	common_api "hrms-console/internal/common/api"
	"hrms-console/internal/common/errs"
	"hrms-console/internal/common/export"
	common_models "hrms-console/internal/common/models"
	"hrms-console/internal/features/audit"
	"hrms-console/internal/features/system"
	"hrms-console/internal/upstream"

	"github.com/gofiber/fiber/v2"
)

type AttendanceController struct {
	Api          upstream.API
	AuditService audit.AuditService
	Hub          system.Broadcaster
}

func NewAttendanceController(api upstream.API, auditService audit.AuditService, hub *system.Hub) *AttendanceController {
	return &AttendanceController{
		Api:          api,
		AuditService: auditService,
		Hub:          hub,
	}
}

// GetStatus reports whether the given employee is currently clocked in.
func (c *AttendanceController) GetStatus(ctx *fiber.Ctx) error {
	employeeID := ctx.Query("employeeId")
	if employeeID == "" {
		return common_api.RespondError(ctx, errs.NewValidation("employeeId", "employeeId is required"))
	}

	status, err := c.Api.GetAttendanceStatus(ctx.UserContext(), employeeID)
	if err != nil {
		return common_api.RespondError(ctx, err)
	}
	return ctx.JSON(status)
}

func (c *AttendanceController) ClockIn(ctx *fiber.Ctx) error {
	var body struct {
		EmployeeID string `json:"employeeId"`
	}
	if err := ctx.BodyParser(&body); err != nil || body.EmployeeID == "" {
		return common_api.RespondError(ctx, errs.NewValidation("employeeId", "employeeId is required"))
	}

	if err := c.Api.ClockIn(ctx.UserContext(), body.EmployeeID); err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionClockIn, "attendance", body.EmployeeID, nil)
	c.Hub.Broadcast(system.ChangeEvent{Entity: "attendance", Action: "clock-in", ID: body.EmployeeID})

	return ctx.JSON(fiber.Map{"clockedIn": true})
}

func (c *AttendanceController) ClockOut(ctx *fiber.Ctx) error {
	var body struct {
		EmployeeID string `json:"employeeId"`
	}
	if err := ctx.BodyParser(&body); err != nil || body.EmployeeID == "" {
		return common_api.RespondError(ctx, errs.NewValidation("employeeId", "employeeId is required"))
	}

	if err := c.Api.ClockOut(ctx.UserContext(), body.EmployeeID); err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionClockOut, "attendance", body.EmployeeID, nil)
	c.Hub.Broadcast(system.ChangeEvent{Entity: "attendance", Action: "clock-out", ID: body.EmployeeID})

	return ctx.JSON(fiber.Map{"clockedIn": false})
}

// ListRecords returns the month's attendance. Month defaults to the current
// calendar month in YYYY-MM form.
func (c *AttendanceController) ListRecords(ctx *fiber.Ctx) error {
	month := ctx.Query("month", time.Now().Format("2006-01"))

	records, err := c.Api.GetAttendanceRecords(ctx.UserContext(), month)
	if err != nil {
		return common_api.RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"data": records, "month": month})
}

// ExportRecords streams the month's attendance as an xlsx download.
func (c *AttendanceController) ExportRecords(ctx *fiber.Ctx) error {
	month := ctx.Query("month", time.Now().Format("2006-01"))

	records, err := c.Api.GetAttendanceRecords(ctx.UserContext(), month)
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	data := make([]map[string]any, len(records))
	for i, rec := range records {
		data[i] = map[string]any{
			"Employee":  rec.EmployeeID,
			"Date":      rec.Date,
			"Clock In":  rec.ClockIn,
			"Clock Out": rec.ClockOut,
			"Status":    rec.Status,
		}
	}

	content, filename, err := export.ToExcel(data,
		[]string{"Employee", "Date", "Clock In", "Clock Out", "Status"},
		"Attendance", "attendance-"+month)
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionExport, "attendance", month, map[string]common_models.Change{
		"rows": {New: len(records)},
	})

	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Send(content)
}
