package payroll

import (
	"time"

	common_api "hrms-console/internal/common/api"
	"hrms-console/internal/common/export"
	common_models "hrms-console/internal/common/models"
	"hrms-console/internal/features/audit"
	"hrms-console/internal/upstream"
	"hrms-console/internal/view"

	"github.com/gofiber/fiber/v2"
)

type PayrollController struct {
	Api          upstream.API
	AuditService audit.AuditService
}

func NewPayrollController(api upstream.API, auditService audit.AuditService) *PayrollController {
	return &PayrollController{
		Api:          api,
		AuditService: auditService,
	}
}

func payrollColumns() []view.Column {
	return []view.Column{
		{Header: "Employee", AccessorKey: "employeeName"},
		{Header: "Month", AccessorKey: "month"},
		{Header: "Gross Pay", AccessorKey: "grossPay"},
		{Header: "Deductions", AccessorKey: "deductions"},
		{Header: "Net Pay", AccessorKey: "netPay"},
	}
}

// ListRecords returns the month's payroll run alongside its table snapshot.
func (c *PayrollController) ListRecords(ctx *fiber.Ctx) error {
	month := ctx.Query("month", time.Now().Format("2006-01"))

	records, err := c.Api.GetPayrollRecords(ctx.UserContext(), month)
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	table := view.NewTable(payrollColumns(), "No payroll records for this month.")
	rows := make([]any, len(records))
	for i, rec := range records {
		rows[i] = rec
	}
	table.SetRows(rows)

	return ctx.JSON(fiber.Map{
		"data":  records,
		"table": table.Snapshot(),
		"month": month,
	})
}

// ExportRecords streams the month's payroll as an xlsx download.
func (c *PayrollController) ExportRecords(ctx *fiber.Ctx) error {
	month := ctx.Query("month", time.Now().Format("2006-01"))

	records, err := c.Api.GetPayrollRecords(ctx.UserContext(), month)
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	content, filename, err := export.ToExcel(exportRows(records),
		[]string{"Employee", "Month", "Gross Pay", "Deductions", "Net Pay"},
		"Payroll", "payroll-"+month)
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionExport, "payroll", month, map[string]common_models.Change{
		"rows": {New: len(records)},
	})

	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Send(content)
}

func exportRows(records []upstream.PayrollRecord) []map[string]any {
	rows := make([]map[string]any, len(records))
	for i, rec := range records {
		rows[i] = map[string]any{
			"Employee":   rec.EmployeeName,
			"Month":      rec.Month,
			"Gross Pay":  rec.GrossPay,
			"Deductions": rec.Deductions,
			"Net Pay":    rec.NetPay,
		}
	}
	return rows
}
