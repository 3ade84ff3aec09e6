package employee

import (
	"strings"

	common_api "hrms-console/internal/common/api"
	"hrms-console/internal/common/errs"
	common_models "hrms-console/internal/common/models"
	"hrms-console/internal/features/audit"
	"hrms-console/internal/features/system"
	"hrms-console/internal/upstream"
	"hrms-console/internal/view"

	"github.com/gofiber/fiber/v2"
)

type EmployeeController struct {
	Api          upstream.API
	AuditService audit.AuditService
	Hub          system.Broadcaster
}

func NewEmployeeController(api upstream.API, auditService audit.AuditService, hub *system.Hub) *EmployeeController {
	return &EmployeeController{
		Api:          api,
		AuditService: auditService,
		Hub:          hub,
	}
}

// employeeColumns is the directory screen layout. The last two columns
// reach into the free-form profile map by dotted path; missing keys render
// as empty cells rather than errors.
func employeeColumns() []view.Column {
	return []view.Column{
		{Header: "Name", Render: func(row any) string {
			emp, ok := row.(upstream.Employee)
			if !ok {
				return ""
			}
			return strings.TrimSpace(emp.FirstName + " " + emp.LastName)
		}},
		{Header: "Email", AccessorKey: "email"},
		{Header: "Department", AccessorKey: "department"},
		{Header: "Designation", AccessorKey: "designation"},
		{Header: "City", AccessorKey: "profile.address.city"},
		{Header: "Phone", AccessorKey: "profile.phone"},
	}
}

// ListEmployees returns the directory both as raw entities and as the
// rendered table snapshot the screen displays.
func (c *EmployeeController) ListEmployees(ctx *fiber.Ctx) error {
	employees, err := c.Api.GetEmployees(ctx.UserContext())
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	table := view.NewTable(employeeColumns(), "No employees found. Add your first employee to get started.")
	rows := make([]any, len(employees))
	for i, emp := range employees {
		rows[i] = emp
	}
	table.SetRows(rows)

	return ctx.JSON(fiber.Map{
		"data":  employees,
		"table": table.Snapshot(),
	})
}

func (c *EmployeeController) CreateEmployee(ctx *fiber.Ctx) error {
	var emp upstream.Employee
	if err := ctx.BodyParser(&emp); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validateEmployee(emp); err != nil {
		return common_api.RespondError(ctx, err)
	}

	created, err := c.Api.CreateEmployee(ctx.UserContext(), emp)
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionCreate, "employees", created.ID, map[string]common_models.Change{
		"email": {New: created.Email},
	})
	c.Hub.Broadcast(system.ChangeEvent{Entity: "employees", Action: "create", ID: created.ID})

	return ctx.Status(fiber.StatusCreated).JSON(created)
}

func (c *EmployeeController) UpdateEmployee(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var emp upstream.Employee
	if err := ctx.BodyParser(&emp); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validateEmployee(emp); err != nil {
		return common_api.RespondError(ctx, err)
	}

	updated, err := c.Api.UpdateEmployee(ctx.UserContext(), id, emp)
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionUpdate, "employees", id, map[string]common_models.Change{
		"email": {New: updated.Email},
	})
	c.Hub.Broadcast(system.ChangeEvent{Entity: "employees", Action: "update", ID: id})

	return ctx.JSON(updated)
}

func (c *EmployeeController) DeleteEmployee(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := c.Api.DeleteEmployee(ctx.UserContext(), id); err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionDelete, "employees", id, nil)
	c.Hub.Broadcast(system.ChangeEvent{Entity: "employees", Action: "delete", ID: id})

	return ctx.JSON(fiber.Map{"deleted": id})
}

func validateEmployee(emp upstream.Employee) error {
	if strings.TrimSpace(emp.FirstName) == "" {
		return errs.NewValidation("firstName", "First name is required")
	}
	if !strings.Contains(emp.Email, "@") {
		return errs.NewValidation("email", "A valid email is required")
	}
	return nil
}
