package leave

import (
	"slices"
	"strings"

	common_api "hrms-console/internal/common/api"
	"hrms-console/internal/common/errs"
	common_models "hrms-console/internal/common/models"
	"hrms-console/internal/features/audit"
	"hrms-console/internal/features/system"
	"hrms-console/internal/upstream"

	"github.com/gofiber/fiber/v2"
)

// reviewStatuses are the only transitions a reviewer can apply to a pending
// request.
var reviewStatuses = []string{"approved", "rejected"}

type LeaveController struct {
	Api          upstream.API
	AuditService audit.AuditService
	Hub          system.Broadcaster
}

func NewLeaveController(api upstream.API, auditService audit.AuditService, hub *system.Hub) *LeaveController {
	return &LeaveController{
		Api:          api,
		AuditService: auditService,
		Hub:          hub,
	}
}

func (c *LeaveController) ListRequests(ctx *fiber.Ctx) error {
	requests, err := c.Api.GetLeaveRequests(ctx.UserContext())
	if err != nil {
		return common_api.RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"data": requests})
}

func (c *LeaveController) CreateRequest(ctx *fiber.Ctx) error {
	var req upstream.LeaveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.EmployeeID == "" {
		return common_api.RespondError(ctx, errs.NewValidation("employeeId", "employeeId is required"))
	}
	if req.StartDate == "" || req.EndDate == "" {
		return common_api.RespondError(ctx, errs.NewValidation("startDate", "Start and end dates are required"))
	}
	if req.EndDate < req.StartDate {
		return common_api.RespondError(ctx, errs.NewValidation("endDate", "End date is before start date"))
	}

	created, err := c.Api.CreateLeaveRequest(ctx.UserContext(), req)
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionCreate, "leave", created.ID, map[string]common_models.Change{
		"employeeId": {New: created.EmployeeID},
		"type":       {New: created.Type},
	})
	c.Hub.Broadcast(system.ChangeEvent{Entity: "leave", Action: "create", ID: created.ID})

	return ctx.Status(fiber.StatusCreated).JSON(created)
}

// ReviewRequest approves or rejects one pending leave request.
func (c *LeaveController) ReviewRequest(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	status := strings.ToLower(body.Status)
	if !slices.Contains(reviewStatuses, status) {
		return common_api.RespondError(ctx, errs.NewValidation("status", "Status must be approved or rejected"))
	}

	if err := c.Api.UpdateLeaveStatus(ctx.UserContext(), id, status); err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionUpdate, "leave", id, map[string]common_models.Change{
		"status": {New: status},
	})
	c.Hub.Broadcast(system.ChangeEvent{Entity: "leave", Action: "review", ID: id})

	return ctx.JSON(fiber.Map{"id": id, "status": status})
}
