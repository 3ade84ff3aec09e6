package main

import (
	"context"
	"fmt"
	"log"

	common_api "hrms-console/internal/common/api"
	"hrms-console/internal/config"
	"hrms-console/internal/database"
	"hrms-console/internal/features/asset"
	"hrms-console/internal/features/attendance"
	"hrms-console/internal/features/audit"
	"hrms-console/internal/features/document"
	"hrms-console/internal/features/employee"
	"hrms-console/internal/features/leave"
	"hrms-console/internal/features/payroll"
	"hrms-console/internal/features/role"
	"hrms-console/internal/features/system"
	"hrms-console/internal/features/tenant"
	"hrms-console/internal/logger"
	"hrms-console/internal/middleware"
	"hrms-console/internal/refcache"
	"hrms-console/internal/upstream"
	"hrms-console/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             32 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	utils.SetSecret(cfg.JWTSecret)

	app.Use(middleware.CORSMiddleware())
	app.Use(middleware.RequestIDMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d routes\n", len(routes))
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,

			upstream.NewClient,
			refcache.NewRefCache,
			system.NewHub,

			audit.NewAuditRepository,
			audit.NewAuditService,

			audit.NewAuditController,
			role.NewRoleController,
			tenant.NewTenantController,
			document.NewDocumentController,
			asset.NewAssetController,
			employee.NewEmployeeController,
			attendance.NewAttendanceController,
			leave.NewLeaveController,
			payroll.NewPayrollController,

			AsRoute(audit.NewAuditApi),
			AsRoute(role.NewRoleApi),
			AsRoute(tenant.NewTenantApi),
			AsRoute(document.NewDocumentApi),
			AsRoute(asset.NewAssetApi),
			AsRoute(employee.NewEmployeeApi),
			AsRoute(attendance.NewAttendanceApi),
			AsRoute(leave.NewLeaveApi),
			AsRoute(payroll.NewPayrollApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewWebSocketApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, cache *refcache.RefCache) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return cache.Start(ctx)
					},
					OnStop: func(ctx context.Context) error {
						return cache.Stop()
					},
				})
			},
		),
	)

	app.Run()
}
