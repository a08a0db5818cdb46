package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grievance-service/internal/api/http/handlers"
	"github.com/spec-kit/grievance-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Actors         *handlers.ActorsHandler
	Departments    *handlers.DepartmentsHandler
	Grievances     *handlers.GrievancesHandler
	Comments       *handlers.CommentsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Every protected route passes the
// credential middleware and the operation's role gate before its
// handler runs.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	actors := app.Group("/actors", cfg.AuthMiddleware.Handle)
	actors.Post("/", auth.RequireOperation(auth.OpCreateActor), cfg.Actors.Create)
	actors.Get("/", auth.RequireOperation(auth.OpListActors), cfg.Actors.List)
	actors.Get("/:id", auth.RequireOperation(auth.OpGetActor), cfg.Actors.Get)

	departments := app.Group("/departments", cfg.AuthMiddleware.Handle)
	departments.Post("/", auth.RequireOperation(auth.OpCreateDepartment), cfg.Departments.Create)
	departments.Get("/", auth.RequireOperation(auth.OpListDepartments), cfg.Departments.List)

	grievances := app.Group("/grievances", cfg.AuthMiddleware.Handle)
	grievances.Post("/", auth.RequireOperation(auth.OpCreateGrievance), cfg.Grievances.Create)
	grievances.Get("/", auth.RequireOperation(auth.OpListGrievances), cfg.Grievances.List)
	grievances.Post("/assign", auth.RequireOperation(auth.OpAssignGrievances), cfg.Grievances.AssignPending)
	grievances.Post("/:id/resolve", auth.RequireOperation(auth.OpResolveGrievance), cfg.Grievances.Resolve)

	comments := app.Group("/comments", cfg.AuthMiddleware.Handle)
	comments.Post("/", auth.RequireOperation(auth.OpCreateComment), cfg.Comments.Create)
	comments.Get("/grievance/:id", auth.RequireOperation(auth.OpListComments), cfg.Comments.ListByGrievance)
}
