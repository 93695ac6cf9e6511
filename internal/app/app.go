// Package app assembles the Fiber application: middleware, routes, and the
// error handler that maps service errors onto the API envelopes.
package app

import (
	"errors"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"gorm.io/gorm"

	"github.com/PrVille/json-mock-data-api-sub000/internal/config"
	"github.com/PrVille/json-mock-data-api-sub000/internal/handlers"
	"github.com/PrVille/json-mock-data-api-sub000/internal/middleware"
	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
	"github.com/PrVille/json-mock-data-api-sub000/internal/utils"
)

// Options toggles the parts of the app that only make sense in a real
// deployment.
type Options struct {
	// Metrics mounts the Prometheus middleware and /metrics endpoint.
	// Disabled in tests: the collector registers global metrics and cannot
	// be mounted twice in one process.
	Metrics bool
}

// New builds the Fiber application around the given database handle.
func New(cfg *config.Config, db *gorm.DB, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	if opts.Metrics {
		prometheus := fiberprometheus.New("json_mock_data_api")
		prometheus.RegisterAt(app, "/metrics")
		app.Use(prometheus.Middleware)
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	authHandler := &handlers.AuthHandler{DB: db, Cfg: cfg}
	userHandler := &handlers.UserHandler{DB: db}
	postHandler := &handlers.PostHandler{DB: db}
	commentHandler := &handlers.CommentHandler{DB: db}
	accountHandler := &handlers.AccountHandler{DB: db, Cfg: cfg}
	healthHandler := &handlers.HealthHandler{DB: db, Cfg: cfg}

	api.Get("/health", healthHandler.Health)

	// Auth routes (tenant creation, token issuance)
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.SignUp)
	auth.Post("/signin", authHandler.SignIn)

	// Every resource route resolves the caller's tenant; no token means the
	// shared default sandbox.
	bearer := middleware.BearerAuth(cfg, db)

	users := api.Group("/users", bearer)
	users.Get("/", userHandler.ListUsers)
	users.Get("/:id", userHandler.GetUser)
	users.Post("/", userHandler.CreateUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)

	posts := api.Group("/posts", bearer)
	posts.Get("/", postHandler.ListPosts)
	posts.Get("/:id", postHandler.GetPost)
	posts.Post("/", postHandler.CreatePost)
	posts.Put("/:id", postHandler.UpdatePost)
	posts.Delete("/:id", postHandler.DeletePost)

	comments := api.Group("/comments", bearer)
	comments.Get("/", commentHandler.ListComments)
	comments.Get("/:id", commentHandler.GetComment)
	comments.Post("/", commentHandler.CreateComment)
	comments.Put("/:id", commentHandler.UpdateComment)
	comments.Delete("/:id", commentHandler.DeleteComment)

	// Account management requires acting on your own account
	account := api.Group("/account/:id", bearer, middleware.RequireAccount())
	account.Get("/resources", accountHandler.GetResources)
	account.Post("/resources", accountHandler.ResetResources)
	account.Delete("/resources", accountHandler.ClearResources)
	account.Post("/update/email", accountHandler.UpdateEmail)
	account.Post("/update/password", accountHandler.UpdatePassword)
	account.Delete("/", accountHandler.DeleteAccount)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	return app
}

// errorHandler maps service errors onto the API's envelopes
func errorHandler(c *fiber.Ctx, err error) error {
	var ve *types.ValidationError
	if errors.As(err, &ve) {
		return utils.ErrorsResponse(c, fiber.StatusBadRequest, ve.Errors)
	}

	var ae *types.AuthError
	if errors.As(err, &ae) {
		return utils.ErrorsResponse(c, ae.Code, ae.FieldErrors())
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return utils.ErrorResponse(c, fe.Message, fe.Code)
	}

	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError)
}
