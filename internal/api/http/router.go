package http

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/api/http/handlers"
	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/storage"
)

// AppConfig holds fiber settings derived from the service configuration.
type AppConfig struct {
	Name      string
	BodyLimit int
}

// NewApp builds the fiber application with the service's JSON codec and error renderer.
func NewApp(cfg AppConfig, logger *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      cfg.Name,
		BodyLimit:    cfg.BodyLimit,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: ErrorHandler(logger),
	})
}

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Products       *handlers.ProductsHandler
	Categories     *handlers.CategoriesHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        http.Handler
	UploadDir      string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics))
	}
	if cfg.UploadDir != "" {
		app.Static(storage.PublicPrefix, cfg.UploadDir)
	}

	protect := cfg.AuthMiddleware.Handle
	adminOnly := func(h fiber.Handler) []fiber.Handler {
		return append(auth.Protect(cfg.AuthMiddleware, domain.RoleAdmin), h)
	}

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", protect, cfg.Auth.Me)

	users := api.Group("/users", protect)
	users.Get("/profile", cfg.Users.Profile)
	users.Put("/profile", cfg.Users.UpdateProfile)
	users.Post("/address", cfg.Users.AddAddress)
	users.Put("/address/:addressId", cfg.Users.UpdateAddress)
	users.Delete("/address/:addressId", cfg.Users.DeleteAddress)
	users.Post("/favorites/:productId", cfg.Users.AddFavorite)
	users.Delete("/favorites/:productId", cfg.Users.RemoveFavorite)

	products := api.Group("/products")
	products.Get("/", cfg.Products.List)
	products.Get("/:id", cfg.Products.Get)
	products.Post("/", adminOnly(cfg.Products.Create)...)
	products.Put("/:id", adminOnly(cfg.Products.Update)...)
	products.Delete("/:id", adminOnly(cfg.Products.Delete)...)

	categories := api.Group("/categories")
	categories.Get("/", cfg.Categories.List)
	categories.Get("/:id", cfg.Categories.Get)
	categories.Post("/", adminOnly(cfg.Categories.Create)...)
	categories.Put("/:id", adminOnly(cfg.Categories.Update)...)
	categories.Delete("/:id", adminOnly(cfg.Categories.Delete)...)
}
