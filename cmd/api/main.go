package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/shop-service/internal/api/http"
	"github.com/spec-kit/shop-service/internal/api/http/handlers"
	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/config"
	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/events"
	"github.com/spec-kit/shop-service/internal/observability"
	"github.com/spec-kit/shop-service/internal/persistence"
	"github.com/spec-kit/shop-service/internal/repository"
	"github.com/spec-kit/shop-service/internal/service"
	"github.com/spec-kit/shop-service/internal/storage"
	"github.com/spec-kit/shop-service/internal/worker"
)

type repositories struct {
	users      repository.UserRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Auth.SecretIsDefault {
		logger.Warn("AUTH_JWT_SECRET not set; signing tokens with the development secret")
	}
	if cfg.Auth.DemoTokensEnabled {
		logger.Warn("demo tokens enabled; demo_token_<n> bearer tokens bypass signature checks")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics("shop")

	var demo *auth.DemoDirectory
	if cfg.Auth.DemoTokensEnabled {
		demo = auth.NewDemoDirectory(auth.DefaultDemoAccounts())
	}

	repos, err := buildRepositories(pg, cfg.Auth.BcryptCost, logger)
	if err != nil {
		logger.Fatal("failed to build repositories", zap.Error(err))
	}
	if redis.Enabled() {
		repos.products = repository.NewCachedProductRepository(repos.products, redis.Client, cfg.Redis.ProductCacheTTL(), logger, metrics)
	}

	images, err := storage.NewImageStore(cfg.Upload)
	if err != nil {
		logger.Fatal("failed to prepare upload dir", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher(logger)
	worker.StartCatalogWorker(dispatcher, worker.NewCatalogWorker(repos.products, repos.categories, logger))

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL())
	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo:   repos.users,
		Tokens:     tokens,
		Demo:       demo,
		BcryptCost: cfg.Auth.BcryptCost,
		Logger:     logger,
	})
	authMiddleware := auth.NewAuthMiddleware(tokens, demo, repos.users, logger, metrics)

	app := httptransport.NewApp(httptransport.AppConfig{
		Name:      cfg.App.Name,
		BodyLimit: cfg.Upload.MaxFiles*cfg.Upload.MaxFileBytes + 1<<20,
	}, logger)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(service.NewUserService(repos.users)),
		Products:       handlers.NewProductsHandler(service.NewProductService(repos.products, dispatcher, logger), images),
		Categories:     handlers.NewCategoriesHandler(service.NewCategoryService(repos.categories)),
		AuthMiddleware: authMiddleware,
		Metrics:        metrics.Handler(),
		UploadDir:      images.Dir(),
	})

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

// buildRepositories selects Postgres when configured and the seeded in-memory store otherwise.
func buildRepositories(pg *persistence.Postgres, bcryptCost int, logger *zap.Logger) (repositories, error) {
	if pg.Enabled() {
		pool := pg.PoolHandle()
		return repositories{
			users:      repository.NewUserRepository(pool),
			products:   repository.NewProductRepository(pool),
			categories: repository.NewCategoryRepository(pool),
		}, nil
	}

	logger.Warn("running on in-memory mock data; changes are lost on restart")
	var users []domain.User
	for _, acc := range auth.DefaultDemoAccounts() {
		u, err := acc.NewUser(bcryptCost)
		if err != nil {
			return repositories{}, err
		}
		users = append(users, *u)
	}
	return repositories{
		users:      repository.NewMemoryUserRepository(users...),
		products:   repository.NewMemoryProductRepository(repository.MockProducts()...),
		categories: repository.NewMemoryCategoryRepository(repository.MockCategories()...),
	}, nil
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
