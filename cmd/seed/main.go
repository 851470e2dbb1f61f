package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/config"
	"github.com/spec-kit/shop-service/internal/observability"
	"github.com/spec-kit/shop-service/internal/persistence"
	"github.com/spec-kit/shop-service/internal/repository"
	"github.com/spec-kit/shop-service/internal/seed"
)

var skipMigrations bool

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load mock catalog data and demo accounts into Postgres",
	Long: `seed clears and refills tables in the database named by POSTGRES_DSN.
Each subcommand replaces one table's contents; "all" replaces every table.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply schema migrations before seeding")
	rootCmd.AddCommand(
		seedCommand("categories", "Replace all categories with the mock set", func(ctx context.Context, s *seed.Seeder) error {
			_, err := s.Categories(ctx)
			return err
		}),
		seedCommand("products", "Replace all products with the mock catalog", func(ctx context.Context, s *seed.Seeder) error {
			_, err := s.Products(ctx)
			return err
		}),
		seedCommand("users", "Replace all accounts with the demo accounts", func(ctx context.Context, s *seed.Seeder) error {
			_, err := s.Users(ctx)
			return err
		}),
		seedCommand("all", "Replace categories, products and accounts", func(ctx context.Context, s *seed.Seeder) error {
			return s.All(ctx)
		}),
	)
}

func seedCommand(use, short string, run func(context.Context, *seed.Seeder) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSeeder(cmd.Context(), run)
		},
	}
}

func withSeeder(ctx context.Context, run func(context.Context, *seed.Seeder) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pg.Close()
	if !pg.Enabled() {
		return errors.New("POSTGRES_DSN is required to seed")
	}

	if !skipMigrations && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	pool := pg.PoolHandle()
	seeder := seed.New(
		repository.NewUserRepository(pool),
		repository.NewProductRepository(pool),
		repository.NewCategoryRepository(pool),
		cfg.Auth.BcryptCost,
		logger,
	)
	if err := run(ctx, seeder); err != nil {
		logger.Error("seeding failed", zap.Error(err))
		return err
	}
	return nil
}
