package worker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/events"
	"github.com/spec-kit/shop-service/internal/repository"
)

// CatalogWorker keeps category product counts in step with product writes.
type CatalogWorker struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	logger     *zap.Logger
}

// NewCatalogWorker builds the worker.
func NewCatalogWorker(products repository.ProductRepository, categories repository.CategoryRepository, logger *zap.Logger) *CatalogWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogWorker{products: products, categories: categories, logger: logger}
}

// Register subscribes the worker to product events.
func (w *CatalogWorker) Register(dispatcher events.Dispatcher) {
	for _, t := range []events.EventType{events.EventProductCreated, events.EventProductUpdated, events.EventProductDeleted} {
		dispatcher.Subscribe(t, w.handle)
	}
}

func (w *CatalogWorker) handle(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ProductChangedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	for _, name := range payload.Categories {
		if err := w.Recount(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// Recount stores the current number of products in the named category.
func (w *CatalogWorker) Recount(ctx context.Context, category string) error {
	count, err := w.products.CountByCategory(ctx, category)
	if err != nil {
		return fmt.Errorf("count products in %q: %w", category, err)
	}
	if err := w.categories.SetProductCount(ctx, category, count); err != nil {
		return fmt.Errorf("store product count for %q: %w", category, err)
	}
	w.logger.Debug("category product count updated", zap.String("category", category), zap.Int("count", count))
	return nil
}

// StartCatalogWorker registers catalog handlers.
func StartCatalogWorker(dispatcher events.Dispatcher, w *CatalogWorker) {
	if dispatcher == nil || w == nil {
		return
	}
	w.Register(dispatcher)
}
