package repository

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/domain"
)

const productCachePrefix = "shop:product:"

// CacheRecorder observes product cache lookups.
type CacheRecorder interface {
	RecordCacheHit(cache string)
	RecordCacheMiss(cache string)
}

type cachedProductRepository struct {
	ProductRepository
	client   redis.Cmdable
	ttl      time.Duration
	logger   *zap.Logger
	recorder CacheRecorder
}

// NewCachedProductRepository serves GetByID from Redis and drops entries on writes.
// Redis failures are logged and fall through to the wrapped repository.
func NewCachedProductRepository(next ProductRepository, client redis.Cmdable, ttl time.Duration, logger *zap.Logger, recorder CacheRecorder) ProductRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cachedProductRepository{
		ProductRepository: next,
		client:            client,
		ttl:               ttl,
		logger:            logger,
		recorder:          recorder,
	}
}

func (r *cachedProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	key := productCachePrefix + id
	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var product domain.Product
		if err := json.Unmarshal(raw, &product); err == nil {
			r.hit()
			return &product, nil
		}
		r.logger.Warn("discarding unreadable cached product", zap.String("product_id", id))
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("product cache read failed", zap.String("product_id", id), zap.Error(err))
	}
	r.miss()

	product, err := r.ProductRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(product); err == nil {
		if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
			r.logger.Warn("product cache write failed", zap.String("product_id", id), zap.Error(err))
		}
	}
	return product, nil
}

func (r *cachedProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := r.ProductRepository.Update(ctx, product); err != nil {
		return err
	}
	r.evict(ctx, product.ID)
	return nil
}

func (r *cachedProductRepository) Delete(ctx context.Context, id string) error {
	if err := r.ProductRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *cachedProductRepository) DeleteAll(ctx context.Context) error {
	if err := r.ProductRepository.DeleteAll(ctx); err != nil {
		return err
	}
	iter := r.client.Scan(ctx, 0, productCachePrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		r.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		r.logger.Warn("product cache flush failed", zap.Error(err))
	}
	return nil
}

func (r *cachedProductRepository) evict(ctx context.Context, id string) {
	if err := r.client.Del(ctx, productCachePrefix+id).Err(); err != nil {
		r.logger.Warn("product cache eviction failed", zap.String("product_id", id), zap.Error(err))
	}
}

func (r *cachedProductRepository) hit() {
	if r.recorder != nil {
		r.recorder.RecordCacheHit("product")
	}
}

func (r *cachedProductRepository) miss() {
	if r.recorder != nil {
		r.recorder.RecordCacheMiss("product")
	}
}
