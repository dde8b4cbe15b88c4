package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/dmartlabs/shopping-api/internal/domains/catalog/domain"
	"github.com/dmartlabs/shopping-api/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// DefaultTTL bounds how long a cached product may serve reads.
const DefaultTTL = 5 * time.Minute

// Repository is a read-through product cache in front of another
// repository. Cache failures degrade to the inner repository; they are
// never surfaced to callers.
type Repository struct {
	inner  ports.Repository
	client *redis.Client
	ttl    time.Duration
}

// NewRepository wraps inner with a Redis cache at addr.
func NewRepository(inner ports.Repository, addr string, ttl time.Duration) *Repository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Repository{
		inner:  inner,
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// Close releases the underlying Redis connection.
func (r *Repository) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

type cachedProduct struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// Save writes through to the inner repository and refreshes the cache entry.
func (r *Repository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	saved, err := r.inner.Save(ctx, product)
	if err != nil {
		return nil, err
	}
	r.set(ctx, saved)
	return saved, nil
}

// GetByID serves from cache when possible, falling back to the inner repository.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if product := r.get(ctx, id); product != nil {
		return product, nil
	}
	product, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.set(ctx, product)
	return product, nil
}

// FindByIDs resolves cached entries first and batches the misses into a
// single inner lookup.
func (r *Repository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	hits := make([]*domain.Product, 0, len(ids))
	misses := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if product := r.get(ctx, id); product != nil {
			hits = append(hits, product)
			continue
		}
		misses = append(misses, id)
	}
	if len(misses) == 0 {
		return hits, nil
	}
	resolved, err := r.inner.FindByIDs(ctx, misses)
	if err != nil {
		return nil, err
	}
	for _, product := range resolved {
		r.set(ctx, product)
	}
	return append(hits, resolved...), nil
}

// List always reads from the inner repository; the full catalog is not cached.
func (r *Repository) List(ctx context.Context) ([]*domain.Product, error) {
	return r.inner.List(ctx)
}

func (r *Repository) get(ctx context.Context, id string) *domain.Product {
	if r.client == nil {
		return nil
	}
	payload, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		return nil
	}
	var cached cachedProduct
	if err := json.Unmarshal([]byte(payload), &cached); err != nil {
		return nil
	}
	return &domain.Product{
		ID:          cached.ID,
		Title:       cached.Title,
		Description: cached.Description,
		Price:       cached.Price,
	}
}

func (r *Repository) set(ctx context.Context, product *domain.Product) {
	if r.client == nil || product == nil || product.ID == "" {
		return
	}
	payload, err := json.Marshal(cachedProduct{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
	})
	if err != nil {
		return
	}
	_ = r.client.Set(ctx, r.key(product.ID), payload, r.ttl).Err()
}

func (r *Repository) key(id string) string {
	return fmt.Sprintf("catalog:product:%s", id)
}

// Ping verifies the Redis connection is usable.
func (r *Repository) Ping(ctx context.Context) error {
	if r == nil || r.client == nil {
		return errors.New("redis cache not configured")
	}
	return r.client.Ping(ctx).Err()
}
