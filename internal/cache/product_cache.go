package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const notFoundMarker = "notfound"

// CachedProductRepository serves product detail reads from redis and falls
// back to the wrapped repository on a miss or any redis failure.
type CachedProductRepository struct {
	domain.ProductRepository
	redis       *redis.Client
	ttl         time.Duration
	notFoundTTL time.Duration
	log         *logrus.Logger
}

func NewCachedProductRepository(realRepo domain.ProductRepository, client *redis.Client, ttl time.Duration, logger *logrus.Logger) *CachedProductRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedProductRepository{
		ProductRepository: realRepo,
		redis:             client,
		ttl:               ttl,
		notFoundTTL:       time.Minute,
		log:               logger,
	}
}

// NewRedisClient parses a redis:// URL and checks the server is reachable.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func productKey(id int) string {
	return fmt.Sprintf("product:%d", id)
}

func (c *CachedProductRepository) GetWithDetails(ctx context.Context, id int) (*domain.Product, error) {
	key := productKey(id)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == notFoundMarker {
			return nil, fmt.Errorf("product with id %d: %w", id, domain.ErrNotFound)
		}
		var product domain.Product
		if err := json.Unmarshal(data, &product); err != nil {
			c.log.Warnf("Cache: Failed to unmarshal cached product %d (continuing with DB): %v", id, err)
			break
		}
		return &product, nil
	case errors.Is(err, redis.Nil):
	default:
		c.log.Warnf("Cache: Redis error reading %s (continuing with DB): %v", key, err)
	}

	product, err := c.ProductRepository.GetWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			if setErr := c.redis.Set(ctx, key, notFoundMarker, c.notFoundTTL).Err(); setErr != nil {
				c.log.Warnf("Cache: Failed to cache miss for %s: %v", key, setErr)
			}
		}
		return nil, err
	}

	payload, err := json.Marshal(product)
	if err != nil {
		c.log.Warnf("Cache: Failed to marshal product %d: %v", id, err)
		return product, nil
	}
	if err := c.redis.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Cache: Failed to cache %s: %v", key, err)
	}
	return product, nil
}

func (c *CachedProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := c.ProductRepository.Create(ctx, product); err != nil {
		return err
	}
	// a not-found marker may exist for the freshly assigned id
	c.invalidate(ctx, product.ProductID)
	return nil
}

func (c *CachedProductRepository) CreateBatch(ctx context.Context, products []domain.Product) error {
	if err := c.ProductRepository.CreateBatch(ctx, products); err != nil {
		return err
	}
	pipe := c.redis.Pipeline()
	for i := range products {
		pipe.Del(ctx, productKey(products[i].ProductID))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.Warnf("Cache: Failed to clear keys after batch insert: %v", err)
	}
	return nil
}

func (c *CachedProductRepository) Update(ctx context.Context, product *domain.Product) error {
	err := c.ProductRepository.Update(ctx, product)
	c.invalidate(ctx, product.ProductID)
	return err
}

func (c *CachedProductRepository) invalidate(ctx context.Context, id int) {
	if err := c.redis.Del(ctx, productKey(id)).Err(); err != nil {
		c.log.Warnf("Cache: Failed to delete %s: %v", productKey(id), err)
	}
}
