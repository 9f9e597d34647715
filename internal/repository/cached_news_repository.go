package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"newvision/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	newsCacheKeyPrefix = "news:"
	allNewsCacheKey    = "news:all"
	newsCacheTTL       = 30 * time.Minute
)

// cachedNewsRepository decorates a NewsRepository with Redis read caching.
// Every mutation, including the view increment, drops both the per-article
// key and the collection key, so a read after a write always reflects it.
type cachedNewsRepository struct {
	inner NewsRepository
	redis *redis.Client
	ctx   context.Context
}

func NewCachedNewsRepository(inner NewsRepository, redisClient *redis.Client) NewsRepository {
	return &cachedNewsRepository{
		inner: inner,
		redis: redisClient,
		ctx:   context.Background(),
	}
}

func newsCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", newsCacheKeyPrefix, id)
}

func (r *cachedNewsRepository) FindAll() ([]models.News, error) {
	cached, err := r.redis.Get(r.ctx, allNewsCacheKey).Result()
	if err == nil {
		var news []models.News
		if err := json.Unmarshal([]byte(cached), &news); err == nil {
			return news, nil
		}
	}

	news, err := r.inner.FindAll()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(news); err == nil {
		if err := r.redis.Set(r.ctx, allNewsCacheKey, data, newsCacheTTL).Err(); err != nil {
			log.Printf("Failed to cache news list: %v", err)
		}
	}
	return news, nil
}

func (r *cachedNewsRepository) FindByID(id uint) (*models.News, error) {
	key := newsCacheKey(id)
	cached, err := r.redis.Get(r.ctx, key).Result()
	if err == nil {
		var article models.News
		if err := json.Unmarshal([]byte(cached), &article); err == nil {
			return &article, nil
		}
	}

	article, err := r.inner.FindByID(id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(article); err == nil {
		if err := r.redis.Set(r.ctx, key, data, newsCacheTTL).Err(); err != nil {
			log.Printf("Failed to cache news %d: %v", id, err)
		}
	}
	return article, nil
}

func (r *cachedNewsRepository) Create(article *models.News) error {
	if err := r.inner.Create(article); err != nil {
		return err
	}
	// A flash create may have cleared flags on other rows.
	r.invalidateAll()
	return nil
}

func (r *cachedNewsRepository) Update(id uint, updates *models.NewsUpdate) (*models.News, error) {
	article, err := r.inner.Update(id, updates)
	if err != nil {
		return nil, err
	}
	r.invalidateAll()
	return article, nil
}

func (r *cachedNewsRepository) Delete(id uint) error {
	if err := r.inner.Delete(id); err != nil {
		return err
	}
	r.invalidate(id)
	return nil
}

func (r *cachedNewsRepository) IncrementViews(id uint) (int, error) {
	views, err := r.inner.IncrementViews(id)
	if err != nil {
		return 0, err
	}
	r.invalidate(id)
	return views, nil
}

func (r *cachedNewsRepository) SetDisplayOrder(orders []models.NewsOrder) (int, error) {
	updated, err := r.inner.SetDisplayOrder(orders)
	if err != nil {
		return 0, err
	}
	r.invalidateAll()
	return updated, nil
}

func (r *cachedNewsRepository) invalidate(id uint) {
	if err := r.redis.Del(r.ctx, newsCacheKey(id), allNewsCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate news cache: %v", err)
	}
}

// invalidateAll flushes every cached article; a flash transition can touch
// any row, so dropping only the written id is not enough.
func (r *cachedNewsRepository) invalidateAll() {
	iter := r.redis.Scan(r.ctx, 0, newsCacheKeyPrefix+"*", 0).Iterator()
	for iter.Next(r.ctx) {
		if err := r.redis.Del(r.ctx, iter.Val()).Err(); err != nil {
			log.Printf("Failed to invalidate %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("Failed to scan news cache keys: %v", err)
	}
}
