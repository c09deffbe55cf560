package cache

import (
	"context"
	"errors"
	"time"

	"github.com/anvaya/crm/internal/model"
	"github.com/go-redis/redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

const tagListKey = "tags:all"
const cachedTagListTimeToLive = 10 * time.Minute

// TagCacheRepository caches the full tag list rendered in dropdowns
type TagCacheRepository interface {
	FindAll(context.Context) ([]*model.Tag, error)
	Cache(context.Context, []*model.Tag) error
	Purge(context.Context) error
}

type redisTagCache struct {
	client *redis.Client
}

// NewRedisTagCacheRepository builds redis implementation of TagCacheRepository
func NewRedisTagCacheRepository(client *redis.Client) TagCacheRepository {
	return &redisTagCache{client: client}
}

func (r *redisTagCache) FindAll(ctx context.Context) ([]*model.Tag, error) {
	res, err := r.client.Get(ctx, tagListKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var tags []*model.Tag
	if err := msgpack.Unmarshal([]byte(res), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *redisTagCache) Cache(ctx context.Context, tags []*model.Tag) error {
	encoded, err := msgpack.Marshal(tags)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, tagListKey, encoded, cachedTagListTimeToLive).Err(); err != nil {
		return err
	}
	return nil
}

func (r *redisTagCache) Purge(ctx context.Context) error {
	if err := r.client.Del(ctx, tagListKey).Err(); err != nil {
		return err
	}
	return nil
}
