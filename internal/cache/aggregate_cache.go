package cache

import (
	"aviengine/internal/model"
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

type AggregateCache interface {
	Set(ctx context.Context, session *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
}

// aggregateCache stores the derived session view so monitors polling a
// session do not trigger a rebuild on every request. The aggregate can
// always be recomputed from the state, so a short TTL is fine.
type aggregateCache struct {
	client *redis.Client
}

func NewAggregateCache(client *redis.Client) AggregateCache {
	return &aggregateCache{
		client: client,
	}
}

func (c *aggregateCache) Set(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "avi:aggregate:"+session.SessionID, data, 10*time.Minute).Err()
}

func (c *aggregateCache) Get(ctx context.Context, id string) (*model.Session, error) {
	data, err := c.client.Get(ctx, "avi:aggregate:"+id).Result()
	if err != nil {
		return nil, err
	}
	var session model.Session
	err = json.Unmarshal([]byte(data), &session)
	return &session, err
}

func (c *aggregateCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, "avi:aggregate:"+id).Err()
}
