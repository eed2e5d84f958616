package cache

import (
	"aviengine/internal/model"
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Live session state expires after two hours of inactivity; interviews run
// well under that
const sessionStateTTL = 2 * time.Hour

type SessionStateCache interface {
	Set(ctx context.Context, state *model.SessionState) error
	Get(ctx context.Context, id string) (*model.SessionState, error)
	Delete(ctx context.Context, id string) error
}

type sessionStateCache struct {
	client *redis.Client
}

func NewSessionStateCache(client *redis.Client) SessionStateCache {
	return &sessionStateCache{
		client: client,
	}
}

func (c *sessionStateCache) Set(ctx context.Context, state *model.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "avi:session:"+state.SessionID, data, sessionStateTTL).Err()
}

func (c *sessionStateCache) Get(ctx context.Context, id string) (*model.SessionState, error) {
	data, err := c.client.Get(ctx, "avi:session:"+id).Result()
	if err != nil {
		return nil, err
	}
	var state model.SessionState
	err = json.Unmarshal([]byte(data), &state)
	return &state, err
}

func (c *sessionStateCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, "avi:session:"+id).Err()
}
