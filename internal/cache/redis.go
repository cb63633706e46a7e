package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fitness-tracker/internal/models"

	"github.com/go-redis/redis/v8"
)

// ErrMiss is returned when no cached value exists for a key.
var ErrMiss = errors.New("cache miss")

type Client struct {
	rdb *redis.Client
}

func NewClient(ctx context.Context, addr string) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}

	return &Client{rdb: rdb}, nil
}

func recommendationKey(username string) string {
	return fmt.Sprintf("recommendation:%s", username)
}

func (c *Client) GetRecommendation(ctx context.Context, username string) (*models.Recommendation, error) {
	data, err := c.rdb.Get(ctx, recommendationKey(username)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}

	var rec models.Recommendation
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode cached recommendation: %w", err)
	}
	return &rec, nil
}

func (c *Client) SetRecommendation(ctx context.Context, username string, rec *models.Recommendation, ttl time.Duration) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, recommendationKey(username), data, ttl).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
