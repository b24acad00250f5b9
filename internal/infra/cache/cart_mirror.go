// Package cache mirrors carts into Redis. The mirror is advisory: callers
// bound every call with a time budget and treat failures as misses.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"storefront-backend/internal/domain/cart"
	"storefront-backend/internal/pkg/config"
	"storefront-backend/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// cartDocument is the JSON value stored under each cart key.
type cartDocument struct {
	Cart      cart.Items `json:"cart"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type RedisCartMirror struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedisCartMirror(client redis.Cmdable, cfg config.CartConfig) *RedisCartMirror {
	return &RedisCartMirror{
		client: client,
		prefix: cfg.KeyPrefix,
		ttl:    cfg.MirrorTTL,
	}
}

func (m *RedisCartMirror) Key(owner cart.Owner) string {
	return m.prefix + ":" + owner.String()
}

func (m *RedisCartMirror) Put(ctx context.Context, owner cart.Owner, items cart.Items, savedAt time.Time) error {
	if items == nil {
		items = cart.Empty()
	}
	data, err := json.Marshal(cartDocument{Cart: items, UpdatedAt: savedAt.UTC()})
	if err != nil {
		return errs.Wrap(err, "cart mirror marshal")
	}
	if err := m.client.Set(ctx, m.Key(owner), data, m.ttl).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "cart mirror set"), errs.ErrDependencyUnavailable)
	}
	return nil
}

// Get reports found=false on a miss. A document holding an empty cart is a hit.
func (m *RedisCartMirror) Get(ctx context.Context, owner cart.Owner) (cart.Items, bool, error) {
	data, err := m.client.Get(ctx, m.Key(owner)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Mark(errs.Wrap(err, "cart mirror get"), errs.ErrDependencyUnavailable)
	}

	var doc cartDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, errs.Wrap(err, "cart mirror unmarshal")
	}
	if doc.Cart == nil {
		doc.Cart = cart.Empty()
	}
	return doc.Cart, true, nil
}

// NopCartMirror stands in when Redis is not configured. It always misses.
type NopCartMirror struct{}

func (NopCartMirror) Put(context.Context, cart.Owner, cart.Items, time.Time) error { return nil }

func (NopCartMirror) Get(context.Context, cart.Owner) (cart.Items, bool, error) {
	return nil, false, nil
}

// NewRedisClient builds a client from cfg, or returns nil when Redis is
// disabled.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled() {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
