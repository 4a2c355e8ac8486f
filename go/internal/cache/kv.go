package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"
)

type KVConfig struct {
	URL           string
	Bucket        string
	TTL           time.Duration
	Replicas      int
	MaxReconnects int
	ReconnectWait time.Duration
}

func DefaultKVConfig() KVConfig {
	return KVConfig{
		URL:           nats.DefaultURL,
		Bucket:        "LEAGUE_RESPONSES",
		TTL:           DefaultTTL,
		Replicas:      1,
		MaxReconnects: -1, // Infinite
		ReconnectWait: 2 * time.Second,
	}
}

// KVCache keeps upstream responses in a JetStream key-value bucket so every
// service instance shares one cache. Entry expiry is the bucket TTL.
type KVCache struct {
	nc *nats.Conn
	kv jetstream.KeyValue
}

func NewKVCache(ctx context.Context, cfg KVConfig) (*KVCache, error) {
	opts := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      cfg.Bucket,
		Description: "Cached league platform responses",
		TTL:         cfg.TTL,
		History:     1,
		Replicas:    cfg.Replicas,
		Storage:     jetstream.MemoryStorage,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("ensure key-value bucket %s: %w", cfg.Bucket, err)
	}

	log.Info().
		Str("bucket", cfg.Bucket).
		Dur("ttl", cfg.TTL).
		Msg("using JetStream key-value response cache")

	return &KVCache{nc: nc, kv: kv}, nil
}

func (c *KVCache) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	e, err := c.kv.Get(ctx, key.String())
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) || errors.Is(err, jetstream.ErrKeyDeleted) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return e.Value(), true, nil
}

func (c *KVCache) Set(ctx context.Context, key Key, value []byte) error {
	if _, err := c.kv.Put(ctx, key.String(), value); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (c *KVCache) Close() error {
	if c.nc != nil {
		c.nc.Close()
	}
	return nil
}
