package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTTL is how long upstream responses are remembered.
const DefaultTTL = 15 * time.Minute

// Kind names the upstream resource a cache entry holds.
type Kind string

const (
	KindLeague       Kind = "league_data"
	KindLeagueUsers  Kind = "league_users_data"
	KindTransactions Kind = "league_transactions_data"
	KindDrafts       Kind = "league_draft_data"
	KindDraftPicks   Kind = "league_draft_picks_data"
)

// Key identifies a cache entry by resource kind, resource id and an optional
// sub-key such as the week number.
type Key struct {
	Kind Kind
	ID   string
	Sub  string
}

// String renders the key with dots so it is valid as a NATS KV key.
func (k Key) String() string {
	parts := []string{string(k.Kind), sanitize(k.ID)}
	if k.Sub != "" {
		parts = append(parts, sanitize(k.Sub))
	}
	return strings.Join(parts, ".")
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}

// Cache stores encoded upstream responses for a fixed TTL.
type Cache interface {
	Get(ctx context.Context, key Key) ([]byte, bool, error)
	Set(ctx context.Context, key Key, value []byte) error
}

// Fetch returns the cached value for key, or calls fetch and caches its
// result. Results for which isEmpty reports true are returned but never
// stored, so a transient upstream outage is not remembered as "no data".
func Fetch[T any](ctx context.Context, c Cache, key Key, fetch func(ctx context.Context) (T, error), isEmpty func(T) bool) (T, error) {
	var zero T

	if raw, ok, err := c.Get(ctx, key); err != nil {
		log.Warn().Err(err).Str("cache_key", key.String()).Msg("cache read failed, fetching fresh")
	} else if ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		log.Warn().Str("cache_key", key.String()).Msg("discarding undecodable cache entry")
	}

	value, err := fetch(ctx)
	if err != nil {
		return zero, err
	}
	if isEmpty != nil && isEmpty(value) {
		return value, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return zero, fmt.Errorf("failed to encode cache entry %s: %w", key, err)
	}
	if err := c.Set(ctx, key, raw); err != nil {
		log.Warn().Err(err).Str("cache_key", key.String()).Msg("cache write failed")
	}
	return value, nil
}

// EmptySlice reports whether a slice result is empty.
func EmptySlice[E any](s []E) bool {
	return len(s) == 0
}

// NilPointer reports whether a pointer result is nil.
func NilPointer[E any](p *E) bool {
	return p == nil
}
