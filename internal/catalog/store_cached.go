package catalog

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"TTGear/internal/equipment"
)

const (
	keyRubbers      = "rubbers"
	keyBlades       = "blades"
	keyRubberPrefix = "rubber:"
	keyBladePrefix  = "blade:"
)

// CachedStore is a read-through cache in front of a slower Store. Failed
// lookups, not found included, are never cached. A ttl of zero or less
// turns caching off and every call goes to next.
type CachedStore struct {
	next  Store
	cache *cache.Cache
}

func NewCachedStore(next Store, ttl time.Duration) *CachedStore {
	s := &CachedStore{next: next}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}
	return s
}

func (s *CachedStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *CachedStore) ListRubbers(ctx context.Context) ([]equipment.Rubber, error) {
	return readThrough(ctx, s.cache, keyRubbers, s.next.ListRubbers, equipment.CloneRubbers)
}

func (s *CachedStore) ListBlades(ctx context.Context) ([]equipment.Blade, error) {
	return readThrough(ctx, s.cache, keyBlades, s.next.ListBlades, equipment.CloneBlades)
}

func (s *CachedStore) GetRubber(ctx context.Context, id string) (equipment.Rubber, error) {
	load := func(ctx context.Context) (equipment.Rubber, error) { return s.next.GetRubber(ctx, id) }
	return readThrough(ctx, s.cache, keyRubberPrefix+id, load, equipment.Rubber.Clone)
}

func (s *CachedStore) GetBlade(ctx context.Context, id string) (equipment.Blade, error) {
	load := func(ctx context.Context) (equipment.Blade, error) { return s.next.GetBlade(ctx, id) }
	return readThrough(ctx, s.cache, keyBladePrefix+id, load, equipment.Blade.Clone)
}

func readThrough[T any](
	ctx context.Context,
	c *cache.Cache,
	key string,
	load func(context.Context) (T, error),
	clone func(T) T,
) (T, error) {
	if c == nil {
		return load(ctx)
	}

	if v, ok := c.Get(key); ok {
		if cached, ok := v.(T); ok {
			return clone(cached), nil
		}
	}

	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.SetDefault(key, clone(v))
	return v, nil
}
