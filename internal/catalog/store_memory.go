package catalog

import (
	"context"
	"time"

	"github.com/samber/lo"

	"TTGear/internal/equipment"
)

// MemStore serves an immutable dataset. It holds no locks: nothing writes
// after construction. The zero value has no dataset and reports
// equipment.ErrDataUnavailable.
type MemStore struct {
	rubbers  []equipment.Rubber
	blades   []equipment.Blade
	rubberBy map[string]equipment.Rubber
	bladeBy  map[string]equipment.Blade
	latency  time.Duration
	loaded   bool
}

type MemOption func(*MemStore)

// WithLatency delays every call by d to simulate a remote source.
func WithLatency(d time.Duration) MemOption {
	return func(s *MemStore) { s.latency = d }
}

func NewMemStore(d equipment.Dataset, opts ...MemOption) (*MemStore, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	rubbers := equipment.CloneRubbers(d.Rubbers)
	blades := equipment.CloneBlades(d.Blades)

	s := &MemStore{
		rubbers:  rubbers,
		blades:   blades,
		rubberBy: lo.KeyBy(rubbers, func(r equipment.Rubber) string { return r.ID }),
		bladeBy:  lo.KeyBy(blades, func(b equipment.Blade) string { return b.ID }),
		loaded:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewStore builds a MemStore over the embedded seed dataset.
func NewStore(opts ...MemOption) (*MemStore, error) {
	d, err := equipment.Seed()
	if err != nil {
		return nil, err
	}
	return NewMemStore(d, opts...)
}

func (s *MemStore) Ping(ctx context.Context) error {
	if !s.loaded {
		return equipment.ErrDataUnavailable
	}
	return nil
}

func (s *MemStore) ListRubbers(ctx context.Context) ([]equipment.Rubber, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return equipment.CloneRubbers(s.rubbers), nil
}

func (s *MemStore) ListBlades(ctx context.Context) ([]equipment.Blade, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return equipment.CloneBlades(s.blades), nil
}

func (s *MemStore) GetRubber(ctx context.Context, id string) (equipment.Rubber, error) {
	if err := s.wait(ctx); err != nil {
		return equipment.Rubber{}, err
	}

	r, ok := s.rubberBy[id]
	if !ok {
		return equipment.Rubber{}, equipment.ErrNotFound
	}
	return r.Clone(), nil
}

func (s *MemStore) GetBlade(ctx context.Context, id string) (equipment.Blade, error) {
	if err := s.wait(ctx); err != nil {
		return equipment.Blade{}, err
	}

	b, ok := s.bladeBy[id]
	if !ok {
		return equipment.Blade{}, equipment.ErrNotFound
	}
	return b.Clone(), nil
}

func (s *MemStore) wait(ctx context.Context) error {
	if !s.loaded {
		return equipment.ErrDataUnavailable
	}
	if s.latency <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(s.latency)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
