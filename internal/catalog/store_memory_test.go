package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"TTGear/internal/catalog"
	"TTGear/internal/equipment"
)

func newSeedStore(t *testing.T, opts ...catalog.MemOption) *catalog.MemStore {
	t.Helper()

	s, err := catalog.NewStore(opts...)
	require.NoError(t, err)
	return s
}

func TestMemStore_GetRubber(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	s := newSeedStore(t)

	r, err := s.GetRubber(ctx, "r1")
	rq.NoError(err)
	rq.Equal("r1", r.ID)
	rq.Equal("Tenergy 05", r.Name)
	rq.Equal(equipment.RubberInverted, r.Type)
	rq.Equal(9.0, r.Speed)
	rq.Equal(10.0, r.Spin)

	_, err = s.GetRubber(ctx, "nonexistent")
	rq.ErrorIs(err, equipment.ErrNotFound)
	rq.NotErrorIs(err, equipment.ErrDataUnavailable)

	// ids are scoped to their own collection
	_, err = s.GetRubber(ctx, "b1")
	rq.ErrorIs(err, equipment.ErrNotFound)
}

func TestMemStore_GetBlade(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	s := newSeedStore(t)

	b, err := s.GetBlade(ctx, "b1")
	rq.NoError(err)
	rq.Equal(5, b.Plies)
	rq.Equal(equipment.HandleFlared, b.Handle)

	blades, err := s.ListBlades(ctx)
	rq.NoError(err)

	count := 0
	for _, bl := range blades {
		if bl.ID == "b1" {
			count++
		}
	}
	rq.Equal(1, count)

	_, err = s.GetBlade(ctx, "nonexistent")
	rq.ErrorIs(err, equipment.ErrNotFound)
}

func TestMemStore_EveryIDResolves(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	s := newSeedStore(t)

	seed, err := equipment.Seed()
	rq.NoError(err)

	for _, want := range seed.Rubbers {
		got, err := s.GetRubber(ctx, want.ID)
		rq.NoError(err)
		rq.Equal(want, got)
	}
	for _, want := range seed.Blades {
		got, err := s.GetBlade(ctx, want.ID)
		rq.NoError(err)
		rq.Equal(want, got)
	}
}

func TestMemStore_Lists(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	s := newSeedStore(t)

	seed, err := equipment.Seed()
	rq.NoError(err)

	rubbers, err := s.ListRubbers(ctx)
	rq.NoError(err)
	rq.Equal(seed.Rubbers, rubbers)

	ids := make(map[string]struct{}, len(rubbers))
	for _, r := range rubbers {
		ids[r.ID] = struct{}{}
	}
	rq.Len(ids, len(seed.Rubbers))

	again, err := s.ListRubbers(ctx)
	rq.NoError(err)
	rq.Equal(rubbers, again)

	blades, err := s.ListBlades(ctx)
	rq.NoError(err)
	rq.Equal(seed.Blades, blades)
}

func TestMemStore_ResultsAreCopies(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	s := newSeedStore(t)

	rubbers, err := s.ListRubbers(ctx)
	rq.NoError(err)
	rubbers[0].Name = "changed"
	rubbers[0].Pros[0] = "changed"

	r, err := s.GetRubber(ctx, "r1")
	rq.NoError(err)
	rq.Equal("Tenergy 05", r.Name)
	rq.NotEqual("changed", r.Pros[0])
}

func TestMemStore_ConcurrentReads(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	s := newSeedStore(t)

	errs := make(chan error, 50)
	for i := 0; i < cap(errs); i++ {
		go func() {
			_, err := s.GetBlade(ctx, "b2")
			errs <- err
		}()
	}
	for i := 0; i < cap(errs); i++ {
		rq.NoError(<-errs)
	}
}

func TestMemStore_Latency(t *testing.T) {
	rq := require.New(t)
	s := newSeedStore(t, catalog.WithLatency(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListRubbers(ctx)
	rq.ErrorIs(err, context.Canceled)

	_, err = s.GetBlade(ctx, "b1")
	rq.ErrorIs(err, context.Canceled)

	fast := newSeedStore(t, catalog.WithLatency(time.Millisecond))
	r, err := fast.GetRubber(context.Background(), "r2")
	rq.NoError(err)
	rq.Equal("r2", r.ID)
}

func TestMemStore_Unavailable(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	var s catalog.MemStore

	rq.ErrorIs(s.Ping(ctx), equipment.ErrDataUnavailable)

	_, err := s.ListRubbers(ctx)
	rq.ErrorIs(err, equipment.ErrDataUnavailable)

	_, err = s.GetRubber(ctx, "r1")
	rq.ErrorIs(err, equipment.ErrDataUnavailable)
	rq.NotErrorIs(err, equipment.ErrNotFound)
}

func TestNewMemStore_RejectsInvalid(t *testing.T) {
	d := equipment.Dataset{
		Blades: []equipment.Blade{{ID: "b", Name: "n", Brand: "x", Plies: 5, Composition: []string{"ayous"},
			Speed: 5, Control: 5, Stiffness: 5, Handle: "pistol", Thickness: 5}},
	}

	_, err := catalog.NewMemStore(d)
	require.ErrorIs(t, err, equipment.ErrInvalidRecord)
}
