package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"TTGear/internal/equipment"
)

// ComputeStats lists both collections concurrently and summarises them.
func ComputeStats(ctx context.Context, s Store) (equipment.Stats, error) {
	var (
		rubbers []equipment.Rubber
		blades  []equipment.Blade
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rubbers, err = s.ListRubbers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		blades, err = s.ListBlades(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return equipment.Stats{}, err
	}
	return equipment.ComputeStats(rubbers, blades), nil
}
