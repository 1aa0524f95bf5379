package catalog

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"

	"TTGear/internal/equipment"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// Store is the read-only equipment repository. Lookups return
// equipment.ErrNotFound for unknown ids and wrap equipment.ErrDataUnavailable
// when the backing source cannot be read. Lists keep source order.
type Store interface {
	Ping(ctx context.Context) error
	ListRubbers(ctx context.Context) ([]equipment.Rubber, error)
	ListBlades(ctx context.Context) ([]equipment.Blade, error)
	GetRubber(ctx context.Context, id string) (equipment.Rubber, error)
	GetBlade(ctx context.Context, id string) (equipment.Blade, error)
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
