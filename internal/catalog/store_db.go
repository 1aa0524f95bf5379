package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"TTGear/internal/equipment"
)

const (
	rubberColumns = `id, name, brand, type, hardness, speed, spin, control, tackiness,
		price, weight, thickness, description, pros, cons, recommended_for, image_url`
	bladeColumns = `id, name, brand, plies, composition, weight, speed, control, stiffness,
		price, handle, thickness, description, pros, cons, recommended_for, image_url`
)

// PostgresStore reads the rubbers and blades tables. List fields live in
// jsonb columns; position keeps the source order.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type rubberRow struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Brand          string         `db:"brand"`
	Type           string         `db:"type"`
	Hardness       float64        `db:"hardness"`
	Speed          float64        `db:"speed"`
	Spin           float64        `db:"spin"`
	Control        float64        `db:"control"`
	Tackiness      float64        `db:"tackiness"`
	Price          float64        `db:"price"`
	Weight         float64        `db:"weight"`
	Thickness      []byte         `db:"thickness"`
	Description    string         `db:"description"`
	Pros           []byte         `db:"pros"`
	Cons           []byte         `db:"cons"`
	RecommendedFor []byte         `db:"recommended_for"`
	ImageURL       sql.NullString `db:"image_url"`
}

type bladeRow struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Brand          string         `db:"brand"`
	Plies          int            `db:"plies"`
	Composition    []byte         `db:"composition"`
	Weight         float64        `db:"weight"`
	Speed          float64        `db:"speed"`
	Control        float64        `db:"control"`
	Stiffness      float64        `db:"stiffness"`
	Price          float64        `db:"price"`
	Handle         string         `db:"handle"`
	Thickness      float64        `db:"thickness"`
	Description    string         `db:"description"`
	Pros           []byte         `db:"pros"`
	Cons           []byte         `db:"cons"`
	RecommendedFor []byte         `db:"recommended_for"`
	ImageURL       sql.NullString `db:"image_url"`
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	err := withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
	if err != nil {
		return unavailable(ctx, err)
	}
	return nil
}

func (s *PostgresStore) ListRubbers(ctx context.Context) ([]equipment.Rubber, error) {
	var rows []rubberRow

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.SelectContext(ctx, &rows, `SELECT `+rubberColumns+` FROM rubbers ORDER BY position ASC`)
	})
	if err != nil {
		return nil, unavailable(ctx, err)
	}

	out := make([]equipment.Rubber, 0, len(rows))
	for _, row := range rows {
		r, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *PostgresStore) ListBlades(ctx context.Context) ([]equipment.Blade, error) {
	var rows []bladeRow

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.SelectContext(ctx, &rows, `SELECT `+bladeColumns+` FROM blades ORDER BY position ASC`)
	})
	if err != nil {
		return nil, unavailable(ctx, err)
	}

	out := make([]equipment.Blade, 0, len(rows))
	for _, row := range rows {
		b, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *PostgresStore) GetRubber(ctx context.Context, id string) (equipment.Rubber, error) {
	var row rubberRow

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.GetContext(ctx, &row, `SELECT `+rubberColumns+` FROM rubbers WHERE id = $1`, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return equipment.Rubber{}, equipment.ErrNotFound
	}
	if err != nil {
		return equipment.Rubber{}, unavailable(ctx, err)
	}
	return row.toDomain()
}

func (s *PostgresStore) GetBlade(ctx context.Context, id string) (equipment.Blade, error) {
	var row bladeRow

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.GetContext(ctx, &row, `SELECT `+bladeColumns+` FROM blades WHERE id = $1`, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return equipment.Blade{}, equipment.ErrNotFound
	}
	if err != nil {
		return equipment.Blade{}, unavailable(ctx, err)
	}
	return row.toDomain()
}

func (r rubberRow) toDomain() (equipment.Rubber, error) {
	t, err := equipment.ParseRubberType(r.Type)
	if err != nil {
		return equipment.Rubber{}, fmt.Errorf("%w: rubber %q: %w", equipment.ErrInvalidRecord, r.ID, err)
	}

	out := equipment.Rubber{
		ID:          r.ID,
		Name:        r.Name,
		Brand:       r.Brand,
		Type:        t,
		Hardness:    r.Hardness,
		Speed:       r.Speed,
		Spin:        r.Spin,
		Control:     r.Control,
		Tackiness:   r.Tackiness,
		Price:       r.Price,
		Weight:      r.Weight,
		Description: r.Description,
		ImageURL:    r.ImageURL.String,
	}

	err = decodeColumns(r.ID,
		column{"thickness", r.Thickness, &out.Thickness},
		column{"pros", r.Pros, &out.Pros},
		column{"cons", r.Cons, &out.Cons},
		column{"recommended_for", r.RecommendedFor, &out.RecommendedFor},
	)
	if err != nil {
		return equipment.Rubber{}, err
	}

	if err := out.Validate(); err != nil {
		return equipment.Rubber{}, err
	}
	return out, nil
}

func (b bladeRow) toDomain() (equipment.Blade, error) {
	h, err := equipment.ParseHandle(b.Handle)
	if err != nil {
		return equipment.Blade{}, fmt.Errorf("%w: blade %q: %w", equipment.ErrInvalidRecord, b.ID, err)
	}

	out := equipment.Blade{
		ID:          b.ID,
		Name:        b.Name,
		Brand:       b.Brand,
		Plies:       b.Plies,
		Weight:      b.Weight,
		Speed:       b.Speed,
		Control:     b.Control,
		Stiffness:   b.Stiffness,
		Price:       b.Price,
		Handle:      h,
		Thickness:   b.Thickness,
		Description: b.Description,
		ImageURL:    b.ImageURL.String,
	}

	err = decodeColumns(b.ID,
		column{"composition", b.Composition, &out.Composition},
		column{"pros", b.Pros, &out.Pros},
		column{"cons", b.Cons, &out.Cons},
		column{"recommended_for", b.RecommendedFor, &out.RecommendedFor},
	)
	if err != nil {
		return equipment.Blade{}, err
	}

	if err := out.Validate(); err != nil {
		return equipment.Blade{}, err
	}
	return out, nil
}

type column struct {
	name string
	raw  []byte
	dst  any
}

func decodeColumns(id string, cols ...column) error {
	for _, c := range cols {
		if len(c.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(c.raw, c.dst); err != nil {
			return fmt.Errorf("%w: %q column %s: %v", equipment.ErrInvalidRecord, id, c.name, err)
		}
	}
	return nil
}

// unavailable reports the caller's own cancellation as is and everything
// else as a data source failure.
func unavailable(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return fmt.Errorf("%w: %w", equipment.ErrDataUnavailable, err)
}
