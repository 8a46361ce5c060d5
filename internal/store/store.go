package store

import (
	"context"

	"ecopontos/pkg/types"

	sq "github.com/Masterminds/squirrel"
)

// CategoryStore reads the fixed material-category catalog. The registry
// never writes categories; seeding happens out of band.
type CategoryStore interface {
	AllCategories(ctx context.Context) ([]*types.Category, error)
	CategoriesForPoint(ctx context.Context, pointID int64) ([]*types.Category, error)
}

// PointStore persists collection points and their category associations.
type PointStore interface {
	// CreatePoint inserts the point row and one association row per
	// category id as a single atomic unit and returns the assigned id.
	// On failure neither write is visible.
	CreatePoint(ctx context.Context, point *types.Point, categoryIDs []int) (int64, error)

	// PointByID returns types.ErrPointNotFound for unknown ids.
	PointByID(ctx context.Context, pointID int64) (*types.Point, error)

	// PointsByLocation returns every distinct point matching uf and city
	// exactly (no normalization) with at least one association in the
	// given category set. An empty set matches nothing.
	PointsByLocation(ctx context.Context, uf, city string, categoryIDs []int) ([]*types.Point, error)
}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func persistence(op string, err error) error {
	return &types.PersistenceError{Op: op, Err: err}
}
