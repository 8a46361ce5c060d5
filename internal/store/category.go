package store

import (
	"context"
	"fmt"

	"ecopontos/internal/utils"
	"ecopontos/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryTableName = "categories"

var categoryColumns = utils.StructTagValues(types.Category{})

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) AllCategories(ctx context.Context) ([]*types.Category, error) {
	query, args, err := psql().
		Select(categoryColumns...).
		From(categoryTableName).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate categories query: %w", err)
	}

	categories := make([]*types.Category, 0)
	if err := pgxscan.Select(ctx, r.pool, &categories, query, args...); err != nil {
		return nil, persistence("fetch categories", err)
	}

	return categories, nil
}

func (r *CategoryRepository) CategoriesForPoint(ctx context.Context, pointID int64) ([]*types.Category, error) {
	query, args, err := psql().
		Select("c.id", "c.title", "c.image").
		From(categoryTableName + " c").
		Join("point_categories pc ON pc.category_id = c.id").
		Where(sq.Eq{"pc.point_id": pointID}).
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate point categories query: %w", err)
	}

	categories := make([]*types.Category, 0)
	if err := pgxscan.Select(ctx, r.pool, &categories, query, args...); err != nil {
		return nil, persistence("fetch point categories", err)
	}

	return categories, nil
}

// UpsertCategory syncs one catalog entry by fixed id. Used by the seed
// command only; the catalog is read-only at runtime.
func (r *CategoryRepository) UpsertCategory(ctx context.Context, category *types.Category) error {
	query, args, err := psql().
		Insert(categoryTableName).
		SetMap(utils.StructToMap(category)).
		Suffix("ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, image = EXCLUDED.image").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return persistence("upsert category", err)
	}

	return nil
}
