package store

import (
	"context"
	"fmt"

	"ecopontos/internal/utils"
	"ecopontos/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pointTableName       = "points"
	associationTableName = "point_categories"
)

var (
	pointColumns       = utils.StructTagValues(types.Point{})
	associationColumns = utils.StructTagValues(types.PointCategory{})
)

type PointRepository struct {
	pool *pgxpool.Pool
}

func NewPointRepository(pool *pgxpool.Pool) *PointRepository {
	return &PointRepository{pool: pool}
}

// CreatePoint runs the point insert and the association inserts in one
// transaction. The deferred rollback is a no-op after commit.
func (r *PointRepository) CreatePoint(ctx context.Context, point *types.Point, categoryIDs []int) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, persistence("begin point transaction", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	pointID, err := insertPoint(ctx, tx, point)
	if err != nil {
		return 0, err
	}

	if err := insertAssociations(ctx, tx, pointID, categoryIDs); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, persistence("commit point transaction", err)
	}

	return pointID, nil
}

func insertPoint(ctx context.Context, tx pgx.Tx, point *types.Point) (int64, error) {
	pointMap := utils.StructToMap(point)
	delete(pointMap, "id") // assigned by the database

	query, args, err := psql().
		Insert(pointTableName).
		SetMap(pointMap).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate insert point query: %w", err)
	}

	var pointID int64
	if err := tx.QueryRow(ctx, query, args...).Scan(&pointID); err != nil {
		return 0, persistence("insert point", err)
	}

	return pointID, nil
}

func insertAssociations(ctx context.Context, tx pgx.Tx, pointID int64, categoryIDs []int) error {
	builder := psql().
		Insert(associationTableName).
		Columns(associationColumns...)

	for _, categoryID := range categoryIDs {
		builder = builder.Values(pointID, categoryID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert associations query: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return persistence("insert point categories", err)
	}

	return nil
}

func (r *PointRepository) PointByID(ctx context.Context, pointID int64) (*types.Point, error) {
	query, args, err := psql().
		Select(pointColumns...).
		From(pointTableName).
		Where(sq.Eq{"id": pointID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate point query: %w", err)
	}

	var point types.Point
	err = pgxscan.Get(ctx, r.pool, &point, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrPointNotFound
		}
		return nil, persistence("fetch point", err)
	}

	return &point, nil
}

func (r *PointRepository) PointsByLocation(ctx context.Context, uf, city string, categoryIDs []int) ([]*types.Point, error) {
	// A point qualifying through several categories must still appear
	// once, hence the DISTINCT over the join.
	query, args, err := psql().
		Select(prefixColumns("p", pointColumns)...).
		Distinct().
		From(pointTableName + " p").
		Join(associationTableName + " pc ON pc.point_id = p.id").
		Where(sq.Eq{"p.uf": uf, "p.city": city, "pc.category_id": categoryIDs}).
		OrderBy("p.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate points query: %w", err)
	}

	points := make([]*types.Point, 0)
	if err := pgxscan.Select(ctx, r.pool, &points, query, args...); err != nil {
		return nil, persistence("fetch points", err)
	}

	return points, nil
}

func prefixColumns(alias string, columns []string) []string {
	out := make([]string, 0, len(columns))
	for _, column := range columns {
		out = append(out, alias+"."+column)
	}
	return out
}
