package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/renopilot/backend/internal/model"
)

// PgPaintDataRepository is the PostgreSQL implementation of PaintDataRepository.
type PgPaintDataRepository struct {
	pool *pgxpool.Pool
}

func NewPgPaintDataRepository(pool *pgxpool.Pool) *PgPaintDataRepository {
	return &PgPaintDataRepository{pool: pool}
}

const paintDataColumns = `pd.id, pd.paint_type_id, pd.surface_type_id, pd.paint_quality_id,
	pd.coverage, pd.cost_per_m2, COALESCE(pd.notes, ''), pd.is_active, pd.created_at, pd.updated_at`

func scanPaintData(row pgx.Row) (*model.PaintData, error) {
	var pd model.PaintData
	err := row.Scan(&pd.ID, &pd.PaintTypeID, &pd.SurfaceTypeID, &pd.PaintQualityID,
		&pd.Coverage, &pd.CostPerM2, &pd.Notes, &pd.IsActive, &pd.CreatedAt, &pd.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &pd, nil
}

func (r *PgPaintDataRepository) List(ctx context.Context, activeOnly bool) ([]*model.PaintData, error) {
	q := `SELECT ` + paintDataColumns + ` FROM paint_data pd`
	if activeOnly {
		q += ` WHERE pd.is_active`
	}
	q += ` ORDER BY pd.paint_type_id, pd.surface_type_id, pd.paint_quality_id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPaintData(rows)
}

// Search lists active rows narrowed by related-entity names and a cost cap.
func (r *PgPaintDataRepository) Search(ctx context.Context, filter PaintDataFilter) ([]*model.PaintData, error) {
	q := `SELECT ` + paintDataColumns + `
	      FROM paint_data pd
	      JOIN paint_types pt ON pt.id = pd.paint_type_id
	      JOIN surface_types st ON st.id = pd.surface_type_id
	      JOIN paint_qualities pq ON pq.id = pd.paint_quality_id
	      WHERE pd.is_active`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.PaintTypeName != "" {
		q += ` AND pt.name ILIKE ` + arg("%"+filter.PaintTypeName+"%")
	}
	if filter.SurfaceTypeName != "" {
		q += ` AND st.name ILIKE ` + arg("%"+filter.SurfaceTypeName+"%")
	}
	if filter.QualityLevel != "" {
		q += ` AND pq.level = ` + arg(filter.QualityLevel)
	}
	if filter.MaxCostPerM2 != nil {
		q += ` AND pd.cost_per_m2 <= ` + arg(*filter.MaxCostPerM2)
	}
	q += ` ORDER BY pd.cost_per_m2`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPaintData(rows)
}

func (r *PgPaintDataRepository) GetByCombination(ctx context.Context, paintTypeID, surfaceTypeID, paintQualityID int64) (*model.PaintData, error) {
	pd, err := scanPaintData(r.pool.QueryRow(ctx,
		`SELECT `+paintDataColumns+` FROM paint_data pd
		 WHERE pd.paint_type_id = $1 AND pd.surface_type_id = $2 AND pd.paint_quality_id = $3
		   AND pd.is_active`,
		paintTypeID, surfaceTypeID, paintQualityID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return pd, nil
}

func (r *PgPaintDataRepository) Create(ctx context.Context, pd *model.PaintData) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO paint_data
		 (paint_type_id, surface_type_id, paint_quality_id, coverage, cost_per_m2, notes, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		pd.PaintTypeID, pd.SurfaceTypeID, pd.PaintQualityID, pd.Coverage, pd.CostPerM2, pd.Notes, pd.IsActive,
	).Scan(&pd.ID, &pd.CreatedAt, &pd.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *PgPaintDataRepository) Update(ctx context.Context, pd *model.PaintData) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE paint_data
		 SET paint_type_id=$1, surface_type_id=$2, paint_quality_id=$3,
		     coverage=$4, cost_per_m2=$5, notes=$6, is_active=$7, updated_at=NOW()
		 WHERE id=$8`,
		pd.PaintTypeID, pd.SurfaceTypeID, pd.PaintQualityID, pd.Coverage, pd.CostPerM2, pd.Notes, pd.IsActive, pd.ID,
	)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgPaintDataRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM paint_data WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectPaintData(rows pgx.Rows) ([]*model.PaintData, error) {
	var out []*model.PaintData
	for rows.Next() {
		pd, err := scanPaintData(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pd)
	}
	return out, rows.Err()
}
