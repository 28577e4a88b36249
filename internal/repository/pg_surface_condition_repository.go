package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/renopilot/backend/internal/model"
)

// PgSurfaceConditionRepository is the PostgreSQL implementation of
// SurfaceConditionRepository.
type PgSurfaceConditionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSurfaceConditionRepository(pool *pgxpool.Pool) *PgSurfaceConditionRepository {
	return &PgSurfaceConditionRepository{pool: pool}
}

const surfaceConditionColumns = `id, name, COALESCE(description, ''),
	prep_time_wall, prep_time_ceiling, prep_time_door, prep_time_linear,
	is_active, created_at, updated_at`

func scanSurfaceCondition(row pgx.Row) (*model.SurfaceCondition, error) {
	var sc model.SurfaceCondition
	err := row.Scan(&sc.ID, &sc.Name, &sc.Description,
		&sc.PrepTimeWall, &sc.PrepTimeCeiling, &sc.PrepTimeDoor, &sc.PrepTimeLinear,
		&sc.IsActive, &sc.CreatedAt, &sc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (r *PgSurfaceConditionRepository) List(ctx context.Context, activeOnly bool) ([]*model.SurfaceCondition, error) {
	q := `SELECT ` + surfaceConditionColumns + ` FROM surface_conditions`
	if activeOnly {
		q += ` WHERE is_active`
	}
	q += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.SurfaceCondition
	for rows.Next() {
		sc, err := scanSurfaceCondition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

func (r *PgSurfaceConditionRepository) GetByID(ctx context.Context, id int64) (*model.SurfaceCondition, error) {
	sc, err := scanSurfaceCondition(r.pool.QueryRow(ctx,
		`SELECT `+surfaceConditionColumns+` FROM surface_conditions WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sc, nil
}

func (r *PgSurfaceConditionRepository) Create(ctx context.Context, sc *model.SurfaceCondition) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO surface_conditions
		 (name, description, prep_time_wall, prep_time_ceiling, prep_time_door, prep_time_linear, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		sc.Name, sc.Description, sc.PrepTimeWall, sc.PrepTimeCeiling, sc.PrepTimeDoor, sc.PrepTimeLinear, sc.IsActive,
	).Scan(&sc.ID, &sc.CreatedAt, &sc.UpdatedAt)
}

func (r *PgSurfaceConditionRepository) Update(ctx context.Context, sc *model.SurfaceCondition) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE surface_conditions
		 SET name=$1, description=$2, prep_time_wall=$3, prep_time_ceiling=$4,
		     prep_time_door=$5, prep_time_linear=$6, is_active=$7, updated_at=NOW()
		 WHERE id=$8`,
		sc.Name, sc.Description, sc.PrepTimeWall, sc.PrepTimeCeiling, sc.PrepTimeDoor, sc.PrepTimeLinear, sc.IsActive, sc.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgSurfaceConditionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM surface_conditions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
