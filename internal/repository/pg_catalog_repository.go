package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/renopilot/backend/internal/model"
)

// isUniqueViolation reports a 23505 from postgres.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// PgPaintTypeRepository is the PostgreSQL implementation of PaintTypeRepository.
type PgPaintTypeRepository struct {
	pool *pgxpool.Pool
}

func NewPgPaintTypeRepository(pool *pgxpool.Pool) *PgPaintTypeRepository {
	return &PgPaintTypeRepository{pool: pool}
}

func (r *PgPaintTypeRepository) List(ctx context.Context, activeOnly bool) ([]*model.PaintType, error) {
	q := `SELECT id, name, category, COALESCE(description, ''), is_active, created_at, updated_at
	      FROM paint_types`
	if activeOnly {
		q += ` WHERE is_active`
	}
	q += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.PaintType
	for rows.Next() {
		var pt model.PaintType
		if err := rows.Scan(&pt.ID, &pt.Name, &pt.Category, &pt.Description, &pt.IsActive, &pt.CreatedAt, &pt.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &pt)
	}
	return out, rows.Err()
}

func (r *PgPaintTypeRepository) GetByID(ctx context.Context, id int64) (*model.PaintType, error) {
	var pt model.PaintType
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, category, COALESCE(description, ''), is_active, created_at, updated_at
		 FROM paint_types WHERE id = $1`,
		id,
	).Scan(&pt.ID, &pt.Name, &pt.Category, &pt.Description, &pt.IsActive, &pt.CreatedAt, &pt.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *PgPaintTypeRepository) Create(ctx context.Context, pt *model.PaintType) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO paint_types (name, category, description, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		pt.Name, pt.Category, pt.Description, pt.IsActive,
	).Scan(&pt.ID, &pt.CreatedAt, &pt.UpdatedAt)
}

func (r *PgPaintTypeRepository) Update(ctx context.Context, pt *model.PaintType) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE paint_types SET name=$1, category=$2, description=$3, is_active=$4, updated_at=NOW()
		 WHERE id=$5`,
		pt.Name, pt.Category, pt.Description, pt.IsActive, pt.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgPaintTypeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM paint_types WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// PgSurfaceTypeRepository is the PostgreSQL implementation of SurfaceTypeRepository.
type PgSurfaceTypeRepository struct {
	pool *pgxpool.Pool
}

func NewPgSurfaceTypeRepository(pool *pgxpool.Pool) *PgSurfaceTypeRepository {
	return &PgSurfaceTypeRepository{pool: pool}
}

func (r *PgSurfaceTypeRepository) List(ctx context.Context, activeOnly bool) ([]*model.SurfaceType, error) {
	q := `SELECT id, name, category, COALESCE(description, ''), is_active, created_at, updated_at
	      FROM surface_types`
	if activeOnly {
		q += ` WHERE is_active`
	}
	q += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.SurfaceType
	for rows.Next() {
		var st model.SurfaceType
		if err := rows.Scan(&st.ID, &st.Name, &st.Category, &st.Description, &st.IsActive, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &st)
	}
	return out, rows.Err()
}

func (r *PgSurfaceTypeRepository) GetByID(ctx context.Context, id int64) (*model.SurfaceType, error) {
	var st model.SurfaceType
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, category, COALESCE(description, ''), is_active, created_at, updated_at
		 FROM surface_types WHERE id = $1`,
		id,
	).Scan(&st.ID, &st.Name, &st.Category, &st.Description, &st.IsActive, &st.CreatedAt, &st.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *PgSurfaceTypeRepository) Create(ctx context.Context, st *model.SurfaceType) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO surface_types (name, category, description, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		st.Name, st.Category, st.Description, st.IsActive,
	).Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt)
}

func (r *PgSurfaceTypeRepository) Update(ctx context.Context, st *model.SurfaceType) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE surface_types SET name=$1, category=$2, description=$3, is_active=$4, updated_at=NOW()
		 WHERE id=$5`,
		st.Name, st.Category, st.Description, st.IsActive, st.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgSurfaceTypeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM surface_types WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// PgPaintQualityRepository is the PostgreSQL implementation of PaintQualityRepository.
type PgPaintQualityRepository struct {
	pool *pgxpool.Pool
}

func NewPgPaintQualityRepository(pool *pgxpool.Pool) *PgPaintQualityRepository {
	return &PgPaintQualityRepository{pool: pool}
}

func (r *PgPaintQualityRepository) List(ctx context.Context, activeOnly bool) ([]*model.PaintQuality, error) {
	q := `SELECT id, name, level, COALESCE(description, ''), is_active, created_at, updated_at
	      FROM paint_qualities`
	if activeOnly {
		q += ` WHERE is_active`
	}
	q += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.PaintQuality
	for rows.Next() {
		var pq model.PaintQuality
		if err := rows.Scan(&pq.ID, &pq.Name, &pq.Level, &pq.Description, &pq.IsActive, &pq.CreatedAt, &pq.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &pq)
	}
	return out, rows.Err()
}

func (r *PgPaintQualityRepository) GetByID(ctx context.Context, id int64) (*model.PaintQuality, error) {
	var pq model.PaintQuality
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, level, COALESCE(description, ''), is_active, created_at, updated_at
		 FROM paint_qualities WHERE id = $1`,
		id,
	).Scan(&pq.ID, &pq.Name, &pq.Level, &pq.Description, &pq.IsActive, &pq.CreatedAt, &pq.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pq, nil
}

func (r *PgPaintQualityRepository) Create(ctx context.Context, pq *model.PaintQuality) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO paint_qualities (name, level, description, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		pq.Name, pq.Level, pq.Description, pq.IsActive,
	).Scan(&pq.ID, &pq.CreatedAt, &pq.UpdatedAt)
}

func (r *PgPaintQualityRepository) Update(ctx context.Context, pq *model.PaintQuality) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE paint_qualities SET name=$1, level=$2, description=$3, is_active=$4, updated_at=NOW()
		 WHERE id=$5`,
		pq.Name, pq.Level, pq.Description, pq.IsActive, pq.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgPaintQualityRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM paint_qualities WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// PgPaintColorRepository is the PostgreSQL implementation of PaintColorRepository.
type PgPaintColorRepository struct {
	pool *pgxpool.Pool
}

func NewPgPaintColorRepository(pool *pgxpool.Pool) *PgPaintColorRepository {
	return &PgPaintColorRepository{pool: pool}
}

func (r *PgPaintColorRepository) List(ctx context.Context) ([]*model.PaintColor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM paint_colors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.PaintColor
	for rows.Next() {
		var pc model.PaintColor
		if err := rows.Scan(&pc.ID, &pc.Name, &pc.CreatedAt, &pc.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &pc)
	}
	return out, rows.Err()
}

func (r *PgPaintColorRepository) Create(ctx context.Context, pc *model.PaintColor) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO paint_colors (name) VALUES ($1) RETURNING id, created_at, updated_at`,
		pc.Name,
	).Scan(&pc.ID, &pc.CreatedAt, &pc.UpdatedAt)
}

func (r *PgPaintColorRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM paint_colors WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
