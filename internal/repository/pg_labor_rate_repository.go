package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/renopilot/backend/internal/model"
)

// PgLaborRateRepository is the PostgreSQL implementation of LaborRateRepository.
type PgLaborRateRepository struct {
	pool *pgxpool.Pool
}

func NewPgLaborRateRepository(pool *pgxpool.Pool) *PgLaborRateRepository {
	return &PgLaborRateRepository{pool: pool}
}

const laborRateColumns = `id, name, COALESCE(region, ''), hourly_rate, overhead_rate,
	total_rate, profit_margin, effective_date, is_active, created_at, updated_at`

func scanLaborRate(row pgx.Row) (*model.LaborRate, error) {
	var lr model.LaborRate
	err := row.Scan(&lr.ID, &lr.Name, &lr.Region, &lr.HourlyRate, &lr.OverheadRate,
		&lr.TotalRate, &lr.ProfitMargin, &lr.EffectiveDate, &lr.IsActive, &lr.CreatedAt, &lr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *PgLaborRateRepository) List(ctx context.Context, activeOnly bool) ([]*model.LaborRate, error) {
	q := `SELECT ` + laborRateColumns + ` FROM labor_rates`
	if activeOnly {
		q += ` WHERE is_active`
	}
	q += ` ORDER BY effective_date DESC, id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.LaborRate
	for rows.Next() {
		lr, err := scanLaborRate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, lr)
	}
	return out, rows.Err()
}

func (r *PgLaborRateRepository) GetByID(ctx context.Context, id int64) (*model.LaborRate, error) {
	lr, err := scanLaborRate(r.pool.QueryRow(ctx,
		`SELECT `+laborRateColumns+` FROM labor_rates WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return lr, nil
}

// Current returns the newest active rate, region-scoped when region is set.
func (r *PgLaborRateRepository) Current(ctx context.Context, region string) (*model.LaborRate, error) {
	lr, err := scanLaborRate(r.pool.QueryRow(ctx,
		`SELECT `+laborRateColumns+` FROM labor_rates
		 WHERE is_active AND ($1 = '' OR region ILIKE $1)
		 ORDER BY effective_date DESC, id
		 LIMIT 1`,
		region))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return lr, nil
}

func (r *PgLaborRateRepository) Create(ctx context.Context, lr *model.LaborRate) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO labor_rates
		 (name, region, hourly_rate, overhead_rate, total_rate, profit_margin, effective_date, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		lr.Name, lr.Region, lr.HourlyRate, lr.OverheadRate, lr.TotalRate, lr.ProfitMargin, lr.EffectiveDate, lr.IsActive,
	).Scan(&lr.ID, &lr.CreatedAt, &lr.UpdatedAt)
}

func (r *PgLaborRateRepository) Update(ctx context.Context, lr *model.LaborRate) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE labor_rates
		 SET name=$1, region=$2, hourly_rate=$3, overhead_rate=$4, total_rate=$5,
		     profit_margin=$6, effective_date=$7, is_active=$8, updated_at=NOW()
		 WHERE id=$9`,
		lr.Name, lr.Region, lr.HourlyRate, lr.OverheadRate, lr.TotalRate, lr.ProfitMargin, lr.EffectiveDate, lr.IsActive, lr.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgLaborRateRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM labor_rates WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
