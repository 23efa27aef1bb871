package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"go-calc-service/internal/model"
)

type CalculationRepository struct {
	pool Pool
}

func NewCalculationRepository(pool Pool) *CalculationRepository {
	return &CalculationRepository{pool: pool}
}

func (r *CalculationRepository) Create(ctx context.Context, c model.Calculation) (model.Calculation, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO calculations (a, b, operation, result, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		c.A, c.B, c.Type, c.Result, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		return model.Calculation{}, fmt.Errorf("create calculation: %w", err)
	}
	return c, nil
}

func (r *CalculationRepository) FindByID(ctx context.Context, id int64) (model.Calculation, error) {
	var c model.Calculation
	err := r.pool.QueryRow(ctx,
		`SELECT id, a, b, operation, result, created_at, updated_at
		 FROM calculations WHERE id = $1`, id).
		Scan(&c.ID, &c.A, &c.B, &c.Type, &c.Result, &c.CreatedAt, &c.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Calculation{}, model.ErrCalculationNotFound
	}
	if err != nil {
		return model.Calculation{}, fmt.Errorf("find calculation by id: %w", err)
	}
	return c, nil
}

func (r *CalculationRepository) List(ctx context.Context) ([]model.Calculation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, a, b, operation, result, created_at, updated_at
		 FROM calculations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	defer rows.Close()

	calculations := make([]model.Calculation, 0)
	for rows.Next() {
		var c model.Calculation
		if err := rows.Scan(&c.ID, &c.A, &c.B, &c.Type, &c.Result, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		calculations = append(calculations, c)
	}
	return calculations, rows.Err()
}

func (r *CalculationRepository) Update(ctx context.Context, c model.Calculation) (model.Calculation, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE calculations
		 SET a = $2, b = $3, operation = $4, result = $5, updated_at = $6
		 WHERE id = $1`,
		c.ID, c.A, c.B, c.Type, c.Result, c.UpdatedAt)
	if err != nil {
		return model.Calculation{}, fmt.Errorf("update calculation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Calculation{}, model.ErrCalculationNotFound
	}
	return c, nil
}

func (r *CalculationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM calculations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete calculation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCalculationNotFound
	}
	return nil
}
