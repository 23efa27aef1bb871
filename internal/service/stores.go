package service

import (
	"context"

	"go-calc-service/internal/model"
)

// UserStore persists user records. Implementations enforce username/email
// uniqueness atomically: Create either inserts or fails with
// model.ErrDuplicateUser, it never overwrites.
type UserStore interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByUsernameOrEmail(ctx context.Context, identifier string) (model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username string, email string) (bool, error)
}

// CalculationStore persists calculation records. Lookup misses are
// model.ErrCalculationNotFound.
type CalculationStore interface {
	Create(ctx context.Context, calculation model.Calculation) (model.Calculation, error)
	FindByID(ctx context.Context, id int64) (model.Calculation, error)
	List(ctx context.Context) ([]model.Calculation, error)
	Update(ctx context.Context, calculation model.Calculation) (model.Calculation, error)
	Delete(ctx context.Context, id int64) error
}
