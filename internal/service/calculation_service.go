package service

import (
	"context"
	"time"

	"go-calc-service/internal/calc"
	"go-calc-service/internal/model"
	"go-calc-service/pkg/apierror"
)

// CalculationService computes results and drives the CalculationStore. A
// computation that fails (division by zero, unknown operation) is rejected
// before anything is persisted.
type CalculationService struct {
	store CalculationStore
}

func NewCalculationService(store CalculationStore) *CalculationService {
	return &CalculationService{store: store}
}

func (s *CalculationService) Create(ctx context.Context, req model.CalculationRequest) (model.Calculation, error) {
	result, err := s.compute(req)
	if err != nil {
		return model.Calculation{}, err
	}

	now := time.Now().UTC()
	return s.store.Create(ctx, model.Calculation{
		A:         req.A,
		B:         req.B,
		Type:      req.Type,
		Result:    result,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *CalculationService) Get(ctx context.Context, id int64) (model.Calculation, error) {
	return s.store.FindByID(ctx, id)
}

func (s *CalculationService) List(ctx context.Context) ([]model.Calculation, error) {
	return s.store.List(ctx)
}

// Update replaces operands and operation of an existing record and recomputes
// the result.
func (s *CalculationService) Update(ctx context.Context, id int64, req model.CalculationRequest) (model.Calculation, error) {
	result, err := s.compute(req)
	if err != nil {
		return model.Calculation{}, err
	}

	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return model.Calculation{}, err
	}

	existing.A = req.A
	existing.B = req.B
	existing.Type = req.Type
	existing.Result = result
	existing.UpdatedAt = time.Now().UTC()

	return s.store.Update(ctx, existing)
}

func (s *CalculationService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func (s *CalculationService) compute(req model.CalculationRequest) (float64, error) {
	if !calc.ValidOperation(req.Type) {
		return 0, apierror.Validation("type must be one of Add, Subtract, Multiply, Divide", "type")
	}
	return calc.Compute(req.Type, req.A, req.B)
}
