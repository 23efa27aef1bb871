package handler

import (
	"net/http"

	"go-calc-service/internal/calc"
	"go-calc-service/internal/model"
)

// ArithmeticHandler serves the stateless endpoints. Nothing is persisted and
// no authentication applies.
type ArithmeticHandler struct{}

func NewArithmeticHandler() *ArithmeticHandler {
	return &ArithmeticHandler{}
}

func (h *ArithmeticHandler) Add(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, calc.OpAdd)
}

func (h *ArithmeticHandler) Subtract(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, calc.OpSubtract)
}

func (h *ArithmeticHandler) Multiply(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, calc.OpMultiply)
}

func (h *ArithmeticHandler) Divide(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, calc.OpDivide)
}

func (h *ArithmeticHandler) apply(w http.ResponseWriter, r *http.Request, operation string) {
	defer r.Body.Close()

	var payload model.ArithmeticRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	result, err := calc.Compute(operation, payload.A, payload.B)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ResultResponse{Result: result})
}
