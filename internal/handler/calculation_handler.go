package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-calc-service/internal/model"
	"go-calc-service/internal/service"
)

type CalculationHandler struct {
	service *service.CalculationService
}

func NewCalculationHandler(service *service.CalculationService) *CalculationHandler {
	return &CalculationHandler{service: service}
}

func (h *CalculationHandler) List(w http.ResponseWriter, r *http.Request) {
	calculations, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, calculations)
}

func (h *CalculationHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CalculationRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	calculation, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, calculation)
}

func (h *CalculationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := calculationID(r)
	if !ok {
		writeError(w, model.ErrCalculationNotFound)
		return
	}

	calculation, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, calculation)
}

func (h *CalculationHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, ok := calculationID(r)
	if !ok {
		writeError(w, model.ErrCalculationNotFound)
		return
	}

	var payload model.CalculationRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	calculation, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, calculation)
}

func (h *CalculationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := calculationID(r)
	if !ok {
		writeError(w, model.ErrCalculationNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// calculationID parses the {id} route parameter. A non-numeric id cannot name
// an existing record, so callers treat a parse failure as not found.
func calculationID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
