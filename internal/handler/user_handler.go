package handler

import (
	"net/http"

	"go-calc-service/internal/middleware"
	"go-calc-service/internal/model"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me returns the acting user resolved by the auth middleware.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthenticated)
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}
