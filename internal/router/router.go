package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-calc-service/internal/config"
	"go-calc-service/internal/handler"
	"go-calc-service/internal/middleware"
)

type Handlers struct {
	Health      *handler.HealthHandler
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Arithmetic  *handler.ArithmeticHandler
	Calculation *handler.CalculationHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", h.Health.Check)

	// Stateless arithmetic, open to anyone.
	r.Post("/add", h.Arithmetic.Add)
	r.Post("/subtract", h.Arithmetic.Subtract)
	r.Post("/multiply", h.Arithmetic.Multiply)
	r.Post("/divide", h.Arithmetic.Divide)

	// Both auth route families are kept; they differ only in response shape.
	r.Post("/register", h.Auth.Register)
	r.Post("/login", h.Auth.Login)
	r.Route("/users", func(users chi.Router) {
		users.Post("/register", h.Auth.UsersRegister)
		users.Post("/login", h.Auth.UsersLogin)
		users.With(authMiddleware.RequireAuth).Get("/me", h.User.Me)
	})

	r.Route("/calculations", func(calculations chi.Router) {
		calculations.Use(authMiddleware.RequireAuth)
		calculations.Get("/", h.Calculation.List)
		calculations.Post("/", h.Calculation.Create)
		calculations.Get("/{id}", h.Calculation.Get)
		calculations.Put("/{id}", h.Calculation.Update)
		calculations.Delete("/{id}", h.Calculation.Delete)
	})

	return r
}
