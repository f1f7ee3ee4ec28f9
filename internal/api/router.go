// internal/api/router.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"biblioteca/internal/books"
	"biblioteca/internal/loans"
	"biblioteca/internal/middleware"
	"biblioteca/internal/users"
)

// Config wires the router to the three services.
type Config struct {
	Logger       *logrus.Logger
	Users        users.Service
	Books        books.Service
	Loans        loans.Service
	RateLimitRPS float64
}

// NewRouter builds the HTTP surface. The Spanish route segments are
// the system's public contract and stay as they are.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.Tracing("biblioteca/api"))
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, int(cfg.RateLimitRPS)))
	}

	r.Route("/usuarios", users.NewHandler(cfg.Users).Routes)
	r.Route("/libros", books.NewHandler(cfg.Books).Routes)
	r.Route("/prestamos", loans.NewHandler(cfg.Loans).Routes)

	return r
}
