package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	altHnd "alternates-service/internal/alternates/handler"
	"alternates-service/internal/config"
	"alternates-service/internal/middleware"
	"alternates-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	// multipart framing on top of the file itself
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB)<<20 + 1<<20))

	r.Get("/health", handlers.Health)
	r.Post("/alternates", altHnd.Alternates(cfg, logger))

	return r
}
