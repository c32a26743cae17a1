package server

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"team-registry/internal/api/handler"
	"team-registry/internal/identity"
	"team-registry/internal/logger"
	"team-registry/internal/repository"
)

type Config struct {
	Host            string        `env:"HTTP_HOST" env-required:"true"`
	Port            int           `env:"HTTP_PORT" env-required:"true"`
	Timeout         time.Duration `env:"HTTP_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

func NewRouter(
	repo repository.Repository,
	provider identity.Provider,
	log *zap.Logger,
	cfgLogger *logger.Config,
	cfgIdentity *identity.Config,
	srvTimeout time.Duration,
) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logger.MiddlewareLogger(log, cfgLogger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(Metrics)
	router.Use(identity.Middleware(provider, cfgIdentity, log))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/health", handler.Health(log))

	router.Route("/teams", func(r chi.Router) {
		r.Post("/", handler.RegisterTeam(repo, srvTimeout, log))
		r.Get("/", handler.ListTeams(repo, srvTimeout, log))

		r.Route("/{teamSlug}", func(r chi.Router) {
			r.Get("/", handler.GetTeam(repo, srvTimeout, log))
			r.Patch("/", handler.UpdateTeam(repo, srvTimeout, log))
			r.Get("/access", handler.CheckAccess(repo, srvTimeout, log))
			r.Get("/applications", handler.ListApplications(repo, srvTimeout, log))
			r.Post("/applications", handler.CreateApplication(repo, srvTimeout, log))
		})
	})

	router.Route("/admin/teams", func(r chi.Router) {
		r.Get("/", handler.AdminListTeams(repo, srvTimeout, log))
		r.Patch("/{teamID}", handler.AdminReviewTeam(repo, srvTimeout, log))
	})

	return router
}
