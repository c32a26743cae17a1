package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"team-registry/internal/config"
	"team-registry/internal/identity"
	"team-registry/internal/logger"
	"team-registry/internal/repository/postgres"
	"team-registry/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer cancel()

	configPath := fetchConfigPath()
	if configPath == "" {
		stdlog.Fatal("config path must specify")
	}

	cfg, err := config.New(configPath)
	if err != nil {
		stdlog.Fatalf("cannot initialize config: %v", err)
	}

	log, err := logger.New(&cfg.Logger)
	if err != nil {
		stdlog.Fatalf("cannot initialize logger: %v", err)
	}
	defer log.Sync()

	pgClient, err := postgres.New(ctx, &cfg.Postgres, log)
	if err != nil {
		log.Fatal("cannot initialize postgres", zap.Error(err))
	}

	// The user directory is the database unless a static table is
	// configured, which swaps in the in-memory provider.
	var provider identity.Provider = pgClient
	if cfg.Identity.StaticUsers != "" {
		users, err := identity.ParseStaticUsers(cfg.Identity.StaticUsers)
		if err != nil {
			log.Fatal("cannot parse static users", zap.Error(err))
		}
		provider = identity.NewStatic(users)
		log.Info("using static identity provider", zap.Int("users", len(users)))
	}

	router := server.NewRouter(pgClient, provider, log, &cfg.Logger, &cfg.Identity, cfg.HTTP.Timeout)
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)

	srv := http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info("starting http server", zap.String("addr", srv.Addr))
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	log.Info("received shutdown signal")

	pgClient.Close()
	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("failed to shutdown server", zap.Error(err))
	}

	log.Info("application shutdown completed successfully")
}

func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config_path", "", "Path to the config file")
	flag.Parse()

	return path
}
