// Command caseboard runs the caseboard graph exploration server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/caseboard/caseboard/internal/api"
	"github.com/caseboard/caseboard/internal/config"
	"github.com/caseboard/caseboard/internal/db"
	"github.com/caseboard/caseboard/internal/db/migrations"
	"github.com/caseboard/caseboard/internal/dbpool"
	"github.com/caseboard/caseboard/internal/graph"
	"github.com/caseboard/caseboard/internal/service"
	"github.com/caseboard/caseboard/internal/store"
	"github.com/caseboard/caseboard/internal/ws"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := run(log); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(log *logrus.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		return err
	}

	base := store.Base{Pool: pool, Log: log}
	graphStore := store.NewGraphStore(base)

	ontology := service.NewOntologyService(
		store.NewEntityTypeStore(base),
		store.NewRelationshipTypeStore(base),
		log,
	)
	entities := service.NewEntityService(store.NewEntityStore(base), log)
	relationships := service.NewRelationshipService(store.NewRelationshipStore(base), log)
	graphSvc := service.NewGraphService(
		graph.NewExplorer(graphStore, log, cfg.MaxExploreDepth),
		graph.NewAssembler(graphStore),
		store.NewStatsStore(base),
		log,
	)

	hub := ws.NewHub(log)
	go hub.Run(ctx)

	bridge := db.NewNotifyBridge(log, pool, hub)
	if err := bridge.Start(ctx); err != nil {
		return err
	}

	router := api.NewRouter(ctx, &api.RouterDeps{
		Log:           log,
		Pool:          pool,
		Hub:           hub,
		Ontology:      ontology,
		Entities:      entities,
		Relationships: relationships,
		Graph:         graphSvc,
		CORSOrigins:   cfg.CORSOrigins,
		Version:       config.Version,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":    cfg.Addr(),
			"version": config.Version,
		}).Info("caseboard listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("forced shutdown")
	}

	hub.Shutdown()

	return nil
}
