/*
Package main
File: main.go
Description:
    The entry point of the trade-computer service.

    Responsibility:
    1. Orchestration: loads ambient config, builds the trade catalog, opens
       the session store, and starts the session registry's WebSocket hub.
    2. Lifecycle: handles OS signals for catalog hot-reload (SIGHUP) and
       graceful shutdown (SIGINT/SIGTERM).

    Architecture:
    main -> internal/config, internal/logging, internal/catalog,
            internal/store, internal/session
*/
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/everforgeworks/traveller-tradehub/internal/catalog"
	"github.com/everforgeworks/traveller-tradehub/internal/config"
	"github.com/everforgeworks/traveller-tradehub/internal/logging"
	"github.com/everforgeworks/traveller-tradehub/internal/session"
	"github.com/everforgeworks/traveller-tradehub/internal/store"
)

func main() {
	cfg := config.Load()

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cat, err := buildCatalog(cfg, log)
	if err != nil {
		log.Fatal("CRITICAL: failed to build trade catalog", zap.Error(err))
	}

	st, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("CRITICAL: failed to open session store", zap.Error(err))
	}
	defer st.Close()

	registry := session.NewRegistry(st, cat, log)

	addr := cfg.WSHost + ":" + cfg.WSPort
	srv := registry.NewServer(addr)

	g, groupCtx := errgroup.WithContext(context.Background())
	ctx, stop := context.WithCancel(groupCtx)
	defer stop()

	g.Go(func() error {
		log.Info("tradehub: listening", zap.String("addr", addr))
		return registry.BindAndServe(srv)
	})

	g.Go(func() error {
		watchReload(ctx, registry, cfg, log)
		return nil
	})

	g.Go(func() error {
		// A completed shutdown also stops the SIGHUP watcher, so Wait returns.
		defer stop()
		return watchShutdown(ctx, srv, log)
	})

	if err := g.Wait(); err != nil {
		log.Error("tradehub: exited with error", zap.Error(err))
		os.Exit(1)
	}
}

func buildCatalog(cfg config.Config, log *zap.Logger) (*catalog.Catalog, error) {
	base, err := catalog.Standard()
	if err != nil {
		return nil, err
	}
	if cfg.CatalogSeedFile == "" {
		return base, nil
	}
	extra, err := catalog.LoadSeed(cfg.CatalogSeedFile)
	if err != nil {
		log.Warn("catalog seed file failed to load, using embedded catalog only",
			zap.String("file", cfg.CatalogSeedFile), zap.Error(err))
		return base, nil
	}
	log.Info("catalog: applied seed file", zap.String("file", cfg.CatalogSeedFile), zap.Int("rows", len(extra)))
	return catalog.Extend(base, extra), nil
}

func openStore(cfg config.Config, log *zap.Logger) (store.StateStore, error) {
	if isDebugStore(cfg.StoreDatabaseID) {
		log.Info("store: using null adapter (STORE_DATABASE_ID=debug)")
		return store.NullStore{}, nil
	}
	return store.Open(cfg.StoreProjectPath)
}

func isDebugStore(id string) bool {
	return strings.EqualFold(id, "debug")
}

// watchReload reimplements the teacher's SIGHUP hot-reload for the trade
// catalog seed file instead of a universe.yaml config.
func watchReload(ctx context.Context, registry *session.Registry, cfg config.Config, log *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sigCh:
			log.Info("signal: SIGHUP received, reloading catalog seed file")
			next, err := buildCatalog(cfg, log)
			if err != nil {
				log.Error("catalog reload failed", zap.Error(err))
				continue
			}
			registry.SetCatalog(next)
			log.Info("signal: catalog reload complete")
		}
	}
}

func watchShutdown(ctx context.Context, srv *http.Server, log *zap.Logger) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
		return nil
	case sig := <-sigCh:
		log.Info("signal: shutting down", zap.String("signal", sig.String()))
		return srv.Shutdown(context.Background())
	}
}
