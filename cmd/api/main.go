package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"botilleria/internal/auth"
	"botilleria/internal/catalog"
	"botilleria/internal/config"
	"botilleria/internal/db"
	"botilleria/internal/httpserver"
	envelperepo "botilleria/internal/repository/envelope"
	orderrepo "botilleria/internal/repository/order"
	"botilleria/internal/visitor"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	sessionDB, err := envelperepo.Open(cfg.SessionDBPath)
	if err != nil {
		logger.Fatalf("open session db: %v", err)
	}
	defer sessionDB.Close()

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}
	logger.Printf("catalog loaded: %d products, %d categories", cat.Len(), len(cat.Categories()))

	authBackend, err := auth.NewFirebase(ctx, cfg.FirebaseProject, cfg.CredentialsFile, cfg.SignInURL)
	if err != nil {
		logger.Fatalf("init auth backend: %v", err)
	}

	orders := orderrepo.NewPostgres(dbpool)
	visitors := visitor.NewManager(envelperepo.NewSQLite(sessionDB), orders, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:  cat,
		Visitors: visitors,
		Auth:     authBackend,
		Orders:   orders,
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
