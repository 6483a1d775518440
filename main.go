package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"driver-graphql-api/api"
	"driver-graphql-api/config"
	"driver-graphql-api/graph"
	"driver-graphql-api/logger"
	"driver-graphql-api/metrics"
	"driver-graphql-api/store"

	"go.uber.org/zap"
)

func main() {
	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zlog); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, zlog *zap.Logger) error {
	drivers := store.Seeded()

	schema, err := graph.NewSchema(drivers,
		graph.WithLogger(zlog),
		graph.WithMaxDepth(cfg.GraphQL.MaxDepth),
		graph.WithIntrospection(cfg.GraphQL.Introspection),
	)
	if err != nil {
		return err
	}

	// Register routes
	router := api.RegisterRoutes(api.Deps{
		Schema:  schema,
		Logger:  zlog,
		Metrics: metrics.New(zlog),
		Path:    cfg.Server.Path,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info(fmt.Sprintf("Server is go on port %d", cfg.Server.Port),
			zap.String("path", cfg.Server.Path),
			zap.Int("drivers", drivers.Len()),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	zlog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
