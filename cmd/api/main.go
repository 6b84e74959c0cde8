package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"musicmerchant/internal/config"
	"musicmerchant/internal/db"
	"musicmerchant/internal/httpserver"
	"musicmerchant/internal/logging"
	"musicmerchant/internal/migrate"
	productrepo "musicmerchant/internal/repository/product"
	"musicmerchant/internal/seed"
	productsvc "musicmerchant/internal/service/product"
)

func main() {
	configFile := config.FileFlag(pflag.CommandLine)
	pflag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(logging.Options{Mode: cfg.LogMode, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.Named("api")

	ctx := context.Background()
	productRepo, closeStore, err := openCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open catalog store", zap.Error(err))
	}
	defer closeStore()

	if cfg.SeedOnStart {
		if _, err := seed.Bootstrap(ctx, productRepo, logger); err != nil {
			logger.Fatal("seed catalog", zap.Error(err))
		}
	}

	productService := productsvc.New(productRepo, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, productRepo, httpserver.Deps{
		ProductSvc:  productService,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr), zap.String("store", cfg.CatalogStore))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}

// openCatalog returns the configured product store and its release func.
func openCatalog(ctx context.Context, cfg config.Config, logger *zap.Logger) (productrepo.Repository, func(), error) {
	if cfg.CatalogStore == "memory" {
		logger.Warn("using in-memory catalog store, data is lost on exit")
		return productrepo.NewMemory(), func() {}, nil
	}

	pool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		return nil, nil, err
	}
	if cfg.AutoMigrate {
		if err := migrate.Apply(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("apply migrations: %w", err)
		}
	}
	return productrepo.NewPostgres(pool, logger), pool.Close, nil
}
