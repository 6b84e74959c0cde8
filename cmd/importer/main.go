package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"musicmerchant/internal/config"
	"musicmerchant/internal/db"
	"musicmerchant/internal/importer"
	"musicmerchant/internal/logging"
	productrepo "musicmerchant/internal/repository/product"
	productsvc "musicmerchant/internal/service/product"
)

func main() {
	configFile := config.FileFlag(pflag.CommandLine)
	filePath := pflag.String("file", "", "Path to product CSV file")
	pflag.Parse()

	if *filePath == "" {
		pflag.Usage()
		os.Exit(2)
	}

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
	logger = logger.Named("importer")

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	f, err := os.Open(*filePath)
	if err != nil {
		logger.Fatal("open file", zap.Error(err))
	}
	defer f.Close()

	svc := productsvc.New(productrepo.NewPostgres(pool, logger), logger)
	imp := importer.NewCSVImporter(f, svc)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatal("import failed", zap.Int("imported", count), zap.Error(err))
	}

	logger.Info("import finished",
		zap.Int("products", count),
		zap.String("file", *filePath),
		zap.Duration("took", time.Since(start).Truncate(time.Millisecond)),
	)
}
