package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"musicmerchant/internal/cart"
	"musicmerchant/internal/catalogclient"
	"musicmerchant/internal/config"
	"musicmerchant/internal/logging"
	"musicmerchant/internal/storefront"
)

func main() {
	os.Exit(run())
}

func run() int {
	fs := pflag.NewFlagSet("storefront", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	configFile := config.FileFlag(fs)
	apiURL := fs.String("api", "", "catalog API base URL (overrides api_url)")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 2
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}
	if *apiURL != "" {
		cfg.APIURL = *apiURL
	}
	// stdout is for command output; logs only go to the file when one is set
	logger := zap.NewNop()
	if cfg.LogFile != "" {
		if logger, err = logging.New(logging.Options{Mode: "production", File: cfg.LogFile, FileOnly: true}); err != nil {
			fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
			return 1
		}
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snap, closeSnap, err := openSnapshot(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open cart: %v\n", err)
		return 1
	}
	defer closeSnap()

	store, err := cart.Open(ctx, snap, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open cart: %v\n", err)
		return 1
	}

	app := storefront.New(catalogclient.New(cfg.APIURL, nil), store, os.Stdout, logger)
	if fs.NArg() == 0 {
		app.Usage()
		return 2
	}
	if err := app.Run(ctx, fs.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, storefront.ErrUsage) {
			app.Usage()
			return 2
		}
		return 1
	}
	return 0
}

func openSnapshot(ctx context.Context, cfg config.Config) (cart.Snapshotter, func(), error) {
	key := cfg.CartSnapshotKey
	if key == "" {
		key = cart.DefaultSnapshotKey
	}
	var (
		snap interface {
			cart.Snapshotter
			io.Closer
		}
		err error
	)
	switch cfg.CartSnapshot {
	case "redis":
		snap, err = cart.NewRedisSnapshot(ctx, cfg.RedisAddr, key)
	default:
		snap, err = cart.OpenBolt(cfg.CartFile, key)
	}
	if err != nil {
		return nil, nil, err
	}
	return snap, func() { _ = snap.Close() }, nil
}
