package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/orderdocs/order-extractor/internal/common"
	"github.com/orderdocs/order-extractor/internal/learning"
	"github.com/orderdocs/order-extractor/internal/repository"
)

func main() {
	reset := flag.Bool("reset", false, "clear the whole learning history")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	var (
		blob repository.BlobStore
		err  error
	)
	if cfg.Store.Driver == "postgres" {
		blob, err = repository.NewPostgresStore(ctx, repository.PostgresConfig{
			DSN:      cfg.Store.DSN,
			MaxConns: cfg.Store.MaxConns,
		}, logger)
	} else {
		blob, err = repository.NewSQLiteStore(cfg.Store.Path, logger)
	}
	if err != nil {
		logger.Error("open blob store", "error", err)
		os.Exit(1)
	}
	defer blob.Close()

	store := learning.NewStore(ctx, blob, logger)

	if *reset {
		store.Reset(ctx)
		fmt.Println("learning history cleared")
		return
	}

	out, err := json.MarshalIndent(store.Stats(), "", "  ")
	if err != nil {
		logger.Error("encode stats", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
