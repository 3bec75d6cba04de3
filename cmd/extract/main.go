package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/orderdocs/order-extractor/constants"
	"github.com/orderdocs/order-extractor/internal/common"
	"github.com/orderdocs/order-extractor/internal/format"
	"github.com/orderdocs/order-extractor/internal/learning"
	"github.com/orderdocs/order-extractor/internal/llm"
	"github.com/orderdocs/order-extractor/internal/llm/openai"
	"github.com/orderdocs/order-extractor/internal/pipeline"
	"github.com/orderdocs/order-extractor/internal/repository"
)

func main() {
	var (
		file = flag.String("file", "", "path to a plain-text order document (required)")
		hint = flag.String("hint", "", "known partner hint, if any")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if *file == "" {
		logger.Error("usage: extract -file <document.txt> [-hint partner]")
		os.Exit(2)
	}
	raw, err := os.ReadFile(*file)
	if err != nil {
		logger.Error("read document", "path", *file, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	blob, err := openBlobStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("open blob store", "error", err)
		os.Exit(1)
	}
	defer blob.Close()

	proc, err := buildProcessor(ctx, cfg, blob, logger)
	if err != nil {
		logger.Error("build pipeline", "error", err)
		os.Exit(1)
	}

	result := proc.Process(ctx, string(raw), *hint)
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func openBlobStore(ctx context.Context, cfg *common.Config, logger *slog.Logger) (repository.BlobStore, error) {
	if cfg.Store.Driver == "postgres" {
		return repository.NewPostgresStore(ctx, repository.PostgresConfig{
			DSN:      cfg.Store.DSN,
			MaxConns: cfg.Store.MaxConns,
		}, logger)
	}
	return repository.NewSQLiteStore(cfg.Store.Path, logger)
}

func buildProcessor(ctx context.Context, cfg *common.Config, blob repository.BlobStore, logger *slog.Logger) (*pipeline.Processor, error) {
	registry := format.NewRegistry(logger)
	if err := format.RegisterBuiltins(registry); err != nil {
		return nil, err
	}
	if cfg.Pipeline.FormatsFile != "" {
		defs, err := format.LoadFormatsFile(cfg.Pipeline.FormatsFile)
		if err != nil {
			return nil, err
		}
		for _, def := range defs {
			if err := registry.Register(def); err != nil {
				return nil, err
			}
		}
	}
	// persisted custom patterns are optional; absence or corruption is not fatal
	if blobData, err := blob.Get(ctx, constants.CustomFormatsKey); err == nil {
		if set, err := format.ParseCustomPatterns(blobData); err == nil {
			registry.MergeCustomPatterns(set)
		} else {
			logger.Warn("custom formats blob unreadable, skipping", "error", err)
		}
	}

	store := learning.NewStore(ctx, blob, logger)

	var gen llm.TextGenerator
	if cfg.LLM.APIKey != "" {
		gen = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	} else {
		logger.Info("no generation capability configured; simulated fallback active")
	}
	adapter := llm.NewAdapter(gen, store, logger)

	return pipeline.NewProcessor(registry, adapter, store, logger,
		pipeline.WithQualityThreshold(cfg.Pipeline.QualityThreshold),
		pipeline.WithGenerativeTimeout(cfg.Pipeline.GenerativeTimeout),
	), nil
}
