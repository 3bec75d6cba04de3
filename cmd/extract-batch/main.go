package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/orderdocs/order-extractor/constants"
	"github.com/orderdocs/order-extractor/internal/async"
	"github.com/orderdocs/order-extractor/internal/common"
	"github.com/orderdocs/order-extractor/internal/entity"
	"github.com/orderdocs/order-extractor/internal/format"
	"github.com/orderdocs/order-extractor/internal/learning"
	"github.com/orderdocs/order-extractor/internal/llm"
	"github.com/orderdocs/order-extractor/internal/llm/openai"
	"github.com/orderdocs/order-extractor/internal/pipeline"
	"github.com/orderdocs/order-extractor/internal/repository"
)

func main() {
	var (
		dir     = flag.String("dir", "", "directory of .txt order documents (required)")
		out     = flag.String("out", "", "output JSONL path (defaults to <dir>/../extractions.jsonl)")
		workers = flag.Int("workers", 4, "parallel extraction workers")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if *dir == "" {
		logger.Error("usage: extract-batch -dir <documents> [-out results.jsonl] [-workers n]")
		os.Exit(2)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "extractions.jsonl")
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

	outFile, err := os.Create(*out)
	if err != nil {
		logger.Error("create output file", "path", *out, "error", err)
		os.Exit(1)
	}
	defer outFile.Close()

	var mu sync.Mutex
	enc := json.NewEncoder(outFile)
	onDone := func(job async.Job, result entity.ExtractionResult) {
		mu.Lock()
		defer mu.Unlock()
		if err := enc.Encode(map[string]any{"document": job.ID, "result": result}); err != nil {
			logger.Error("write result", "job_id", job.ID, "error", err)
		}
	}

	queue := async.NewExtractQueue(proc, onDone, logger,
		async.WithWorkers(*workers),
		async.WithProcessTimeout(cfg.Pipeline.GenerativeTimeout+30*time.Second),
	)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Error("read directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	queued := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".txt") {
			continue
		}
		path := filepath.Join(*dir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skip unreadable document", "path", path, "error", err)
			continue
		}
		_ = queue.Enqueue(ctx, async.Job{ID: e.Name(), Text: string(raw)})
		queued++
	}

	drainCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	queue.Shutdown(drainCtx)
	cancel()

	logger.Info("batch done", "queued", queued, "out", *out)
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
