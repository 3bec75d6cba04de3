package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/orderdocs/order-extractor/internal/common"
	"github.com/orderdocs/order-extractor/internal/entity"
	"github.com/orderdocs/order-extractor/internal/learning"
	"github.com/orderdocs/order-extractor/internal/repository"
)

// correct records a reviewed extraction into the learning history and prints
// the candidate patterns inferred from it. Merging candidates into the
// format registry stays a human decision.
func main() {
	var (
		file    = flag.String("file", "", "path to the original document text (required)")
		data    = flag.String("data", "", "path to the corrected record JSON (required)")
		confirm = flag.Bool("confirm", false, "record as a confirmation instead of a correction")
		conf    = flag.Int("confidence", 0, "confidence of the original extraction, if known")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if *file == "" || *data == "" {
		logger.Error("usage: correct -file <document.txt> -data <corrected.json> [-confirm]")
		os.Exit(2)
	}

	text, err := os.ReadFile(*file)
	if err != nil {
		logger.Error("read document", "path", *file, "error", err)
		os.Exit(1)
	}
	rawData, err := os.ReadFile(*data)
	if err != nil {
		logger.Error("read corrected record", "path", *data, "error", err)
		os.Exit(1)
	}
	var corrected entity.OrderFields
	if err := json.Unmarshal(rawData, &corrected); err != nil {
		logger.Error("decode corrected record", "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	var blob repository.BlobStore
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

	feedback := entity.FeedbackCorrection
	if *confirm {
		feedback = entity.FeedbackConfirmation
	}
	entry := store.Add(ctx, string(text), corrected, feedback, *conf)

	out, err := json.MarshalIndent(map[string]any{
		"entry_id":           entry.ID,
		"candidate_patterns": entry.ExtractionPatterns,
	}, "", "  ")
	if err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
