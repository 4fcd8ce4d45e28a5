package main

import (
	"context"
	"fmt"

	"github.com/heartmarshall/termlink/internal/app"
	"github.com/heartmarshall/termlink/internal/catalog"
	"github.com/heartmarshall/termlink/internal/config"
	"github.com/heartmarshall/termlink/internal/service/glossary"
)

type rootOptions struct {
	catalogPath string
}

// env is everything a subcommand needs once configuration is loaded.
type env struct {
	catalog *catalog.Catalog
	report  *catalog.ImportReport
	svc     *glossary.Service
}

func loadEnv(ctx context.Context, opts *rootOptions) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.catalogPath != "" {
		cfg.Catalog.Path = opts.catalogPath
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("config: validate: %w", err)
		}
	}

	logger := app.NewLogger(cfg.Log)

	cat, report, err := catalog.LoadFile(ctx, cfg.Catalog.Path, logger)
	if err != nil {
		return nil, err
	}

	return &env{
		catalog: cat,
		report:  report,
		svc:     glossary.NewService(logger, cat, cfg.Render.Workers),
	}, nil
}
