package cmd

import (
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/assemble"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/compile"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/config"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/export"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/logging"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/render"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/sanitize"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/store"
)

// pipeline bundles the wired export components for the CLI commands.
type pipeline struct {
	cfg      *config.Config
	logger   logging.Logger
	store    *store.DirResolver
	exporter *export.Exporter
}

// newLogger builds the process logger from config.
func newLogger(cfg *config.Config) logging.Logger {
	return logging.NewLogger(&logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
	})
}

// newPipeline loads config and wires the full export pipeline the way one
// export invocation uses it.
func newPipeline() (*pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)

	sanitizer := sanitize.NewSanitizer(sanitize.Config{
		Denylist: cfg.Sanitizer.Denylist,
		Marker:   cfg.Sanitizer.Marker,
	}, logger)

	renderer := render.NewRenderer(sanitizer, render.Options{
		ImageRoot: cfg.Images.Root,
		MinScale:  cfg.Export.MinScale,
		MaxScale:  cfg.Export.MaxScale,
	}, logger)

	templates := assemble.NewTemplateStore(cfg.Templates.Dir)
	assembler := assemble.NewAssembler(templates, renderer, sanitizer, nil, logger)

	gateway := compile.NewGateway(compile.Options{
		Command: cfg.Compiler.Command,
		Timeout: cfg.CompileTimeout(),
	}, logger)

	resolver := store.NewDirResolver(cfg.Lists.Dir)

	return &pipeline{
		cfg:      cfg,
		logger:   logger,
		store:    resolver,
		exporter: export.NewExporter(resolver, assembler, gateway, logger),
	}, nil
}
