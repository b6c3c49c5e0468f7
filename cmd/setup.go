package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/berth/internal/app"
	"github.com/zjrosen/berth/internal/catalog"
	"github.com/zjrosen/berth/internal/config"
	"github.com/zjrosen/berth/internal/content"
	"github.com/zjrosen/berth/internal/flags"
	"github.com/zjrosen/berth/internal/glossary"
	"github.com/zjrosen/berth/internal/log"
	"github.com/zjrosen/berth/internal/mode"
	"github.com/zjrosen/berth/internal/nav"
	"github.com/zjrosen/berth/internal/tracing"
	"github.com/zjrosen/berth/internal/ui/markdown"
)

// contentFS returns the content filesystem selected by cfg.
func contentFS(cfg *config.Config) fs.FS {
	return content.Open(config.ExpandHome(cfg.ContentDir))
}

// loadCatalog builds the registry from the content filesystem.
func loadCatalog(fsys fs.FS) (*catalog.Registry, error) {
	reg, err := catalog.Load(fsys, content.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return reg, nil
}

// loadGlossary reads the content glossary. A content directory without a
// glossary file yields an empty glossary.
func loadGlossary(fsys fs.FS) (map[string]string, error) {
	terms, err := glossary.Load(fsys, content.GlossaryPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn(log.CatGlossary, "No glossary in content directory")
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading glossary: %w", err)
	}
	return terms, nil
}

// buildOptions wires the catalog, navigation, glossary and rendering
// services for the TUI.
func buildOptions(cfg *config.Config, tracer trace.Tracer) (app.Options, error) {
	fsys := contentFS(cfg)

	reg, err := loadCatalog(fsys)
	if err != nil {
		return app.Options{}, err
	}

	ctrl, err := nav.New(reg)
	if err != nil {
		return app.Options{}, err
	}
	if cfg.StartModule != "" {
		start := catalog.Key(cfg.StartModule)
		if !reg.Has(start) {
			return app.Options{}, fmt.Errorf("start module %q: %w (available: %s)",
				start, nav.ErrInvalidSelection, joinKeys(reg.Keys()))
		}
		if err := ctrl.Select(start); err != nil {
			return app.Options{}, fmt.Errorf("start module: %w", err)
		}
	}

	terms, err := loadGlossary(fsys)
	if err != nil {
		return app.Options{}, err
	}

	renderer := markdown.NewService(markdown.ServiceConfig{
		Style:        cfg.UI.MarkdownStyle,
		CacheEnabled: cfg.Cache.Enabled,
		CacheTTL:     cfg.Cache.TTL,
		Tracer:       tracer,
	})
	featureFlags := flags.New(cfg.Flags)
	log.Info(log.CatConfig, "Services ready",
		"modules", reg.Len(),
		"terms", len(terms),
		"style", renderer.Style(),
		"cache", cfg.Cache.Enabled,
		"flags", featureFlags.All())

	services := mode.Services{
		Nav:      ctrl,
		Markdown: renderer,
		Config:   cfg,
		Flags:    featureFlags,
		Tracer:   tracer,
	}

	return app.Options{
		Services:     services,
		Entries:      reg.Entries(),
		Glossary:     terms,
		GlossaryFile: config.ExpandHome(cfg.Glossary.File),
		Watch:        cfg.Glossary.Watch,
	}, nil
}

// newTracingProvider maps the tracing config section onto a provider.
// w receives stdout exporter output.
func newTracingProvider(tc config.TracingConfig, sessionID string, w io.Writer) (*tracing.Provider, error) {
	filePath := config.ExpandHome(tc.FilePath)
	if filePath == "" {
		filePath = config.DefaultTracesFilePath()
	}
	return tracing.NewProvider(tracing.Config{
		Enabled:      tc.Enabled,
		Exporter:     tc.Exporter,
		FilePath:     filePath,
		OTLPEndpoint: tc.OTLPEndpoint,
		SampleRate:   tc.SampleRate,
		ServiceName:  tracing.DefaultServiceName,
		SessionID:    sessionID,
		Writer:       w,
	})
}

func joinKeys(keys []catalog.Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}

// shutdownTracing flushes pending spans with a bounded wait.
func shutdownTracing(provider *tracing.Provider) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := provider.Shutdown(ctx); err != nil {
		log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
	}
}
