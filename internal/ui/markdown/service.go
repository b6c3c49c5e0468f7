package markdown

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/berth/internal/cachemanager"
	"github.com/zjrosen/berth/internal/catalog"
	"github.com/zjrosen/berth/internal/log"
	"github.com/zjrosen/berth/internal/tracing"
)

// cacheKey identifies one rendering: module, width, style and body hash.
type cacheKey string

type request struct {
	key      catalog.Key
	markdown string
	width    int
	loaded   *bool // set when the renderer ran instead of the cache
}

// ServiceConfig configures a Service.
type ServiceConfig struct {
	Style        string
	CacheEnabled bool
	CacheTTL     time.Duration
	Tracer       trace.Tracer
}

// Service renders module output through a read-through cache. Renderers are
// built lazily, one per width.
type Service struct {
	style  string
	ttl    time.Duration
	tracer trace.Tracer

	mu        sync.Mutex
	renderers map[int]*Renderer

	cache *cachemanager.ReadThroughCache[cacheKey, string, request]
}

// NewService creates a Service.
func NewService(cfg ServiceConfig) *Service {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = cachemanager.DefaultExpiration
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	}
	style := cfg.Style
	if style == "" {
		style = "dark"
	}

	s := &Service{
		style:     style,
		ttl:       ttl,
		tracer:    tracer,
		renderers: make(map[int]*Renderer),
	}
	manager := cachemanager.NewInMemoryCacheManager[cacheKey, string]("markdown", ttl, cachemanager.DefaultCleanupInterval)
	s.cache = cachemanager.NewReadThroughCache(manager, s.render, !cfg.CacheEnabled)
	return s
}

// Style returns the glamour style in use.
func (s *Service) Style() string {
	return s.style
}

// Render returns out.Markdown rendered for width columns.
func (s *Service) Render(ctx context.Context, key catalog.Key, out catalog.RenderOutput, width int) (string, error) {
	width = max(width, 10)
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanRender,
		attribute.String(tracing.AttrModuleKey, key.String()),
		attribute.Int(tracing.AttrWidth, width),
		attribute.String(tracing.AttrStyle, s.style),
	)

	// Each read extends the entry, so modules in use stay cached.
	var loaded bool
	req := request{key: key, markdown: out.Markdown, width: width, loaded: &loaded}
	rendered, err := s.cache.GetWithRefresh(ctx, s.keyFor(key, out.Markdown, width), req, s.ttl)
	span.SetAttributes(attribute.Bool(tracing.AttrCacheHit, err == nil && !loaded))
	tracing.End(span, err)
	if err != nil {
		log.ErrorErr(log.CatUI, "Markdown render failed", err, "key", key, "width", width)
		return "", fmt.Errorf("render markdown for %s: %w", key, err)
	}
	return rendered, nil
}

// Invalidate drops every cached rendering.
func (s *Service) Invalidate(ctx context.Context) error {
	log.Debug(log.CatCache, "Invalidating markdown cache", "style", s.style)
	return s.cache.Invalidate(ctx)
}

func (s *Service) keyFor(key catalog.Key, body string, width int) cacheKey {
	h := fnv.New64a()
	_, _ = h.Write([]byte(body))
	return cacheKey(fmt.Sprintf("%s|%d|%s|%x", key, width, s.style, h.Sum64()))
}

func (s *Service) render(ctx context.Context, req request) (string, error) {
	if req.loaded != nil {
		*req.loaded = true
	}

	r, err := s.renderer(req.width)
	if err != nil {
		return "", err
	}
	return r.Render(req.markdown)
}

func (s *Service) renderer(width int) (*Renderer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.renderers[width]; ok {
		return r, nil
	}
	r, err := New(width, s.style)
	if err != nil {
		return nil, err
	}
	s.renderers[width] = r
	return r, nil
}
