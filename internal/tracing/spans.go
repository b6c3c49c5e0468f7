package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys.
const (
	AttrSessionID   = "session.id"
	AttrModuleKey   = "module.key"
	AttrWidth       = "render.width"
	AttrStyle       = "render.style"
	AttrCacheHit    = "cache.hit"
	AttrQuery       = "glossary.query"
	AttrTermCount   = "glossary.terms"
	AttrMatchCount  = "glossary.matches"
	AttrErrorDetail = "error.message"
)

// Span names.
const (
	SpanRender = "module.render"
	SpanFilter = "glossary.filter"
	SpanReload = "glossary.reload"
)

// Start opens a span named name with attrs.
func Start(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// End closes span, recording err when non-nil.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String(AttrErrorDetail, err.Error()))
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
