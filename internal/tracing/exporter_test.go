package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func readRecords(t *testing.T, path string) []SpanRecord {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out []SpanRecord
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec SpanRecord
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	require.NoError(t, sc.Err())
	return out
}

func syncProvider(t *testing.T, path string) (*sdktrace.TracerProvider, *FileExporter) {
	t.Helper()
	exp, err := NewFileExporter(path)
	require.NoError(t, err)
	return sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp)), exp
}

func TestFileExporter_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "traces.jsonl")

	exp, err := NewFileExporter(path)
	require.NoError(t, err)
	require.FileExists(t, path)
	require.NoError(t, exp.Shutdown(context.Background()))
	require.NoError(t, exp.Shutdown(context.Background()))
}

func TestFileExporter_ParentAndErrorStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces.jsonl")
	tp, _ := syncProvider(t, path)
	tracer := tp.Tracer("test")

	ctx, parent := Start(context.Background(), tracer, SpanRender, attribute.String(AttrModuleKey, "kpis"))
	_, child := Start(ctx, tracer, "markdown.glamour")
	End(child, errors.New("bad markdown"))
	End(parent, nil)
	require.NoError(t, tp.Shutdown(context.Background()))

	records := readRecords(t, path)
	require.Len(t, records, 2)

	byName := map[string]SpanRecord{}
	for _, r := range records {
		byName[r.Name] = r
	}
	require.Equal(t, "ERROR", byName["markdown.glamour"].Status)
	require.Equal(t, "bad markdown", byName["markdown.glamour"].StatusMsg)
	require.Equal(t, byName[SpanRender].SpanID, byName["markdown.glamour"].ParentSpanID)
	require.Equal(t, byName[SpanRender].TraceID, byName["markdown.glamour"].TraceID)
	require.Equal(t, "kpis", byName[SpanRender].Attributes[AttrModuleKey])
	require.Empty(t, byName[SpanRender].ParentSpanID)
}

func TestFileExporter_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"earlier"}`+"\n"), 0o600))

	tp, _ := syncProvider(t, path)
	_, span := tp.Tracer("test").Start(context.Background(), SpanReload)
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))

	records := readRecords(t, path)
	require.Len(t, records, 2)
	require.Equal(t, "earlier", records[0].Name)
	require.Equal(t, SpanReload, records[1].Name)
}

func TestFileExporter_EmptyBatch(t *testing.T) {
	exp, err := NewFileExporter(filepath.Join(t.TempDir(), "traces.jsonl"))
	require.NoError(t, err)
	defer exp.Shutdown(context.Background())

	require.NoError(t, exp.ExportSpans(context.Background(), nil))
}
