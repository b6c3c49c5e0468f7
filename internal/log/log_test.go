package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)
	return &buf
}

func TestLog_NoLoggerIsNoop(t *testing.T) {
	Reset()
	require.NotPanics(t, func() {
		Info(CatNav, "nothing happens", "key", "home")
	})
}

func TestLog_FormatsFields(t *testing.T) {
	buf := captureLog(t)

	Info(CatNav, "Selected module", "key", "kpis", "index", 1)

	out := buf.String()
	require.Contains(t, out, "[INFO] [nav] Selected module")
	require.Contains(t, out, "key=kpis")
	require.Contains(t, out, "index=1")
}

func TestLog_OddFieldCount(t *testing.T) {
	buf := captureLog(t)

	Warn(CatCatalog, "Dangling", "orphan")

	require.Contains(t, buf.String(), "orphan=<missing>")
}

func TestLog_MinLevelFilters(t *testing.T) {
	buf := captureLog(t)
	SetMinLevel(LevelWarn)

	Debug(CatUI, "hidden")
	Error(CatUI, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestLog_Disabled(t *testing.T) {
	buf := captureLog(t)
	SetEnabled(false)

	Error(CatUI, "hidden")

	require.Empty(t, buf.String())
}

func TestLog_ErrorErr(t *testing.T) {
	buf := captureLog(t)

	ErrorErr(CatNav, "Render failed", errors.New("boom"), "key", "home")
	ErrorErr(CatNav, "Render failed", nil)

	require.Contains(t, buf.String(), "error=boom")
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestLog_Session(t *testing.T) {
	buf := captureLog(t)
	SetSession("abc-123")

	Info(CatMode, "Started")

	require.Contains(t, buf.String(), "session=abc-123")
}

func TestLog_InitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := Init(path)
	require.NoError(t, err)
	t.Cleanup(Reset)

	Info(CatConfig, "Loaded config", "path", "x.yaml")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [config] Loaded config path=x.yaml")
}
