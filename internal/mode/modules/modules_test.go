package modules

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/berth/internal/catalog"
	"github.com/zjrosen/berth/internal/config"
	"github.com/zjrosen/berth/internal/flags"
	"github.com/zjrosen/berth/internal/mode"
	"github.com/zjrosen/berth/internal/nav"
	"github.com/zjrosen/berth/internal/tracing"
	"github.com/zjrosen/berth/internal/ui/markdown"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

var errBroken = errors.New("content file missing")

func newTestModel(t *testing.T) Model {
	t.Helper()

	reg, err := catalog.New(
		catalog.Entry{Key: "home", Label: "Home", Provider: catalog.Static(catalog.RenderOutput{Title: "Welcome", Markdown: "# Welcome\n\nStart here."})},
		catalog.Entry{Key: "vessel-calls", Provider: catalog.Static(catalog.RenderOutput{Title: "Vessel Calls", Markdown: "A vessel call covers a ship visit."})},
		catalog.Entry{Key: "kpis"},
		catalog.Entry{Key: "broken", Provider: catalog.ProviderFunc(func() (catalog.RenderOutput, error) {
			return catalog.RenderOutput{}, errBroken
		})},
	)
	require.NoError(t, err)

	ctrl, err := nav.New(reg)
	require.NoError(t, err)

	cfg := config.Defaults()
	services := mode.Services{
		Nav:      ctrl,
		Markdown: markdown.NewService(markdown.ServiceConfig{Style: "notty", CacheEnabled: true}),
		Config:   &cfg,
		Flags:    flags.New(nil),
	}
	return New(services, reg.Entries()).SetSize(100, 30)
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func TestModules_InitialSelection(t *testing.T) {
	m := newTestModel(t)

	require.Equal(t, catalog.Key("home"), m.services.Nav.Active())
	require.Equal(t, "Welcome", m.Title())
	require.Contains(t, ansi.Strip(m.View()), "Start here.")
}

func TestModules_NextPrevious(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "j")
	require.Equal(t, catalog.Key("vessel-calls"), m.services.Nav.Active())
	require.Contains(t, ansi.Strip(m.View()), "A vessel call covers a ship visit.")

	m = press(m, "k", "up")
	require.Equal(t, catalog.Key("broken"), m.services.Nav.Active(), "up from first wraps to last")

	m = press(m, "down")
	require.Equal(t, catalog.Key("home"), m.services.Nav.Active(), "down from last wraps to first")
}

func TestModules_FirstLast(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "G")
	require.Equal(t, 3, m.services.Nav.Index())

	m = press(m, "g")
	require.Equal(t, 0, m.services.Nav.Index())
}

func TestModules_Placeholder(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "j", "j")

	require.Equal(t, catalog.Key("kpis"), m.services.Nav.Active())
	require.NoError(t, m.Err())
	require.Contains(t, ansi.Strip(m.View()), "not yet available")
}

func TestModules_ProviderErrorShown(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "G")

	require.ErrorIs(t, m.Err(), errBroken)
	view := ansi.Strip(m.View())
	require.Contains(t, view, "Could not render Broken")
	require.Contains(t, view, "content file missing")
}

func TestModules_ViewFitsWindow(t *testing.T) {
	m := newTestModel(t)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 30)
	for i, line := range lines {
		require.LessOrEqual(t, lipgloss.Width(line), 100, "line %d", i)
	}
	require.Contains(t, ansi.Strip(lines[0]), "Modules")
	require.Contains(t, ansi.Strip(m.View()), "1/4")
}

func TestModules_FooterHidden(t *testing.T) {
	m := newTestModel(t)
	m.services.Config.UI.ShowFooter = false
	m = m.SetSize(100, 30)

	require.NotContains(t, ansi.Strip(m.View()), "switch mode")
	require.Len(t, strings.Split(m.View(), "\n"), 30)
}

func TestModules_ZeroSizeRendersNothing(t *testing.T) {
	m := newTestModel(t).SetSize(0, 0)
	require.Empty(t, m.View())
}

func TestModules_Quit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModules_ClickSelectsModule(t *testing.T) {
	m := newTestModel(t)

	var z *zone.ZoneInfo
	for range 50 {
		_ = zone.Scan(m.View())
		z = zone.Get(zoneID(m.zonePrefix, 1))
		if z != nil && !z.IsZero() {
			break
		}
		time.Sleep(2 * time.Millisecond)
	}
	require.NotNil(t, z)
	require.False(t, z.IsZero())

	m, _ = m.Update(tea.MouseMsg{
		X:      z.StartX + 1,
		Y:      z.StartY,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	})

	require.Equal(t, catalog.Key("vessel-calls"), m.services.Nav.Active())
}

func TestModules_ClickDisabledByFlag(t *testing.T) {
	m := newTestModel(t)
	m.services.Flags = flags.New(map[string]bool{flags.FlagSidebarMouse: false})

	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

	require.Equal(t, catalog.Key("home"), m.services.Nav.Active())
}

func TestModules_ReloadDropsCachedRendering(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	m := newTestModel(t)
	m.services.Markdown = markdown.NewService(markdown.ServiceConfig{Style: "notty", CacheEnabled: true, Tracer: tp.Tracer("test")})

	m = press(m, "j", "k", "j", "k", "r")

	var hits []bool
	for _, span := range rec.Ended() {
		for _, attr := range span.Attributes() {
			if string(attr.Key) == tracing.AttrCacheHit {
				hits = append(hits, attr.Value.AsBool())
			}
		}
	}
	require.Equal(t, []bool{false, false, true, true, false}, hits)
	require.Equal(t, catalog.Key("home"), m.services.Nav.Active())
	require.Contains(t, ansi.Strip(m.View()), "Start here.")
}
