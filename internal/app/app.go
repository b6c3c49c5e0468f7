// Package app contains the root application model.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/berth/internal/catalog"
	"github.com/zjrosen/berth/internal/flags"
	terms "github.com/zjrosen/berth/internal/glossary"
	"github.com/zjrosen/berth/internal/keys"
	"github.com/zjrosen/berth/internal/log"
	"github.com/zjrosen/berth/internal/mode"
	"github.com/zjrosen/berth/internal/mode/glossary"
	"github.com/zjrosen/berth/internal/mode/modules"
	"github.com/zjrosen/berth/internal/pubsub"
	"github.com/zjrosen/berth/internal/tracing"
	"github.com/zjrosen/berth/internal/ui/toaster"
	"github.com/zjrosen/berth/internal/watcher"
)

const toastDuration = 3 * time.Second

// Options configures the root model.
type Options struct {
	Services mode.Services
	Entries  []catalog.Entry

	// Glossary holds the built-in terms. GlossaryFile, when set, is merged
	// over them and reloaded on change if Watch is true.
	Glossary     map[string]string
	GlossaryFile string
	Watch        bool
}

// Model is the root application state.
type Model struct {
	currentMode mode.AppMode
	modules     modules.Model
	glossary    glossary.Model

	services mode.Services

	baseTerms    map[string]string
	glossaryFile string

	width  int
	height int

	toaster  toaster.Model
	startErr error

	watcherHandle   *watcher.Watcher
	watcherCancel   context.CancelFunc
	watcherListener *pubsub.ContinuousListener[watcher.Change]
}

// New creates the root model. A broken user glossary file or watcher is
// reported as a toast, never as a startup failure.
func New(opts Options) Model {
	m := Model{
		currentMode:  mode.ModeModules,
		services:     opts.Services,
		baseTerms:    opts.Glossary,
		glossaryFile: opts.GlossaryFile,
		toaster:      toaster.New(),
	}

	entries := opts.Glossary
	if opts.GlossaryFile != "" {
		merged, err := m.loadGlossary()
		if err != nil {
			m.startErr = err
		} else {
			entries = merged
		}
	}

	if opts.Watch && opts.GlossaryFile != "" && opts.Services.Flags.Enabled(flags.FlagGlossaryLiveReload) {
		m.startWatcher()
	}

	m.modules = modules.New(opts.Services, opts.Entries)
	m.glossary = glossary.New(opts.Services, entries).Blur()
	return m
}

func (m *Model) startWatcher() {
	w, err := watcher.New(watcher.DefaultConfig(m.glossaryFile))
	if err != nil {
		log.ErrorErr(log.CatWatcher, "Failed to create watcher", err)
		return
	}

	// Subscribe before Start so no event is missed.
	ctx, cancel := context.WithCancel(context.Background())
	listener := pubsub.NewContinuousListener(ctx, w.Broker())
	if err := w.Start(); err != nil {
		log.ErrorErr(log.CatWatcher, "Failed to start watcher", err, "path", m.glossaryFile)
		cancel()
		_ = w.Stop()
		return
	}

	m.watcherHandle = w
	m.watcherCancel = cancel
	m.watcherListener = listener
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.modules.Init(), m.listen()}
	if m.startErr != nil {
		cmds = append(cmds, toast(fmt.Sprintf("Glossary file ignored: %v", m.startErr), toaster.StyleError))
	}
	return tea.Batch(cmds...)
}

// Mode returns the active mode.
func (m Model) Mode() mode.AppMode {
	return m.currentMode
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.modules = m.modules.SetSize(msg.Width, msg.Height)
		m.glossary = m.glossary.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Global.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, keys.Global.SwitchMode) {
			return m.switchMode()
		}

	case pubsub.Event[watcher.Change]:
		return m.handleWatcherEvent(msg)

	case mode.ShowToastMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(msg.Message, msg.Style, toastDuration)
		return m, cmd

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentMode {
	case mode.ModeGlossary:
		m.glossary, cmd = m.glossary.Update(msg)
	default:
		m.modules, cmd = m.modules.Update(msg)
	}
	return m, cmd
}

// switchMode toggles between the module browser and the glossary.
func (m Model) switchMode() (tea.Model, tea.Cmd) {
	from := m.currentMode
	var cmd tea.Cmd
	switch m.currentMode {
	case mode.ModeModules:
		m.currentMode = mode.ModeGlossary
		m.glossary, cmd = m.glossary.Focus()
	default:
		m.currentMode = mode.ModeModules
		m.glossary = m.glossary.Blur()
	}
	log.Info(log.CatMode, "Switching mode", "from", from, "to", m.currentMode)
	return m, cmd
}

func (m Model) handleWatcherEvent(ev pubsub.Event[watcher.Change]) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch ev.Type {
	case pubsub.ChangedEvent:
		merged, err := m.loadGlossary()
		if err != nil {
			cmd = toast(fmt.Sprintf("Glossary reload failed: %v", err), toaster.StyleError)
			break
		}
		m.glossary = m.glossary.SetTerms(merged)
		cmd = toast(fmt.Sprintf("Glossary reloaded (%d terms)", len(merged)), toaster.StyleInfo)

	case pubsub.RemovedEvent:
		log.Warn(log.CatGlossary, "Glossary file removed, using built-in terms", "path", m.glossaryFile)
		m.glossary = m.glossary.SetTerms(m.baseTerms)
		cmd = toast("Glossary file removed, showing built-in terms", toaster.StyleWarn)

	case pubsub.FailedEvent:
		log.ErrorErr(log.CatWatcher, "Watcher error received", ev.Payload.Err)
		cmd = toast("Glossary watcher error", toaster.StyleError)
	}

	return m, tea.Batch(cmd, m.listen())
}

// loadGlossary reads the user glossary file and merges it over the
// built-in terms.
func (m Model) loadGlossary() (map[string]string, error) {
	tracer := m.services.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	}
	_, span := tracing.Start(context.Background(), tracer, tracing.SpanReload)

	overlay, err := terms.LoadFile(m.glossaryFile)
	if err != nil {
		tracing.End(span, err)
		log.ErrorErr(log.CatGlossary, "Failed to load glossary file", err, "path", m.glossaryFile)
		return nil, err
	}

	merged := terms.Merge(m.baseTerms, overlay)
	span.SetAttributes(attribute.Int(tracing.AttrTermCount, len(merged)))
	tracing.End(span, nil)
	log.Info(log.CatGlossary, "Loaded glossary file", "path", m.glossaryFile, "terms", len(overlay), "merged", len(merged))
	return merged, nil
}

func (m Model) listen() tea.Cmd {
	if m.watcherListener == nil {
		return nil
	}
	return m.watcherListener.Listen()
}

func toast(message string, style toaster.Style) tea.Cmd {
	return func() tea.Msg {
		return mode.ShowToastMsg{Message: message, Style: style}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var view string
	switch m.currentMode {
	case mode.ModeGlossary:
		view = m.glossary.View()
	default:
		view = m.modules.View()
	}

	// The toast replaces the last line so the layout height never changes.
	if m.toaster.Visible() && view != "" {
		lines := strings.Split(view, "\n")
		lines[len(lines)-1] = m.toaster.View(m.width)
		view = strings.Join(lines, "\n")
	}

	return zone.Scan(view)
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.watcherCancel != nil {
		m.watcherCancel()
	}
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}
