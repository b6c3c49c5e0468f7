// Package glossary implements the glossary mode: a live query input over
// the term dictionary with matching entries listed below it.
package glossary

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace/noop"

	terms "github.com/zjrosen/berth/internal/glossary"
	"github.com/zjrosen/berth/internal/keys"
	"github.com/zjrosen/berth/internal/log"
	"github.com/zjrosen/berth/internal/mode"
	"github.com/zjrosen/berth/internal/tracing"
	"github.com/zjrosen/berth/internal/ui/panes"
	"github.com/zjrosen/berth/internal/ui/styles"
)

const definitionIndent = 4

// Model holds the glossary mode state.
type Model struct {
	services mode.Services
	entries  map[string]string
	result   terms.Result

	input    textinput.Model
	viewport viewport.Model
	help     help.Model

	width  int
	height int
}

// New creates the glossary mode over entries.
func New(services mode.Services, entries map[string]string) Model {
	ti := textinput.New()
	ti.Placeholder = "type to filter terms and definitions"
	ti.Prompt = "/ "
	ti.CharLimit = 80
	ti.Focus()

	m := Model{
		services: services,
		entries:  entries,
		input:    ti,
		viewport: viewport.New(0, 0),
		help:     help.New(),
	}
	m.search()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Focus gives the query input focus.
func (m Model) Focus() (Model, tea.Cmd) {
	return m, m.input.Focus()
}

// Blur removes focus from the query input.
func (m Model) Blur() Model {
	m.input.Blur()
	return m
}

// SetTerms replaces the dictionary and re-runs the current query.
func (m Model) SetTerms(entries map[string]string) Model {
	m.entries = entries
	m.search()
	return m
}

// SetQuery replaces the query text.
func (m Model) SetQuery(q string) Model {
	m.input.SetValue(q)
	m.search()
	return m
}

// Query returns the current query text.
func (m Model) Query() string {
	return m.input.Value()
}

// Result returns the result of the current query.
func (m Model) Result() terms.Result {
	return m.result
}

// SetSize resizes the result list.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.input.Width = max(width-6, 10)
	m.viewport.Width = max(width-2, 1)
	m.viewport.Height = max(m.paneHeight()-2, 1)
	m.renderResults()
	return m
}

// Update routes keys to the query input and scrolls the result list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Glossary.ScrollUp):
			m.viewport.ScrollUp(1)
			return m, nil
		case key.Matches(msg, keys.Glossary.ScrollDown):
			m.viewport.ScrollDown(1)
			return m, nil
		case key.Matches(msg, keys.Glossary.Clear):
			return m.SetQuery(""), nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.search()
		}
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) search() {
	tracer := m.services.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	}
	query := m.input.Value()
	_, span := tracing.Start(context.Background(), tracer, tracing.SpanFilter,
		attribute.String(tracing.AttrQuery, query),
		attribute.Int(tracing.AttrTermCount, len(m.entries)),
	)

	m.result = terms.Search(m.entries, query)

	span.SetAttributes(attribute.Int(tracing.AttrMatchCount, len(m.result.Entries)))
	tracing.End(span, nil)

	log.Debug(log.CatGlossary, "Filtered glossary", "query", query, "matches", len(m.result.Entries), "total", m.result.Total)
	m.renderResults()
	m.viewport.GotoTop()
}

func (m *Model) renderResults() {
	if m.result.Empty() {
		msg := "The glossary is empty."
		if m.result.Filtered() {
			msg = fmt.Sprintf("No terms match %q.", m.result.Query)
		}
		m.viewport.SetContent(styles.MutedStyle.Render(msg))
		return
	}

	wrapAt := max(m.viewport.Width-definitionIndent, 10)
	var sb strings.Builder
	for i, e := range m.result.Entries {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(styles.TermStyle.Render(e.Term))
		sb.WriteString("\n")
		def := indent.String(wordwrap.String(e.Definition, wrapAt), definitionIndent)
		sb.WriteString(styles.DefinitionStyle.Render(def))
	}
	m.viewport.SetContent(sb.String())
}

func (m Model) showFooter() bool {
	return m.services.Config == nil || m.services.Config.UI.ShowFooter
}

// paneHeight is the height of the results pane: the window minus the input
// line and the optional footer.
func (m Model) paneHeight() int {
	h := m.height - 1
	if m.showFooter() {
		h -= lipgloss.Height(m.help.View(keys.Glossary))
	}
	return max(h, 3)
}

// View renders the query input, the results pane and the help footer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	count := fmt.Sprintf("%d/%d terms", len(m.result.Entries), m.result.Total)
	results := panes.BorderedPane(panes.BorderConfig{
		Content: m.viewport.View(),
		Width:   m.width,
		Height:  m.paneHeight(),
		Title:   "Glossary",
		Footer:  count,
		Focused: true,
	})

	view := m.input.View() + "\n" + results
	if m.showFooter() {
		m.help.Width = m.width
		view += "\n" + m.help.View(keys.Glossary)
	}
	return view
}
