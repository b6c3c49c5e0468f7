// Package modules implements the module browser: a sidebar of catalog
// entries next to the rendered content of the active module.
package modules

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/berth/internal/catalog"
	"github.com/zjrosen/berth/internal/flags"
	"github.com/zjrosen/berth/internal/keys"
	"github.com/zjrosen/berth/internal/log"
	"github.com/zjrosen/berth/internal/mode"
	"github.com/zjrosen/berth/internal/ui/panes"
	"github.com/zjrosen/berth/internal/ui/styles"
)

const defaultSidebarWidth = 28

// Model holds the module browser state.
type Model struct {
	services mode.Services
	items    []sidebarItem

	viewport viewport.Model
	help     help.Model

	title     string
	renderErr error

	zonePrefix string
	width      int
	height     int
}

// New creates the module browser. items must come from the same registry
// that backs services.Nav.
func New(services mode.Services, entries []catalog.Entry) Model {
	items := make([]sidebarItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, sidebarItem{key: e.Key, label: e.Label, placeholder: e.Placeholder})
	}

	return Model{
		services:   services,
		items:      items,
		viewport:   viewport.New(0, 0),
		help:       help.New(),
		zonePrefix: zone.NewPrefix(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize resizes the panes and re-renders the active module.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height

	contentWidth, contentHeight := m.contentSize()
	m.viewport.Width = contentWidth
	m.viewport.Height = contentHeight
	m.refresh(false)
	return m
}

// Title returns the title of the rendered module.
func (m Model) Title() string {
	return m.title
}

// Err returns the last render error, if any.
func (m Model) Err() error {
	return m.renderErr
}

// Update handles keys and mouse input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	nav := m.services.Nav

	switch {
	case key.Matches(msg, keys.Modules.Down):
		nav.Step(1)
	case key.Matches(msg, keys.Modules.Up):
		nav.Step(-1)
	case key.Matches(msg, keys.Modules.First):
		_ = nav.SelectIndex(0)
	case key.Matches(msg, keys.Modules.Last):
		_ = nav.SelectIndex(nav.Len() - 1)
	case key.Matches(msg, keys.Modules.ScrollDown):
		m.viewport.HalfPageDown()
		return m, nil
	case key.Matches(msg, keys.Modules.ScrollUp):
		m.viewport.HalfPageUp()
		return m, nil
	case key.Matches(msg, keys.Modules.Reload):
		if m.services.Markdown != nil {
			if err := m.services.Markdown.Invalidate(context.Background()); err != nil {
				log.ErrorErr(log.CatCache, "Failed to invalidate markdown cache", err)
			}
		}
		log.Info(log.CatUI, "Reloading module", "key", nav.Active())
		m.refresh(false)
		return m, nil
	case key.Matches(msg, keys.Modules.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.SetSize(m.width, m.height), nil
	case key.Matches(msg, keys.Modules.Quit):
		return m, tea.Quit
	default:
		return m, nil
	}

	m.refresh(true)
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown) {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.services.Flags.Enabled(flags.FlagSidebarMouse) {
		return m, nil
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for i := range m.items {
		if z := zone.Get(zoneID(m.zonePrefix, i)); z != nil && z.InBounds(msg) {
			if i != m.services.Nav.Index() {
				log.Debug(log.CatUI, "Sidebar click", "index", i)
				_ = m.services.Nav.SelectIndex(i)
				m.refresh(true)
			}
			break
		}
	}
	return m, nil
}

// refresh renders the active module into the viewport.
func (m *Model) refresh(resetScroll bool) {
	nav := m.services.Nav
	m.title = nav.ActiveLabel()
	m.renderErr = nil

	out, err := nav.Render()
	if err != nil {
		m.renderErr = err
		m.viewport.SetContent(styles.ErrorStyle.Render(fmt.Sprintf("Could not render %s:\n\n%v", nav.ActiveLabel(), err)))
		m.viewport.GotoTop()
		return
	}
	if out.Title != "" {
		m.title = out.Title
	}

	body := out.Markdown
	if m.services.Markdown != nil && m.viewport.Width > 0 {
		rendered, err := m.services.Markdown.Render(context.Background(), nav.Active(), out, m.viewport.Width)
		if err != nil {
			m.renderErr = err
			body = styles.ErrorStyle.Render(err.Error())
		} else {
			body = rendered
		}
	}

	m.viewport.SetContent(strings.TrimRight(body, "\n"))
	if resetScroll {
		m.viewport.GotoTop()
	}
}

func (m Model) sidebarWidth() int {
	w := defaultSidebarWidth
	if m.services.Config != nil && m.services.Config.UI.SidebarWidth > 0 {
		w = m.services.Config.UI.SidebarWidth
	}
	return min(w, max(m.width/2, 12))
}

func (m Model) showFooter() bool {
	return m.services.Config == nil || m.services.Config.UI.ShowFooter
}

func (m Model) footerHeight() int {
	if !m.showFooter() {
		return 0
	}
	return lipgloss.Height(m.help.View(keys.Modules))
}

func (m Model) paneHeight() int {
	return max(m.height-m.footerHeight(), 3)
}

func (m Model) contentSize() (int, int) {
	return max(m.width-m.sidebarWidth()-2, 1), max(m.paneHeight()-2, 1)
}

// View renders the sidebar, the content pane and the help footer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	nav := m.services.Nav
	sw := m.sidebarWidth()
	h := m.paneHeight()

	sidebar := panes.BorderedPane(panes.BorderConfig{
		Content: renderSidebar(m.items, nav.Index(), sw-2, m.zonePrefix),
		Width:   sw,
		Height:  h,
		Title:   "Modules",
		Footer:  fmt.Sprintf("%d/%d", nav.Index()+1, nav.Len()),
	})

	footer := ""
	if m.viewport.TotalLineCount() > m.viewport.Height {
		footer = fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)
	}
	content := panes.BorderedPane(panes.BorderConfig{
		Content: m.viewport.View(),
		Width:   m.width - sw,
		Height:  h,
		Title:   m.title,
		Footer:  footer,
		Focused: true,
	})

	view := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	if m.showFooter() {
		m.help.Width = m.width
		view += "\n" + m.help.View(keys.Modules)
	}
	return view
}
