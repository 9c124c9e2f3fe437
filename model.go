package tablo

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "tablo/entity"
	"tablo/message"
	"tablo/style"
	"tablo/widget"
)

const (
	footerHeight = 2
)

// Model is the bubbletea model hosting the grid widget.
type Model struct {
	Store  Store
	Host   Host
	Layout *Layout
	Widget widget.Widget

	config      Config
	keys        hostKeys
	help        help.Model
	input       textinput.Model
	searching   bool
	query       string
	count       int
	errorString string

	Width  int
	Height int

	ctx    context.Context
	logger nt.Logger
}

// New creates a host model, loading the layout and applying it to the store.
func (cfg *Config) New(ctx context.Context, store Store, host Host, lgr nt.Logger) (model Model, err error) {

	layout, err := LoadLayout(cfg.Layout)
	if err != nil {
		return
	}
	layout.Override(*cfg)

	err = layout.apply(store)
	if err != nil {
		return
	}

	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "search"

	model = Model{
		Store:  store,
		Host:   host,
		Layout: layout,
		config: *cfg,
		keys:   defaultHostKeys(),
		help:   help.New(),
		input:  input,
		ctx:    ctx,
		logger: lgr,
	}
	model.Widget = model.newWidget()

	return
}

func (m Model) Init() tea.Cmd {
	return m.search(m.query)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case widget.DataMsg:
		m.count = nt.DataRowCount(msg.Source)

	case message.FrameHeightMsg:
		m.logger.Info(m.ctx, "frame height", "height", msg.Height)
		if m.Host != nil {
			m.Host.SetFrameHeight(msg.Height)
		}
		return m, nil

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case message.ReloadMsg:
		return m, m.load()

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.SetWidth(msg.Width)
		m.input.SetWidth(msg.Width - lipgloss.Width(m.input.Prompt) - 1)

		var cmd tea.Cmd
		m.Widget, cmd = m.Widget.Update(m.sizeMsg())
		return m, cmd

	case tea.KeyPressMsg:
		if m.searching {
			return m.updateSearch(msg)
		}

		if m.errorString != "" {
			m.errorString = "" //Todo: find home for clear error
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Search):
			m.searching = true
			m.input.SetValue(m.query)
			return m, m.input.Focus()

		case key.Matches(msg, m.keys.Clear):
			if m.query == "" {
				return m, nil
			}
			m.query = ""
			return m, m.search("")

		case key.Matches(msg, m.keys.Reload):
			return m.reloadLayout()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	// Everything else belongs to the widget
	var cmd tea.Cmd
	m.Widget, cmd = m.Widget.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {

	footer := m.footer()
	screen := m.Widget.View().Content

	height := m.Height - lipgloss.Height(footer)
	if height > 0 {
		screen = lipgloss.NewStyle().Height(height).MaxHeight(height).Render(screen)
	}

	view := tea.NewView(screen + "\n" + footer)
	view.AltScreen = true
	return view
}

// unexported

func (m Model) updateSearch(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	switch {
	case key.Matches(msg, m.keys.Apply):
		m.searching = false
		m.input.Blur()
		m.query = strings.TrimSpace(m.input.Value())
		return m, m.search(m.query)

	case key.Matches(msg, m.keys.Clear):
		m.searching = false
		m.input.Blur()
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) footer() string {

	var status string
	switch {
	case m.errorString != "":
		status = style.ErrorStyle.Render(m.errorString)
	case m.searching:
		status = m.input.View()
	default:
		status = RenderFooter(m.count, m.query, m.Store.Name(), m.Width)
	}

	km := keyMap{host: m.keys, widget: m.Widget}
	return status + "\n" + m.help.View(km)
}

func (m Model) newWidget() widget.Widget {

	wgt := widget.New(m.ctx, widget.Config{
		PageSize:  m.Layout.PageSize,
		Direction: m.Layout.direction(),
		CellWidth: m.Layout.MaxWidth,
		Widths:    m.Layout.widths(),
	}, m.logger)

	wgt, _ = wgt.Update(m.sizeMsg())
	return wgt
}

func (m Model) sizeMsg() widget.SizeMsg {
	return widget.SizeMsg{
		Width:  m.Width,
		Height: max(0, m.Height-footerHeight),
	}
}
