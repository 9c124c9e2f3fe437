// Package widget composes the pager and the grid into an embeddable
// paginated data grid that reports its rendered height to the host.
package widget

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "tablo/entity"
	"tablo/grid"
	"tablo/message"
	"tablo/pager"
	"tablo/style"
)

const loading = "Loading..."

// Config holds construction settings; zero values take defaults.
type Config struct {
	PageSize  int
	Direction pager.Direction
	CellWidth int
	Widths    map[string]int // by column label, overriding CellWidth
}

// Widget is a paginated data grid.
type Widget struct {
	pager    pager.Pager
	source   nt.TableSource
	grid     grid.Grid
	err      error
	selected int // key of the selected row, -1 for none
	reported int // height last reported to the host, -1 before the first

	width  int
	height int
	widths grid.Widths
	keys   KeyMap

	ctx    context.Context
	logger nt.Logger
}

// KeyMap holds row selection bindings.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	}
}

func New(ctx context.Context, cfg Config, lgr nt.Logger) Widget {

	size := cfg.PageSize
	if size == 0 {
		size = pager.DefaultSize
	}

	return Widget{
		pager:    pager.New(size, cfg.Direction),
		selected: -1,
		reported: -1,
		widths:   grid.Widths{Default: cfg.CellWidth, ByLabel: cfg.Widths},
		keys:     DefaultKeyMap(),
		ctx:      ctx,
		logger:   lgr,
	}
}

func (wgt Widget) Init() tea.Cmd {
	return nil
}

func (wgt Widget) Update(msg tea.Msg) (Widget, tea.Cmd) {

	switch msg := msg.(type) {

	case DataMsg:
		wgt.source = msg.Source
		wgt.selected = -1
		wgt.pager = wgt.pager.SetRows(nt.DataRowCount(msg.Source))
		return wgt.render()

	case SizeMsg:
		wgt.width = msg.Width
		wgt.height = msg.Height
		return wgt.render()

	case pager.ChangedMsg:
		return wgt.render()

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, wgt.keys.Up):
			wgt.selected = wgt.step(-1)
			return wgt, nil

		case key.Matches(msg, wgt.keys.Down):
			wgt.selected = wgt.step(1)
			return wgt, nil
		}

		var cmd tea.Cmd
		wgt.pager, cmd = wgt.pager.Update(msg)
		return wgt, cmd
	}

	return wgt, nil
}

func (wgt Widget) View() tea.View {
	return tea.NewView(wgt.content())
}

// Pager returns the pagination state.
func (wgt Widget) Pager() pager.Pager {
	return wgt.pager
}

// Grid returns the last successful render.
func (wgt Widget) Grid() grid.Grid {
	return wgt.grid
}

// Err returns the error that aborted the last render, if any.
func (wgt Widget) Err() error {
	return wgt.err
}

// Selected returns the source row key of the selected row, or -1.
func (wgt Widget) Selected() int {
	return wgt.selected
}

// Height returns the rendered height in lines.
func (wgt Widget) Height() int {
	return lipgloss.Height(wgt.content())
}

// ShortHelp returns bindings for the one-line help.
func (wgt Widget) ShortHelp() []key.Binding {
	return append([]key.Binding{wgt.keys.Up, wgt.keys.Down}, wgt.pager.KeyMap().ShortHelp()...)
}

// FullHelp returns grouped bindings for the expanded help.
func (wgt Widget) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{wgt.keys.Up, wgt.keys.Down}}, wgt.pager.KeyMap().FullHelp()...)
}

// unexported

func (wgt Widget) render() (Widget, tea.Cmd) {

	if wgt.source == nil {
		return wgt, nil
	}

	grd, err := grid.Render(wgt.source, wgt.pager.Window())
	if err != nil {
		wgt.logger.Error(wgt.ctx, "failed to render grid", err, "page", wgt.pager.Page())
		wgt.err = err
		wgt.grid = grid.Grid{}
		return wgt.report()
	}

	wgt.err = nil
	wgt.grid = grd
	if grd.Position(wgt.selected) < 0 {
		wgt.selected = wgt.first()
	}

	return wgt.report()
}

// report sends the rendered height to the host when it has changed.
func (wgt Widget) report() (Widget, tea.Cmd) {

	height := wgt.Height()
	if height == wgt.reported {
		return wgt, nil
	}

	wgt.reported = height
	return wgt, message.FrameHeightCmd(height)
}

func (wgt Widget) content() string {

	switch {
	case wgt.err != nil:
		return style.ErrorStyle.Render(wgt.err.Error())
	case wgt.source == nil:
		return style.MutedStyle.Render(loading)
	}

	parts := []string{wgt.grid.View(wgt.widths, wgt.selected), wgt.pager.View()}
	out := strings.Join(parts, "\n")

	if wgt.width > 0 {
		out = lipgloss.NewStyle().MaxWidth(wgt.width).Render(out)
	}
	return out
}

func (wgt Widget) first() int {
	if len(wgt.grid.Body) == 0 {
		return -1
	}
	return wgt.grid.Body[0].Key
}

func (wgt Widget) step(delta int) int {

	pos := wgt.grid.Position(wgt.selected)
	if pos < 0 {
		return wgt.first()
	}

	pos = min(max(pos+delta, 0), len(wgt.grid.Body)-1)
	return wgt.grid.Body[pos].Key
}
