package tablo

import (
	tea "charm.land/bubbletea/v2"

	"tablo/message"
	"tablo/widget"
)

// load gets the source for the layout's columns from the store
func (m Model) load() tea.Cmd {

	store := m.Store
	columns := m.Layout.columns()

	return func() tea.Msg {
		src, err := store.Source(columns)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		return widget.DataMsg{Source: src}
	}
}

// search sets the store's view to the layout filter and query over the search fields and reloads
func (m Model) search(query string) tea.Cmd {

	fields, err := m.Store.Fields()
	if err != nil {
		return message.ErrorCmd(err)
	}

	err = m.Store.SetView(m.Layout.view(query, fields))
	if err != nil {
		return message.ErrorCmd(err)
	}

	return m.load()
}

// reloadLayout reads the layout file again and reloads
func (m Model) reloadLayout() (Model, tea.Cmd) {

	layout, err := LoadLayout(m.config.Layout)
	if err != nil {
		return m, message.ErrorCmd(err)
	}
	layout.Override(m.config)

	err = layout.apply(m.Store)
	if err != nil {
		return m, message.ErrorCmd(err)
	}

	m.Layout = layout
	m.Widget = m.newWidget()
	return m, m.search(m.query)
}
