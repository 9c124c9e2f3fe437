package tablo

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
)

type hostKeys struct {
	Search key.Binding
	Apply  key.Binding
	Clear  key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultHostKeys() hostKeys {
	return hostKeys{
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload layout")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// keyMap joins host and widget bindings for the help line.
type keyMap struct {
	host   hostKeys
	widget help.KeyMap
}

func (km keyMap) ShortHelp() []key.Binding {
	bindings := km.widget.ShortHelp()
	return append(bindings, km.host.Search, km.host.Help, km.host.Quit)
}

func (km keyMap) FullHelp() [][]key.Binding {
	groups := km.widget.FullHelp()
	return append(groups, []key.Binding{km.host.Search, km.host.Clear, km.host.Reload, km.host.Help, km.host.Quit})
}
