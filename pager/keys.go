package pager

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// KeyMap holds the pagination bindings; it satisfies help.KeyMap.
type KeyMap struct {
	First key.Binding
	Prev  key.Binding
	Next  key.Binding
	Last  key.Binding
	Size  key.Binding
}

// DefaultKeyMap returns bindings for a direction.
// Under RTL the horizontal keys trade places, so left still points toward the end.
func DefaultKeyMap(dir Direction) KeyMap {

	back, forth := []string{"left", "h", "pgup"}, []string{"right", "l", "pgdown"}
	backHelp, forthHelp := "←", "→"
	if dir == RTL {
		back, forth = []string{"right", "l", "pgup"}, []string{"left", "h", "pgdown"}
		backHelp, forthHelp = forthHelp, backHelp
	}

	return KeyMap{
		First: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "first page")),
		Prev:  key.NewBinding(key.WithKeys(back...), key.WithHelp(backHelp, "previous page")),
		Next:  key.NewBinding(key.WithKeys(forth...), key.WithHelp(forthHelp, "next page")),
		Last:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last page")),
		Size:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "rows per page")),
	}
}

// ShortHelp returns bindings for the one-line help.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Prev, km.Next, km.Size}
}

// FullHelp returns grouped bindings for the expanded help.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.First, km.Prev, km.Next, km.Last},
		{km.Size},
	}
}

// KeyMap returns bindings with navigation disabled where the pager cannot move.
func (pgr Pager) KeyMap() KeyMap {

	km := DefaultKeyMap(pgr.dir)
	km.First.SetEnabled(pgr.CanPrev())
	km.Prev.SetEnabled(pgr.CanPrev())
	km.Next.SetEnabled(pgr.CanNext())
	km.Last.SetEnabled(pgr.CanNext())

	return km
}

func (pgr Pager) press(msg tea.KeyPressMsg) Pager {

	km := pgr.KeyMap()

	switch {
	case key.Matches(msg, km.First):
		return pgr.First()
	case key.Matches(msg, km.Prev):
		return pgr.Prev()
	case key.Matches(msg, km.Next):
		return pgr.Next()
	case key.Matches(msg, km.Last):
		return pgr.Last()
	case key.Matches(msg, km.Size):
		return pgr.CycleSize()
	}

	return pgr
}
