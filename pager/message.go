package pager

import nt "tablo/entity"

// ChangedMsg reports a new page or page size.
type ChangedMsg struct {
	Page   int
	Size   int
	Window nt.Window
}
