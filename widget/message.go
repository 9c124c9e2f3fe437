package widget

import nt "tablo/entity"

// WidgetMsg is a marker interface for messages destined for the Widget
type WidgetMsg interface {
	isWidgetMsg()
}

func (DataMsg) isWidgetMsg() {}
func (SizeMsg) isWidgetMsg() {}

// DataMsg delivers a new source, replacing the current one
type DataMsg struct {
	Source nt.TableSource
}

// SizeMsg tells the widget its display size
type SizeMsg struct {
	Width  int
	Height int
}
