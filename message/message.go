package message

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// FrameHeightMsg reports the rendered height of the widget to its host.
// Nothing replies to it.
type FrameHeightMsg struct {
	Height int
}

// ReloadMsg signals to re-query the store and redeliver data
type ReloadMsg struct{}
