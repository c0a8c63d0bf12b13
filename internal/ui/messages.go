package ui

// editorFinishedMsg is sent when the external editor exits
type editorFinishedMsg struct {
	err error
}
