package ui

// Messages for inter-component communication

// ErrorMsg contains an error to display in the status line
type ErrorMsg struct {
	Err error
}

// StatusMsg contains a status message to display
type StatusMsg struct {
	Message string
}

// AccentChangedMsg indicates the accent color was changed
type AccentChangedMsg struct {
	AccentName string
}
