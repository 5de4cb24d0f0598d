package message

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// StatusMsg carries a short confirmation for the footer
type StatusMsg struct {
	Text string
}

// BackMsg asks the app to leave the current screen
type BackMsg struct {
	// Reload asks the screen returned to for a fresh fetch
	Reload bool
}
