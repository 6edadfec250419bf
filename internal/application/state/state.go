package state

// AppState represents the run state of the application loop
type AppState int

const (
	StateRunning AppState = iota
	StateQuit
)

// String returns the string representation of the app state
func (s AppState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transitions leave this state
func (s AppState) Terminal() bool {
	return s == StateQuit
}
