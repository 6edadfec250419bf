package config

import "fmt"

// Error reports an invalid configuration value. It is fatal at startup.
type Error struct {
	File   string
	Field  string
	Reason string
}

func (e *Error) Error() string {
	if e.File == "" {
		return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("config %s: %s %s", e.File, e.Field, e.Reason)
}
