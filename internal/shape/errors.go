package shape

import (
	"errors"
	"fmt"
)

// ErrUnknownTool is matched by every ConfigurationError.
var ErrUnknownTool = errors.New("unknown tool")

// ConfigurationError is returned when a caller asks for a tool outside the
// recognised set. The engine never substitutes a default tool.
type ConfigurationError struct {
	Tool Tool
	Name string
}

func (e *ConfigurationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("configuration error: tool %q: %v", e.Name, ErrUnknownTool)
	}
	return fmt.Sprintf("configuration error: %v: %v", e.Tool, ErrUnknownTool)
}

func (e *ConfigurationError) Unwrap() error { return ErrUnknownTool }
