package scene

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an index does not name a stored object.
var ErrIndexOutOfRange = errors.New("scene: index out of range")

// LoadError reports that an image file could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("scene: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ValidationError reports a rejected property value. Field is one of
// "x", "y", "width" or "height".
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
