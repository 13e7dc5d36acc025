package export

import (
	"errors"
	"fmt"
)

// ErrEmptyExport is returned when there are no objects to export.
var ErrEmptyExport = errors.New("export: no objects to export")

// ErrInvalidFileName is returned when a file name is not valid UTF-8 and so
// cannot be written into the generated Python.
var ErrInvalidFileName = errors.New("export: file name is not valid UTF-8")

// PlatformUnsupportedError is returned when a bundle is requested on a host
// that cannot build it.
type PlatformUnsupportedError struct {
	Host     string
	Required string
}

func (e *PlatformUnsupportedError) Error() string {
	return fmt.Sprintf("export: bundle export requires %s, running on %s", e.Required, e.Host)
}
