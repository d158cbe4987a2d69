package depcheck

import (
	"errors"
	"fmt"
)

// Handle is an opened native library.
type Handle interface {
	// VersionFunc resolves a zero-argument native function returning int.
	VersionFunc(symbol string) (func() int, error)
	Close() error
}

// NativeLoader opens native shared libraries by file name through the OS
// dynamic loader.
type NativeLoader interface {
	Load(name string) (Handle, error)
}

// LoadError is an OS-level failure to open a native library or resolve a
// symbol in it. Err carries the loader's own text, which is what the missing
// library heuristic inspects.
type LoadError struct {
	Library string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", e.Library, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ErrRendererNotFound reports that the WeasyPrint renderer itself is absent,
// as opposed to present but missing its native backend.
var ErrRendererNotFound = errors.New("weasyprint renderer not found")
