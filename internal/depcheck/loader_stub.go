//go:build !darwin && !linux && !windows

package depcheck

import "errors"

type stubLoader struct{}

// NewNativeLoader returns a loader that always fails; dynamic loading is not
// supported on this platform.
func NewNativeLoader() NativeLoader { return stubLoader{} }

func (stubLoader) Load(name string) (Handle, error) {
	return nil, &LoadError{Library: name, Err: errors.New("dynamic library loading not supported on this platform")}
}
