//go:build windows

package depcheck

import (
	"syscall"

	"golang.org/x/sys/windows"
)

type dllHandle struct {
	h    windows.Handle
	name string
}

func (h *dllHandle) VersionFunc(symbol string) (func() int, error) {
	addr, err := windows.GetProcAddress(h.h, symbol)
	if err != nil {
		return nil, &LoadError{Library: h.name, Err: err}
	}
	return func() int {
		r1, _, _ := syscall.SyscallN(addr)
		return int(r1)
	}, nil
}

func (h *dllHandle) Close() error { return windows.FreeLibrary(h.h) }

type dllLoader struct{}

// NewNativeLoader returns the LoadLibrary-backed loader. The GTK runtime
// installer puts its DLLs on PATH, so the default search order finds them.
func NewNativeLoader() NativeLoader { return dllLoader{} }

func (dllLoader) Load(name string) (Handle, error) {
	h, err := windows.LoadLibrary(name)
	if err != nil {
		return nil, &LoadError{Library: name, Err: err}
	}
	return &dllHandle{h: h, name: name}, nil
}
