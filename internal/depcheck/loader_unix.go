//go:build darwin || linux

package depcheck

import (
	"github.com/ebitengine/purego"
)

type dlHandle struct {
	h    uintptr
	name string
}

func (h *dlHandle) VersionFunc(symbol string) (func() int, error) {
	addr, err := purego.Dlsym(h.h, symbol)
	if err != nil {
		return nil, &LoadError{Library: h.name, Err: err}
	}
	return func() int {
		r1, _, _ := purego.SyscallN(addr)
		return int(r1)
	}, nil
}

func (h *dlHandle) Close() error { return purego.Dlclose(h.h) }

type dlopenLoader struct{}

// NewNativeLoader returns the dlopen-backed loader for this platform.
func NewNativeLoader() NativeLoader { return dlopenLoader{} }

func (dlopenLoader) Load(name string) (Handle, error) {
	h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, &LoadError{Library: name, Err: err}
	}
	return &dlHandle{h: h, name: name}, nil
}
