//go:build darwin || linux || freebsd

package loader

import "github.com/ebitengine/purego"

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}

func resolveAdd(l *Library) error {
	// Dlsym first so a missing export reports an error here;
	// RegisterLibFunc panics on unresolved symbols.
	if _, err := purego.Dlsym(l.handle, Symbol); err != nil {
		return err
	}
	purego.RegisterLibFunc(&l.add, l.handle, Symbol)
	return nil
}
