//go:build windows

package loader

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

func openLibrary(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	return uintptr(h), err
}

func closeLibrary(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}

func resolveAdd(l *Library) error {
	proc, err := windows.GetProcAddress(windows.Handle(l.handle), Symbol)
	if err != nil {
		return err
	}
	l.add = func(a, b int32, result unsafe.Pointer) int32 {
		r, _, _ := syscall.SyscallN(proc, uintptr(a), uintptr(b), uintptr(result))
		return int32(r)
	}
	return nil
}
