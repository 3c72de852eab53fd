// Package loader is the host side of the dyloading demo: it loads a
// shared library at runtime, resolves the dyloading_add symbol by
// name, and invokes it with a Go-managed message buffer.
package loader

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/NenX/go-dyloading/dyloading"
)

// Symbol is the exported function name resolved from the library.
const Symbol = "dyloading_add"

// DefaultCapacity is the message buffer size used unless overridden,
// the same 1024 bytes the original host allocates.
const DefaultCapacity = 1024

// Result carries the outputs of one dyloading_add call.
type Result struct {
	// Sum is the function's return value.
	Sum int32
	// Message is the formatted text the library wrote back into the
	// buffer, read up to its NUL terminator.
	Message string
}

// Library wraps an open handle to a loaded dyloading library.
type Library struct {
	handle   uintptr
	path     string
	capacity int
	add      func(a, b int32, result unsafe.Pointer) int32
}

// Open loads the shared library at path and resolves dyloading_add.
// A missing symbol fails here rather than at call time.
func Open(path string) (*Library, error) {
	handle, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	l := &Library{handle: handle, path: path, capacity: DefaultCapacity}
	if err := resolveAdd(l); err != nil {
		_ = closeLibrary(handle)
		return nil, fmt.Errorf("failed to resolve %s in %s: %w", Symbol, path, err)
	}

	// Set finalizer to ensure cleanup
	runtime.SetFinalizer(l, (*Library).finalize)

	return l, nil
}

// Path returns the path the library was opened from.
func (l *Library) Path() string { return l.path }

// SetCapacity changes the per-call message buffer size. It must be
// large enough for the label and the formatted message the library
// writes back.
func (l *Library) SetCapacity(n int) {
	if n > 0 {
		l.capacity = n
	}
}

// Add invokes dyloading_add with a freshly allocated buffer seeded
// with the NUL-terminated label. The library prints its greeting from
// the label, overwrites the buffer with the formatted message, and
// returns the sum. Each call gets its own buffer, so concurrent calls
// through the same Library do not race.
func (l *Library) Add(a, b int32, label string) (Result, error) {
	if l.add == nil {
		return Result{}, fmt.Errorf("library is closed")
	}
	if len(label)+1 > l.capacity {
		return Result{}, dyloading.ErrBufferTooSmall
	}

	buf := make([]byte, l.capacity)
	copy(buf, label)

	sum := l.add(a, b, unsafe.Pointer(&buf[0]))

	return Result{Sum: sum, Message: cString(buf)}, nil
}

// finalize releases the native handle.
func (l *Library) finalize() {
	if l.handle != 0 {
		_ = closeLibrary(l.handle)
		l.handle = 0
		l.add = nil
	}
}

// Close explicitly releases the library handle. The Library must not
// be used afterwards.
func (l *Library) Close() error {
	runtime.SetFinalizer(l, nil)
	l.add = nil
	if l.handle == 0 {
		return nil
	}
	err := closeLibrary(l.handle)
	l.handle = 0
	return err
}

// cString returns the NUL-terminated prefix of buf as a Go string, or
// the whole buffer when no terminator is present.
func cString(buf []byte) string {
	for i, c := range buf {
		if c == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
