//go:build cgo

package dyloading

/*
#include <stdint.h>

static inline int32_t add_c(int32_t a, int32_t b) {
    return a + b;
}
*/
// #cgo nocallback add_c
// #cgo noescape add_c
import "C"

// AddCgo exposes the C implementation of the addition as a normal Go
// function. It exists as a benchmark baseline for the FFI call
// overhead the loaded library pays on every call.
func AddCgo(a, b int32) int32 {
	return int32(C.add_c(C.int32_t(a), C.int32_t(b)))
}
